package cell

// Host is the storage surface a contract runtime exposes: a flat map from
// 256-bit keys to opaque byte strings. The engine never assumes anything
// about how a Host persists cells — see [pkg/cell/memhost] for an in-memory
// test harness and [pkg/cell/filehost] for a durable, file-backed one.
type Host interface {
	// GetCell returns the bytes stored at key and true, or (nil, false) if
	// no cell has ever been written at key (or it was cleared).
	GetCell(key Key) ([]byte, bool)

	// SetCell stores data at key, overwriting any previous value.
	SetCell(key Key, data []byte)

	// ClearCell removes any value stored at key.
	ClearCell(key Key)
}
