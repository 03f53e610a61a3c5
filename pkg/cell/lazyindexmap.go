package cell

// LazyIndexMap is an unbounded index→cell map. Unlike LazyArray its
// SpreadLayout footprint does not grow with its contents: it is always 1 (a
// bookkeeping slot that records where its element space begins; the map
// stores no record of its own there). Elements are addressed from that
// slot's key:
// key_at(i) = base + i·footprint(T), so element 0 shares the slot's key and
// later elements fall on the keys that follow it.
type LazyIndexMap[T any, PT spreadPtr[T]] struct {
	host    Host
	base    Key
	entries map[uint64]*Entry[T, PT]
}

// NewLazyIndexMap returns an empty, unattached LazyIndexMap.
func NewLazyIndexMap[T any, PT spreadPtr[T]]() *LazyIndexMap[T, PT] {
	return &LazyIndexMap[T, PT]{entries: make(map[uint64]*Entry[T, PT])}
}

func (m *LazyIndexMap[T, PT]) elemFootprint() uint64 {
	var zero T
	return PT(&zero).Footprint()
}

func (m *LazyIndexMap[T, PT]) keyAt(i uint64) Key {
	return m.base.Add(i * m.elemFootprint())
}

func (m *LazyIndexMap[T, PT]) entryFor(i uint64) *Entry[T, PT] {
	e, ok := m.entries[i]
	if !ok {
		e = newEntry[T, PT]()
		m.entries[i] = e
	}

	return e
}

// Get returns the value at index i, pulling it from the host on first access
// to that index.
func (m *LazyIndexMap[T, PT]) Get(i uint64) PT {
	return m.entryFor(i).Get(NewKeyPtr(m.host, m.keyAt(i)))
}

// Put sets the value at index i.
func (m *LazyIndexMap[T, PT]) Put(i uint64, v PT) {
	m.entryFor(i).Set(v)
}

// GetMut returns the value at index i for mutation, pulling it from the
// host on first access and conservatively marking it dirty.
func (m *LazyIndexMap[T, PT]) GetMut(i uint64) PT {
	return m.entryFor(i).GetMut(NewKeyPtr(m.host, m.keyAt(i)))
}

// PutGet replaces the value at index i and returns its previous value.
func (m *LazyIndexMap[T, PT]) PutGet(i uint64, v PT) PT {
	return m.entryFor(i).PutGet(v, NewKeyPtr(m.host, m.keyAt(i)))
}

// Take clears index i and returns its previous value.
func (m *LazyIndexMap[T, PT]) Take(i uint64) PT {
	return m.entryFor(i).Take(NewKeyPtr(m.host, m.keyAt(i)))
}

// Remove marks index i for clearing on the next flush.
func (m *LazyIndexMap[T, PT]) Remove(i uint64) {
	m.entryFor(i).MarkCleared()
}

// Swap exchanges the values at i and j. Swapping an index with itself is a
// no-op.
func (m *LazyIndexMap[T, PT]) Swap(i, j uint64) {
	if i == j {
		return
	}

	vi := m.entryFor(i).Get(NewKeyPtr(m.host, m.keyAt(i)))
	vj := m.entryFor(j).Get(NewKeyPtr(m.host, m.keyAt(j)))

	m.entryFor(i).Set(vj)
	m.entryFor(j).Set(vi)
}

func (m *LazyIndexMap[T, PT]) Footprint() uint64 { return 1 }

func (m *LazyIndexMap[T, PT]) PushSpread(ptr *KeyPtr) {
	m.base = ptr.Peek()
	m.host = ptr.Host()
	ptr.Advance(1)

	for i, e := range m.entries {
		e.Flush(NewKeyPtr(m.host, m.keyAt(i)))
	}
}

func (m *LazyIndexMap[T, PT]) PullSpread(ptr *KeyPtr) {
	m.base = ptr.Peek()
	m.host = ptr.Host()
	ptr.Advance(1)

	m.entries = make(map[uint64]*Entry[T, PT])
}

func (m *LazyIndexMap[T, PT]) ClearSpread(ptr *KeyPtr) {
	m.base = ptr.Peek()
	m.host = ptr.Host()
	ptr.Advance(1)

	for i, e := range m.entries {
		e.MarkCleared()
		e.Flush(NewKeyPtr(m.host, m.keyAt(i)))
	}
}
