package cell

// LazyCell is the smallest lazy primitive: a single SpreadLayout value
// backed by one slice of cells, loaded at most once (on first Get) and
// written back at most once (on flush), and only if it was touched.
type LazyCell[T any, PT spreadPtr[T]] struct {
	host  Host
	key   Key
	entry *Entry[T, PT]
}

// NewLazyCell returns a LazyCell with no host attachment yet. It becomes
// usable once pushed or pulled through a KeyPtr.
func NewLazyCell[T any, PT spreadPtr[T]]() *LazyCell[T, PT] {
	return &LazyCell[T, PT]{entry: newEntry[T, PT]()}
}

// LazyCellFrom returns an already-populated, dirty LazyCell: useful for
// constructing a fresh value in memory before it is ever attached.
func LazyCellFrom[T any, PT spreadPtr[T]](v PT) *LazyCell[T, PT] {
	return &LazyCell[T, PT]{entry: entryFromValue[T, PT](v)}
}

// Get returns the current value, pulling it from the host on first access.
func (c *LazyCell[T, PT]) Get() PT {
	return c.entry.Get(NewKeyPtr(c.host, c.key))
}

// Set replaces the value. The change is only written back on the next flush.
func (c *LazyCell[T, PT]) Set(v PT) {
	c.entry.Set(v)
}

// Footprint reports T's footprint, computed without requiring a loaded value.
func (c *LazyCell[T, PT]) Footprint() uint64 {
	return c.entry.footprint()
}

func (c *LazyCell[T, PT]) PushSpread(ptr *KeyPtr) {
	c.key = ptr.Peek()
	c.host = ptr.Host()
	c.entry.Flush(ptr)
}

func (c *LazyCell[T, PT]) PullSpread(ptr *KeyPtr) {
	c.key = ptr.Peek()
	c.host = ptr.Host()
	ptr.Advance(c.entry.footprint())
	c.entry = newEntry[T, PT]()
}

func (c *LazyCell[T, PT]) ClearSpread(ptr *KeyPtr) {
	c.key = ptr.Peek()
	c.host = ptr.Host()
	c.entry.MarkCleared()
	c.entry.Flush(ptr)
}
