package cell

import "fmt"

// LazyArray is a fixed-capacity, contiguous run of N lazily-loaded cells.
//
// Go generics have no value type parameters, so N cannot live in the type
// the way ink!'s LazyArray<T, N: usize> const-generic does; it is instead
// fixed at construction time and enforced at runtime, the fallback spec.md
// itself calls out for this gap (see Open Questions in SPEC_FULL.md).
type LazyArray[T any, PT spreadPtr[T]] struct {
	host    Host
	base    Key
	n       uint64
	entries []*Entry[T, PT]
}

// NewLazyArray returns a LazyArray with a fixed capacity of n slots.
func NewLazyArray[T any, PT spreadPtr[T]](n uint64) *LazyArray[T, PT] {
	a := &LazyArray[T, PT]{n: n}
	a.entries = make([]*Entry[T, PT], n)

	for i := range a.entries {
		a.entries[i] = newEntry[T, PT]()
	}

	return a
}

// Len returns the array's fixed capacity.
func (a *LazyArray[T, PT]) Len() uint64 { return a.n }

func (a *LazyArray[T, PT]) elemFootprint() uint64 {
	var zero T
	return PT(&zero).Footprint()
}

func (a *LazyArray[T, PT]) keyAt(i uint64) Key {
	return a.base.Add(i * a.elemFootprint())
}

func (a *LazyArray[T, PT]) checkIndex(i uint64) {
	if i >= a.n {
		panic(fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, a.n))
	}
}

// Get returns the value at index i, pulling it from the host on first access.
func (a *LazyArray[T, PT]) Get(i uint64) PT {
	a.checkIndex(i)
	return a.entries[i].Get(NewKeyPtr(a.host, a.keyAt(i)))
}

// Set replaces the value at index i.
func (a *LazyArray[T, PT]) Set(i uint64, v PT) {
	a.checkIndex(i)
	a.entries[i].Set(v)
}

// GetMut returns the value at index i for mutation, conservatively marking
// it dirty. Panics if i is out of range.
func (a *LazyArray[T, PT]) GetMut(i uint64) PT {
	a.checkIndex(i)
	return a.entries[i].GetMut(NewKeyPtr(a.host, a.keyAt(i)))
}

// PutGet replaces the value at index i and returns its previous value.
// Panics if i is out of range.
func (a *LazyArray[T, PT]) PutGet(i uint64, v PT) PT {
	a.checkIndex(i)
	return a.entries[i].PutGet(v, NewKeyPtr(a.host, a.keyAt(i)))
}

// Take clears index i and returns its previous value. Panics if i is out
// of range.
func (a *LazyArray[T, PT]) Take(i uint64) PT {
	a.checkIndex(i)
	return a.entries[i].Take(NewKeyPtr(a.host, a.keyAt(i)))
}

// Clear marks index i for clearing on the next flush.
func (a *LazyArray[T, PT]) Clear(i uint64) {
	a.checkIndex(i)
	a.entries[i].MarkCleared()
}

// Swap exchanges the values at i and j, panicking if either is out of
// range. Swapping an index with itself is a no-op.
func (a *LazyArray[T, PT]) Swap(i, j uint64) {
	a.checkIndex(i)
	a.checkIndex(j)

	if i == j {
		return
	}

	vi := a.entries[i].Get(NewKeyPtr(a.host, a.keyAt(i)))
	vj := a.entries[j].Get(NewKeyPtr(a.host, a.keyAt(j)))

	a.entries[i].Set(vj)
	a.entries[j].Set(vi)
}

func (a *LazyArray[T, PT]) Footprint() uint64 {
	return a.n * a.elemFootprint()
}

func (a *LazyArray[T, PT]) PushSpread(ptr *KeyPtr) {
	a.base = ptr.Peek()
	a.host = ptr.Host()

	for _, e := range a.entries {
		e.Flush(ptr)
	}
}

func (a *LazyArray[T, PT]) PullSpread(ptr *KeyPtr) {
	a.base = ptr.Peek()
	a.host = ptr.Host()
	ptr.Advance(a.Footprint())

	a.entries = make([]*Entry[T, PT], a.n)
	for i := range a.entries {
		a.entries[i] = newEntry[T, PT]()
	}
}

func (a *LazyArray[T, PT]) ClearSpread(ptr *KeyPtr) {
	a.base = ptr.Peek()
	a.host = ptr.Host()

	for _, e := range a.entries {
		e.MarkCleared()
		e.Flush(ptr)
	}
}
