package cell

import "fmt"

// vecLength is the backing type for Vec's length cell.
type vecLength = Primitive[uint64]

// Vec is a growable, push/pop/swap-capable sequence built on a length
// LazyCell plus a LazyIndexMap: Vec's own footprint is 1 (length) +
// footprint(LazyIndexMap) which is always 1, so 2 total.
type Vec[T any, PT spreadPtr[T]] struct {
	length *LazyCell[vecLength, *vecLength]
	elems  *LazyIndexMap[T, PT]
}

// NewVec returns an empty, dirty Vec ready to be pushed to a KeyPtr.
func NewVec[T any, PT spreadPtr[T]]() *Vec[T, PT] {
	return &Vec[T, PT]{
		length: LazyCellFrom[vecLength, *vecLength](NewPrimitive[uint64](0)),
		elems:  NewLazyIndexMap[T, PT](),
	}
}

// NewVecFrom builds a Vec in memory from values, the analogue of Rust's
// Vec::from_iter.
func NewVecFrom[T any, PT spreadPtr[T]](values []PT) *Vec[T, PT] {
	v := NewVec[T, PT]()
	for _, val := range values {
		v.Push(val)
	}

	return v
}

// Len returns the number of elements.
func (v *Vec[T, PT]) Len() uint64 { return v.length.Get().Value }

// IsEmpty reports whether the Vec has no elements.
func (v *Vec[T, PT]) IsEmpty() bool { return v.Len() == 0 }

func (v *Vec[T, PT]) checkIndex(i uint64) {
	if i >= v.Len() {
		panic(fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.Len()))
	}
}

// Get returns the element at index i, panicking if i is out of range.
func (v *Vec[T, PT]) Get(i uint64) PT {
	v.checkIndex(i)
	return v.elems.Get(i)
}

// Set replaces the element at index i, panicking if i is out of range.
func (v *Vec[T, PT]) Set(i uint64, val PT) {
	v.checkIndex(i)
	v.elems.Put(i, val)
}

// First returns the first element, or (zero, false) if the Vec is empty.
func (v *Vec[T, PT]) First() (PT, bool) {
	if v.IsEmpty() {
		var zero PT
		return zero, false
	}

	return v.Get(0), true
}

// Last returns the last element, or (zero, false) if the Vec is empty.
func (v *Vec[T, PT]) Last() (PT, bool) {
	if v.IsEmpty() {
		var zero PT
		return zero, false
	}

	return v.Get(v.Len() - 1), true
}

// Push appends val.
func (v *Vec[T, PT]) Push(val PT) {
	n := v.Len()
	v.elems.Put(n, val)
	v.length.Set(NewPrimitive(n + 1))
}

// GetMut returns the element at index i for mutation, panicking if i is
// out of range.
func (v *Vec[T, PT]) GetMut(i uint64) PT {
	v.checkIndex(i)
	return v.elems.GetMut(i)
}

// Pop removes and returns the last element, or (zero, false) if empty.
func (v *Vec[T, PT]) Pop() (PT, bool) {
	if v.IsEmpty() {
		var zero PT
		return zero, false
	}

	n := v.Len() - 1
	val := v.elems.Take(n)
	v.length.Set(NewPrimitive(n))

	return val, true
}

// PopDrop removes the last element without loading or returning it,
// cheaper than Pop when the removed value is never needed. Returns false
// if the Vec was empty.
func (v *Vec[T, PT]) PopDrop() bool {
	if v.IsEmpty() {
		return false
	}

	n := v.Len() - 1
	v.elems.Remove(n)
	v.length.Set(NewPrimitive(n))

	return true
}

// Swap exchanges the elements at i and j, panicking if either is out of range.
func (v *Vec[T, PT]) Swap(i, j uint64) {
	v.checkIndex(i)
	v.checkIndex(j)

	v.elems.Swap(i, j)
}

// SwapRemove removes the element at i in O(1) by swapping it with the last
// element, then popping; order is not preserved. Panics if i is out of
// range.
func (v *Vec[T, PT]) SwapRemove(i uint64) PT {
	v.checkIndex(i)

	v.elems.Swap(i, v.Len()-1)
	removed, _ := v.Pop()

	return removed
}

// SwapRemoveDrop removes the element at i like SwapRemove, but never loads
// the value being removed — cheaper when the old value is not needed.
// Panics if i is out of range. Returns false if the Vec was empty.
func (v *Vec[T, PT]) SwapRemoveDrop(i uint64) bool {
	if v.IsEmpty() {
		return false
	}

	v.checkIndex(i)

	last := v.Len() - 1

	v.elems.Remove(i)

	if i != last {
		moved := v.elems.Take(last)
		v.elems.Put(i, moved)
	}

	v.length.Set(NewPrimitive(last))

	return true
}

// Iter calls yield for each element in index order until yield returns false.
func (v *Vec[T, PT]) Iter(yield func(index uint64, val PT) bool) {
	for i := range v.Len() {
		if !yield(i, v.Get(i)) {
			return
		}
	}
}

// IterReverse calls yield for each element in reverse index order until
// yield returns false.
func (v *Vec[T, PT]) IterReverse(yield func(index uint64, val PT) bool) {
	for i := v.Len(); i > 0; i-- {
		if !yield(i-1, v.Get(i-1)) {
			return
		}
	}
}

// IterMut calls yield for each element in index order, handing back a
// mutable reference, until yield returns false.
func (v *Vec[T, PT]) IterMut(yield func(index uint64, val PT) bool) {
	for i := range v.Len() {
		if !yield(i, v.GetMut(i)) {
			return
		}
	}
}

// ClearCells clears every live element's cell, without touching the length
// cell. If elems is already attached to a host, each cell is cleared on
// the host immediately; otherwise the clears are only recorded and take
// effect on the next ClearSpread/PushSpread.
func (v *Vec[T, PT]) ClearCells() {
	for i := range v.Len() {
		v.elems.Remove(i)

		if host := v.elems.host; host != nil {
			host.ClearCell(v.elems.keyAt(i))
		}
	}
}

func (v *Vec[T, PT]) Footprint() uint64 {
	return v.length.Footprint() + v.elems.Footprint()
}

func (v *Vec[T, PT]) PushSpread(ptr *KeyPtr) {
	v.length.PushSpread(ptr)
	v.elems.PushSpread(ptr)
}

func (v *Vec[T, PT]) PullSpread(ptr *KeyPtr) {
	v.length.PullSpread(ptr)
	v.elems.PullSpread(ptr)
}

func (v *Vec[T, PT]) ClearSpread(ptr *KeyPtr) {
	v.ClearCells()

	v.length.ClearSpread(ptr)
	v.elems.ClearSpread(ptr)
}
