package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xutdns/ink/pkg/cell"
	"github.com/xutdns/ink/pkg/cell/memhost"
)

func val(v uint32) *u32 { return cell.NewPrimitive(v) }

func TestVec_PushPopFirstLast_OnFourElements(t *testing.T) {
	v := cell.NewVec[u32, *u32]()

	v.Push(val('a'))
	v.Push(val('b'))
	v.Push(val('c'))
	v.Push(val('d'))

	require.Equal(t, uint64(4), v.Len())

	first, ok := v.First()
	require.True(t, ok)
	require.Equal(t, uint32('a'), first.Value)

	last, ok := v.Last()
	require.True(t, ok)
	require.Equal(t, uint32('d'), last.Value)

	popped, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, uint32('d'), popped.Value)
	require.Equal(t, uint64(3), v.Len())

	last, ok = v.Last()
	require.True(t, ok)
	require.Equal(t, uint32('c'), last.Value)
}

func TestVec_Pop_OnEmpty_ReturnsFalse(t *testing.T) {
	v := cell.NewVec[u32, *u32]()

	_, ok := v.Pop()
	require.False(t, ok)

	_, ok = v.First()
	require.False(t, ok)

	_, ok = v.Last()
	require.False(t, ok)
}

func TestVec_SwapRemove_Sequence(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c', 'd', 'e'} {
		v.Push(val(c))
	}

	// Removing index 1 ('b') swaps in the last element ('e').
	removed := v.SwapRemove(1)
	require.Equal(t, uint32('b'), removed.Value)
	require.Equal(t, uint64(4), v.Len())
	require.Equal(t, uint32('e'), v.Get(1).Value)

	// Removing the new last index leaves the rest untouched.
	removed = v.SwapRemove(3)
	require.Equal(t, uint32('d'), removed.Value)
	require.Equal(t, uint64(3), v.Len())

	got := collect(v)
	require.Equal(t, []uint32{'a', 'e', 'c'}, got)
}

func TestVec_Swap_Sequence(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c', 'd'} {
		v.Push(val(c))
	}

	v.Swap(0, 3)
	require.Equal(t, []uint32{'d', 'b', 'c', 'a'}, collect(v))

	v.Swap(1, 1)
	require.Equal(t, []uint32{'d', 'b', 'c', 'a'}, collect(v))
}

func TestVec_Swap_OutOfBounds_Panics(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	v.Push(val('a'))

	require.PanicsWithError(t, "cell: index out of range: index 1, len 1", func() {
		v.Swap(0, 1)
	})
}

func TestVec_SwapRemove_OutOfBounds_Panics(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	v.Push(val('a'))

	require.PanicsWithError(t, "cell: index out of range: index 5, len 1", func() {
		v.SwapRemove(5)
	})
}

func TestVec_Iter_Forward(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c'} {
		v.Push(val(c))
	}

	require.Equal(t, []uint32{'a', 'b', 'c'}, collect(v))
}

func TestVec_Iter_Reverse(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c'} {
		v.Push(val(c))
	}

	var got []uint32
	v.IterReverse(func(_ uint64, pv *u32) bool {
		got = append(got, pv.Value)
		return true
	})

	require.Equal(t, []uint32{'c', 'b', 'a'}, got)
}

func TestVec_Iter_StopsWhenYieldReturnsFalse(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c'} {
		v.Push(val(c))
	}

	var got []uint32
	v.Iter(func(_ uint64, pv *u32) bool {
		got = append(got, pv.Value)
		return len(got) < 2
	})

	require.Equal(t, []uint32{'a', 'b'}, got)
}

func TestVec_NewVecFrom_BuildsFromInMemoryValues(t *testing.T) {
	v := cell.NewVecFrom[u32, *u32]([]*u32{val('x'), val('y'), val('z')})

	require.Equal(t, []uint32{'x', 'y', 'z'}, collect(v))
}

func TestVec_PushThenPull_RoundTrips(t *testing.T) {
	host := memhost.New()

	v := cell.NewVecFrom[u32, *u32]([]*u32{val('a'), val('b'), val('c')})
	v.PushSpread(cell.NewKeyPtr(host, cell.Key{}))

	attached := cell.NewVec[u32, *u32]()
	attached.PullSpread(cell.NewKeyPtr(host, cell.Key{}))

	require.Equal(t, []uint32{'a', 'b', 'c'}, collect(attached))
}

func TestVec_ClearSpread_RemovesAllCells(t *testing.T) {
	host := memhost.New()

	v := cell.NewVecFrom[u32, *u32]([]*u32{val('a'), val('b')})
	v.PushSpread(cell.NewKeyPtr(host, cell.Key{}))
	require.Positive(t, host.Len())

	attached := cell.NewVec[u32, *u32]()
	attached.PullSpread(cell.NewKeyPtr(host, cell.Key{}))
	attached.ClearSpread(cell.NewKeyPtr(host, cell.Key{}))

	require.Equal(t, 0, host.Len())
}

func TestVec_GetMut_MarksEntryDirtyForFlush(t *testing.T) {
	host := memhost.New()

	v := cell.NewVecFrom[u32, *u32]([]*u32{val('a'), val('b')})
	v.PushSpread(cell.NewKeyPtr(host, cell.Key{}))

	attached := cell.NewVec[u32, *u32]()
	attached.PullSpread(cell.NewKeyPtr(host, cell.Key{}))

	attached.GetMut(0).Value = 'z'
	attached.PushSpread(cell.NewKeyPtr(host, cell.Key{}))

	reloaded := cell.NewVec[u32, *u32]()
	reloaded.PullSpread(cell.NewKeyPtr(host, cell.Key{}))
	require.Equal(t, uint32('z'), reloaded.Get(0).Value)
}

func TestVec_PopDrop_ShrinksWithoutReturningValue(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c'} {
		v.Push(val(c))
	}

	require.True(t, v.PopDrop())
	require.Equal(t, uint64(2), v.Len())
	require.Equal(t, []uint32{'a', 'b'}, collect(v))
}

func TestVec_PopDrop_OnEmpty_ReturnsFalse(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	require.False(t, v.PopDrop())
}

func TestVec_IterMut_MutatesEachElement(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c'} {
		v.Push(val(c))
	}

	v.IterMut(func(_ uint64, pv *u32) bool {
		pv.Value++
		return true
	})

	require.Equal(t, []uint32{'b', 'c', 'd'}, collect(v))
}

func TestVec_IterMut_StopsWhenYieldReturnsFalse(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c'} {
		v.Push(val(c))
	}

	var n int
	v.IterMut(func(_ uint64, pv *u32) bool {
		n++
		return n < 2
	})

	require.Equal(t, []uint32{'a', 'b', 'c'}, collect(v))
	require.Equal(t, 2, n)
}

func TestVec_SwapRemoveDrop_Sequence(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	for _, c := range []uint32{'a', 'b', 'c', 'd', 'e'} {
		v.Push(val(c))
	}

	require.True(t, v.SwapRemoveDrop(1))
	require.Equal(t, uint64(4), v.Len())
	require.Equal(t, uint32('e'), v.Get(1).Value)

	require.True(t, v.SwapRemoveDrop(3))
	require.Equal(t, uint64(3), v.Len())
	require.Equal(t, []uint32{'a', 'e', 'c'}, collect(v))
}

func TestVec_SwapRemoveDrop_OnEmpty_ReturnsFalse(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	require.False(t, v.SwapRemoveDrop(0))
}

func TestVec_SwapRemoveDrop_OutOfBounds_Panics(t *testing.T) {
	v := cell.NewVec[u32, *u32]()
	v.Push(val('a'))

	require.PanicsWithError(t, "cell: index out of range: index 5, len 1", func() {
		v.SwapRemoveDrop(5)
	})
}

func TestVec_ClearCells_RemovesElementsButKeepsLength(t *testing.T) {
	host := memhost.New()

	v := cell.NewVecFrom[u32, *u32]([]*u32{val('a'), val('b')})
	v.PushSpread(cell.NewKeyPtr(host, cell.Key{}))

	attached := cell.NewVec[u32, *u32]()
	attached.PullSpread(cell.NewKeyPtr(host, cell.Key{}))
	attached.ClearCells()

	require.Equal(t, uint64(2), attached.Len())
	require.Equal(t, uint32(0), attached.Get(0).Value)
}

func collect(v *cell.Vec[u32, *u32]) []uint32 {
	var got []uint32
	v.Iter(func(_ uint64, pv *u32) bool {
		got = append(got, pv.Value)
		return true
	})

	return got
}
