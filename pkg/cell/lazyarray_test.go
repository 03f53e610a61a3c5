package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xutdns/ink/pkg/cell"
	"github.com/xutdns/ink/pkg/cell/memhost"
)

func TestLazyArray_PushThenPull_RoundTrips(t *testing.T) {
	host := memhost.New()

	arr := cell.NewLazyArray[u32, *u32](4)
	for i := range uint64(4) {
		arr.Set(i, cell.NewPrimitive(uint32(i*10)))
	}

	arr.PushSpread(cell.NewKeyPtr(host, cell.Key{}))
	require.Equal(t, 4, host.Len())

	attached := cell.NewLazyArray[u32, *u32](4)
	attached.PullSpread(cell.NewKeyPtr(host, cell.Key{}))

	for i := range uint64(4) {
		require.Equal(t, uint32(i*10), attached.Get(i).Value)
	}
}

func TestLazyArray_OutOfRange_Panics(t *testing.T) {
	arr := cell.NewLazyArray[u32, *u32](2)

	require.PanicsWithError(t, "cell: index out of range: index 2, len 2", func() {
		arr.Get(2)
	})
}

func TestLazyArray_Footprint_IsFixedCapacity(t *testing.T) {
	arr := cell.NewLazyArray[u32, *u32](7)
	require.Equal(t, uint64(7), arr.Footprint())
}

func TestLazyArray_GetMut_MarksEntryDirtyForFlush(t *testing.T) {
	host := memhost.New()

	arr := cell.NewLazyArray[u32, *u32](2)
	arr.Set(0, cell.NewPrimitive(uint32(1)))
	arr.Set(1, cell.NewPrimitive(uint32(2)))
	arr.PushSpread(cell.NewKeyPtr(host, cell.Key{}))

	attached := cell.NewLazyArray[u32, *u32](2)
	attached.PullSpread(cell.NewKeyPtr(host, cell.Key{}))

	attached.GetMut(0).Value = 99
	attached.PushSpread(cell.NewKeyPtr(host, cell.Key{}))

	reloaded := cell.NewLazyArray[u32, *u32](2)
	reloaded.PullSpread(cell.NewKeyPtr(host, cell.Key{}))
	require.Equal(t, uint32(99), reloaded.Get(0).Value)
}

func TestLazyArray_PutGet_ReturnsPriorValue(t *testing.T) {
	arr := cell.NewLazyArray[u32, *u32](2)
	arr.Set(0, cell.NewPrimitive(uint32(1)))

	old := arr.PutGet(0, cell.NewPrimitive(uint32(2)))
	require.Equal(t, uint32(1), old.Value)
	require.Equal(t, uint32(2), arr.Get(0).Value)
}

func TestLazyArray_Take_ClearsAndReturnsPriorValue(t *testing.T) {
	arr := cell.NewLazyArray[u32, *u32](2)
	arr.Set(0, cell.NewPrimitive(uint32(5)))

	old := arr.Take(0)
	require.Equal(t, uint32(5), old.Value)
	require.Equal(t, uint32(0), arr.Get(0).Value)
}

func TestLazyArray_Swap_ExchangesValues(t *testing.T) {
	arr := cell.NewLazyArray[u32, *u32](2)
	arr.Set(0, cell.NewPrimitive(uint32(1)))
	arr.Set(1, cell.NewPrimitive(uint32(2)))

	arr.Swap(0, 1)
	require.Equal(t, uint32(2), arr.Get(0).Value)
	require.Equal(t, uint32(1), arr.Get(1).Value)

	arr.Swap(0, 1)
	require.Equal(t, uint32(1), arr.Get(0).Value)
	require.Equal(t, uint32(2), arr.Get(1).Value)
}

func TestLazyArray_Swap_SameIndex_IsNoOp(t *testing.T) {
	arr := cell.NewLazyArray[u32, *u32](2)
	arr.Set(0, cell.NewPrimitive(uint32(1)))

	arr.Swap(0, 0)
	require.Equal(t, uint32(1), arr.Get(0).Value)
}

func TestLazyArray_Swap_OutOfRange_Panics(t *testing.T) {
	arr := cell.NewLazyArray[u32, *u32](2)

	require.PanicsWithError(t, "cell: index out of range: index 2, len 2", func() {
		arr.Swap(0, 2)
	})
}
