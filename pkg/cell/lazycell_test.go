package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xutdns/ink/pkg/cell"
	"github.com/xutdns/ink/pkg/cell/memhost"
)

func TestLazyCell_PushThenPull_RoundTrips(t *testing.T) {
	host := memhost.New()

	lc := cell.LazyCellFrom[u32, *u32](cell.NewPrimitive[uint32](123))
	lc.PushSpread(cell.NewKeyPtr(host, cell.Key{}))

	var roundtripped cell.LazyCell[u32, *u32]
	roundtripped.PullSpread(cell.NewKeyPtr(host, cell.Key{}))

	require.Equal(t, uint32(123), roundtripped.Get().Value)
}

func TestLazyCell_Get_IsLazy_NoHostReadUntilAccessed(t *testing.T) {
	host := memhost.New()
	enc := cell.NewEncoder()
	enc.WriteUint32(0)
	host.SetCell(cell.Key{}, enc.Bytes())

	var lc cell.LazyCell[u32, *u32]
	lc.PullSpread(cell.NewKeyPtr(host, cell.Key{}))

	require.Equal(t, 0, host.Reads, "pulling attaches lazily; no read should happen yet")

	lc.Get()
	require.Equal(t, 1, host.Reads)

	lc.Get()
	require.Equal(t, 1, host.Reads, "second Get should hit the cache, not the host")
}

func TestLazyCell_ClearSpread_RemovesCell(t *testing.T) {
	host := memhost.New()

	lc := cell.LazyCellFrom[u32, *u32](cell.NewPrimitive[uint32](5))
	lc.PushSpread(cell.NewKeyPtr(host, cell.Key{}))
	require.Equal(t, 1, host.Len())

	var attached cell.LazyCell[u32, *u32]
	attached.PullSpread(cell.NewKeyPtr(host, cell.Key{}))
	attached.ClearSpread(cell.NewKeyPtr(host, cell.Key{}))

	require.Equal(t, 0, host.Len())
}
