package cell

import "fmt"

// Packed is implemented by values whose on-chain representation lives
// entirely within one cell's bytes: primitives, fixed-size hashes and
// account ids, and the Option/Result composition types.
type Packed interface {
	PushPacked(enc *Encoder)
	PullPacked(dec *Decoder)
	ClearPacked()
}

// Spread is implemented by values that occupy one or more contiguous cells,
// walked with a KeyPtr. Every LazyCell, LazyArray, LazyIndexMap and Vec is a
// SpreadLayout; so is any struct composing them.
type Spread interface {
	PushSpread(ptr *KeyPtr)
	PullSpread(ptr *KeyPtr)
	ClearSpread(ptr *KeyPtr)
	Footprint() uint64
}

// PushPackedRoot pushes a Packed value as the single cell at ptr's current
// position and advances ptr by one. Every leaf PackedLayout type (Primitive,
// Hash, AccountID, Option, Result) uses this to satisfy SpreadLayout,
// the same role ink!'s blanket "PackedLayout implies SpreadLayout" impl
// plays — Go has no blanket impls, so each leaf type forwards to this
// helper explicitly instead.
func PushPackedRoot(ptr *KeyPtr, v Packed) {
	enc := NewEncoder()
	v.PushPacked(enc)
	key := ptr.Advance(1)
	ptr.Host().SetCell(key, enc.Bytes())
}

// PullPackedRoot pulls v from the single cell at ptr's current position and
// advances ptr by one. A cell that was never written (or was cleared) is
// left as v's current (typically zero) value rather than treated as an
// error — only a cell that exists but fails to decode is corruption.
func PullPackedRoot(ptr *KeyPtr, v Packed) {
	key := ptr.Advance(1)

	data, ok := ptr.Host().GetCell(key)
	if !ok {
		return
	}

	dec := NewDecoder(data)
	v.PullPacked(dec)

	if dec.Remaining() != 0 {
		panic(fmt.Errorf("%w: %d trailing bytes", ErrCorruptCell, dec.Remaining()))
	}
}

// ClearPackedRoot clears the single cell at ptr's current position and
// advances ptr by one.
func ClearPackedRoot(ptr *KeyPtr) {
	key := ptr.Advance(1)
	ptr.Host().ClearCell(key)
}
