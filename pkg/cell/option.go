package cell

import "fmt"

// packedPtr is the constraint every Packed leaf's pointer type satisfies:
// *T implementing the three Packed methods.
type packedPtr[T any] interface {
	*T
	Packed
}

// optionTagSome and optionTagNone are deliberately the inverse of the
// intuitive 0/1 mapping: this matches a prior on-chain encoding this type is
// required to stay bit-compatible with, so it is preserved exactly and
// covered by an explicit test rather than "fixed".
const (
	optionTagSome = 0x00
	optionTagNone = 0x01
)

// Option mirrors Rust's Option<T> as a PackedLayout value: a one-byte
// discriminant followed by the packed payload when present.
type Option[T any, PT packedPtr[T]] struct {
	hasValue bool
	value    PT
}

// Some returns a populated Option.
func Some[T any, PT packedPtr[T]](v PT) *Option[T, PT] {
	return &Option[T, PT]{hasValue: true, value: v}
}

// None returns an empty Option.
func None[T any, PT packedPtr[T]]() *Option[T, PT] {
	return &Option[T, PT]{}
}

func (o *Option[T, PT]) IsSome() bool { return o.hasValue }
func (o *Option[T, PT]) IsNone() bool { return !o.hasValue }

// Unwrap returns the contained value, or panics if the Option is empty.
func (o *Option[T, PT]) Unwrap() PT {
	if !o.hasValue {
		panic(ErrUnwrap)
	}

	return o.value
}

func (o *Option[T, PT]) PushPacked(enc *Encoder) {
	if o.hasValue {
		enc.WriteUint8(optionTagSome)
		o.value.PushPacked(enc)

		return
	}

	enc.WriteUint8(optionTagNone)
}

func (o *Option[T, PT]) PullPacked(dec *Decoder) {
	switch tag := dec.ReadUint8(); tag {
	case optionTagSome:
		var zero T

		v := PT(&zero)
		v.PullPacked(dec)

		o.value = v
		o.hasValue = true
	case optionTagNone:
		var zero PT

		o.value = zero
		o.hasValue = false
	default:
		panic(fmt.Errorf("%w: option tag %#x", ErrCorruptCell, tag))
	}
}

func (o *Option[T, PT]) ClearPacked() {
	var zero PT

	o.value = zero
	o.hasValue = false
}

func (o *Option[T, PT]) PushSpread(ptr *KeyPtr)  { PushPackedRoot(ptr, o) }
func (o *Option[T, PT]) PullSpread(ptr *KeyPtr)  { PullPackedRoot(ptr, o) }
func (o *Option[T, PT]) ClearSpread(ptr *KeyPtr) { ClearPackedRoot(ptr); o.ClearPacked() }
func (o *Option[T, PT]) Footprint() uint64       { return 1 }
