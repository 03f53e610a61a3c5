package cell

import "fmt"

const (
	resultTagErr = 0x00
	resultTagOk  = 0x01
)

// Result mirrors Rust's Result<T,E> as a PackedLayout value: a one-byte
// discriminant (0x01 = Ok, 0x00 = Err) followed by the packed payload.
type Result[T any, PT packedPtr[T], E any, PE packedPtr[E]] struct {
	isOk bool
	ok   PT
	err  PE
}

// Ok returns a successful Result.
func Ok[T any, PT packedPtr[T], E any, PE packedPtr[E]](v PT) *Result[T, PT, E, PE] {
	return &Result[T, PT, E, PE]{isOk: true, ok: v}
}

// Err returns a failed Result.
func Err[T any, PT packedPtr[T], E any, PE packedPtr[E]](e PE) *Result[T, PT, E, PE] {
	return &Result[T, PT, E, PE]{err: e}
}

func (r *Result[T, PT, E, PE]) IsOk() bool  { return r.isOk }
func (r *Result[T, PT, E, PE]) IsErr() bool { return !r.isOk }

// Unwrap returns the Ok payload, or panics if the Result is an Err.
func (r *Result[T, PT, E, PE]) Unwrap() PT {
	if !r.isOk {
		panic(ErrUnwrap)
	}

	return r.ok
}

// UnwrapErr returns the Err payload, or panics if the Result is Ok.
func (r *Result[T, PT, E, PE]) UnwrapErr() PE {
	if r.isOk {
		panic(ErrUnwrap)
	}

	return r.err
}

func (r *Result[T, PT, E, PE]) PushPacked(enc *Encoder) {
	if r.isOk {
		enc.WriteUint8(resultTagOk)
		r.ok.PushPacked(enc)

		return
	}

	enc.WriteUint8(resultTagErr)
	r.err.PushPacked(enc)
}

func (r *Result[T, PT, E, PE]) PullPacked(dec *Decoder) {
	switch tag := dec.ReadUint8(); tag {
	case resultTagOk:
		var zero T

		v := PT(&zero)
		v.PullPacked(dec)

		r.ok = v
		r.isOk = true
	case resultTagErr:
		var zero E

		v := PE(&zero)
		v.PullPacked(dec)

		r.err = v
		r.isOk = false
	default:
		panic(fmt.Errorf("%w: result tag %#x", ErrCorruptCell, tag))
	}
}

func (r *Result[T, PT, E, PE]) ClearPacked() {
	var zeroOk PT

	var zeroErr PE

	r.ok = zeroOk
	r.err = zeroErr
	r.isOk = false
}

func (r *Result[T, PT, E, PE]) PushSpread(ptr *KeyPtr)  { PushPackedRoot(ptr, r) }
func (r *Result[T, PT, E, PE]) PullSpread(ptr *KeyPtr)  { PullPackedRoot(ptr, r) }
func (r *Result[T, PT, E, PE]) ClearSpread(ptr *KeyPtr) { ClearPackedRoot(ptr); r.ClearPacked() }
func (r *Result[T, PT, E, PE]) Footprint() uint64       { return 1 }
