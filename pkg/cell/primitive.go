package cell

import "fmt"

// Scalar lists the built-in types Primitive knows how to encode. Go has no
// blanket "impl PackedLayout for T" the way ink!'s Rust core does, so a
// type-switch dispatch over the concrete underlying type plays that role
// instead.
type Scalar interface {
	bool | int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64 | string
}

// Primitive adapts a Scalar value into a PackedLayout/SpreadLayout leaf,
// since Go cannot attach methods to built-in types directly.
type Primitive[T Scalar] struct {
	Value T
}

// NewPrimitive wraps v.
func NewPrimitive[T Scalar](v T) *Primitive[T] {
	return &Primitive[T]{Value: v}
}

func (p *Primitive[T]) PushPacked(enc *Encoder) {
	switch v := any(p.Value).(type) {
	case bool:
		enc.WriteBool(v)
	case int8:
		enc.WriteInt8(v)
	case int16:
		enc.WriteInt16(v)
	case int32:
		enc.WriteInt32(v)
	case int64:
		enc.WriteInt64(v)
	case int:
		enc.WriteInt64(int64(v))
	case uint8:
		enc.WriteUint8(v)
	case uint16:
		enc.WriteUint16(v)
	case uint32:
		enc.WriteUint32(v)
	case uint64:
		enc.WriteUint64(v)
	case uint:
		enc.WriteUint64(uint64(v))
	case float32:
		enc.WriteFloat32(v)
	case float64:
		enc.WriteFloat64(v)
	case string:
		enc.WriteString(v)
	default:
		panic(fmt.Sprintf("cell: unsupported primitive type %T", p.Value))
	}
}

func (p *Primitive[T]) PullPacked(dec *Decoder) {
	switch any(p.Value).(type) {
	case bool:
		p.Value = any(dec.ReadBool()).(T)
	case int8:
		p.Value = any(dec.ReadInt8()).(T)
	case int16:
		p.Value = any(dec.ReadInt16()).(T)
	case int32:
		p.Value = any(dec.ReadInt32()).(T)
	case int64:
		p.Value = any(dec.ReadInt64()).(T)
	case int:
		p.Value = any(int(dec.ReadInt64())).(T)
	case uint8:
		p.Value = any(dec.ReadUint8()).(T)
	case uint16:
		p.Value = any(dec.ReadUint16()).(T)
	case uint32:
		p.Value = any(dec.ReadUint32()).(T)
	case uint64:
		p.Value = any(dec.ReadUint64()).(T)
	case uint:
		p.Value = any(uint(dec.ReadUint64())).(T)
	case float32:
		p.Value = any(dec.ReadFloat32()).(T)
	case float64:
		p.Value = any(dec.ReadFloat64()).(T)
	case string:
		p.Value = any(dec.ReadString()).(T)
	default:
		panic(fmt.Sprintf("cell: unsupported primitive type %T", p.Value))
	}
}

func (p *Primitive[T]) ClearPacked() {
	var zero T
	p.Value = zero
}

func (p *Primitive[T]) PushSpread(ptr *KeyPtr)  { PushPackedRoot(ptr, p) }
func (p *Primitive[T]) PullSpread(ptr *KeyPtr)  { PullPackedRoot(ptr, p) }
func (p *Primitive[T]) ClearSpread(ptr *KeyPtr) { ClearPackedRoot(ptr); p.ClearPacked() }
func (p *Primitive[T]) Footprint() uint64       { return 1 }
