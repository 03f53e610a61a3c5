package cell

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encoder accumulates the canonical little-endian byte encoding of a single
// cell's payload. Zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the bytes written so far.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) WriteUint8(v uint8)   { e.buf = append(e.buf, v) }
func (e *Encoder) WriteUint16(v uint16) { e.buf = binary.LittleEndian.AppendUint16(e.buf, v) }
func (e *Encoder) WriteUint32(v uint32) { e.buf = binary.LittleEndian.AppendUint32(e.buf, v) }
func (e *Encoder) WriteUint64(v uint64) { e.buf = binary.LittleEndian.AppendUint64(e.buf, v) }

func (e *Encoder) WriteInt8(v int8)   { e.WriteUint8(uint8(v)) }
func (e *Encoder) WriteInt16(v int16) { e.WriteUint16(uint16(v)) }
func (e *Encoder) WriteInt32(v int32) { e.WriteUint32(uint32(v)) }
func (e *Encoder) WriteInt64(v int64) { e.WriteUint64(uint64(v)) }

func (e *Encoder) WriteFloat32(v float32) { e.WriteUint32(math.Float32bits(v)) }
func (e *Encoder) WriteFloat64(v float64) { e.WriteUint64(math.Float64bits(v)) }

// WriteBytes writes a length-prefixed byte string.
func (e *Encoder) WriteBytes(b []byte) {
	e.WriteUint32(uint32(len(b)))
	e.buf = append(e.buf, b...)
}

func (e *Encoder) WriteString(s string) { e.WriteBytes([]byte(s)) }

// WriteRaw appends b verbatim, with no length prefix. Used for fixed-size
// payloads (e.g. Hash, AccountID) where the length is implied by the type.
func (e *Encoder) WriteRaw(b []byte) { e.buf = append(e.buf, b...) }

// Decoder reads back the encoding an Encoder produced. Any short read is
// treated as corruption and panics with [ErrCorruptCell], since a cell's
// bytes should only ever have come from a matching Encoder.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps b for reading.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

func (d *Decoder) need(n int) []byte {
	if n < 0 || d.pos+n > len(d.buf) {
		panic(fmt.Errorf("%w: need %d bytes, have %d", ErrCorruptCell, n, d.Remaining()))
	}

	b := d.buf[d.pos : d.pos+n]
	d.pos += n

	return b
}

func (d *Decoder) ReadBool() bool   { return d.need(1)[0] != 0 }
func (d *Decoder) ReadUint8() uint8 { return d.need(1)[0] }

func (d *Decoder) ReadUint16() uint16 { return binary.LittleEndian.Uint16(d.need(2)) }
func (d *Decoder) ReadUint32() uint32 { return binary.LittleEndian.Uint32(d.need(4)) }
func (d *Decoder) ReadUint64() uint64 { return binary.LittleEndian.Uint64(d.need(8)) }

func (d *Decoder) ReadInt8() int8   { return int8(d.ReadUint8()) }
func (d *Decoder) ReadInt16() int16 { return int16(d.ReadUint16()) }
func (d *Decoder) ReadInt32() int32 { return int32(d.ReadUint32()) }
func (d *Decoder) ReadInt64() int64 { return int64(d.ReadUint64()) }

func (d *Decoder) ReadFloat32() float32 { return math.Float32frombits(d.ReadUint32()) }
func (d *Decoder) ReadFloat64() float64 { return math.Float64frombits(d.ReadUint64()) }

func (d *Decoder) ReadBytes() []byte {
	n := d.ReadUint32()
	return append([]byte(nil), d.need(int(n))...)
}

func (d *Decoder) ReadString() string { return string(d.ReadBytes()) }

// ReadRaw reads exactly n raw bytes.
func (d *Decoder) ReadRaw(n int) []byte {
	return append([]byte(nil), d.need(n)...)
}
