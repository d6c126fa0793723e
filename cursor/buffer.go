// Package cursor implements the single concrete byte-buffer abstraction
// used by the codec package's writer and reader: a fixed-capacity slice
// plus primitive get/put-at-offset operations and subslicing. Per the
// design notes this stays a single concrete type rather than an interface
// — there is exactly one buffer shape in this codebase, so an interface
// would buy nothing but indirection.
package cursor

import (
	"encoding/binary"
	"math"
)

// Buffer wraps a byte slice for offset-addressed primitive access.
type Buffer struct {
	data []byte
}

// New wraps data as a Buffer without copying.
func New(data []byte) *Buffer { return &Buffer{data: data} }

// Len returns the buffer's total length.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the full underlying slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Slice returns the sub-slice [from:to), sharing storage with the buffer.
func (b *Buffer) Slice(from, to int) []byte { return b.data[from:to] }

// InBounds reports whether [off, off+n) lies within the buffer.
func (b *Buffer) InBounds(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(b.data)
}

func (b *Buffer) Uint8(off int) uint8      { return b.data[off] }
func (b *Buffer) PutUint8(off int, v uint8) { b.data[off] = v }

func (b *Buffer) Int8(off int) int8      { return int8(b.data[off]) }
func (b *Buffer) PutInt8(off int, v int8) { b.data[off] = byte(v) }

func (b *Buffer) Uint16(off int) uint16 { return binary.BigEndian.Uint16(b.data[off:]) }
func (b *Buffer) PutUint16(off int, v uint16) {
	binary.BigEndian.PutUint16(b.data[off:], v)
}

func (b *Buffer) Int16(off int) int16 { return int16(b.Uint16(off)) }
func (b *Buffer) PutInt16(off int, v int16) { b.PutUint16(off, uint16(v)) }

func (b *Buffer) Uint32(off int) uint32 { return binary.BigEndian.Uint32(b.data[off:]) }
func (b *Buffer) PutUint32(off int, v uint32) {
	binary.BigEndian.PutUint32(b.data[off:], v)
}

func (b *Buffer) Int32(off int) int32 { return int32(b.Uint32(off)) }
func (b *Buffer) PutInt32(off int, v int32) { b.PutUint32(off, uint32(v)) }

func (b *Buffer) Uint64(off int) uint64 { return binary.BigEndian.Uint64(b.data[off:]) }
func (b *Buffer) PutUint64(off int, v uint64) {
	binary.BigEndian.PutUint64(b.data[off:], v)
}

func (b *Buffer) Int64(off int) int64 { return int64(b.Uint64(off)) }
func (b *Buffer) PutInt64(off int, v int64) { b.PutUint64(off, uint64(v)) }

func (b *Buffer) Float64(off int) float64 {
	return math.Float64frombits(b.Uint64(off))
}
func (b *Buffer) PutFloat64(off int, v float64) {
	b.PutUint64(off, math.Float64bits(v))
}

// Copy writes src at off.
func (b *Buffer) Copy(off int, src []byte) { copy(b.data[off:], src) }
