package codec

import (
	"encoding/binary"
	"math"
)

// cursorUint16/32/64 and cursorFloat64 decode big-endian primitives out of
// a byte slice already sized to exactly the right width by the caller
// (every call site passes the exact-length slice returned by
// byteSource.take).
func cursorUint16(b []byte) uint16   { return binary.BigEndian.Uint16(b) }
func cursorUint32(b []byte) uint32   { return binary.BigEndian.Uint32(b) }
func cursorUint64(b []byte) uint64   { return binary.BigEndian.Uint64(b) }
func cursorFloat64(b []byte) float64 { return math.Float64frombits(binary.BigEndian.Uint64(b)) }
