package codec

import "math/big"

// Z and N are arbitrary-precision integers, encoded as little-endian 7-bit
// continuation groups. They classify as Dynamic: the continuation bit
// makes the encoding self-delimiting, no outer context bound is needed to
// find the end.
//
// Values are represented with the standard library's math/big; no
// third-party big-integer library is used.

type zNode struct{}

func (zNode) kind() Kind { return Dynamic }

func (zNode) calcLength(v any) (int, error) {
	return len(encodeZigZagMagnitude(v.(*big.Int), true)), nil
}

func (zNode) encode(w *Writer, v any) error {
	w.putBytes(encodeZigZagMagnitude(v.(*big.Int), true))
	return nil
}

func (zNode) decode(src byteSource, remaining int) (any, error) {
	return decodeVarBig(src, true)
}

// Z describes an arbitrary-precision signed integer.
func Z() Desc[*big.Int] { return wrap[*big.Int](zNode{}) }

type nNode struct{}

func (nNode) kind() Kind { return Dynamic }

func (nNode) calcLength(v any) (int, error) {
	n := v.(*big.Int)
	if n.Sign() < 0 {
		return 0, &WriteError{Code: ErrInvalidNatural}
	}
	return len(encodeZigZagMagnitude(n, false)), nil
}

func (nNode) encode(w *Writer, v any) error {
	n := v.(*big.Int)
	if n.Sign() < 0 {
		return &WriteError{Code: ErrInvalidNatural}
	}
	w.putBytes(encodeZigZagMagnitude(n, false))
	return nil
}

func (nNode) decode(src byteSource, remaining int) (any, error) {
	return decodeVarBig(src, false)
}

// N describes an arbitrary-precision non-negative integer.
func N() Desc[*big.Int] { return wrap[*big.Int](nNode{}) }

// encodeZigZagMagnitude encodes v's magnitude as little-endian 7-bit
// continuation groups. When signed is true, the first byte reserves a
// sign bit and carries only 6 magnitude bits (Z); otherwise the first
// byte carries a full 7 magnitude bits (N).
func encodeZigZagMagnitude(v *big.Int, signed bool) []byte {
	neg := signed && v.Sign() < 0
	mag := new(big.Int).Abs(v)

	if mag.Sign() == 0 {
		return []byte{0x00}
	}

	firstBits := 7
	if signed {
		firstBits = 6
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(firstBits)), big.NewInt(1))

	first := new(big.Int).And(mag, mask).Uint64()
	rest := new(big.Int).Rsh(mag, uint(firstBits))

	var out []byte
	fb := byte(first)
	if signed && neg {
		fb |= 0x40
	}
	if rest.Sign() != 0 {
		fb |= 0x80
	}
	out = append(out, fb)

	mask7 := big.NewInt(0x7F)
	for rest.Sign() != 0 {
		chunk := new(big.Int).And(rest, mask7).Uint64()
		rest.Rsh(rest, 7)
		cb := byte(chunk)
		if rest.Sign() != 0 {
			cb |= 0x80
		}
		out = append(out, cb)
	}
	return out
}

// decodeVarBig is the inverse of encodeZigZagMagnitude.
func decodeVarBig(src byteSource, signed bool) (*big.Int, error) {
	b, err := src.take(1)
	if err != nil {
		return nil, err
	}
	first := b[0]

	firstBits := uint(7)
	var neg bool
	var magBits uint64
	if signed {
		firstBits = 6
		neg = first&0x40 != 0
		magBits = uint64(first & 0x3F)
	} else {
		magBits = uint64(first & 0x7F)
	}
	cont := first&0x80 != 0

	mag := new(big.Int).SetUint64(magBits)
	shift := firstBits
	last := first
	consumed := 1

	for cont {
		b, err := src.take(1)
		if err != nil {
			return nil, err
		}
		last = b[0]
		cont = last&0x80 != 0
		chunk := new(big.Int).SetUint64(uint64(last & 0x7F))
		chunk.Lsh(chunk, shift)
		mag.Or(mag, chunk)
		shift += 7
		consumed++
	}

	if consumed > 1 && last == 0x00 {
		return nil, &ReadError{Code: ErrTrailingZero}
	}

	if signed && neg {
		mag.Neg(mag)
	}
	return mag, nil
}
