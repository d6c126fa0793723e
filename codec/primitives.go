package codec

// Unit is the host type of the zero-information descriptors (Null, Empty,
// Ignore, Constant).
type Unit struct{}

type nullNode struct{}

func (nullNode) kind() Kind                                   { return Fixed(0) }
func (nullNode) calcLength(any) (int, error)                  { return 0, nil }
func (nullNode) encode(*Writer, any) error                    { return nil }
func (nullNode) decode(byteSource, int) (any, error)           { return Unit{}, nil }

// Null describes the unit value with binary size 0.
func Null() Desc[Unit] { return wrap[Unit](nullNode{}) }

type emptyNode struct{}

func (emptyNode) kind() Kind                          { return Fixed(0) }
func (emptyNode) calcLength(any) (int, error)         { return 0, nil }
func (emptyNode) encode(*Writer, any) error           { return nil }
func (emptyNode) decode(byteSource, int) (any, error) { return Unit{}, nil }

// Empty is binary-identical to Null; the two exist only because a text
// backend renders them differently ({} vs the null literal). Since the
// text backend isn't defined here, this descriptor differs from Null in
// name only.
func Empty() Desc[Unit] { return wrap[Unit](emptyNode{}) }

type ignoreNode struct{}

func (ignoreNode) kind() Kind                  { return Variable }
func (ignoreNode) calcLength(any) (int, error) { return 0, nil }
func (ignoreNode) encode(*Writer, any) error   { return nil }
func (ignoreNode) decode(src byteSource, remaining int) (any, error) {
	if remaining > 0 {
		if _, err := src.take(remaining); err != nil {
			return nil, err
		}
	}
	return Unit{}, nil
}

// Ignore consumes whatever bytes remain in the enclosing context on read
// and contributes nothing on write. It is Variable-kind: it has no size
// of its own, it eats whatever the context leaves behind.
func Ignore() Desc[Unit] { return wrap[Unit](ignoreNode{}) }

type constantNode struct{ text string }

func (constantNode) kind() Kind                  { return Fixed(0) }
func (constantNode) calcLength(any) (int, error) { return 0, nil }
func (constantNode) encode(*Writer, any) error   { return nil }
func (constantNode) decode(byteSource, int) (any, error) { return Unit{}, nil }

// Constant carries a fixed, text-only label and has binary size 0.
func Constant(text string) Desc[Unit] { return wrap[Unit](constantNode{text: text}) }

type boolNode struct{}

func (boolNode) kind() Kind                  { return Fixed(SizeBool) }
func (boolNode) calcLength(any) (int, error) { return SizeBool, nil }
func (boolNode) encode(w *Writer, v any) error {
	if v.(bool) {
		w.putUint8(1)
	} else {
		w.putUint8(0)
	}
	return nil
}
func (boolNode) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeBool)
	if err != nil {
		return nil, err
	}
	return b[0] != 0, nil
}

// Bool describes a 1-byte boolean: 0x00 is false, any other byte is true.
func Bool() Desc[bool] { return wrap[bool](boolNode{}) }

type int8Node struct{}

func (int8Node) kind() Kind                  { return Fixed(SizeInt8) }
func (int8Node) calcLength(any) (int, error) { return SizeInt8, nil }
func (int8Node) encode(w *Writer, v any) error {
	w.putInt8(v.(int8))
	return nil
}
func (int8Node) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeInt8)
	if err != nil {
		return nil, err
	}
	return int8(b[0]), nil
}

// Int8 describes a signed 8-bit integer.
func Int8() Desc[int8] { return wrap[int8](int8Node{}) }

type uint8Node struct{}

func (uint8Node) kind() Kind                  { return Fixed(SizeUint8) }
func (uint8Node) calcLength(any) (int, error) { return SizeUint8, nil }
func (uint8Node) encode(w *Writer, v any) error {
	w.putUint8(v.(uint8))
	return nil
}
func (uint8Node) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeUint8)
	if err != nil {
		return nil, err
	}
	return b[0], nil
}

// Uint8 describes an unsigned 8-bit integer.
func Uint8() Desc[uint8] { return wrap[uint8](uint8Node{}) }

type int16Node struct{}

func (int16Node) kind() Kind                  { return Fixed(SizeInt16) }
func (int16Node) calcLength(any) (int, error) { return SizeInt16, nil }
func (int16Node) encode(w *Writer, v any) error {
	w.putInt16(v.(int16))
	return nil
}
func (int16Node) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeInt16)
	if err != nil {
		return nil, err
	}
	return int16(cursorUint16(b)), nil
}

// Int16 describes a big-endian signed 16-bit integer.
func Int16() Desc[int16] { return wrap[int16](int16Node{}) }

type uint16Node struct{}

func (uint16Node) kind() Kind                  { return Fixed(SizeUint16) }
func (uint16Node) calcLength(any) (int, error) { return SizeUint16, nil }
func (uint16Node) encode(w *Writer, v any) error {
	w.putUint16(v.(uint16))
	return nil
}
func (uint16Node) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeUint16)
	if err != nil {
		return nil, err
	}
	return cursorUint16(b), nil
}

// Uint16 describes a big-endian unsigned 16-bit integer.
func Uint16() Desc[uint16] { return wrap[uint16](uint16Node{}) }

type int31Node struct{}

func (int31Node) kind() Kind                  { return Fixed(SizeInt31) }
func (int31Node) calcLength(any) (int, error) { return SizeInt31, nil }
func (int31Node) encode(w *Writer, v any) error {
	n := int64(v.(int32))
	if n < Int31Min || n > Int31Max {
		return &WriteError{Code: ErrInvalidIntWrite, IntMin: Int31Min, IntVal: n, IntMax: Int31Max}
	}
	w.putInt32(v.(int32))
	return nil
}
func (int31Node) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeInt31)
	if err != nil {
		return nil, err
	}
	n := int32(cursorUint32(b))
	if int64(n) < Int31Min || int64(n) > Int31Max {
		return nil, &ReadError{Code: ErrInvalidIntRead, IntMin: Int31Min, IntVal: int64(n), IntMax: Int31Max}
	}
	return n, nil
}

// Int31 describes a signed integer restricted to [-2^30, 2^30-1],
// serialized as a 32-bit big-endian signed integer.
func Int31() Desc[int32] { return wrap[int32](int31Node{}) }

type int32Node struct{}

func (int32Node) kind() Kind                  { return Fixed(SizeInt32) }
func (int32Node) calcLength(any) (int, error) { return SizeInt32, nil }
func (int32Node) encode(w *Writer, v any) error {
	w.putInt32(v.(int32))
	return nil
}
func (int32Node) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeInt32)
	if err != nil {
		return nil, err
	}
	return int32(cursorUint32(b)), nil
}

// Int32 describes a big-endian signed 32-bit integer.
func Int32() Desc[int32] { return wrap[int32](int32Node{}) }

type int64Node struct{}

func (int64Node) kind() Kind                  { return Fixed(SizeInt64) }
func (int64Node) calcLength(any) (int, error) { return SizeInt64, nil }
func (int64Node) encode(w *Writer, v any) error {
	w.putInt64(v.(int64))
	return nil
}
func (int64Node) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeInt64)
	if err != nil {
		return nil, err
	}
	return int64(cursorUint64(b)), nil
}

// Int64 describes a big-endian signed 64-bit integer.
func Int64() Desc[int64] { return wrap[int64](int64Node{}) }

type floatNode struct{}

func (floatNode) kind() Kind                  { return Fixed(SizeFloat) }
func (floatNode) calcLength(any) (int, error) { return SizeFloat, nil }
func (floatNode) encode(w *Writer, v any) error {
	w.putFloat64(v.(float64))
	return nil
}
func (floatNode) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeFloat)
	if err != nil {
		return nil, err
	}
	return cursorFloat64(b), nil
}

// Float describes an IEEE-754 binary64, big-endian.
func Float() Desc[float64] { return wrap[float64](floatNode{}) }
