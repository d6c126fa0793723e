package codec

type rangedIntNode struct {
	min, max int64
	width    intWidth
	offset   bool // true when min > 0: wire value is v - min, unsigned
}

// RangedInt describes an integer constrained to [min, max]. Bounds must
// satisfy -2^30 <= min <= max <= 2^30-1. The wire width is the smallest of
// {int8, uint8, int16, uint16, int31} that holds [0, max-min] when min > 0
// (offset encoding — the writer subtracts min, the reader adds it back) or
// [min, max] otherwise.
func RangedInt(min, max int64) (Desc[int64], error) {
	if min > max {
		min, max = max, min
	}
	if min < Int31Min || max > Int31Max {
		return Desc[int64]{}, &ConstructError{
			Code:    "RangedIntOutOfBounds",
			Message: "ranged_int bounds must fit within [-2^30, 2^30-1]",
		}
	}
	n := &rangedIntNode{min: min, max: max}
	if min > 0 {
		n.offset = true
		n.width = chooseRangedIntWidth(0, max-min)
	} else {
		n.width = chooseRangedIntWidth(min, max)
	}
	return wrap[int64](n), nil
}

// MustRangedInt is RangedInt but panics on a construction error, for use
// building package-level descriptor tables where the bounds are known
// good at compile time.
func MustRangedInt(min, max int64) Desc[int64] {
	d, err := RangedInt(min, max)
	if err != nil {
		panic(err)
	}
	return d
}

func (n *rangedIntNode) kind() Kind { return Fixed(n.width.bytes()) }

func (n *rangedIntNode) calcLength(any) (int, error) { return n.width.bytes(), nil }

func (n *rangedIntNode) encode(w *Writer, v any) error {
	val := v.(int64)
	if val < n.min || val > n.max {
		return &WriteError{Code: ErrInvalidIntWrite, IntMin: n.min, IntVal: val, IntMax: n.max}
	}
	wire := val
	if n.offset {
		wire = val - n.min
	}
	switch n.width {
	case iwInt8:
		w.putInt8(int8(wire))
	case iwUint8:
		w.putUint8(uint8(wire))
	case iwInt16:
		w.putInt16(int16(wire))
	case iwUint16:
		w.putUint16(uint16(wire))
	case iwInt31:
		w.putInt32(int32(wire))
	}
	return nil
}

func (n *rangedIntNode) decode(src byteSource, remaining int) (any, error) {
	nb := n.width.bytes()
	b, err := src.take(nb)
	if err != nil {
		return nil, err
	}
	var wire int64
	switch n.width {
	case iwInt8:
		wire = int64(int8(b[0]))
	case iwUint8:
		wire = int64(b[0])
	case iwInt16:
		wire = int64(int16(cursorUint16(b)))
	case iwUint16:
		wire = int64(cursorUint16(b))
	case iwInt31:
		wire = int64(int32(cursorUint32(b)))
	}
	val := wire
	if n.offset {
		val = wire + n.min
	}
	if val < n.min || val > n.max {
		return nil, &ReadError{Code: ErrInvalidIntRead, IntMin: n.min, IntVal: val, IntMax: n.max}
	}
	return val, nil
}

type rangedFloatNode struct{ min, max float64 }

// RangedFloat is a Float with a post-read (and pre-write) range check.
func RangedFloat(min, max float64) Desc[float64] {
	return wrap[float64](&rangedFloatNode{min: min, max: max})
}

func (n *rangedFloatNode) kind() Kind                  { return Fixed(SizeFloat) }
func (n *rangedFloatNode) calcLength(any) (int, error) { return SizeFloat, nil }

func (n *rangedFloatNode) encode(w *Writer, v any) error {
	f := v.(float64)
	if f < n.min || f > n.max {
		return &WriteError{Code: ErrInvalidFloatWrite, FloatMin: n.min, FloatVal: f, FloatMax: n.max}
	}
	w.putFloat64(f)
	return nil
}

func (n *rangedFloatNode) decode(src byteSource, remaining int) (any, error) {
	b, err := src.take(SizeFloat)
	if err != nil {
		return nil, err
	}
	f := cursorFloat64(b)
	if f < n.min || f > n.max {
		return nil, &ReadError{Code: ErrInvalidFloatRead, FloatMin: n.min, FloatVal: f, FloatMax: n.max}
	}
	return f, nil
}
