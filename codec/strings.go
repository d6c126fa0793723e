package codec

type stringNode struct{ k Kind }

func newSeqKind(k Kind) (Kind, error) {
	switch k.Tag {
	case KindFixed, KindVariable:
		return k, nil
	default:
		return Kind{}, &ConstructError{
			Code:    "InvalidSeqKind",
			Message: "String/Bytes kind must be Fixed(n) or Variable",
		}
	}
}

// String describes a UTF-agnostic byte sequence interpreted as a Go
// string. kind must be Fixed(n) or Variable ("consume the rest of the
// context").
func String(kind Kind) (Desc[string], error) {
	k, err := newSeqKind(kind)
	if err != nil {
		return Desc[string]{}, err
	}
	return wrap[string](&stringNode{k: k}), nil
}

func (n *stringNode) kind() Kind { return n.k }

func (n *stringNode) calcLength(v any) (int, error) {
	s := v.(string)
	if fixed, ok := n.k.IsFixed(); ok {
		if len(s) != fixed {
			return 0, &WriteError{Code: ErrInvalidStringLength, Expected: fixed, Found: len(s)}
		}
		return fixed, nil
	}
	return len(s), nil
}

func (n *stringNode) encode(w *Writer, v any) error {
	s := v.(string)
	if fixed, ok := n.k.IsFixed(); ok && len(s) != fixed {
		return &WriteError{Code: ErrInvalidStringLength, Expected: fixed, Found: len(s)}
	}
	w.putBytes([]byte(s))
	return nil
}

func (n *stringNode) decode(src byteSource, remaining int) (any, error) {
	nb := remaining
	if fixed, ok := n.k.IsFixed(); ok {
		nb = fixed
	}
	b, err := src.take(nb)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type bytesNode struct{ k Kind }

// Bytes describes a UTF-agnostic byte sequence. kind must be Fixed(n) or
// Variable.
func Bytes(kind Kind) (Desc[[]byte], error) {
	k, err := newSeqKind(kind)
	if err != nil {
		return Desc[[]byte]{}, err
	}
	return wrap[[]byte](&bytesNode{k: k}), nil
}

func (n *bytesNode) kind() Kind { return n.k }

func (n *bytesNode) calcLength(v any) (int, error) {
	b := v.([]byte)
	if fixed, ok := n.k.IsFixed(); ok {
		if len(b) != fixed {
			return 0, &WriteError{Code: ErrInvalidBytesLength, Expected: fixed, Found: len(b)}
		}
		return fixed, nil
	}
	return len(b), nil
}

func (n *bytesNode) encode(w *Writer, v any) error {
	b := v.([]byte)
	if fixed, ok := n.k.IsFixed(); ok && len(b) != fixed {
		return &WriteError{Code: ErrInvalidBytesLength, Expected: fixed, Found: len(b)}
	}
	w.putBytes(b)
	return nil
}

func (n *bytesNode) decode(src byteSource, remaining int) (any, error) {
	nb := remaining
	if fixed, ok := n.k.IsFixed(); ok {
		nb = fixed
	}
	b, err := src.take(nb)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

type enumNode[T comparable] struct {
	values []T
	index  map[T]int
	width  Width
}

// Enum describes a value from a closed set of >= 2 cases (StringEnum in
// the source terminology; generalized here to any comparable host type,
// not just strings). It serializes as an unsigned index into values, in
// the minimum width that addresses len(values) entries.
func Enum[T comparable](values ...T) (Desc[T], error) {
	if len(values) < 2 {
		return Desc[T]{}, &ConstructError{
			Code:    "EnumTooFewCases",
			Message: "string_enum needs at least 2 cases",
		}
	}
	idx := make(map[T]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	n := &enumNode[T]{values: values, index: idx, width: minWidthForCardinality(len(values))}
	return wrap[T](n), nil
}

func (n *enumNode[T]) kind() Kind { return Fixed(n.width.Bytes()) }

func (n *enumNode[T]) calcLength(any) (int, error) { return n.width.Bytes(), nil }

func (n *enumNode[T]) findIndex(v any) (int, bool) {
	idx, ok := n.index[v.(T)]
	return idx, ok
}

func (n *enumNode[T]) encode(w *Writer, v any) error {
	idx, ok := n.findIndex(v)
	if !ok {
		return &WriteError{Code: ErrNoCaseMatchedWrite}
	}
	writeWidthUint(w, n.width, uint32(idx))
	return nil
}

func (n *enumNode[T]) decode(src byteSource, remaining int) (any, error) {
	idx, err := readWidthUint(src, n.width)
	if err != nil {
		return nil, err
	}
	if int(idx) >= len(n.values) {
		return nil, &ReadError{Code: ErrUnexpectedTag, IntArg: int64(idx)}
	}
	return n.values[idx], nil
}

func writeWidthUint(w *Writer, width Width, v uint32) {
	switch width {
	case WidthUint8:
		w.putUint8(uint8(v))
	case WidthUint16:
		w.putUint16(uint16(v))
	case WidthUint30:
		w.putInt32(int32(v))
	}
}

func readWidthUint(src byteSource, width Width) (uint32, error) {
	b, err := src.take(width.Bytes())
	if err != nil {
		return 0, err
	}
	switch width {
	case WidthUint8:
		return uint32(b[0]), nil
	case WidthUint16:
		return uint32(cursorUint16(b)), nil
	case WidthUint30:
		n := int32(cursorUint32(b))
		if n < 0 {
			return 0, &ReadError{Code: ErrInvalidSizeRead, IntArg: int64(n)}
		}
		return uint32(n), nil
	default:
		return 0, &ReadError{Code: ErrInvalidSizeRead}
	}
}
