package codec

// Case describes one tagged alternative of a Union: its tag value, its
// payload descriptor, how to recognize a host value S as belonging to
// this case and extract its payload (project), and how to rebuild an S
// from a decoded payload (inject).
type Case[S any] struct {
	tag     int
	desc    node
	kind    Kind
	project func(S) (any, bool)
	inject  func(any) S
}

// NewCase builds a tagged union alternative carrying an F-typed payload.
func NewCase[S, F any](tag int, d Desc[F], project func(S) (F, bool), inject func(F) S) Case[S] {
	return Case[S]{
		tag:  tag,
		desc: unwrap(d),
		kind: d.Kind(),
		project: func(s S) (any, bool) {
			f, ok := project(s)
			return f, ok
		},
		inject: func(v any) S { return inject(v.(F)) },
	}
}

// TextOnlyCase describes a union alternative with no binary payload of its
// own (Fixed(0)): it is distinguished purely by its tag. This covers
// enum-like union members whose only job in the binary format is to carry
// a distinct tag value.
func TextOnlyCase[S any](tag int, project func(S) bool, inject func() S) Case[S] {
	return Case[S]{
		tag:  tag,
		desc: unwrap(Null()),
		kind: Fixed(0),
		project: func(s S) (any, bool) {
			return Unit{}, project(s)
		},
		inject: func(any) S { return inject() },
	}
}

type unionNode[S any] struct {
	tagBytes int
	tagWidth Width
	cases    []Case[S]
	byTag    map[int]Case[S]
	ownKind  Kind
}

// Union describes a sum type: one of several tagged alternatives, each
// identified by a tagBytes-wide unsigned tag prefix (1, 2, or 4 bytes,
// addressing up to 256/65536/2^31 cases respectively).
func Union[S any](tagBytes int, cases ...Case[S]) (Desc[S], error) {
	if len(cases) == 0 {
		return Desc[S]{}, &ConstructError{Code: "EmptyUnion", Message: "union must have at least one case"}
	}
	var width Width
	var maxTag int
	switch tagBytes {
	case 1:
		width, maxTag = WidthUint8, 0xFF
	case 2:
		width, maxTag = WidthUint16, 0xFFFF
	case 4:
		width, maxTag = WidthUint30, 1<<31-1
	default:
		return Desc[S]{}, &ConstructError{Code: "InvalidUnionTagWidth", Message: "tag width must be 1, 2, or 4 bytes"}
	}
	byTag := make(map[int]Case[S], len(cases))
	kinds := make([]Kind, len(cases))
	for i, c := range cases {
		if c.tag < 0 || c.tag > maxTag {
			return Desc[S]{}, &ConstructError{Code: "InvalidUnionTag", Message: "case tag does not fit the union's tag width"}
		}
		if _, dup := byTag[c.tag]; dup {
			return Desc[S]{}, &ConstructError{Code: "DuplicateUnionTag", Message: "two cases share the same tag"}
		}
		byTag[c.tag] = c
		kinds[i] = c.kind
	}
	k, err := combineUnion(tagBytes, kinds)
	if err != nil {
		return Desc[S]{}, err
	}
	return wrap[S](&unionNode[S]{
		tagBytes: tagBytes,
		tagWidth: width,
		cases:    cases,
		byTag:    byTag,
		ownKind:  k,
	}), nil
}

func (n *unionNode[S]) kind() Kind { return n.ownKind }

func (n *unionNode[S]) match(v any) (Case[S], any, error) {
	s := v.(S)
	for _, c := range n.cases {
		if payload, ok := c.project(s); ok {
			return c, payload, nil
		}
	}
	return Case[S]{}, nil, &WriteError{Code: ErrNoCaseMatchedWrite}
}

func (n *unionNode[S]) calcLength(v any) (int, error) {
	c, payload, err := n.match(v)
	if err != nil {
		return 0, err
	}
	l, err := c.desc.calcLength(payload)
	if err != nil {
		return 0, err
	}
	return n.tagBytes + l, nil
}

func (n *unionNode[S]) encode(w *Writer, v any) error {
	c, payload, err := n.match(v)
	if err != nil {
		return err
	}
	writeWidthUint(w, n.tagWidth, uint32(c.tag))
	return c.desc.encode(w, payload)
}

func (n *unionNode[S]) decode(src byteSource, remaining int) (any, error) {
	tag, err := readWidthUint(src, n.tagWidth)
	if err != nil {
		return nil, err
	}
	c, ok := n.byTag[int(tag)]
	if !ok {
		return nil, &ReadError{Code: ErrUnexpectedTag, IntArg: int64(tag)}
	}
	left := remaining - n.tagBytes
	payload, err := c.desc.decode(src, left)
	if err != nil {
		return nil, err
	}
	return c.inject(payload), nil
}
