package codec

// TupField is a Field's positional counterpart: one slot of a Tup,
// identified by index rather than name.
type TupField[S any] struct {
	desc node
	kind Kind
	get  func(S) any
}

// TupElem describes one slot of a tuple.
func TupElem[S, F any](d Desc[F], get func(S) F) TupField[S] {
	return TupField[S]{
		desc: unwrap(d),
		kind: d.Kind(),
		get:  func(s S) any { return get(s) },
	}
}

// tupNode backs Tup: like objNode, a left-associated fold of its slots'
// kinds, generalized to one variadic builder instead of tup2..tup10.
type tupNode[S any] struct {
	fields  []TupField[S]
	ownKind Kind
	build   func([]any) S
}

// Tup describes a fixed-arity positional record, built from the given
// slot descriptions in order; build reassembles S from the decoded slot
// values.
func Tup[S any](build func([]any) S, fields ...TupField[S]) (Desc[S], error) {
	if len(fields) == 0 {
		return Desc[S]{}, &ConstructError{Code: "EmptyTup", Message: "Tup needs at least one field"}
	}
	k := fields[0].kind
	for _, f := range fields[1:] {
		next, err := combinePair(k, f.kind)
		if err != nil {
			return Desc[S]{}, err
		}
		k = next
	}
	return wrap[S](&tupNode[S]{fields: fields, ownKind: k, build: build}), nil
}

func (n *tupNode[S]) kind() Kind { return n.ownKind }

func (n *tupNode[S]) calcLength(v any) (int, error) {
	s := v.(S)
	total := 0
	for _, f := range n.fields {
		l, err := f.desc.calcLength(f.get(s))
		if err != nil {
			return 0, err
		}
		total += l
	}
	return total, nil
}

func (n *tupNode[S]) encode(w *Writer, v any) error {
	s := v.(S)
	for _, f := range n.fields {
		if err := f.desc.encode(w, f.get(s)); err != nil {
			return err
		}
	}
	return nil
}

func (n *tupNode[S]) decode(src byteSource, remaining int) (any, error) {
	values := make([]any, len(n.fields))
	left := remaining
	for i, f := range n.fields {
		budget := left
		if f.kind.Tag == KindVariable {
			// As in objNode.decode: the Fixed-kind slots after a Variable
			// one are set aside from its budget.
			for _, g := range n.fields[i+1:] {
				size, _ := g.kind.IsFixed()
				budget -= size
			}
			if budget < 0 {
				return nil, &ReadError{Code: ErrNotEnoughData}
			}
		}
		before := src.pos()
		v, err := f.desc.decode(src, budget)
		if err != nil {
			return nil, err
		}
		left -= src.pos() - before
		values[i] = v
	}
	return n.build(values), nil
}

// tup2/tup3 are thin convenience wrappers over Tup for the common small
// positional-record case.
func tup2[S, F1, F2 any](build func(F1, F2) S, d1 Desc[F1], get1 func(S) F1, d2 Desc[F2], get2 func(S) F2) (Desc[S], error) {
	return Tup(func(vs []any) S {
		return build(vs[0].(F1), vs[1].(F2))
	}, TupElem(d1, get1), TupElem(d2, get2))
}

func tup3[S, F1, F2, F3 any](
	build func(F1, F2, F3) S,
	d1 Desc[F1], get1 func(S) F1,
	d2 Desc[F2], get2 func(S) F2,
	d3 Desc[F3], get3 func(S) F3,
) (Desc[S], error) {
	return Tup(func(vs []any) S {
		return build(vs[0].(F1), vs[1].(F2), vs[2].(F3))
	}, TupElem(d1, get1), TupElem(d2, get2), TupElem(d3, get3))
}
