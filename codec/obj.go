package codec

// Field describes one named member of an Obj: its own descriptor plus how
// to pull its value out of (and place it into) the host struct S. The
// source vocabulary calls the three variants Req/Opt/Dft; here they're
// three constructors that all build the same Field[S] value, type-erased
// behind a common shape so Obj can fold them without knowing S's layout.
type Field[S any] struct {
	name     string
	desc     node
	kind     Kind
	optional bool
	get      func(S) (any, bool)
}

// Req describes a field that is always present on the wire.
func Req[S, F any](name string, d Desc[F], get func(S) F) Field[S] {
	return Field[S]{
		name: name,
		desc: unwrap(d),
		kind: d.Kind(),
		get:  func(s S) (any, bool) { return get(s), true },
	}
}

// Opt describes a field that may be absent. Its classified kind is derived
// from the inner descriptor, not supplied by the caller: Variable if the
// inner descriptor is Variable (absence/presence is then inferred from
// whether any bytes remain), Dynamic otherwise (a 1-byte presence flag
// precedes the payload).
func Opt[S, F any](name string, d Desc[F], get func(S) (F, bool)) Field[S] {
	k := Dynamic
	if d.Kind().Tag == KindVariable {
		k = Variable
	}
	return Field[S]{
		name:     name,
		desc:     unwrap(d),
		kind:     k,
		optional: true,
		get: func(s S) (any, bool) {
			f, ok := get(s)
			return f, ok
		},
	}
}

// Dft describes a field that is always present on the wire, exactly like
// Req. The def argument is not stored in the Field and plays no part in
// any binary operation.
func Dft[S, F any](name string, d Desc[F], get func(S) F, def F) Field[S] {
	return Field[S]{
		name: name,
		desc: unwrap(d),
		kind: d.Kind(),
		get:  func(s S) (any, bool) { return get(s), true },
	}
}

// objNode backs Obj: an object descriptor is a left-associated fold of its
// fields' kinds (the source's merge_objs/Objs chain), generalized here to
// one variadic builder instead of per-arity obj2..obj10 functions — Go's
// type system already guarantees every argument is a well-formed Field[S],
// so there is no separate "is this object-shaped" predicate to enforce.
type objNode[S any] struct {
	fields  []Field[S]
	ownKind Kind
	build   func(map[string]any) S
}

// Obj describes a record type with named fields, built from one or more
// Req/Opt/Dft field descriptions. build reassembles a value of S from the
// decoded field values, keyed by field name.
func Obj[S any](build func(map[string]any) S, fields ...Field[S]) (Desc[S], error) {
	if len(fields) == 0 {
		return Desc[S]{}, &ConstructError{Code: "EmptyObj", Message: "Obj needs at least one field"}
	}
	k := fields[0].kind
	for _, f := range fields[1:] {
		next, err := combinePair(k, f.kind)
		if err != nil {
			return Desc[S]{}, err
		}
		k = next
	}
	return wrap[S](&objNode[S]{fields: fields, ownKind: k, build: build}), nil
}

func (n *objNode[S]) kind() Kind { return n.ownKind }

func (n *objNode[S]) calcLength(v any) (int, error) {
	s := v.(S)
	total := 0
	for _, f := range n.fields {
		val, present := f.get(s)
		l, err := fieldLength(f, val, present)
		if err != nil {
			return 0, err
		}
		total += l
	}
	return total, nil
}

func fieldLength[S any](f Field[S], val any, present bool) (int, error) {
	if !f.optional {
		return f.desc.calcLength(val)
	}
	if f.kind.Tag == KindVariable {
		if !present {
			return 0, nil
		}
		return f.desc.calcLength(val)
	}
	if !present {
		return 1, nil
	}
	l, err := f.desc.calcLength(val)
	if err != nil {
		return 0, err
	}
	return 1 + l, nil
}

func (n *objNode[S]) encode(w *Writer, v any) error {
	s := v.(S)
	for _, f := range n.fields {
		val, present := f.get(s)
		if err := encodeField(w, f, val, present); err != nil {
			return err
		}
	}
	return nil
}

func encodeField[S any](w *Writer, f Field[S], val any, present bool) error {
	if !f.optional {
		return f.desc.encode(w, val)
	}
	if f.kind.Tag == KindVariable {
		if present {
			return f.desc.encode(w, val)
		}
		return nil
	}
	// Dynamic optional: 1-byte presence flag.
	if present {
		w.putUint8(1)
		return f.desc.encode(w, val)
	}
	w.putUint8(0)
	return nil
}

func (n *objNode[S]) decode(src byteSource, remaining int) (any, error) {
	values := make(map[string]any, len(n.fields))
	left := remaining
	for i, f := range n.fields {
		isLast := i == len(n.fields)-1
		budget := left
		if f.kind.Tag == KindVariable {
			// combinePair only lets Fixed-kind fields follow a Variable
			// one, so their combined size is set aside from its budget.
			for _, g := range n.fields[i+1:] {
				size, _ := g.kind.IsFixed()
				budget -= size
			}
			if budget < 0 {
				return nil, &ReadError{Code: ErrNotEnoughData}
			}
		}
		before := src.pos()
		val, present, err := decodeField(src, f, budget, isLast)
		if err != nil {
			return nil, err
		}
		consumed := src.pos() - before
		left -= consumed
		if present {
			values[f.name] = val
		}
	}
	return n.build(values), nil
}

func decodeField[S any](src byteSource, f Field[S], left int, isLast bool) (any, bool, error) {
	if !f.optional {
		v, err := f.desc.decode(src, left)
		return v, true, err
	}
	if f.kind.Tag == KindVariable {
		if left == 0 {
			return nil, false, nil
		}
		v, err := f.desc.decode(src, left)
		return v, true, err
	}
	flag, err := src.take(1)
	if err != nil {
		return nil, false, err
	}
	if flag[0] == 0 {
		return nil, false, nil
	}
	v, err := f.desc.decode(src, left-1)
	return v, true, err
}

// obj2/obj3 are thin two/three-field convenience wrappers over Obj, for
// the common small-record case and for exercising the source vocabulary's
// literal obj2/obj3 scenarios directly.
func obj2[S, F1, F2 any](
	build func(F1, F2) S,
	f1 Field[S], f2 Field[S],
) (Desc[S], error) {
	return Obj(func(m map[string]any) S {
		var a F1
		var b F2
		if v, ok := m[f1.name]; ok {
			a = v.(F1)
		}
		if v, ok := m[f2.name]; ok {
			b = v.(F2)
		}
		return build(a, b)
	}, f1, f2)
}

func obj3[S, F1, F2, F3 any](
	build func(F1, F2, F3) S,
	f1 Field[S], f2 Field[S], f3 Field[S],
) (Desc[S], error) {
	return Obj(func(m map[string]any) S {
		var a F1
		var b F2
		var c F3
		if v, ok := m[f1.name]; ok {
			a = v.(F1)
		}
		if v, ok := m[f2.name]; ok {
			b = v.(F2)
		}
		if v, ok := m[f3.name]; ok {
			c = v.(F3)
		}
		return build(a, b, c)
	}, f1, f2, f3)
}
