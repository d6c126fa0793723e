package codec

import (
	"fmt"
	"sync"
)

// muThunk is Mu's knot-tying device: f receives a descriptor over this
// thunk to use for the type's own recursive occurrences, before the real
// descriptor it returns even exists. Before resolved is set, only kind()
// is safe to call (construction-time kind composition); encode/decode are
// only ever invoked later, by which point resolved has been filled in.
type muThunk struct {
	kindGuess Kind
	resolved  node
}

func (t *muThunk) kind() Kind { return t.kindGuess }
func (t *muThunk) calcLength(v any) (int, error) { return t.resolved.calcLength(v) }
func (t *muThunk) encode(w *Writer, v any) error { return t.resolved.encode(w, v) }
func (t *muThunk) decode(src byteSource, remaining int) (any, error) {
	return t.resolved.decode(src, remaining)
}

// Mu builds a self-referential (recursive) descriptor: f is handed a
// descriptor standing for the type being defined, for use in its own
// recursive positions, and returns the complete descriptor. A genuinely
// recursive shape can never be Fixed-kind, so Mu first assumes Dynamic;
// if the kind f's result actually settles to doesn't match the guess, it
// retries once more assuming Variable. Anything else is a construction
// error — the recursive occurrence's kind doesn't stabilize.
func Mu[T any](name string, f func(Desc[T]) (Desc[T], error)) (Desc[T], error) {
	for _, guess := range []Kind{Dynamic, Variable} {
		thunk := &muThunk{kindGuess: guess}
		self := wrap[T](thunk)
		real, err := f(self)
		if err != nil {
			return Desc[T]{}, err
		}
		if real.Kind().Tag == guess.Tag {
			thunk.resolved = unwrap(real)
			return self, nil
		}
	}
	return Desc[T]{}, &ConstructError{
		Code:    "MuKindDidNotStabilize",
		Message: fmt.Sprintf("recursive descriptor %q did not settle to a consistent Dynamic or Variable kind", name),
	}
}

// delayedNode lazily builds and memoizes its descriptor on first use,
// for forward-referencing a descriptor defined later in the same package
// (e.g. two Mu types referring to each other) without Mu's fixed-point
// machinery.
type delayedNode[T any] struct {
	once  sync.Once
	build func() Desc[T]
	inner node
}

func (n *delayedNode[T]) ensure() node {
	n.once.Do(func() { n.inner = unwrap(n.build()) })
	return n.inner
}

func (n *delayedNode[T]) kind() Kind                   { return n.ensure().kind() }
func (n *delayedNode[T]) calcLength(v any) (int, error) { return n.ensure().calcLength(v) }
func (n *delayedNode[T]) encode(w *Writer, v any) error { return n.ensure().encode(w, v) }
func (n *delayedNode[T]) decode(src byteSource, remaining int) (any, error) {
	return n.ensure().decode(src, remaining)
}

// Delayed wraps a descriptor built by f, deferring and memoizing the call
// until the descriptor is first used.
func Delayed[T any](f func() Desc[T]) Desc[T] {
	return wrap[T](&delayedNode[T]{build: f})
}

// convNode adapts an inner Desc[F] to a Desc[T] via a pair of (possibly
// fallible) conversions, without changing the wire format at all.
type convNode[T, F any] struct {
	inner     node
	innerKind Kind
	project   func(T) (F, error)
	inject    func(F) (T, error)
}

// Conv builds a T-typed descriptor out of an F-typed one: project maps a
// T down to the F actually written to the wire, inject rebuilds a T from
// the F read back. Useful for e.g. a descriptor over a domain type that
// wraps a primitive (a newtype'd ID over a uint64 descriptor).
func Conv[T, F any](inner Desc[F], project func(T) (F, error), inject func(F) (T, error)) Desc[T] {
	return wrap[T](&convNode[T, F]{inner: unwrap(inner), innerKind: inner.Kind(), project: project, inject: inject})
}

func (n *convNode[T, F]) kind() Kind { return n.innerKind }

func (n *convNode[T, F]) calcLength(v any) (int, error) {
	f, err := n.project(v.(T))
	if err != nil {
		return 0, err
	}
	return n.inner.calcLength(f)
}

func (n *convNode[T, F]) encode(w *Writer, v any) error {
	f, err := n.project(v.(T))
	if err != nil {
		return err
	}
	return n.inner.encode(w, f)
}

func (n *convNode[T, F]) decode(src byteSource, remaining int) (any, error) {
	v, err := n.inner.decode(src, remaining)
	if err != nil {
		return nil, err
	}
	t, err := n.inject(v.(F))
	if err != nil {
		return nil, err
	}
	return t, nil
}

// describeNode/defNode are transparent documentation wrappers: they carry
// metadata alongside a descriptor (for a future schema/doc generator)
// without altering any wire behavior at all.
type describeNode struct {
	inner               node
	title, description string
}

func (n *describeNode) kind() Kind                    { return n.inner.kind() }
func (n *describeNode) calcLength(v any) (int, error)  { return n.inner.calcLength(v) }
func (n *describeNode) encode(w *Writer, v any) error  { return n.inner.encode(w, v) }
func (n *describeNode) decode(src byteSource, remaining int) (any, error) {
	return n.inner.decode(src, remaining)
}

// Describe attaches a human-readable title and description to a
// descriptor. Purely informational: it is a transparent pass-through for
// Length/Write/Read.
func Describe[T any](title, description string, inner Desc[T]) Desc[T] {
	return wrap[T](&describeNode{inner: unwrap(inner), title: title, description: description})
}

// DescribeOf recovers the title/description attached by Describe, if any.
func DescribeOf[T any](d Desc[T]) (title, description string, ok bool) {
	if dn, is := unwrap(d).(*describeNode); is {
		return dn.title, dn.description, true
	}
	return "", "", false
}

type defNode struct {
	inner node
	name  string
}

func (n *defNode) kind() Kind                   { return n.inner.kind() }
func (n *defNode) calcLength(v any) (int, error) { return n.inner.calcLength(v) }
func (n *defNode) encode(w *Writer, v any) error { return n.inner.encode(w, v) }
func (n *defNode) decode(src byteSource, remaining int) (any, error) {
	return n.inner.decode(src, remaining)
}

// Def names a descriptor, e.g. for a generated schema's type registry.
// Purely informational, transparent at runtime.
func Def[T any](name string, inner Desc[T]) Desc[T] {
	return wrap[T](&defNode{inner: unwrap(inner), name: name})
}

// DefNameOf recovers the name attached by Def, if any.
func DefNameOf[T any](d Desc[T]) (string, bool) {
	if dn, ok := unwrap(d).(*defNode); ok {
		return dn.name, true
	}
	return "", false
}

// splittedNode lets a descriptor declare a text-side shape (for a future
// structured-text backend) distinct from its binary one. On every binary
// code path it is a transparent pass-through to the binary descriptor;
// isObj/isTup only matter to a text encoder deciding whether to render
// the value as a JSON object or array.
type splittedNode[T any] struct {
	inner        node
	innerKind    Kind
	isObj, isTup bool
}

// Splitted documents a descriptor whose binary and (out-of-scope) text
// representations differ in shape. text is accepted for interface
// symmetry with TextCodec but unused by every binary operation.
func Splitted[T any](binary Desc[T], text TextCodec[T], isObj, isTup bool) Desc[T] {
	return wrap[T](&splittedNode[T]{inner: unwrap(binary), innerKind: binary.Kind(), isObj: isObj, isTup: isTup})
}

func (n *splittedNode[T]) kind() Kind                   { return n.innerKind }
func (n *splittedNode[T]) calcLength(v any) (int, error) { return n.inner.calcLength(v) }
func (n *splittedNode[T]) encode(w *Writer, v any) error { return n.inner.encode(w, v) }
func (n *splittedNode[T]) decode(src byteSource, remaining int) (any, error) {
	return n.inner.decode(src, remaining)
}

// dynamicSizeNode prefixes inner's encoding with its own byte length in a
// fixed-width field, making an otherwise Variable-kind inner descriptor
// self-delimiting (Dynamic) wherever it's used.
type dynamicSizeNode struct {
	width Width
	inner node
}

// DynamicSize wraps inner with a width-byte length prefix, turning it
// Dynamic-kind regardless of inner's own kind.
func DynamicSize[T any](width Width, inner Desc[T]) Desc[T] {
	return wrap[T](&dynamicSizeNode{width: width, inner: unwrap(inner)})
}

func (n *dynamicSizeNode) kind() Kind { return Dynamic }

func (n *dynamicSizeNode) calcLength(v any) (int, error) {
	l, err := n.inner.calcLength(v)
	if err != nil {
		return 0, err
	}
	return n.width.Bytes() + l, nil
}

func (n *dynamicSizeNode) encode(w *Writer, v any) error {
	off := w.reserve(n.width.Bytes())
	start := w.off
	if err := n.inner.encode(w, v); err != nil {
		return err
	}
	size := w.off - start
	switch n.width {
	case WidthUint8:
		w.putUint8At(off, uint8(size))
	case WidthUint16:
		w.putUint16At(off, uint16(size))
	case WidthUint30:
		w.putInt32At(off, int32(size))
	}
	return nil
}

func (n *dynamicSizeNode) decode(src byteSource, remaining int) (any, error) {
	size, err := readWidthUint(src, n.width)
	if err != nil {
		return nil, err
	}
	if int(size) > remaining-n.width.Bytes() {
		return nil, &ReadError{Code: ErrNotEnoughData}
	}
	before := src.pos()
	v, err := n.inner.decode(src, int(size))
	if err != nil {
		return nil, err
	}
	if src.pos()-before != int(size) {
		return nil, &ReadError{Code: ErrInvalidSizeRead, IntArg: int64(size)}
	}
	return v, nil
}

// checkSizeNode validates inner's encoded size against limit without
// changing the wire format; it is a transparent pass-through otherwise.
type checkSizeNode struct {
	limit     int
	inner     node
	innerKind Kind
}

// CheckSize rejects any value whose inner encoding exceeds limit bytes,
// on both the write and read paths.
func CheckSize[T any](limit int, inner Desc[T]) Desc[T] {
	return wrap[T](&checkSizeNode{limit: limit, inner: unwrap(inner), innerKind: inner.Kind()})
}

func (n *checkSizeNode) kind() Kind { return n.innerKind }

func (n *checkSizeNode) calcLength(v any) (int, error) {
	l, err := n.inner.calcLength(v)
	if err != nil {
		return 0, err
	}
	if l > n.limit {
		return 0, &WriteError{Code: ErrSizeLimitExceededWrite}
	}
	return l, nil
}

func (n *checkSizeNode) encode(w *Writer, v any) error {
	if _, err := n.calcLength(v); err != nil {
		return err
	}
	return n.inner.encode(w, v)
}

func (n *checkSizeNode) decode(src byteSource, remaining int) (any, error) {
	if fixed, ok := n.innerKind.IsFixed(); ok && fixed > n.limit {
		return nil, &ReadError{Code: ErrSizeLimitExceededRead}
	}
	before := src.pos()
	v, err := n.inner.decode(src, remaining)
	if err != nil {
		return nil, err
	}
	if consumed := src.pos() - before; consumed > n.limit {
		return nil, &ReadError{Code: ErrSizeLimitExceededRead}
	}
	return v, nil
}

// paddedNode pads a Fixed-kind inner descriptor's encoding up to a fixed
// total width with trailing zero bytes.
type paddedNode struct {
	inner     node
	total     int
	innerSize int
}

// Padded widens a Fixed(k)-kind descriptor to occupy exactly total bytes,
// zero-padding on write and skipping the padding on read. k must be <=
// total.
func Padded[T any](inner Desc[T], total int) (Desc[T], error) {
	k, ok := inner.Kind().IsFixed()
	if !ok || k > total {
		return Desc[T]{}, &ConstructError{
			Code:    "InvalidPadded",
			Message: "Padded requires a Fixed-kind inner descriptor no larger than the target width",
		}
	}
	return wrap[T](&paddedNode{inner: unwrap(inner), total: total, innerSize: k}), nil
}

func (n *paddedNode) kind() Kind                    { return Fixed(n.total) }
func (n *paddedNode) calcLength(v any) (int, error) { return n.total, nil }

func (n *paddedNode) encode(w *Writer, v any) error {
	if err := n.inner.encode(w, v); err != nil {
		return err
	}
	if pad := n.total - n.innerSize; pad > 0 {
		w.putBytes(make([]byte, pad))
	}
	return nil
}

func (n *paddedNode) decode(src byteSource, remaining int) (any, error) {
	v, err := n.inner.decode(src, n.innerSize)
	if err != nil {
		return nil, err
	}
	if pad := n.total - n.innerSize; pad > 0 {
		if _, err := src.take(pad); err != nil {
			return nil, err
		}
	}
	return v, nil
}
