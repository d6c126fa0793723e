package codec

// node is the internal, type-erased descriptor shape. Every combinator
// operates in terms of node and `any`-boxed host values; Desc[T] is a thin
// generic façade over it that recovers static typing at the API boundary.
// This is the existential-type workaround called for in the design notes:
// rather than higher-rank polymorphism, each node closes over boxed
// project/inject functions where it needs to bridge to a concrete host
// type (see Union's Case, Obj's Field).
type node interface {
	kind() Kind
	calcLength(v any) (int, error)
	encode(w *Writer, v any) error
	// decode reads a value of this node's host type. remaining is the
	// byte budget of the enclosing context; decode must not read past it
	// and, for Variable-kind nodes, must consume exactly remaining bytes.
	decode(src byteSource, remaining int) (any, error)
}

// Desc[T] describes the wire shape and host-type mapping of values of type
// T. Descriptors are immutable after construction and freely shareable
// across goroutines.
type Desc[T any] struct {
	n node
}

// Kind returns the descriptor's shape classification.
func (d Desc[T]) Kind() Kind { return d.n.kind() }

// FixedLength returns the descriptor's fixed byte length, if it has one.
func (d Desc[T]) FixedLength() (int, bool) { return d.n.kind().IsFixed() }

// Classify is the free-function form of Desc.Kind, matching the
// programmatic surface's classify(e) naming.
func Classify[T any](d Desc[T]) Kind { return d.Kind() }

// FixedLength is the free-function form of Desc.FixedLength.
func FixedLength[T any](d Desc[T]) (int, bool) { return d.FixedLength() }

// wrap presents a node built directly against `any` values (the common
// shape for primitive leaf constructors) as a Desc[T]; it performs no type
// check itself. Every leaf constructor (Bool, Int32, Float, ...) uses this.
func wrap[T any](n node) Desc[T] { return Desc[T]{n: n} }

// unwrap recovers the erased node from a Desc[T], for use by combinators
// that build composite nodes out of other descriptors.
func unwrap[T any](d Desc[T]) node { return d.n }
