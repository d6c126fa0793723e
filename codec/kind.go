// Package codec implements a tagless binary encoding combinator library:
// typed descriptors that define, for a value of some host type T, a compact
// binary wire format together with the classification rules that make
// tagless binary parsing unambiguous.
package codec

import "fmt"

// KindTag distinguishes the three shape classifications a descriptor's
// binary form can have.
type KindTag uint8

const (
	// KindFixed means the serialized length is exactly N bytes for every
	// inhabitant of the descriptor's host type.
	KindFixed KindTag = iota
	// KindDynamic means length varies with the value but is
	// self-delimiting: it carries its own size or structure.
	KindDynamic
	// KindVariable means length varies with the value and is not
	// self-delimiting; the parser needs an outer context bound to stop.
	KindVariable
)

func (t KindTag) String() string {
	switch t {
	case KindFixed:
		return "fixed"
	case KindDynamic:
		return "dynamic"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Kind is the classification of a descriptor's binary shape: Fixed(n),
// Dynamic, or Variable. FixedSize is only meaningful when Tag == KindFixed.
type Kind struct {
	Tag       KindTag
	FixedSize int
}

// Fixed builds a Kind classified as exactly n bytes.
func Fixed(n int) Kind { return Kind{Tag: KindFixed, FixedSize: n} }

// Dynamic is the self-delimiting variable-length classification.
var Dynamic = Kind{Tag: KindDynamic}

// Variable is the non-self-delimiting variable-length classification.
var Variable = Kind{Tag: KindVariable}

// IsFixed reports whether k is Fixed, and if so its size.
func (k Kind) IsFixed() (int, bool) {
	if k.Tag == KindFixed {
		return k.FixedSize, true
	}
	return 0, false
}

func (k Kind) String() string {
	if k.Tag == KindFixed {
		return fmt.Sprintf("fixed(%d)", k.FixedSize)
	}
	return k.Tag.String()
}

// combinePair applies the Objs/Tups kind composition rule from the
// classifier: how the kinds of a left and a right sub-descriptor combine
// into the kind of their concatenation.
func combinePair(l, r Kind) (Kind, error) {
	ln, lFixed := l.IsFixed()
	rn, rFixed := r.IsFixed()

	switch {
	case lFixed && rFixed:
		return Fixed(ln + rn), nil
	case l.Tag == KindVariable && r.Tag == KindVariable:
		return Kind{}, &ConstructError{
			Code:    "VariablePlusVariable",
			Message: "two trailing variable-kind descriptors cannot be disambiguated; wrap one in DynamicSize",
		}
	case r.Tag == KindVariable:
		// Fixed|Dynamic + Variable = Variable: the right member simply
		// consumes whatever the left member's known/self-delimited
		// prefix leaves behind. Valid regardless of whether l is Fixed
		// or Dynamic.
		return Variable, nil
	case l.Tag == KindVariable:
		// Variable + Fixed(n) = Variable: the reader can only find where
		// the left member ends by subtracting the right member's size
		// from the total budget, which requires that size to be known
		// statically — i.e. r must be Fixed, not merely Dynamic.
		if !rFixed {
			return Kind{}, &ConstructError{
				Code:    "VariableLeftOfDynamic",
				Message: "a Variable-kind left member can only be paired with a Fixed-kind right member; its own end is otherwise undeterminable",
			}
		}
		return Variable, nil
	default:
		// Fixed|Dynamic + Fixed|Dynamic, not both fixed.
		return Dynamic, nil
	}
}

// combineUnion merges the kinds of every case of a Union plus the tag
// width into the Union's own kind, per the classifier's merge rule.
func combineUnion(tagBytes int, cases []Kind) (Kind, error) {
	if len(cases) == 0 {
		return Kind{}, &ConstructError{Code: "EmptyUnion", Message: "union must have at least one case"}
	}
	allFixedEqual := true
	firstSize, firstIsFixed := cases[0].IsFixed()
	anyVariable := false
	for _, k := range cases {
		n, fixed := k.IsFixed()
		if !fixed || n != firstSize || !firstIsFixed {
			allFixedEqual = false
		}
		if k.Tag == KindVariable {
			anyVariable = true
		}
	}
	if allFixedEqual {
		return Fixed(firstSize + tagBytes), nil
	}
	if anyVariable {
		return Variable, nil
	}
	return Dynamic, nil
}
