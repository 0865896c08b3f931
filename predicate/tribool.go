// Package predicate provides three-valued logic and the allocation
// predicates used with package alloc.
//
// A predicate looks at an index prefix and answers True, False, or Maybe
// when the prefix is too short to decide. Bind turns it into the boolean
// form alloc expects, keeping Maybe prefixes so that deeper levels decide.
package predicate

// Tribool is a Kleene three-valued boolean.
type Tribool uint8

const (
	// False is definitely false.
	False Tribool = iota
	// True is definitely true.
	True
	// Maybe is not decidable yet.
	Maybe
)

// Definite lifts a bool.
func Definite(b bool) Tribool {
	if b {
		return True
	}
	return False
}

// And is Kleene conjunction: False wins, then Maybe.
func (a Tribool) And(b Tribool) Tribool {
	switch {
	case a == False || b == False:
		return False
	case a == Maybe || b == Maybe:
		return Maybe
	default:
		return True
	}
}

// Or is Kleene disjunction: True wins, then Maybe.
func (a Tribool) Or(b Tribool) Tribool {
	switch {
	case a == True || b == True:
		return True
	case a == Maybe || b == Maybe:
		return Maybe
	default:
		return False
	}
}

// Not swaps True and False and keeps Maybe.
func (a Tribool) Not() Tribool {
	switch a {
	case True:
		return False
	case False:
		return True
	default:
		return Maybe
	}
}

// String implements fmt.Stringer.
func (a Tribool) String() string {
	switch a {
	case False:
		return "F"
	case True:
		return "T"
	default:
		return "M"
	}
}
