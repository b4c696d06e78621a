package scan

import (
	"cmp"

	"github.com/halvorsen/colscan/internal/colerrors"
)

// Predicate is one of the six comparison operators, plus the two internal
// pseudo-predicates the dictionary-scan planner produces.
type Predicate int

const (
	Equals Predicate = iota
	NotEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals

	// MatchAll and MatchNone never come from a caller; they only appear
	// as the effective predicate a dictionary-column translation
	// produces.
	MatchAll
	MatchNone
)

func (p Predicate) String() string {
	switch p {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case LessThan:
		return "<"
	case LessThanEquals:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanEquals:
		return ">="
	case MatchAll:
		return "MATCH_ALL"
	case MatchNone:
		return "MATCH_NONE"
	default:
		return "?"
	}
}

// evaluate applies p to (lhs, rhs). It is total for any orderable element
// kind; string comparison is lexicographic by code point, which is what
// Go's built-in string ordering already gives us. MatchAll/MatchNone are
// handled by the scan kernel before evaluate is ever called on them.
func evaluate[T cmp.Ordered](p Predicate, lhs, rhs T) (bool, error) {
	switch p {
	case Equals:
		return lhs == rhs, nil
	case NotEquals:
		return lhs != rhs, nil
	case LessThan:
		return lhs < rhs, nil
	case LessThanEquals:
		return lhs <= rhs, nil
	case GreaterThan:
		return lhs > rhs, nil
	case GreaterThanEquals:
		return lhs >= rhs, nil
	default:
		return false, &colerrors.InvariantError{Reason: "unknown predicate"}
	}
}
