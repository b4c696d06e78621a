package scan

import (
	"github.com/halvorsen/colscan/internal/storage/attributevector"
	"github.com/halvorsen/colscan/internal/storage/column"
)

// translateDictionaryPredicate turns a predicate over decoded values into
// an equivalent predicate over the dictionary's value-ids, so the scan can
// run directly against the attribute vector without decoding a single row.
// lb is col.LowerBound(searchValue).
func translateDictionaryPredicate[T column.Elem](col *column.DictionaryColumn[T], predicate Predicate, searchValue T) (attributevector.ValueID, Predicate) {
	if predicate == MatchAll || predicate == MatchNone {
		return attributevector.InvalidValueID, predicate
	}

	lb := col.LowerBound(searchValue)

	if lb == attributevector.InvalidValueID {
		// No dictionary entry is >= searchValue: every entry is smaller.
		switch predicate {
		case Equals, GreaterThan, GreaterThanEquals:
			return attributevector.InvalidValueID, MatchNone
		default: // NotEquals, LessThan, LessThanEquals
			return attributevector.InvalidValueID, MatchAll
		}
	}

	valueAtLB, err := col.ValueByValueID(lb)
	if err != nil {
		// lb came from LowerBound over this same dictionary, so it is
		// always a valid index here; this branch cannot be reached.
		return attributevector.InvalidValueID, MatchNone
	}

	if valueAtLB == searchValue {
		return lb, predicate
	}

	// searchValue is absent; dict[lb] is the first entry greater than it.
	switch predicate {
	case Equals:
		return attributevector.InvalidValueID, MatchNone
	case NotEquals:
		return attributevector.InvalidValueID, MatchAll
	case LessThan, LessThanEquals:
		return lb, LessThan
	case GreaterThan, GreaterThanEquals:
		return lb, GreaterThanEquals
	default:
		return attributevector.InvalidValueID, MatchNone
	}
}
