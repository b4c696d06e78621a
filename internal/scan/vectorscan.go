package scan

import (
	"cmp"

	"github.com/halvorsen/colscan/internal/storage/rowid"
)

// Getter maps a backing-vector element to the value that gets compared
// against the search value. It may fail — a reference getter re-resolving
// through another table can hit a fatal error.
type Getter[V any, C any] func(V) (C, error)

// identity is the Getter used for Value columns and for a dictionary
// column's raw attribute vector: the element being scanned already is the
// comparison value.
func identity[T any](v T) (T, error) { return v, nil }

// ScanOffsets is the "offset form" of the vector-scan kernel: it iterates
// positions 0..len(values), applies getter, compares, and on a match emits
// RowID{chunkID, offset}. Used for Value columns and for a dictionary
// column's attribute vector.
func ScanOffsets[V any, C cmp.Ordered](values []V, getter Getter[V, C], predicate Predicate, compareValue C, chunkID rowid.ChunkID) (rowid.PositionList, error) {
	if predicate == MatchNone {
		return nil, nil
	}

	var out rowid.PositionList
	for offset, v := range values {
		if predicate == MatchAll {
			out = append(out, rowid.RowID{ChunkID: chunkID, ChunkOffset: rowid.ChunkOffset(offset)})
			continue
		}
		value, err := getter(v)
		if err != nil {
			return nil, err
		}
		match, err := evaluate(predicate, value, compareValue)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, rowid.RowID{ChunkID: chunkID, ChunkOffset: rowid.ChunkOffset(offset)})
		}
	}
	return out, nil
}

// ScanRowIDs is the "row-id form" of the vector-scan kernel: it iterates a
// position list directly, applies getter, compares, and on a match emits
// that same row-id — it takes no chunk id, since each row-id already names
// its own chunk. Used for Reference columns.
func ScanRowIDs[C cmp.Ordered](values rowid.PositionList, getter Getter[rowid.RowID, C], predicate Predicate, compareValue C) (rowid.PositionList, error) {
	if predicate == MatchNone {
		return nil, nil
	}

	var out rowid.PositionList
	for _, rowID := range values {
		if predicate == MatchAll {
			out = append(out, rowID)
			continue
		}
		value, err := getter(rowID)
		if err != nil {
			return nil, err
		}
		match, err := evaluate(predicate, value, compareValue)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, rowID)
		}
	}
	return out, nil
}
