package scan

import (
	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/attributevector"
	"github.com/halvorsen/colscan/internal/storage/column"
	"github.com/halvorsen/colscan/internal/storage/rowid"
)

// scanColumn dispatches on the physical kind of col — Value, Dictionary, or
// Reference — and runs the appropriate vector-scan kernel form.
func scanColumn[T column.Elem](col column.Column, chunkID rowid.ChunkID, predicate Predicate, searchValue T) (rowid.PositionList, error) {
	switch c := col.(type) {
	case *column.ValueColumn[T]:
		return ScanOffsets(c.Values(), identity[T], predicate, searchValue, chunkID)

	case *column.DictionaryColumn[T]:
		return scanDictionaryColumn(c, chunkID, predicate, searchValue)

	case *column.ReferenceColumn:
		getter := newReferenceGetter[T](c.ReferencedTable(), c.ReferencedColumnID())
		return ScanRowIDs(c.PositionList(), getter.get, predicate, searchValue)

	default:
		return nil, &colerrors.InvariantError{Reason: "unknown column variant"}
	}
}

// scanDictionaryColumn translates the predicate into an equivalent one
// over value-ids, then dispatches on the attribute vector's width so the
// hot loop runs against the raw fixed-width backing slice with no
// per-element lookup.
func scanDictionaryColumn[T column.Elem](col *column.DictionaryColumn[T], chunkID rowid.ChunkID, predicate Predicate, searchValue T) (rowid.PositionList, error) {
	compareID, effective := translateDictionaryPredicate(col, predicate, searchValue)
	av := col.AttributeVector()

	switch av.Width() {
	case attributevector.Width1:
		return ScanOffsets(av.Bytes8(), identity[uint8], effective, uint8(compareID), chunkID)
	case attributevector.Width2:
		return ScanOffsets(av.Bytes16(), identity[uint16], effective, uint16(compareID), chunkID)
	case attributevector.Width4:
		return ScanOffsets(av.Bytes32(), identity[uint32], effective, uint32(compareID), chunkID)
	default:
		return nil, &colerrors.InvariantError{Reason: "unknown attribute vector width"}
	}
}
