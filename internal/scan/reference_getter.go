package scan

import (
	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/column"
	"github.com/halvorsen/colscan/internal/storage/rowid"
)

// referenceGetter resolves values through a referenced table, one row-id
// at a time, for scanning a Reference column. It memoizes the last chunk
// it resolved a physical column for: correctness never depends on the
// cache, but a position list that stays chunk-grouped benefits from it.
// Reference-to-reference is a fatal InvariantError.
type referenceGetter[T column.Elem] struct {
	referencedTable    column.ReferencedTable
	referencedColumnID rowid.ColumnID

	lastValid    bool
	lastChunkID  rowid.ChunkID
	lastValueCol *column.ValueColumn[T]
	lastDictCol  *column.DictionaryColumn[T]
}

func newReferenceGetter[T column.Elem](referencedTable column.ReferencedTable, referencedColumnID rowid.ColumnID) *referenceGetter[T] {
	return &referenceGetter[T]{referencedTable: referencedTable, referencedColumnID: referencedColumnID}
}

func (g *referenceGetter[T]) get(row rowid.RowID) (T, error) {
	var zero T

	if !g.lastValid || g.lastChunkID != row.ChunkID {
		col, err := g.referencedTable.ColumnAt(row.ChunkID, g.referencedColumnID)
		if err != nil {
			return zero, err
		}

		valueCol, isValue := col.(*column.ValueColumn[T])
		dictCol, isDict := col.(*column.DictionaryColumn[T])
		if !isValue && !isDict {
			if _, isRef := col.(*column.ReferenceColumn); isRef {
				return zero, &colerrors.InvariantError{Reason: "reference column may not point at another reference column"}
			}
			return zero, &colerrors.InvariantError{Reason: "unknown referenced column type"}
		}

		g.lastValueCol = valueCol
		g.lastDictCol = dictCol
		g.lastChunkID = row.ChunkID
		g.lastValid = true
	}

	if g.lastValueCol != nil {
		values := g.lastValueCol.Values()
		if int(row.ChunkOffset) < 0 || int(row.ChunkOffset) >= len(values) {
			return zero, colerrors.NewRange("row", row.ChunkOffset, len(values))
		}
		return values[row.ChunkOffset], nil
	}

	// Dictionary column: acknowledged-slow path, one dictionary lookup
	// per row instead of a direct read.
	id, err := g.lastDictCol.AttributeVector().Get(int(row.ChunkOffset))
	if err != nil {
		return zero, err
	}
	return g.lastDictCol.ValueByValueID(id)
}
