package column

import (
	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/rowid"
	"github.com/halvorsen/colscan/internal/types"
)

// ReferenceColumn exposes rows of a source column selected by a shared,
// immutable position list, without copying any data. Its length is the
// position list's length. Appending is forbidden — it simply has no
// Append method, so it never satisfies Appendable.
type ReferenceColumn struct {
	referencedTable    ReferencedTable
	referencedColumnID rowid.ColumnID
	positions          rowid.PositionList
	kind               types.ElementKind
}

// NewReferenceColumn builds a Reference column over positions, resolving
// element reads through referencedColumnID in referencedTable. kind is the
// element kind copied verbatim from the referenced table's schema at this
// column position.
func NewReferenceColumn(referencedTable ReferencedTable, referencedColumnID rowid.ColumnID, positions rowid.PositionList, kind types.ElementKind) *ReferenceColumn {
	return &ReferenceColumn{
		referencedTable:    referencedTable,
		referencedColumnID: referencedColumnID,
		positions:          positions,
		kind:               kind,
	}
}

func (c *ReferenceColumn) Length() int { return len(c.positions) }

func (c *ReferenceColumn) Kind() types.ElementKind { return c.kind }

func (c *ReferenceColumn) ElementAt(i int) (types.Value, error) {
	if i < 0 || i >= len(c.positions) {
		return types.Value{}, colerrors.NewRange("row", i, len(c.positions))
	}
	row := c.positions[i]
	target, err := c.referencedTable.ColumnAt(row.ChunkID, c.referencedColumnID)
	if err != nil {
		return types.Value{}, err
	}
	if _, isRef := target.(*ReferenceColumn); isRef {
		return types.Value{}, &colerrors.InvariantError{Reason: "reference column may not point at another reference column"}
	}
	return target.ElementAt(int(row.ChunkOffset))
}

// ReferencedTable returns the table this column's rows are drawn from.
func (c *ReferenceColumn) ReferencedTable() ReferencedTable { return c.referencedTable }

// ReferencedColumnID returns the column id within ReferencedTable this
// column projects.
func (c *ReferenceColumn) ReferencedColumnID() rowid.ColumnID { return c.referencedColumnID }

// PositionList returns the shared, immutable position list backing this
// column.
func (c *ReferenceColumn) PositionList() rowid.PositionList { return c.positions }

var _ Column = (*ReferenceColumn)(nil)
