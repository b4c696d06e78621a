// Package table implements the ordered sequence of chunks sharing a column
// schema, together with its mutation operations: lazy column
// materialisation, row append with chunk rolling, and dictionary
// compression of a whole chunk.
package table

import (
	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/chunk"
	"github.com/halvorsen/colscan/internal/storage/column"
	"github.com/halvorsen/colscan/internal/storage/rowid"
	"github.com/halvorsen/colscan/internal/types"
)

// Table is an ordered list of chunks sharing one column schema (name +
// element kind per position). A table always has at least one chunk,
// possibly empty.
type Table struct {
	chunkSize uint32
	chunks    []*chunk.Chunk

	columnNames []string
	columnKinds []types.ElementKind

	// chunkMatchesDefinitions is false whenever a schema column has been
	// registered but not yet materialised as a physical column in the
	// last chunk.
	chunkMatchesDefinitions bool
}

// New returns a table with the given chunk size (0 means unbounded) and a
// single empty chunk.
func New(chunkSize uint32) *Table {
	t := &Table{chunkSize: chunkSize, chunkMatchesDefinitions: true}
	t.chunks = append(t.chunks, chunk.New())
	return t
}

// ChunkSize reports the configured chunk size (0 = unbounded).
func (t *Table) ChunkSize() uint32 { return t.chunkSize }

// ColumnCount reports the schema's column count.
func (t *Table) ColumnCount() int { return len(t.columnNames) }

// ColumnNames returns the schema's column names, in schema order.
func (t *Table) ColumnNames() []string { return t.columnNames }

// ColumnKinds returns the schema's element kinds, in schema order.
func (t *Table) ColumnKinds() []types.ElementKind { return t.columnKinds }

// ColumnKind returns the element kind at the given schema position.
func (t *Table) ColumnKind(id rowid.ColumnID) (types.ElementKind, error) {
	if int(id) < 0 || int(id) >= len(t.columnKinds) {
		return "", colerrors.NewRange("column", id, len(t.columnKinds))
	}
	return t.columnKinds[id], nil
}

// ColumnIDByName resolves a schema column name to its id.
func (t *Table) ColumnIDByName(name string) (rowid.ColumnID, error) {
	for i, n := range t.columnNames {
		if n == name {
			return rowid.ColumnID(i), nil
		}
	}
	return 0, &colerrors.SchemaError{Table: "", Column: name, Reason: "column not found"}
}

// ChunkCount reports the number of chunks.
func (t *Table) ChunkCount() int { return len(t.chunks) }

// RowCount reports the total number of rows across all chunks.
func (t *Table) RowCount() int {
	total := 0
	for _, c := range t.chunks {
		total += c.Length()
	}
	return total
}

// Chunk returns the chunk at the given id.
func (t *Table) Chunk(id rowid.ChunkID) (*chunk.Chunk, error) {
	if int(id) < 0 || int(id) >= len(t.chunks) {
		return nil, colerrors.NewRange("chunk", id, len(t.chunks))
	}
	return t.chunks[id], nil
}

// Chunk0 returns the first chunk. A table always has at least one, so this
// never fails; it exists to give the scan's result-table builder a direct
// handle when assembling reference columns outside the normal
// definition/append flow.
func (t *Table) Chunk0() *chunk.Chunk { return t.chunks[0] }

// ColumnAt implements column.ReferencedTable: it resolves the physical
// column backing (chunk, columnID).
func (t *Table) ColumnAt(chunkID rowid.ChunkID, columnID rowid.ColumnID) (column.Column, error) {
	c, err := t.Chunk(chunkID)
	if err != nil {
		return nil, err
	}
	return c.ColumnAt(columnID)
}

// AddColumnDefinition registers a schema entry without materialising a
// physical column yet. Permitted only when the table has exactly one chunk
// and that chunk is empty.
func (t *Table) AddColumnDefinition(name string, kind types.ElementKind) error {
	if len(t.chunks) != 1 || t.chunks[0].Length() != 0 {
		return &colerrors.UsageError{Reason: "add_column_definition requires a single, empty chunk"}
	}
	t.columnNames = append(t.columnNames, name)
	t.columnKinds = append(t.columnKinds, kind)
	t.chunkMatchesDefinitions = false
	return nil
}

// AddColumn registers a schema entry and immediately creates the empty
// physical Value column for it.
func (t *Table) AddColumn(name string, kind types.ElementKind) error {
	if err := t.AddColumnDefinition(name, kind); err != nil {
		return err
	}
	return t.syncPendingColumns()
}

// syncPendingColumns materialises any schema columns not yet backed by a
// physical column in the last chunk.
func (t *Table) syncPendingColumns() error {
	if t.chunkMatchesDefinitions {
		return nil
	}
	last := t.chunks[len(t.chunks)-1]
	for i := last.ColumnCount(); i < len(t.columnKinds); i++ {
		col, err := column.NewValueColumnForKind(t.columnKinds[i])
		if err != nil {
			return err
		}
		last.AddColumn(col)
	}
	t.chunkMatchesDefinitions = true
	return nil
}

// createChunk appends a fresh chunk and immediately populates it with
// empty Value columns for the current schema.
func (t *Table) createChunk() error {
	t.chunks = append(t.chunks, chunk.New())
	t.chunkMatchesDefinitions = false
	return t.syncPendingColumns()
}

// Append synchronises any pending schema columns, rolls to a new chunk if
// the current one is full or has been compressed, and appends the row into
// the last chunk's Value columns. It fails if row arity or element kinds
// don't match the schema.
func (t *Table) Append(row []types.Value) error {
	if len(row) != len(t.columnNames) {
		return &colerrors.SchemaError{Reason: "row arity does not match table schema"}
	}
	if err := t.syncPendingColumns(); err != nil {
		return err
	}

	last := t.chunks[len(t.chunks)-1]
	needsRoll := !last.IsMutable() || (t.chunkSize != 0 && last.Length() >= int(t.chunkSize))
	if needsRoll {
		if err := t.createChunk(); err != nil {
			return err
		}
		last = t.chunks[len(t.chunks)-1]
	}

	return last.Append(row)
}

// CompressChunk replaces every Value column in the given chunk with its
// Dictionary-compressed equivalent. After this, appending to that chunk
// fails and the next Append call rolls to a new chunk.
func (t *Table) CompressChunk(id rowid.ChunkID) error {
	c, err := t.Chunk(id)
	if err != nil {
		return err
	}
	return c.Compress()
}

var _ column.ReferencedTable = (*Table)(nil)
