// Package chunk implements the horizontal table partition: an ordered,
// same-length bundle of columns.
package chunk

import (
	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/column"
	"github.com/halvorsen/colscan/internal/storage/rowid"
	"github.com/halvorsen/colscan/internal/types"
)

// Chunk is an ordered sequence of columns, all reporting the same length.
type Chunk struct {
	columns []column.Column
}

// New returns an empty chunk with no columns yet.
func New() *Chunk {
	return &Chunk{}
}

// AddColumn appends a column at the next schema position. Used when lazily
// materialising pending Value columns and when the scan's result-table
// builder attaches its Reference columns.
func (c *Chunk) AddColumn(col column.Column) {
	c.columns = append(c.columns, col)
}

// ReplaceColumn swaps the column at position i. It fails if i is out of
// range. Compress does not go through it; it swaps its columns in place.
func (c *Chunk) ReplaceColumn(i int, col column.Column) error {
	if i < 0 || i >= len(c.columns) {
		return colerrors.NewRange("column", i, len(c.columns))
	}
	c.columns[i] = col
	return nil
}

// ColumnCount reports the number of columns in this chunk.
func (c *Chunk) ColumnCount() int { return len(c.columns) }

// ColumnAt returns the column at position i.
func (c *Chunk) ColumnAt(i rowid.ColumnID) (column.Column, error) {
	if int(i) < 0 || int(i) >= len(c.columns) {
		return nil, colerrors.NewRange("column", i, len(c.columns))
	}
	return c.columns[i], nil
}

// Length returns the row count — the length of the first column, or 0 if
// the chunk has no columns yet.
func (c *Chunk) Length() int {
	if len(c.columns) == 0 {
		return 0
	}
	return c.columns[0].Length()
}

// IsMutable reports whether every column in the chunk is still a Value
// column. Compression replaces Value columns with Dictionary columns one
// position at a time in principle, even though compress_chunk always does
// it for every column in the chunk at once; mutability is therefore
// determined by inspecting columns, not by a separate flag.
func (c *Chunk) IsMutable() bool {
	for _, col := range c.columns {
		if _, ok := col.(column.Appendable); !ok {
			return false
		}
	}
	return true
}

// Compress replaces every Value column in this chunk with its equivalent
// Dictionary column. After this call the chunk is immutable — Append will
// fail on all of its columns.
func (c *Chunk) Compress() error {
	for i, col := range c.columns {
		compressible, ok := col.(column.Compressible)
		if !ok {
			return &colerrors.UsageError{Reason: "chunk is already compressed"}
		}
		c.columns[i] = compressible.Compress()
	}
	return nil
}

// Append pushes one value per column onto this chunk's Value columns. It
// fails if the chunk is not mutable, or if the row's arity or element kinds
// don't match the chunk's columns.
func (c *Chunk) Append(values []types.Value) error {
	if len(values) != len(c.columns) {
		return &colerrors.SchemaError{Reason: "row arity does not match chunk column count"}
	}
	appendables := make([]column.Appendable, len(values))
	for i, v := range values {
		appendable, ok := c.columns[i].(column.Appendable)
		if !ok {
			return &colerrors.UsageError{Reason: "cannot append to a compressed (immutable) chunk"}
		}
		if kind := c.columns[i].Kind(); v.Kind != kind {
			return &colerrors.SchemaError{Reason: "element kind " + string(v.Kind) + " does not match column kind " + string(kind)}
		}
		appendables[i] = appendable
	}
	for i, v := range values {
		if err := appendables[i].Append(v); err != nil {
			return &colerrors.SchemaError{Reason: err.Error()}
		}
	}
	return nil
}
