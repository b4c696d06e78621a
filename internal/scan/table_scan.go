// Package scan implements the typed, column-polymorphic table-scan
// operator: predicate translation over dictionary-encoded columns, the
// generic vector-scan kernel, and construction of the reference-based
// result table.
package scan

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/operator"
	"github.com/halvorsen/colscan/internal/storage/column"
	"github.com/halvorsen/colscan/internal/storage/rowid"
	"github.com/halvorsen/colscan/internal/storage/table"
	"github.com/halvorsen/colscan/internal/types"
)

// Scan is the one-input operator implementing the table-scan core.
type Scan struct {
	operator.Base

	input       operator.Operator
	columnID    rowid.ColumnID
	predicate   Predicate
	searchValue types.Value
}

// New builds a Scan over input's output column columnID, keeping rows for
// which predicate(value, searchValue) holds.
func New(input operator.Operator, columnID rowid.ColumnID, predicate Predicate, searchValue types.Value) *Scan {
	return &Scan{
		Base:        operator.NewBase(input, nil),
		input:       input,
		columnID:    columnID,
		predicate:   predicate,
		searchValue: searchValue,
	}
}

// Output executes the scan on first call and returns its cached result
// table thereafter.
func (s *Scan) Output() (*table.Table, error) {
	return s.Cached(s.execute)
}

func (s *Scan) execute() (*table.Table, error) {
	scanID := uuid.New().String()

	input, err := s.input.Output()
	if err != nil {
		return nil, err
	}

	slog.Debug("table_scan started", "scan_id", scanID, "column_id", s.columnID, "predicate", s.predicate.String(), "chunks", input.ChunkCount())

	if err := validateReferenceConsistency(input, s.columnID); err != nil {
		slog.Error("table_scan failed", "scan_id", scanID, "error", err)
		return nil, err
	}

	kind, err := input.ColumnKind(s.columnID)
	if err != nil {
		slog.Error("table_scan failed", "scan_id", scanID, "error", err)
		return nil, err
	}

	var positions rowid.PositionList
	switch kind {
	case types.Int32:
		positions, err = scanTyped[int32](input, s.columnID, s.predicate, s.searchValue)
	case types.Int64:
		positions, err = scanTyped[int64](input, s.columnID, s.predicate, s.searchValue)
	case types.Float:
		positions, err = scanTyped[float32](input, s.columnID, s.predicate, s.searchValue)
	case types.Double:
		positions, err = scanTyped[float64](input, s.columnID, s.predicate, s.searchValue)
	case types.String:
		positions, err = scanTyped[string](input, s.columnID, s.predicate, s.searchValue)
	default:
		err = &colerrors.InvariantError{Reason: "unknown element kind"}
	}
	if err != nil {
		slog.Error("table_scan failed", "scan_id", scanID, "error", err)
		return nil, err
	}

	result, err := buildResultTable(input, s.columnID, positions)
	if err != nil {
		slog.Error("table_scan failed", "scan_id", scanID, "error", err)
		return nil, err
	}

	slog.Debug("table_scan finished", "scan_id", scanID, "matches", len(positions))
	return result, nil
}

// scanTyped casts the search value into T once, then iterates every chunk
// of input, dispatching per-chunk on the physical column kind and
// concatenating the resulting position lists in chunk order.
func scanTyped[T column.Elem](input *table.Table, columnID rowid.ColumnID, predicate Predicate, searchValue types.Value) (rowid.PositionList, error) {
	sv, err := column.ValueAs[T](searchValue)
	if err != nil {
		return nil, &colerrors.SchemaError{Reason: err.Error()}
	}

	var out rowid.PositionList
	for i := 0; i < input.ChunkCount(); i++ {
		chunkID := rowid.ChunkID(i)
		c, err := input.Chunk(chunkID)
		if err != nil {
			return nil, err
		}
		col, err := c.ColumnAt(columnID)
		if err != nil {
			return nil, err
		}
		matched, err := scanColumn[T](col, chunkID, predicate, sv)
		if err != nil {
			return nil, err
		}
		out = append(out, matched...)
	}
	return out, nil
}

// validateReferenceConsistency enforces that the scanned column is either
// a reference column in every chunk, all referring to the same source
// table, or a reference column in no chunk at all. Mixed inputs are a
// fatal InvariantError.
func validateReferenceConsistency(input *table.Table, columnID rowid.ColumnID) error {
	var referencedTable column.ReferencedTable
	var sawReference, sawNonReference bool

	for i := 0; i < input.ChunkCount(); i++ {
		c, err := input.Chunk(rowid.ChunkID(i))
		if err != nil {
			return err
		}
		if c.ColumnCount() == 0 {
			continue
		}
		col, err := c.ColumnAt(columnID)
		if err != nil {
			return err
		}
		if refCol, ok := col.(*column.ReferenceColumn); ok {
			sawReference = true
			if referencedTable == nil {
				referencedTable = refCol.ReferencedTable()
			} else if referencedTable != refCol.ReferencedTable() {
				return &colerrors.InvariantError{Reason: "reference columns in input table refer to different source tables"}
			}
		} else {
			sawNonReference = true
		}
	}

	if sawReference && sawNonReference {
		return &colerrors.InvariantError{Reason: "input table mixes reference and non-reference columns"}
	}
	return nil
}

// buildResultTable assembles the output table: one reference column per
// schema position of the referenced table, all sharing positions. If the
// scanned column is itself a reference column, the referenced table's own
// source is used, preventing an indirection chain from growing with every
// chained scan.
func buildResultTable(input *table.Table, columnID rowid.ColumnID, positions rowid.PositionList) (*table.Table, error) {
	referencedTable := column.ReferencedTable(input)

	if input.ChunkCount() > 0 {
		chunk0, err := input.Chunk(0)
		if err == nil && int(columnID) < chunk0.ColumnCount() {
			if col, err := chunk0.ColumnAt(columnID); err == nil {
				if refCol, ok := col.(*column.ReferenceColumn); ok {
					referencedTable = refCol.ReferencedTable()
				}
			}
		}
	}

	srcTable, ok := referencedTable.(*table.Table)
	if !ok {
		return nil, &colerrors.InvariantError{Reason: "referenced table has an unsupported type"}
	}

	result := table.New(0)
	names := srcTable.ColumnNames()
	kinds := srcTable.ColumnKinds()
	for i, name := range names {
		if err := result.AddColumnDefinition(name, kinds[i]); err != nil {
			return nil, err
		}
	}

	resultChunk := result.Chunk0()
	for i := range names {
		resultChunk.AddColumn(column.NewReferenceColumn(srcTable, rowid.ColumnID(i), positions, kinds[i]))
	}

	return result, nil
}

var _ operator.Operator = (*Scan)(nil)
