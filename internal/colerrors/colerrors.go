// Package colerrors defines the fatal error taxonomy raised by the storage
// and scan core. Every failure at the core boundary is one of these four
// kinds; none of them are retried or partially recovered from.
package colerrors

import "fmt"

// SchemaError reports a row arity mismatch, an unknown column id, or an
// element-kind mismatch against a table's schema.
type SchemaError struct {
	Table  string
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema error: table %q column %q: %s", e.Table, e.Column, e.Reason)
	}
	return fmt.Sprintf("schema error: table %q: %s", e.Table, e.Reason)
}

// InvariantError reports a condition the scan core asserts can never
// happen on well-formed input: an unknown column variant, an unknown
// predicate, an unknown attribute-vector width, or a reference column
// pointing at another reference column.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s", e.Reason)
}

// UsageError reports a caller misusing the API: appending to a compressed
// chunk's column, adding a column definition to a non-empty table,
// registering a duplicate table name, or dropping a table that doesn't
// exist.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.Reason)
}

// RangeError reports an out-of-range ChunkId, ColumnId, row index, or
// ValueId.
type RangeError struct {
	Kind  string // "chunk", "column", "row", "value_id", "value_id_vector_index"
	Value any
	Bound any
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: %s index %v out of bounds (limit %v)", e.Kind, e.Value, e.Bound)
}

// NewRange builds a RangeError for the given kind, offending value, and
// the bound it was checked against.
func NewRange(kind string, value, bound any) *RangeError {
	return &RangeError{Kind: kind, Value: value, Bound: bound}
}
