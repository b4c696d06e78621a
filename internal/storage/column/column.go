// Package column implements the three physical column representations of a
// columnar table: Value (materialised), Dictionary (compressed), and
// Reference (row-indirected). All three satisfy Column; only Value columns
// also satisfy Appendable.
package column

import (
	"cmp"

	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/rowid"
	"github.com/halvorsen/colscan/internal/types"
)

// Elem is the closed set of element kinds a typed column may hold.
// cmp.Ordered is broader than the five primitive kinds this engine
// supports, but every instantiation in this codebase is gated through
// Kind(), which only ever reports one of the five ElementKind constants.
type Elem interface {
	cmp.Ordered
}

// Column is the behaviour common to all three variants.
type Column interface {
	// Length reports the row count.
	Length() int
	// ElementAt returns the value at row i as a tagged Value. This is a
	// generic row-inspection path, not a performance-critical one — the
	// scan kernel never calls it.
	ElementAt(i int) (types.Value, error)
	// Kind reports the column's element kind.
	Kind() types.ElementKind
}

// Appendable is satisfied only by Value columns.
type Appendable interface {
	Append(v types.Value) error
}

// Compressible is satisfied only by Value columns. Compress builds the
// equivalent Dictionary column, letting chunk-level compression dispatch
// with a single interface call instead of a per-element-kind switch.
type Compressible interface {
	Compress() Column
}

// ReferencedTable is the minimal contract a Reference column needs from its
// source table: look up the physical column backing a given chunk and
// column id. Table implements this; Column lives in its own package to
// avoid an import cycle between column and table.
type ReferencedTable interface {
	ColumnAt(chunk rowid.ChunkID, col rowid.ColumnID) (Column, error)
}

// NewValueColumnForKind builds an empty Value column whose element type
// matches kind. This is the one place a table materialises a physical
// column from a schema entry, so it is the one place that must switch on
// the closed set of ElementKinds explicitly.
func NewValueColumnForKind(kind types.ElementKind) (Column, error) {
	switch kind {
	case types.Int32:
		return NewValueColumn[int32](), nil
	case types.Int64:
		return NewValueColumn[int64](), nil
	case types.Float:
		return NewValueColumn[float32](), nil
	case types.Double:
		return NewValueColumn[float64](), nil
	case types.String:
		return NewValueColumn[string](), nil
	default:
		return nil, &colerrors.SchemaError{Reason: "unknown element kind: " + string(kind)}
	}
}

// KindOf reports the ElementKind tag for a generic instantiation of T.
// Call sites are expected to only ever instantiate with the five types
// listed in types.ElementKind; anything else panics, since it indicates a
// programming error rather than a runtime data condition.
func KindOf[T Elem]() types.ElementKind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return types.Int32
	case int64:
		return types.Int64
	case float32:
		return types.Float
	case float64:
		return types.Double
	case string:
		return types.String
	default:
		panic("column: unsupported element type")
	}
}

// toValue lifts a T into the tagged types.Value variant.
func toValue[T Elem](v T) types.Value {
	switch x := any(v).(type) {
	case int32:
		return types.NewInt32(x)
	case int64:
		return types.NewInt64(x)
	case float32:
		return types.NewFloat(x)
	case float64:
		return types.NewDouble(x)
	case string:
		return types.NewString(x)
	default:
		panic("column: unsupported element type")
	}
}

// ValueAs lowers a tagged types.Value into T, failing on a kind mismatch.
// This is the exported form of fromValue, used by the scan core to convert
// a caller's search value into the element type it scans against.
func ValueAs[T Elem](v types.Value) (T, error) {
	return fromValue[T](v)
}

// fromValue lowers a tagged types.Value into T, failing on a kind mismatch.
func fromValue[T Elem](v types.Value) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		x, err := types.CastInt32(v)
		return any(x).(T), err
	case int64:
		x, err := types.CastInt64(v)
		return any(x).(T), err
	case float32:
		x, err := types.CastFloat(v)
		return any(x).(T), err
	case float64:
		x, err := types.CastDouble(v)
		return any(x).(T), err
	case string:
		x, err := types.CastString(v)
		return any(x).(T), err
	default:
		panic("column: unsupported element type")
	}
}
