package column

import (
	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/types"
)

// ValueColumn owns a plain vector of T. Its length grows by Append while
// its owning chunk is mutable; it is the only column variant Append works
// on.
type ValueColumn[T Elem] struct {
	values []T
}

// NewValueColumn returns an empty Value column of element kind T.
func NewValueColumn[T Elem]() *ValueColumn[T] {
	return &ValueColumn[T]{}
}

// NewValueColumnFrom wraps an existing slice without copying, for tests and
// for building fixtures quickly.
func NewValueColumnFrom[T Elem](values []T) *ValueColumn[T] {
	return &ValueColumn[T]{values: values}
}

func (c *ValueColumn[T]) Length() int { return len(c.values) }

func (c *ValueColumn[T]) Kind() types.ElementKind { return KindOf[T]() }

func (c *ValueColumn[T]) ElementAt(i int) (types.Value, error) {
	if i < 0 || i >= len(c.values) {
		return types.Value{}, colerrors.NewRange("row", i, len(c.values))
	}
	return toValue(c.values[i]), nil
}

// Append adds a new value to the end of the column. It fails if the value's
// kind does not match T.
func (c *ValueColumn[T]) Append(v types.Value) error {
	x, err := fromValue[T](v)
	if err != nil {
		return err
	}
	c.values = append(c.values, x)
	return nil
}

// Values returns the backing vector directly — this is the identity-getter
// path the vector-scan kernel uses on Value columns, kept free of any
// per-element indirection.
func (c *ValueColumn[T]) Values() []T { return c.values }

// Compress builds the Dictionary-compressed equivalent of this column.
func (c *ValueColumn[T]) Compress() Column {
	return NewDictionaryColumn(c)
}

var _ Column = (*ValueColumn[int32])(nil)
var _ Appendable = (*ValueColumn[int32])(nil)
var _ Compressible = (*ValueColumn[int32])(nil)
