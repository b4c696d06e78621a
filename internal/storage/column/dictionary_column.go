package column

import (
	"slices"
	"sort"

	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/attributevector"
	"github.com/halvorsen/colscan/internal/types"
)

// DictionaryColumn stores a strictly increasing, deduplicated dictionary of
// T alongside an attribute vector of ValueIDs, one per row. It is
// immutable once built.
type DictionaryColumn[T Elem] struct {
	dictionary      []T
	attributeVector *attributevector.Vector
}

// NewDictionaryColumn builds a Dictionary column from the contents of a
// Value column of matching element kind. It deduplicates and sorts the
// values, picks the narrowest attribute-vector width that fits the
// resulting cardinality, and fills the attribute vector by binary-searching
// each original value into the dictionary.
func NewDictionaryColumn[T Elem](source *ValueColumn[T]) *DictionaryColumn[T] {
	values := source.Values()

	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	dict := make([]T, 0, len(seen))
	for v := range seen {
		dict = append(dict, v)
	}
	slices.Sort(dict)

	width := attributevector.FitWidth(len(dict))
	av := attributevector.New(width, len(values))
	for i, v := range values {
		idx := sort.Search(len(dict), func(j int) bool { return dict[j] >= v })
		// A dictionary built from exactly these values is guaranteed to
		// contain v, so idx is always a valid hit, never an insertion point
		// past the end.
		_ = av.Set(i, attributevector.ValueID(idx))
	}

	return &DictionaryColumn[T]{dictionary: dict, attributeVector: av}
}

func (c *DictionaryColumn[T]) Length() int { return c.attributeVector.Size() }

func (c *DictionaryColumn[T]) Kind() types.ElementKind { return KindOf[T]() }

func (c *DictionaryColumn[T]) ElementAt(i int) (types.Value, error) {
	id, err := c.attributeVector.Get(i)
	if err != nil {
		return types.Value{}, err
	}
	v, err := c.ValueByValueID(id)
	if err != nil {
		return types.Value{}, err
	}
	return toValue(v), nil
}

// Dictionary returns the immutable, sorted, deduplicated value vector.
func (c *DictionaryColumn[T]) Dictionary() []T { return c.dictionary }

// AttributeVector returns the read-only handle to the backing attribute
// vector.
func (c *DictionaryColumn[T]) AttributeVector() *attributevector.Vector { return c.attributeVector }

// ValueByValueID looks up the dictionary entry for a value id, failing on
// out-of-range or attributevector.InvalidValueID.
func (c *DictionaryColumn[T]) ValueByValueID(id attributevector.ValueID) (T, error) {
	var zero T
	if id == attributevector.InvalidValueID || int(id) >= len(c.dictionary) {
		return zero, colerrors.NewRange("value_id", id, len(c.dictionary))
	}
	return c.dictionary[id], nil
}

// LowerBound returns the smallest ValueID whose dictionary value is >=
// searchValue, or attributevector.InvalidValueID if no such entry exists.
func (c *DictionaryColumn[T]) LowerBound(searchValue T) attributevector.ValueID {
	idx := sort.Search(len(c.dictionary), func(j int) bool { return c.dictionary[j] >= searchValue })
	if idx == len(c.dictionary) {
		return attributevector.InvalidValueID
	}
	return attributevector.ValueID(idx)
}

// UpperBound returns the smallest ValueID whose dictionary value is
// strictly > searchValue, or attributevector.InvalidValueID if none.
func (c *DictionaryColumn[T]) UpperBound(searchValue T) attributevector.ValueID {
	idx := sort.Search(len(c.dictionary), func(j int) bool { return c.dictionary[j] > searchValue })
	if idx == len(c.dictionary) {
		return attributevector.InvalidValueID
	}
	return attributevector.ValueID(idx)
}

var _ Column = (*DictionaryColumn[int32])(nil)
