package operator

import (
	"github.com/halvorsen/colscan/internal/registry"
	"github.com/halvorsen/colscan/internal/storage/table"
)

// GetTable is the leaf operator that materialises a whole table by name
// from the registry. It is treated as an external collaborator with a
// minimal contract — the scan core only depends on it producing an
// immutable *table.Table, never on how it got there.
type GetTable struct {
	Base
	registry *registry.Registry
	name     string
}

// NewGetTable returns a GetTable operator bound to name in reg.
func NewGetTable(reg *registry.Registry, name string) *GetTable {
	return &GetTable{Base: NewBase(nil, nil), registry: reg, name: name}
}

// Output looks up the table on first call and caches it thereafter.
func (g *GetTable) Output() (*table.Table, error) {
	return g.Cached(func() (*table.Table, error) {
		return g.registry.GetTable(g.name)
	})
}

var _ Operator = (*GetTable)(nil)
