// Package operator implements the minimal operator-tree contract: a node
// has zero, one, or two upstream operators, executes at most once, and
// caches its output table. The query-plan abstraction that chains these
// together is out of scope here — this package only supplies the base
// every concrete operator (GetTable, the table scan) builds on.
package operator

import (
	"sync"

	"github.com/halvorsen/colscan/internal/storage/table"
)

// Operator is the base interface every node in an operator tree satisfies.
type Operator interface {
	// Output executes the operator on first call and returns its
	// materialised, immutable table on every call thereafter without
	// recomputing.
	Output() (*table.Table, error)
}

// Base memoizes a single onExecute call the way every AbstractOperator
// subclass in the source system does. Concrete operators embed Base and
// implement Output by delegating to Cached with their own compute
// function.
type Base struct {
	left, right Operator

	once   sync.Once
	result *table.Table
	err    error
}

// NewBase wires up to two upstream operators. Leaf operators (GetTable)
// pass nil for both; one-input operators (the table scan) pass nil for
// right.
func NewBase(left, right Operator) Base {
	return Base{left: left, right: right}
}

// Left returns the left/only upstream operator, or nil for a leaf.
func (b *Base) Left() Operator { return b.left }

// Right returns the right upstream operator, or nil.
func (b *Base) Right() Operator { return b.right }

// Cached runs compute exactly once across the lifetime of this operator
// and returns the memoized (table, error) pair on every call, including
// the first.
func (b *Base) Cached(compute func() (*table.Table, error)) (*table.Table, error) {
	b.once.Do(func() {
		b.result, b.err = compute()
	})
	return b.result, b.err
}
