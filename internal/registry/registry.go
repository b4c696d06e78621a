// Package registry implements the table registry: a name-to-table mapping
// whose lifecycle management is the caller's responsibility. Each call to
// New returns an independent registry; the package holds no process-wide
// instance. It is deliberately external to the scan core —
// an operator like GetTable is the only thing that talks to it.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/halvorsen/colscan/internal/colerrors"
	"github.com/halvorsen/colscan/internal/storage/table"
)

// Registry is a name-to-table mapping. Every operation holds the
// registry's lock, so calls may be made concurrently; the tables it hands
// out are not guarded by that lock.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{tables: make(map[string]*table.Table)}
}

// AddTable registers table t under name, failing on a duplicate name.
func (r *Registry) AddTable(name string, t *table.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; exists {
		return &colerrors.UsageError{Reason: fmt.Sprintf("duplicate table name %q", name)}
	}
	r.tables[name] = t
	return nil
}

// DropTable removes name from the registry, failing if it isn't present.
func (r *Registry) DropTable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; !exists {
		return &colerrors.UsageError{Reason: fmt.Sprintf("table %q does not exist", name)}
	}
	delete(r.tables, name)
	return nil
}

// GetTable returns the table registered under name, failing if absent.
func (r *Registry) GetTable(name string) (*table.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, exists := r.tables[name]
	if !exists {
		return nil, &colerrors.UsageError{Reason: fmt.Sprintf("table %q does not exist", name)}
	}
	return t, nil
}

// HasTable is a total predicate: it never fails.
func (r *Registry) HasTable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tables[name]
	return exists
}

// TableNames returns the registered table names, in no particular order —
// the spec describes this as an unordered set.
func (r *Registry) TableNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	return names
}

// Reset drops every registered table. Intended for test isolation between
// cases that each want a clean registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = make(map[string]*table.Table)
}

// Print renders one line per registered table — name, column count, row
// count, chunk count — to w. This is a debug convenience grounded on the
// original storage manager's print() and carries no part of the scan
// core's correctness surface.
func (r *Registry) Print(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := r.tables[name]
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, t.ColumnCount(), t.RowCount(), t.ChunkCount()); err != nil {
			return err
		}
	}
	return nil
}
