package schema

import "slices"

// Index describes a table index, unique or not. Implicit indexes (e.g. the
// ones heavy indexing derives from a composite primary key) are added during
// the per-table final pass.
type Index struct {
	// Name of the index. Unnamed indexes are named during the per-table
	// final pass.
	Name string
	// Unique index or not.
	Unique bool
	// Columns are the indexed table columns, in order.
	Columns []string

	table *Table
}

// NewIndex returns a detached index over the given columns.
func NewIndex(columns ...string) *Index {
	return &Index{Columns: columns}
}

// AsUnique marks the index unique and returns it.
func (i *Index) AsUnique() *Index {
	i.Unique = true
	return i
}

// Table returns the owning table.
func (i *Index) Table() *Table { return i.table }

// covers reports whether the index spans exactly the given columns.
func (i *Index) covers(columns []string) bool {
	return slices.Equal(i.Columns, columns)
}
