package schema

import (
	"strings"

	"github.com/syssam/strata"
)

// Table is one table of the schema model. It exclusively owns its columns,
// indexes, foreign keys, and table-scoped behaviors, and holds a non-owning
// back-reference to the database it was added to.
type Table struct {
	// Name is the declared table name.
	Name string
	// Namespace is the code namespace the declaration carries. Leading "/"
	// makes it absolute; otherwise it is resolved under the database
	// namespace when the table is added.
	Namespace string
	// Package is the generated-code package. Inherited from the database
	// if unset.
	Package string
	// Description documents the table.
	Description string
	// HeavyIndexing enables derived indexes over composite primary key
	// prefixes during the final pass.
	HeavyIndexing bool
	// SkipSQL excludes the table from DDL emission (e.g. views managed
	// elsewhere).
	SkipSQL bool
	// ReadOnly marks the table read-only for the generated code.
	ReadOnly bool
	// Vendor holds platform-specific info blocks.
	Vendor []VendorInfo

	goName string

	columnList  []*Column
	columns     map[string]*Column
	foreignKeys []*ForeignKey
	indexes     []*Index
	referrers   []*ForeignKey

	behaviorList []Behavior
	behaviorIdx  map[string]int

	database *Database
}

// NewTable returns a detached table with the given name.
func NewTable(name string) *Table {
	return &Table{
		Name:        name,
		columns:     make(map[string]*Column),
		behaviorIdx: make(map[string]int),
	}
}

// Database returns the owning database, or nil for a detached table.
func (t *Table) Database() *Database { return t.database }

// GoName returns the exported Go identifier derived from the table name.
func (t *Table) GoName() string {
	if t.goName == "" {
		return goName(t.Name)
	}
	return t.goName
}

// SetGoName overrides the derived Go identifier. It must be called before
// the table is added to a database, since the database indexes tables by
// their Go name at registration time.
func (t *Table) SetGoName(name string) { t.goName = name }

// SQLName returns the emitted table name: the database table prefix, if
// any, prepended to the declared name.
func (t *Table) SQLName() string {
	if t.database == nil || t.database.TablePrefix == "" {
		return t.Name
	}
	return t.database.TablePrefix + t.Name
}

// AddColumn appends the column and indexes it by name. A duplicate name
// fails with a DuplicateEntityError; the column is stamped with this table
// as owner on success. If the column references a domain, the domain
// attributes are applied from the owning database.
func (t *Table) AddColumn(c *Column) (*Column, error) {
	if _, ok := t.columns[c.Name]; ok {
		return nil, strata.NewDuplicateEntityError("column", c.Name, t.Name)
	}
	c.table = t
	if c.DomainName != "" && t.database != nil {
		if d, ok := t.database.Domain(c.DomainName); ok {
			c.ApplyDomain(d)
		}
	}
	t.columnList = append(t.columnList, c)
	t.columns[c.Name] = c
	return c, nil
}

// RemoveColumn detaches the named column from the table and reports whether
// it was present. Behaviors use it to factor columns out into companion
// tables.
func (t *Table) RemoveColumn(name string) (*Column, bool) {
	c, ok := t.columns[name]
	if !ok {
		return nil, false
	}
	delete(t.columns, name)
	for i, cc := range t.columnList {
		if cc == c {
			t.columnList = append(t.columnList[:i], t.columnList[i+1:]...)
			break
		}
	}
	c.table = nil
	return c, true
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.columns[name]
	return c, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column { return t.columnList }

// PrimaryKey returns the primary key columns in declaration order.
func (t *Table) PrimaryKey() []*Column {
	var pk []*Column
	for _, c := range t.columnList {
		if c.PrimaryKey {
			pk = append(pk, c)
		}
	}
	return pk
}

// HasPrimaryKey reports whether any column is part of the primary key.
func (t *Table) HasPrimaryKey() bool {
	return len(t.PrimaryKey()) > 0
}

// AutoIncrementColumn returns the auto-incremented primary key column, if any.
func (t *Table) AutoIncrementColumn() (*Column, bool) {
	for _, c := range t.columnList {
		if c.PrimaryKey && c.AutoIncrement {
			return c, true
		}
	}
	return nil, false
}

// AddForeignKey appends the foreign key and stamps its owner.
func (t *Table) AddForeignKey(fk *ForeignKey) *ForeignKey {
	fk.table = t
	t.foreignKeys = append(t.foreignKeys, fk)
	return fk
}

// ForeignKeys returns the foreign keys in declaration order.
func (t *Table) ForeignKeys() []*ForeignKey { return t.foreignKeys }

// AddIndex appends the index and stamps its owner.
func (t *Table) AddIndex(ix *Index) *Index {
	ix.table = t
	t.indexes = append(t.indexes, ix)
	return ix
}

// Indexes returns the indexes in declaration order.
func (t *Table) Indexes() []*Index { return t.indexes }

// Referrers returns the foreign keys of other tables that reference this
// table. The list is computed during referrer wiring and recomputed after
// the table-level behavior pass.
func (t *Table) Referrers() []*ForeignKey { return t.referrers }

// AddBehavior binds the behavior to this table and indexes it by name.
// The last registration under a name wins; unlike tables, duplicate names
// are not an error at this layer. The concrete instance is returned.
func (t *Table) AddBehavior(b Behavior) Behavior {
	bb := b.base()
	bb.table = t
	bb.db = nil
	bb.self = b
	if i, ok := t.behaviorIdx[b.Name()]; ok {
		t.behaviorList[i] = b
		return b
	}
	t.behaviorIdx[b.Name()] = len(t.behaviorList)
	t.behaviorList = append(t.behaviorList, b)
	return b
}

// AddBehaviorNamed resolves the named behavior against the database's
// registry, loads the given parameters, and binds it to this table.
func (t *Table) AddBehaviorNamed(name string, params ...Param) (Behavior, error) {
	b, err := t.registry().New(name)
	if err != nil {
		return nil, err
	}
	for _, p := range params {
		b.SetParameter(p.Name, p.Value)
	}
	return t.AddBehavior(b), nil
}

// Behavior returns the named table-scoped behavior.
func (t *Table) Behavior(name string) (Behavior, bool) {
	i, ok := t.behaviorIdx[name]
	if !ok {
		return nil, false
	}
	return t.behaviorList[i], true
}

// HasBehavior reports whether the named behavior is attached.
func (t *Table) HasBehavior(name string) bool {
	_, ok := t.behaviorIdx[name]
	return ok
}

// Behaviors returns the table-scoped behaviors in registration order.
func (t *Table) Behaviors() []Behavior { return t.behaviorList }

func (t *Table) registry() *Registry {
	if t.database != nil {
		return t.database.registryFor()
	}
	return DefaultRegistry()
}

// doFinalInitialization completes the table after the behavior fixed point:
// it re-derives names for columns added by behaviors, assigns generated
// constraint names, and derives heavy-indexing indexes.
func (t *Table) doFinalInitialization() {
	t.doNaming()
	t.nameConstraints()
	if t.HeavyIndexing {
		t.doHeavyIndexing()
	}
}

// doHeavyIndexing adds an index for every proper prefix of a composite
// primary key, so lookups on leading key columns stay indexed.
func (t *Table) doHeavyIndexing() {
	pk := t.PrimaryKey()
	if len(pk) < 2 {
		return
	}
	names := make([]string, len(pk))
	for i, c := range pk {
		names[i] = c.Name
	}
	for n := len(names) - 1; n >= 1; n-- {
		prefix := names[:n]
		if t.hasIndexOver(prefix) {
			continue
		}
		ix := NewIndex(prefix...)
		ix.Name = t.Name + "_pk_" + strings.Join(prefix, "_")
		t.AddIndex(ix)
	}
}

func (t *Table) hasIndexOver(columns []string) bool {
	for _, ix := range t.indexes {
		if ix.covers(columns) {
			return true
		}
	}
	return false
}
