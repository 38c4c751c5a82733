package schema

import "reflect"

// DefaultTableModificationOrder is the priority assigned to behaviors that
// do not set one. Lower orders run first.
const DefaultTableModificationOrder = 50

// Behavior is a named, parameterized schema transformation attached to a
// database or a table. Implementations must embed Base and are expected to
// be pointers to structs (the registry and the default database hook clone
// them reflectively).
//
// ModifyDatabase runs once, unconditionally, before any table-level work.
// ModifyTable runs under the finalization scheduler, which guarantees
// at-most-once application per behavior instance and re-scans live state
// after every application, so a hook may add new tables and behaviors.
type Behavior interface {
	// Name returns the behavior name the registry knows it under.
	Name() string
	// SetName sets the behavior name. Called by the registry on resolution.
	SetName(name string)
	// Parameters returns the ordered parameter mapping.
	Parameters() *Params
	// Parameter returns the named parameter value, or "" if unset.
	Parameter(name string) string
	// SetParameter adds or overwrites a parameter.
	SetParameter(name, value string)
	// TableModificationOrder is the scheduling priority of ModifyTable.
	TableModificationOrder() int
	// ModifyDatabase modifies the owning database.
	ModifyDatabase(d *Database) error
	// ModifyTable modifies the owning table.
	ModifyTable(t *Table) error
	// Applied reports whether ModifyTable has already run.
	Applied() bool

	base() *Base
}

// Base is the default Behavior implementation. Embed it in every concrete
// behavior and override the hooks you need:
//
//	type Sluggable struct{ schema.Base }
//
//	func (s *Sluggable) ModifyTable(t *schema.Table) error { ... }
//
// The embedded base carries the name, the ordered parameters, the owner
// back-reference, the table modification order, and the applied flag.
type Base struct {
	name    string
	params  Params
	order   int
	db      *Database
	table   *Table
	applied bool
	self    Behavior
}

func (b *Base) base() *Base { return b }

// Name returns the behavior name.
func (b *Base) Name() string { return b.name }

// SetName sets the behavior name.
func (b *Base) SetName(name string) { b.name = name }

// Parameters returns the ordered parameter mapping.
func (b *Base) Parameters() *Params { return &b.params }

// Parameter returns the named parameter value, or "" if unset.
func (b *Base) Parameter(name string) string {
	v, _ := b.params.Get(name)
	return v
}

// SetParameter adds or overwrites a parameter.
func (b *Base) SetParameter(name, value string) { b.params.Set(name, value) }

// TableModificationOrder returns the scheduling priority. Unset (zero)
// resolves to DefaultTableModificationOrder.
func (b *Base) TableModificationOrder() int {
	if b.order == 0 {
		return DefaultTableModificationOrder
	}
	return b.order
}

// SetTableModificationOrder sets the scheduling priority; lower runs first.
func (b *Base) SetTableModificationOrder(n int) { b.order = n }

// Database returns the owning database: the direct owner for
// database-scoped behaviors, the table's database for table-scoped ones.
func (b *Base) Database() *Database {
	if b.db != nil {
		return b.db
	}
	if b.table != nil {
		return b.table.database
	}
	return nil
}

// Table returns the owning table, or nil for database-scoped behaviors.
func (b *Base) Table() *Table { return b.table }

// Applied reports whether ModifyTable has already run.
func (b *Base) Applied() bool { return b.applied }

// ModifyDatabase is the default database hook: it propagates a fresh copy
// of the behavior to every table that does not already carry one with the
// same name. Behaviors that act on the database itself (or that require
// tables to opt in, like i18n) override it.
func (b *Base) ModifyDatabase(d *Database) error {
	if b.self == nil {
		return nil
	}
	for _, t := range d.Tables() {
		if t.HasBehavior(b.name) {
			continue
		}
		t.AddBehavior(cloneBehavior(b.self))
	}
	return nil
}

// ModifyTable is the default table hook: a no-op.
func (b *Base) ModifyTable(*Table) error { return nil }

// cloneBehavior returns an unbound copy of the concrete behavior with the
// same name, parameters, and modification order, and a cleared applied flag.
func cloneBehavior(b Behavior) Behavior {
	rv := reflect.ValueOf(b)
	nv := reflect.New(rv.Type().Elem())
	nv.Elem().Set(rv.Elem())
	nb := nv.Interface().(Behavior)
	nbb := nb.base()
	nbb.db = nil
	nbb.table = nil
	nbb.applied = false
	nbb.self = nb
	nbb.params = *b.base().params.Clone()
	return nb
}
