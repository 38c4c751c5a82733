package schema

// ReferenceAction is a foreign key ON DELETE / ON UPDATE action.
type ReferenceAction string

// Supported reference actions. The empty action emits no clause.
const (
	NoAction   ReferenceAction = "NO ACTION"
	Restrict   ReferenceAction = "RESTRICT"
	Cascade    ReferenceAction = "CASCADE"
	SetNull    ReferenceAction = "SET NULL"
	SetDefault ReferenceAction = "SET DEFAULT"
)

// ForeignKey describes a relation from the owning table (the referrer) to a
// foreign table. Local and foreign column lists are positional pairs.
type ForeignKey struct {
	// Name is the constraint name. Unnamed keys are named during the
	// per-table final pass.
	Name string
	// ForeignTableName is the referenced table, resolved against the
	// owning database during referrer wiring.
	ForeignTableName string
	// LocalColumns are the referring columns in the owning table.
	LocalColumns []string
	// ForeignColumns are the referenced columns, pairwise with LocalColumns.
	ForeignColumns []string
	// OnDelete and OnUpdate are the referential actions.
	OnDelete ReferenceAction
	OnUpdate ReferenceAction

	table        *Table
	foreignTable *Table
}

// NewForeignKey returns a detached foreign key referencing the named table.
func NewForeignKey(foreignTable string) *ForeignKey {
	return &ForeignKey{ForeignTableName: foreignTable}
}

// AddReference appends a local/foreign column pair.
func (fk *ForeignKey) AddReference(local, foreign string) *ForeignKey {
	fk.LocalColumns = append(fk.LocalColumns, local)
	fk.ForeignColumns = append(fk.ForeignColumns, foreign)
	return fk
}

// WithOnDelete sets the ON DELETE action and returns the key.
func (fk *ForeignKey) WithOnDelete(a ReferenceAction) *ForeignKey {
	fk.OnDelete = a
	return fk
}

// WithOnUpdate sets the ON UPDATE action and returns the key.
func (fk *ForeignKey) WithOnUpdate(a ReferenceAction) *ForeignKey {
	fk.OnUpdate = a
	return fk
}

// Table returns the owning (referring) table.
func (fk *ForeignKey) Table() *Table { return fk.table }

// ForeignTable returns the referenced table. It is nil until referrer
// wiring has run.
func (fk *ForeignKey) ForeignTable() *Table { return fk.foreignTable }
