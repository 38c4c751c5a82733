package schema

import (
	"maps"
	"slices"
	"strings"

	"github.com/syssam/strata"
)

// IDMethod is the default strategy for generating primary key values.
type IDMethod string

// Supported ID generation methods.
const (
	// IDMethodNative lets the platform generate keys (auto-increment,
	// serial, rowid).
	IDMethodNative IDMethod = "native"
	// IDMethodNone leaves key generation to the application.
	IDMethodNone IDMethod = "none"
)

// Supported string serialization formats for generated entities.
var stringFormats = []string{"XML", "YAML", "JSON", "CSV"}

// Database is the schema container: it owns the full ordered set of tables,
// the domains, and the database-scoped behaviors, and drives the
// finalization pipeline. See Finalize for the pipeline itself.
type Database struct {
	// Name is the database name.
	Name string
	// Platform is the opaque target platform handle, threaded through to
	// the emitters without interpretation.
	Platform strata.Platform
	// IDMethod is the default primary key generation strategy.
	IDMethod IDMethod
	// TablePrefix is prepended to every emitted table name.
	TablePrefix string
	// Namespace is the default code namespace tables inherit.
	Namespace string
	// Package is the default generated-code package tables inherit.
	Package string
	// HeavyIndexing is the default heavy-indexing flag for new tables.
	HeavyIndexing bool
	// Vendor holds platform-specific info blocks.
	Vendor []VendorInfo

	defaultStringFormat string

	tableList      []*Table
	tables         map[string]*Table
	tablesLower    map[string]*Table
	tablesByGoName map[string]*Table

	domains map[string]*Domain

	behaviorList []Behavior
	behaviorIdx  map[string]int

	schema   *Schema
	config   strata.BuildConfig
	registry *Registry

	maxBehaviorApplications int
	finalized               bool
}

// NewDatabase returns an empty database with native ID generation and YAML
// as the default string serialization format.
func NewDatabase(name string) *Database {
	return &Database{
		Name:                name,
		IDMethod:            IDMethodNative,
		defaultStringFormat: "YAML",
		tables:              make(map[string]*Table),
		tablesLower:         make(map[string]*Table),
		tablesByGoName:      make(map[string]*Table),
		domains:             make(map[string]*Domain),
		behaviorIdx:         make(map[string]int),
	}
}

// SetSchema attaches the database to a parent schema scope. Build property
// lookups and behavior resolution chain through it.
func (d *Database) SetSchema(s *Schema) { d.schema = s }

// Schema returns the parent schema scope, if any.
func (d *Database) Schema() *Schema { return d.schema }

// SetBuildConfig sets the database's own build configuration. Properties not
// answered here chain through the parent schema.
func (d *Database) SetBuildConfig(c strata.BuildConfig) { d.config = c }

// BuildProperty resolves a build property against the database
// configuration first, then through the parent schema chain. Unset
// properties resolve to the empty string.
func (d *Database) BuildProperty(name string) string {
	if d.config != nil {
		if v := d.config.BuildProperty(name); v != "" {
			return v
		}
	}
	if d.schema != nil {
		return d.schema.BuildProperty(name)
	}
	return ""
}

// SetRegistry overrides the behavior registry used by this database.
func (d *Database) SetRegistry(r *Registry) { d.registry = r }

func (d *Database) registryFor() *Registry {
	if d.registry != nil {
		return d.registry
	}
	if d.schema != nil && d.schema.registry != nil {
		return d.schema.registry
	}
	return DefaultRegistry()
}

// SetDefaultIDMethod sets the default primary key generation strategy.
func (d *Database) SetDefaultIDMethod(m IDMethod) error {
	switch m {
	case IDMethodNative, IDMethodNone:
		d.IDMethod = m
		return nil
	default:
		return strata.NewInvalidArgumentError("defaultIdMethod", string(m), `must be "native" or "none"`)
	}
}

// SetDefaultStringFormat sets the serialization format generated entities
// use for their string representation. The format is case-insensitive and
// stored upper-cased; unsupported formats fail with an InvalidArgumentError.
func (d *Database) SetDefaultStringFormat(format string) error {
	up := strings.ToUpper(format)
	for _, f := range stringFormats {
		if f == up {
			d.defaultStringFormat = up
			return nil
		}
	}
	return strata.NewInvalidArgumentError("defaultStringFormat", format,
		"must be one of "+strings.Join(stringFormats, ", "))
}

// DefaultStringFormat returns the configured string serialization format.
func (d *Database) DefaultStringFormat() string { return d.defaultStringFormat }

// AddTable appends the table to the ordered table list and indexes it by
// exact name, lowercase name, and Go name; the three indexes are updated
// together so lookups never observe a partial insert. A duplicate name
// (case-sensitive) fails with a DuplicateEntityError. On success the table
// is stamped with this database as owner, its namespace is resolved against
// the database namespace, and its package and heavy-indexing default are
// inherited unless overridden.
func (d *Database) AddTable(t *Table) (*Table, error) {
	if _, ok := d.tables[t.Name]; ok {
		return nil, strata.NewDuplicateEntityError("table", t.Name, d.Name)
	}
	t.database = d
	t.Namespace = resolveNamespace(d.Namespace, t.Namespace)
	if t.Package == "" {
		t.Package = d.Package
	}
	if d.HeavyIndexing {
		t.HeavyIndexing = true
	}
	// Domain references declared before the table joined the database.
	for _, c := range t.columnList {
		if c.DomainName != "" {
			if dom, ok := d.domains[c.DomainName]; ok {
				c.ApplyDomain(dom)
			}
		}
	}
	d.tableList = append(d.tableList, t)
	d.tables[t.Name] = t
	d.tablesLower[strings.ToLower(t.Name)] = t
	d.tablesByGoName[t.GoName()] = t
	return t, nil
}

// Table returns the table registered under the exact name.
func (d *Database) Table(name string) (*Table, bool) {
	t, ok := d.tables[name]
	return t, ok
}

// TableIgnoreCase returns the table registered under the name, matched
// case-insensitively against the lowercase index.
func (d *Database) TableIgnoreCase(name string) (*Table, bool) {
	t, ok := d.tablesLower[strings.ToLower(name)]
	return t, ok
}

// TableByGoName returns the table whose derived Go identifier matches.
func (d *Database) TableByGoName(name string) (*Table, bool) {
	t, ok := d.tablesByGoName[name]
	return t, ok
}

// HasTable reports whether a table is registered under the exact name.
func (d *Database) HasTable(name string) bool {
	_, ok := d.tables[name]
	return ok
}

// HasTableByGoName reports whether a table is registered under the Go name.
func (d *Database) HasTableByGoName(name string) bool {
	_, ok := d.tablesByGoName[name]
	return ok
}

// Tables returns the tables in declaration order.
func (d *Database) Tables() []*Table { return d.tableList }

// AddDomain registers the domain under its name. Re-registration replaces
// the previous definition.
func (d *Database) AddDomain(dom *Domain) *Domain {
	d.domains[dom.Name] = dom
	return dom
}

// Domain returns the named domain.
func (d *Database) Domain(name string) (*Domain, bool) {
	dom, ok := d.domains[name]
	return dom, ok
}

// Domains returns the registered domains sorted by name.
func (d *Database) Domains() []*Domain {
	out := make([]*Domain, 0, len(d.domains))
	for _, name := range slices.Sorted(maps.Keys(d.domains)) {
		out = append(out, d.domains[name])
	}
	return out
}

// AddBehavior binds the behavior to the database and indexes it by name.
// The last registration under a name wins, keeping the original slot so
// the database-level pass order stays stable.
func (d *Database) AddBehavior(b Behavior) Behavior {
	bb := b.base()
	bb.db = d
	bb.table = nil
	bb.self = b
	if i, ok := d.behaviorIdx[b.Name()]; ok {
		d.behaviorList[i] = b
		return b
	}
	d.behaviorIdx[b.Name()] = len(d.behaviorList)
	d.behaviorList = append(d.behaviorList, b)
	return b
}

// AddBehaviorNamed resolves the named behavior against the registry, loads
// the given parameters, and binds it to the database. Unregistered names
// fail with an UnknownBehaviorError.
func (d *Database) AddBehaviorNamed(name string, params ...Param) (Behavior, error) {
	b, err := d.registryFor().New(name)
	if err != nil {
		return nil, err
	}
	for _, p := range params {
		b.SetParameter(p.Name, p.Value)
	}
	return d.AddBehavior(b), nil
}

// Behavior returns the named database-scoped behavior.
func (d *Database) Behavior(name string) (Behavior, bool) {
	i, ok := d.behaviorIdx[name]
	if !ok {
		return nil, false
	}
	return d.behaviorList[i], true
}

// HasBehavior reports whether the named behavior is attached.
func (d *Database) HasBehavior(name string) bool {
	_, ok := d.behaviorIdx[name]
	return ok
}

// Behaviors returns the database-scoped behaviors in registration order.
func (d *Database) Behaviors() []Behavior { return d.behaviorList }

// SetMaxBehaviorApplications caps how many table-level behavior
// applications Finalize performs before giving up with a diagnostic error.
// Zero (the default) means no cap: termination is then the behaviors'
// responsibility.
func (d *Database) SetMaxBehaviorApplications(n int) { d.maxBehaviorApplications = n }

// Finalized reports whether Finalize has completed. A finalized model is
// structurally stable and safe to hand to the emitters.
func (d *Database) Finalized() bool { return d.finalized }
