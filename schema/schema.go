package schema

import (
	"github.com/syssam/strata"
)

// Schema is an optional container for multi-schema builds. It groups
// databases, carries a shared build configuration and behavior registry,
// and chains build property resolution through an optional parent scope.
type Schema struct {
	Name string

	databases []*Database
	byName    map[string]*Database

	config   strata.BuildConfig
	registry *Registry
	parent   *Schema
}

// NewSchema returns an empty schema scope.
func NewSchema(name string) *Schema {
	return &Schema{Name: name, byName: make(map[string]*Database)}
}

// SetParent chains this scope under a parent for build property resolution.
func (s *Schema) SetParent(parent *Schema) { s.parent = parent }

// SetBuildConfig sets the scope's build configuration.
func (s *Schema) SetBuildConfig(c strata.BuildConfig) { s.config = c }

// SetRegistry sets the behavior registry databases in this scope resolve
// against, overriding the default registry.
func (s *Schema) SetRegistry(r *Registry) { s.registry = r }

// AddDatabase attaches the database to this scope. A duplicate database
// name fails with a DuplicateEntityError.
func (s *Schema) AddDatabase(d *Database) (*Database, error) {
	if _, ok := s.byName[d.Name]; ok {
		return nil, strata.NewDuplicateEntityError("database", d.Name, s.Name)
	}
	d.SetSchema(s)
	s.databases = append(s.databases, d)
	s.byName[d.Name] = d
	return d, nil
}

// Database returns the named database.
func (s *Schema) Database(name string) (*Database, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Databases returns the databases in registration order.
func (s *Schema) Databases() []*Database { return s.databases }

// BuildProperty resolves a build property against this scope, then through
// the parent chain. Unset properties resolve to the empty string.
func (s *Schema) BuildProperty(name string) string {
	if s.config != nil {
		if v := s.config.BuildProperty(name); v != "" {
			return v
		}
	}
	if s.parent != nil {
		return s.parent.BuildProperty(name)
	}
	return ""
}
