// Package strata compiles database-agnostic schema descriptions into
// platform-specific SQL DDL and generated data-access code.
//
// A schema is loaded as a declarative tree (see compiler/load), materialized
// into a mutable model (see schema), extended by behaviors (see
// contrib/behavior), finalized, and finally emitted (see compiler/gen and
// dialect).
//
// The root package holds the small set of contracts shared by every layer:
// the Platform handle threaded through compilation, the BuildConfig lookup
// used to seed compilation defaults, and the error taxonomy.
package strata

// Version is the current strata version.
const Version = "0.3.0"

// Platform identifies the target database platform of a compilation.
//
// The schema model never interprets the platform beyond its name; it only
// carries it through to the emitters. Concrete platforms living in the
// dialect package add quoting and type mapping on top of this interface.
type Platform interface {
	// Name returns the platform name (e.g. "sqlite", "mysql", "postgres").
	Name() string
}

// BuildConfig is an external key-value lookup used to seed compilation
// defaults such as the table prefix, the default string serialization
// format, and the default-behaviors list.
//
// Implementations return the empty string for unset properties. Lookups
// chain through parent schema scopes (see schema.Schema).
type BuildConfig interface {
	// BuildProperty returns the value of the named build property,
	// or the empty string if the property is not set.
	BuildProperty(name string) string
}

// BuildProperties is a map-backed BuildConfig.
type BuildProperties map[string]string

// BuildProperty implements BuildConfig.
func (p BuildProperties) BuildProperty(name string) string { return p[name] }
