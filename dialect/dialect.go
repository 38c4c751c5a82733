package dialect

import (
	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

// Platform names.
const (
	// SQLite is the sqlite platform name.
	SQLite = "sqlite"
	// MySQL is the mysql platform name.
	MySQL = "mysql"
	// Postgres is the postgres platform name.
	Postgres = "postgres"
)

// Platform renders the platform-specific parts of a column definition.
// The generic DDL assembly in this package handles everything shared
// between platforms and calls into the Platform for the rest.
type Platform interface {
	strata.Platform

	// QuoteIdentifier quotes a schema object name.
	QuoteIdentifier(name string) string

	// TypeSQL renders the SQL type of the column, size and scale included.
	// Auto-incremented columns may render as a dedicated type (e.g. the
	// postgres serial family).
	TypeSQL(c *schema.Column) (string, error)

	// AutoIncrementSQL returns the clause appended to an auto-incremented
	// column definition, or the empty string when the rendered type
	// already carries auto-increment semantics.
	AutoIncrementSQL() string

	// InlinePrimaryKey reports whether a single-column auto-incremented
	// primary key must be declared on the column definition itself
	// instead of a table-level PRIMARY KEY constraint.
	InlinePrimaryKey() bool
}

// PlatformByName returns the named platform implementation.
func PlatformByName(name string) (Platform, error) {
	switch name {
	case SQLite:
		return sqlitePlatform{}, nil
	case MySQL:
		return mysqlPlatform{}, nil
	case Postgres:
		return postgresPlatform{}, nil
	default:
		return nil, strata.NewInvalidArgumentError("platform", name,
			"must be one of sqlite, mysql, postgres")
	}
}
