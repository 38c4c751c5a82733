// Package dialect maps the platform-agnostic schema model to concrete SQL
// platforms.
//
// This package defines the Platform interface and its implementations,
// DDL generation over finalized models, and an executor that applies the
// generated statements to a live database.
//
// # Supported Platforms
//
// The following platforms are supported:
//
//   - Postgres: PostgreSQL database
//   - MySQL: MySQL/MariaDB database
//   - SQLite: SQLite database
//
// Each platform is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Typical Use
//
//	p, err := dialect.PlatformByName(dialect.Postgres)
//	stmts, err := dialect.DatabaseSQL(db, p)
//	err = dialect.Apply(ctx, conn, stmts)
package dialect
