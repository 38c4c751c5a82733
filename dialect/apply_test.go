package dialect_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/strata/dialect"
)

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		`CREATE TABLE "book" ("id" integer NOT NULL PRIMARY KEY AUTOINCREMENT);`,
		`CREATE UNIQUE INDEX "book_i_1" ON "book" ("id");`,
	}
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(stmts[0])).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(stmts[1])).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, dialect.Apply(context.Background(), db, stmts))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("table exists")
	stmts := []string{`CREATE TABLE "a" ();`, `CREATE TABLE "b" ();`}
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(stmts[0])).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(stmts[1])).WillReturnError(boom)
	mock.ExpectRollback()

	err = dialect.Apply(context.Background(), db, stmts)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "statement 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestApply_SQLite runs the generated DDL against an in-memory database to
// make sure every platform statement is accepted as written.
func TestApply_SQLite(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	db := newBookstore(t)
	stmts, err := dialect.DatabaseSQL(db, mustPlatform(t, dialect.SQLite))
	require.NoError(t, err)
	require.NoError(t, dialect.Apply(context.Background(), conn, stmts))

	var n int
	err = conn.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('book', 'review')`,
	).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = conn.Exec(`INSERT INTO book (title, price) VALUES ('The Go Programming Language', 39.99)`)
	require.NoError(t, err)
	var id int64
	require.NoError(t, conn.QueryRow(`SELECT id FROM book WHERE title LIKE 'The Go%'`).Scan(&id))
	assert.Equal(t, int64(1), id)
}
