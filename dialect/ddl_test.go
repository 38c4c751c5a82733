package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strata"
	"github.com/syssam/strata/dialect"
	"github.com/syssam/strata/schema"
)

// newBookstore builds a finalized two-table model: book with an
// auto-incremented key and a unique title index, review referencing it.
func newBookstore(t *testing.T) *schema.Database {
	t.Helper()
	db := schema.NewDatabase("bookstore")

	book, err := db.AddTable(schema.NewTable("book"))
	require.NoError(t, err)
	_, err = book.AddColumn(schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey().AsAutoIncrement())
	require.NoError(t, err)
	_, err = book.AddColumn(schema.NewColumn("title", schema.TypeVarchar).WithSize(255).AsRequired())
	require.NoError(t, err)
	_, err = book.AddColumn(schema.NewColumn("price", schema.TypeDecimal).WithSize(10).WithScale(2).WithDefault("0"))
	require.NoError(t, err)
	book.AddIndex(schema.NewIndex("title").AsUnique())

	review, err := db.AddTable(schema.NewTable("review"))
	require.NoError(t, err)
	_, err = review.AddColumn(schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey().AsAutoIncrement())
	require.NoError(t, err)
	_, err = review.AddColumn(schema.NewColumn("book_id", schema.TypeInteger).AsRequired())
	require.NoError(t, err)
	_, err = review.AddColumn(schema.NewColumn("comment", schema.TypeText))
	require.NoError(t, err)
	review.AddForeignKey(schema.NewForeignKey("book").
		AddReference("book_id", "id").
		WithOnDelete(schema.Cascade))

	require.NoError(t, db.Finalize())
	return db
}

func mustPlatform(t *testing.T, name string) dialect.Platform {
	t.Helper()
	p, err := dialect.PlatformByName(name)
	require.NoError(t, err)
	return p
}

func TestPlatformByName(t *testing.T) {
	for _, name := range []string{dialect.SQLite, dialect.MySQL, dialect.Postgres} {
		p, err := dialect.PlatformByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}

	_, err := dialect.PlatformByName("oracle")
	assert.True(t, strata.IsInvalidArgumentError(err))
}

func TestCreateTableSQL_SQLite(t *testing.T) {
	db := newBookstore(t)
	p := mustPlatform(t, dialect.SQLite)

	book, _ := db.Table("book")
	sql, err := dialect.CreateTableSQL(book, p)
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "book" (
  "id" integer NOT NULL PRIMARY KEY AUTOINCREMENT,
  "title" varchar(255) NOT NULL,
  "price" decimal(10,2) DEFAULT 0
);`, sql)

	review, _ := db.Table("review")
	sql, err = dialect.CreateTableSQL(review, p)
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "review" (
  "id" integer NOT NULL PRIMARY KEY AUTOINCREMENT,
  "book_id" integer NOT NULL,
  "comment" text,
  CONSTRAINT "review_fk_1" FOREIGN KEY ("book_id") REFERENCES "book" ("id") ON DELETE CASCADE
);`, sql)
}

func TestCreateTableSQL_MySQL(t *testing.T) {
	db := newBookstore(t)
	p := mustPlatform(t, dialect.MySQL)

	review, _ := db.Table("review")
	sql, err := dialect.CreateTableSQL(review, p)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE `review` (\n"+
		"  `id` int NOT NULL AUTO_INCREMENT,\n"+
		"  `book_id` int NOT NULL,\n"+
		"  `comment` text,\n"+
		"  PRIMARY KEY (`id`),\n"+
		"  CONSTRAINT `review_fk_1` FOREIGN KEY (`book_id`) REFERENCES `book` (`id`) ON DELETE CASCADE\n"+
		");", sql)
}

func TestCreateTableSQL_Postgres(t *testing.T) {
	db := newBookstore(t)
	p := mustPlatform(t, dialect.Postgres)

	book, _ := db.Table("book")
	sql, err := dialect.CreateTableSQL(book, p)
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "book" (
  "id" serial NOT NULL,
  "title" varchar(255) NOT NULL,
  "price" decimal(10,2) DEFAULT 0,
  PRIMARY KEY ("id")
);`, sql)
}

func TestDatabaseSQL(t *testing.T) {
	db := newBookstore(t)
	p := mustPlatform(t, dialect.SQLite)

	stmts, err := dialect.DatabaseSQL(db, p)
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], `CREATE TABLE "book"`)
	assert.Equal(t, `CREATE UNIQUE INDEX "book_i_1" ON "book" ("title");`, stmts[1])
	assert.Contains(t, stmts[2], `CREATE TABLE "review"`)
}

func TestDatabaseSQL_SkipSQL(t *testing.T) {
	db := newBookstore(t)
	view, err := db.AddTable(schema.NewTable("sales_view"))
	require.NoError(t, err)
	view.SkipSQL = true
	_, err = view.AddColumn(schema.NewColumn("total", schema.TypeInteger))
	require.NoError(t, err)

	stmts, err := dialect.DatabaseSQL(db, mustPlatform(t, dialect.SQLite))
	require.NoError(t, err)
	for _, s := range stmts {
		assert.NotContains(t, s, "sales_view")
	}
}

func TestDatabaseSQL_TablePrefix(t *testing.T) {
	db := newBookstore(t)
	db.TablePrefix = "app_"
	p := mustPlatform(t, dialect.Postgres)

	review, _ := db.Table("review")
	sql, err := dialect.CreateTableSQL(review, p)
	require.NoError(t, err)
	assert.Contains(t, sql, `CREATE TABLE "app_review"`)
	assert.Contains(t, sql, `REFERENCES "app_book" ("id")`)
}

func TestDropSQL(t *testing.T) {
	db := newBookstore(t)
	stmts := dialect.DropSQL(db, mustPlatform(t, dialect.MySQL))
	require.Len(t, stmts, 2)
	assert.Equal(t, "DROP TABLE IF EXISTS `review`;", stmts[0])
	assert.Equal(t, "DROP TABLE IF EXISTS `book`;", stmts[1])
}
