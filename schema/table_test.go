package schema_test

import (
	"testing"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Columns(t *testing.T) {
	t.Run("Duplicate", func(t *testing.T) {
		tbl := schema.NewTable("book")
		_, err := tbl.AddColumn(schema.NewColumn("title", schema.TypeVarchar))
		require.NoError(t, err)
		_, err = tbl.AddColumn(schema.NewColumn("title", schema.TypeText))
		require.Error(t, err)
		assert.True(t, strata.IsDuplicateEntityError(err))
		var dup *strata.DuplicateEntityError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "column", dup.Kind)
	})

	t.Run("Remove", func(t *testing.T) {
		tbl := schema.NewTable("book")
		_, err := tbl.AddColumn(schema.NewColumn("title", schema.TypeVarchar))
		require.NoError(t, err)
		_, err = tbl.AddColumn(schema.NewColumn("summary", schema.TypeText))
		require.NoError(t, err)

		col, ok := tbl.RemoveColumn("title")
		require.True(t, ok)
		assert.Equal(t, "title", col.Name)
		assert.False(t, tbl.HasColumn("title"))
		assert.Len(t, tbl.Columns(), 1)

		_, ok = tbl.RemoveColumn("title")
		assert.False(t, ok)
	})

	t.Run("PrimaryKey", func(t *testing.T) {
		tbl := schema.NewTable("book")
		id := schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey().AsAutoIncrement()
		_, err := tbl.AddColumn(id)
		require.NoError(t, err)
		_, err = tbl.AddColumn(schema.NewColumn("title", schema.TypeVarchar))
		require.NoError(t, err)

		require.True(t, tbl.HasPrimaryKey())
		pk := tbl.PrimaryKey()
		require.Len(t, pk, 1)
		assert.Equal(t, "id", pk[0].Name)
		assert.True(t, pk[0].Required)

		ai, ok := tbl.AutoIncrementColumn()
		require.True(t, ok)
		assert.Equal(t, "id", ai.Name)
	})
}

func TestTable_SQLName(t *testing.T) {
	db := schema.NewDatabase("bookstore")
	db.TablePrefix = "app_"
	tbl, err := db.AddTable(schema.NewTable("book"))
	require.NoError(t, err)
	assert.Equal(t, "app_book", tbl.SQLName())
	assert.Equal(t, "book", tbl.Name)
}

func TestTable_GoName(t *testing.T) {
	tbl := schema.NewTable("author_book")
	assert.Equal(t, "AuthorBook", tbl.GoName())

	over := schema.NewTable("rss_feed")
	over.SetGoName("RSSFeed")
	assert.Equal(t, "RSSFeed", over.GoName())

	col := schema.NewColumn("isbn_13", schema.TypeVarchar)
	_, err := tbl.AddColumn(col)
	require.NoError(t, err)
	assert.Equal(t, "Isbn13", col.GoName())

	// Common initialisms stay uppercased in derived names.
	id := schema.NewColumn("id", schema.TypeInteger)
	_, err = tbl.AddColumn(id)
	require.NoError(t, err)
	assert.Equal(t, "ID", id.GoName())

	ref := schema.NewColumn("book_id", schema.TypeInteger)
	_, err = tbl.AddColumn(ref)
	require.NoError(t, err)
	assert.Equal(t, "BookID", ref.GoName())
}

func TestAddAcronym(t *testing.T) {
	schema.AddAcronym("ACME")
	tbl := schema.NewTable("acme_order")
	assert.Equal(t, "ACMEOrder", tbl.GoName())
}

func TestTable_Behaviors(t *testing.T) {
	t.Run("LastRegistrationWins", func(t *testing.T) {
		tbl := schema.NewTable("book")
		first := &orderedBehavior{}
		first.SetName("stamp")
		first.SetParameter("create_column", "created_at")
		second := &orderedBehavior{}
		second.SetName("stamp")
		second.SetParameter("create_column", "created_on")

		tbl.AddBehavior(first)
		tbl.AddBehavior(second)

		require.Len(t, tbl.Behaviors(), 1)
		got, ok := tbl.Behavior("stamp")
		require.True(t, ok)
		assert.Equal(t, "created_on", got.Parameter("create_column"))
	})

	t.Run("BindingMovesOwnership", func(t *testing.T) {
		db := schema.NewDatabase("bookstore")
		tbl, err := db.AddTable(schema.NewTable("book"))
		require.NoError(t, err)
		b := &orderedBehavior{}
		b.SetName("stamp")
		db.AddBehavior(b)
		// Re-registering at table level rebinds the behavior.
		tbl.AddBehavior(b)
		assert.Equal(t, tbl, b.Table())
		assert.Equal(t, db, b.Database())
	})
}

func TestTable_HeavyIndexing(t *testing.T) {
	db := schema.NewDatabase("bookstore")
	tbl := schema.NewTable("book_tag")
	tbl.HeavyIndexing = true
	for _, name := range []string{"book_id", "tag_id", "rank"} {
		_, err := tbl.AddColumn(schema.NewColumn(name, schema.TypeInteger).AsPrimaryKey())
		require.NoError(t, err)
	}
	_, err := db.AddTable(tbl)
	require.NoError(t, err)
	require.NoError(t, db.Finalize())

	var covered [][]string
	for _, ix := range tbl.Indexes() {
		covered = append(covered, ix.Columns)
	}
	// Every proper prefix of the composite key gets an index.
	assert.Contains(t, covered, []string{"book_id"})
	assert.Contains(t, covered, []string{"book_id", "tag_id"})
	assert.NotContains(t, covered, []string{"book_id", "tag_id", "rank"})
}

func TestTable_ConstraintNaming(t *testing.T) {
	db := schema.NewDatabase("bookstore")
	author, err := db.AddTable(schema.NewTable("author"))
	require.NoError(t, err)
	_, err = author.AddColumn(schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey())
	require.NoError(t, err)

	book := schema.NewTable("book")
	_, err = book.AddColumn(schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey())
	require.NoError(t, err)
	_, err = book.AddColumn(schema.NewColumn("author_id", schema.TypeInteger))
	require.NoError(t, err)
	book.AddForeignKey(schema.NewForeignKey("author").AddReference("author_id", "id"))
	book.AddIndex(schema.NewIndex("author_id"))
	_, err = db.AddTable(book)
	require.NoError(t, err)

	require.NoError(t, db.Finalize())
	assert.Equal(t, "book_fk_1", book.ForeignKeys()[0].Name)
	assert.Equal(t, "book_i_1", book.Indexes()[0].Name)
}
