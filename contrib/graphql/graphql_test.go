package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strata/contrib/graphql"
	"github.com/syssam/strata/schema"
)

func newBookstore(t *testing.T) *schema.Database {
	t.Helper()
	db := schema.NewDatabase("bookstore")

	book, err := db.AddTable(schema.NewTable("book"))
	require.NoError(t, err)
	book.Description = "A published book"
	_, err = book.AddColumn(schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey().AsAutoIncrement())
	require.NoError(t, err)
	_, err = book.AddColumn(schema.NewColumn("title", schema.TypeVarchar).WithSize(255).AsRequired())
	require.NoError(t, err)
	_, err = book.AddColumn(schema.NewColumn("published_at", schema.TypeDate))
	require.NoError(t, err)

	review, err := db.AddTable(schema.NewTable("review"))
	require.NoError(t, err)
	_, err = review.AddColumn(schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey().AsAutoIncrement())
	require.NoError(t, err)
	_, err = review.AddColumn(schema.NewColumn("book_id", schema.TypeInteger).AsRequired())
	require.NoError(t, err)
	_, err = review.AddColumn(schema.NewColumn("rating", schema.TypeSmallInt).AsRequired())
	require.NoError(t, err)
	review.AddForeignKey(schema.NewForeignKey("book").
		AddReference("book_id", "id").
		WithOnDelete(schema.Cascade))

	require.NoError(t, db.Finalize())
	return db
}

func TestSDL(t *testing.T) {
	db := newBookstore(t)
	sdl, err := graphql.SDL(db)
	require.NoError(t, err)

	assert.Contains(t, sdl, "scalar Time")
	assert.Contains(t, sdl, `"""A published book"""`)
	assert.Contains(t, sdl, "type Book {")
	assert.Contains(t, sdl, "id: Int!")
	assert.Contains(t, sdl, "title: String!")
	assert.Contains(t, sdl, "publishedAt: Time\n")

	// Relations in both directions.
	assert.Contains(t, sdl, "book: Book!")
	assert.Contains(t, sdl, "reviews: [Review!]!")

	assert.Contains(t, sdl, "type Query {")
	assert.Contains(t, sdl, "book(id: Int!): Book")
	assert.Contains(t, sdl, "books: [Book!]!")
}

func TestSDL_NoTemporalColumns(t *testing.T) {
	db := schema.NewDatabase("plain")
	tag, err := db.AddTable(schema.NewTable("tag"))
	require.NoError(t, err)
	_, err = tag.AddColumn(schema.NewColumn("id", schema.TypeUUID).AsPrimaryKey())
	require.NoError(t, err)
	_, err = tag.AddColumn(schema.NewColumn("label", schema.TypeVarchar).WithSize(64).AsRequired())
	require.NoError(t, err)
	require.NoError(t, db.Finalize())

	sdl, err := graphql.SDL(db)
	require.NoError(t, err)
	assert.NotContains(t, sdl, "scalar Time")
	assert.Contains(t, sdl, "id: ID!")
	assert.Contains(t, sdl, "tag(id: ID!): Tag")
}
