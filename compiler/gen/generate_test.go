package gen

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatten collapses gofmt column alignment so assertions can match the
// single-spaced form of a declaration.
func flatten(s string) string {
	return regexp.MustCompile(`[ \t]+`).ReplaceAllString(s, " ")
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGraph(MustNewConfig(
		WithTarget(dir),
		WithPackage("model"),
	), descriptorFixture(t, "schema.yaml"))
	require.NoError(t, err)
	require.NoError(t, Generate(context.Background(), g))

	read := func(name string) string {
		buf, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return flatten(string(buf))
	}

	book := read("book.go")
	assert.Contains(t, book, "// Code generated by strata. DO NOT EDIT.")
	assert.Contains(t, book, "package model")
	assert.Contains(t, book, `BookTable = "book"`)
	assert.Contains(t, book, `BookColumnTitle = "title"`)
	assert.Contains(t, book, "type Book struct")
	assert.Contains(t, book, "Title string")
	assert.Contains(t, book, `db:"title"`)
	// The moved column is gone from the owner and lives in the companion.
	assert.NotContains(t, book, "Summary")
	i18n := read("booki18n.go")
	assert.Contains(t, i18n, "type BookI18n struct")
	assert.Contains(t, i18n, `BookI18nColumnLocale = "locale"`)

	// Optional columns render as pointers, required ones as values.
	assert.Contains(t, i18n, "Summary *string")

	// Behavior-added columns show up in the generated struct.
	review := read("review.go")
	assert.Contains(t, review, "ID int32")
	assert.Contains(t, review, "CreatedAt time.Time")

	// The string format of the database drives String().
	assert.Contains(t, book, "json.Marshal")

	tables := read("tables.go")
	assert.Contains(t, tables, "BookTable")
	assert.Contains(t, tables, "ReviewTable")
	assert.Contains(t, tables, "BookI18nTable")
}

func TestGenerate_MissingTarget(t *testing.T) {
	g, err := NewGraph(nil, descriptorFixture(t, "minimal.yaml"))
	require.NoError(t, err)
	err = Generate(context.Background(), g)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestGenerate_TablePrefixInConstants(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGraph(MustNewConfig(
		WithTarget(dir),
		WithBuildProperty("tablePrefix", "app_"),
	), descriptorFixture(t, "minimal.yaml"))
	require.NoError(t, err)
	require.NoError(t, Generate(context.Background(), g))

	buf, err := os.ReadFile(filepath.Join(dir, "item.go"))
	require.NoError(t, err)
	// The emitted constant carries the prefix; struct naming does not.
	assert.Contains(t, flatten(string(buf)), `ItemTable = "app_item"`)
	assert.Contains(t, flatten(string(buf)), "type Item struct")
}
