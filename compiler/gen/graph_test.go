package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/syssam/strata/compiler/load"
	"github.com/syssam/strata/schema"

	_ "github.com/syssam/strata/contrib/behavior"
)

func descriptorFixture(t *testing.T, name string) *load.Database {
	t.Helper()
	ar, err := txtar.ParseFile("testdata/bookstore.txtar")
	require.NoError(t, err)
	for _, f := range ar.Files {
		if f.Name == name {
			d, err := load.Parse(f.Data)
			require.NoError(t, err)
			return d
		}
	}
	t.Fatalf("fixture %q not found", name)
	return nil
}

func TestNewGraph(t *testing.T) {
	g, err := NewGraph(MustNewConfig(
		WithBuildProperty("tablePrefix", "shop_"),
	), descriptorFixture(t, "schema.yaml"))
	require.NoError(t, err)
	db := g.Database
	assert.True(t, db.Finalized())

	book, ok := db.Table("book")
	require.True(t, ok)
	assert.Equal(t, "shop_book", book.SQLName())
	assert.Equal(t, "JSON", db.DefaultStringFormat())

	// The domain column picked up the domain attributes.
	price, ok := book.Column("price")
	require.True(t, ok)
	assert.Equal(t, schema.TypeDecimal, price.Type)
	assert.Equal(t, 10, price.Size)

	// The i18n behavior produced the companion table and moved the column.
	i18n, ok := db.Table("book_i18n")
	require.True(t, ok)
	assert.False(t, book.HasColumn("summary"))
	assert.True(t, i18n.HasColumn("summary"))
	locale, _ := i18n.Column("locale")
	assert.Equal(t, "fr_FR", locale.DefaultValue)

	// auto_add_pk gave review a key before timestampable ran.
	review, ok := db.Table("review")
	require.True(t, ok)
	id, ok := review.Column("id")
	require.True(t, ok)
	assert.True(t, id.AutoIncrement)
	assert.True(t, review.HasColumn("created_at"))

	// Referrers wired across behavior-created tables.
	require.NotEmpty(t, book.Referrers())
}

func TestNewGraph_DefaultBehaviors(t *testing.T) {
	g, err := NewGraph(MustNewConfig(
		WithDefaultBehaviors("timestampable"),
	), descriptorFixture(t, "minimal.yaml"))
	require.NoError(t, err)
	item, ok := g.Database.Table("item")
	require.True(t, ok)
	assert.True(t, item.HasColumn("created_at"))
	assert.True(t, item.HasColumn("updated_at"))
}

func TestNewGraph_Errors(t *testing.T) {
	t.Run("UnknownColumnType", func(t *testing.T) {
		_, err := NewGraph(nil, &load.Database{
			Name: "db",
			Tables: []*load.Table{{
				Name:    "t",
				Columns: []*load.Column{{Name: "c", Type: "money"}},
			}},
		})
		require.Error(t, err)
		assert.True(t, IsModelError(err))
		assert.ErrorIs(t, err, ErrInvalidModel)
	})

	t.Run("UnknownBehavior", func(t *testing.T) {
		_, err := NewGraph(nil, &load.Database{
			Name: "db",
			Tables: []*load.Table{{
				Name:      "t",
				Columns:   []*load.Column{{Name: "c", Type: "integer"}},
				Behaviors: []*load.Behavior{{Name: "sluggable"}},
			}},
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "sluggable")
	})

	t.Run("UnknownReferenceAction", func(t *testing.T) {
		_, err := NewGraph(nil, &load.Database{
			Name: "db",
			Tables: []*load.Table{{
				Name:    "t",
				Columns: []*load.Column{{Name: "c", Type: "integer"}},
				ForeignKeys: []*load.ForeignKey{{
					ForeignTable: "t",
					OnDelete:     "obliterate",
					References:   []*load.Reference{{Local: "c", Foreign: "c"}},
				}},
			}},
		})
		require.Error(t, err)
		assert.True(t, IsModelError(err))
	})

	t.Run("IndexOverMissingColumn", func(t *testing.T) {
		_, err := NewGraph(nil, &load.Database{
			Name: "db",
			Tables: []*load.Table{{
				Name:    "t",
				Columns: []*load.Column{{Name: "c", Type: "integer"}},
				Indexes: []*load.Index{{Columns: []load.IndexColumn{{Name: "missing"}}}},
			}},
		})
		require.Error(t, err)
		assert.True(t, IsModelError(err))
	})
}

func TestGraph_PackageName(t *testing.T) {
	d := descriptorFixture(t, "minimal.yaml")
	g, err := NewGraph(MustNewConfig(WithPackage("model")), d)
	require.NoError(t, err)
	assert.Equal(t, "model", g.PackageName())

	g, err = NewGraph(nil, d)
	require.NoError(t, err)
	assert.Equal(t, "tiny", g.PackageName())
}
