package dialect

import (
	"fmt"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

type sqlitePlatform struct{}

func (sqlitePlatform) Name() string { return SQLite }

func (sqlitePlatform) QuoteIdentifier(name string) string { return quoteDouble(name) }

// TypeSQL maps the model type to a sqlite column affinity. Integer types
// collapse to "integer" so auto-incremented keys stay rowid-backed.
func (sqlitePlatform) TypeSQL(c *schema.Column) (string, error) {
	switch c.Type {
	case schema.TypeBoolean:
		return "boolean", nil
	case schema.TypeSmallInt, schema.TypeInteger, schema.TypeBigInt:
		return "integer", nil
	case schema.TypeFloat, schema.TypeDouble:
		return "real", nil
	case schema.TypeDecimal:
		return decimalSQL("decimal", c), nil
	case schema.TypeChar:
		return sizedSQL("char", c.Size), nil
	case schema.TypeVarchar:
		return sizedSQL("varchar", c.Size), nil
	case schema.TypeText:
		return "text", nil
	case schema.TypeDate:
		return "date", nil
	case schema.TypeTime:
		return "time", nil
	case schema.TypeTimestamp:
		return "timestamp", nil
	case schema.TypeBlob:
		return "blob", nil
	case schema.TypeUUID:
		return "uuid", nil
	default:
		return "", strata.NewInvalidArgumentError("type", string(c.Type),
			fmt.Sprintf("column %q has no sqlite mapping", c.Name))
	}
}

func (sqlitePlatform) AutoIncrementSQL() string { return "AUTOINCREMENT" }

func (sqlitePlatform) InlinePrimaryKey() bool { return true }
