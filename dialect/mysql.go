package dialect

import (
	"fmt"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

type mysqlPlatform struct{}

func (mysqlPlatform) Name() string { return MySQL }

func (mysqlPlatform) QuoteIdentifier(name string) string { return quoteBacktick(name) }

func (mysqlPlatform) TypeSQL(c *schema.Column) (string, error) {
	switch c.Type {
	case schema.TypeBoolean:
		return "boolean", nil
	case schema.TypeSmallInt:
		return "smallint", nil
	case schema.TypeInteger:
		return "int", nil
	case schema.TypeBigInt:
		return "bigint", nil
	case schema.TypeFloat:
		return "float", nil
	case schema.TypeDouble:
		return "double", nil
	case schema.TypeDecimal:
		return decimalSQL("decimal", c), nil
	case schema.TypeChar:
		return sizedSQL("char", c.Size), nil
	case schema.TypeVarchar:
		// mysql requires an explicit length.
		if c.Size == 0 {
			return "varchar(255)", nil
		}
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
		return "char(36)", nil
	default:
		return "", strata.NewInvalidArgumentError("type", string(c.Type),
			fmt.Sprintf("column %q has no mysql mapping", c.Name))
	}
}

func (mysqlPlatform) AutoIncrementSQL() string { return "AUTO_INCREMENT" }

func (mysqlPlatform) InlinePrimaryKey() bool { return false }
