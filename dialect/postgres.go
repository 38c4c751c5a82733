package dialect

import (
	"fmt"

	"ariga.io/atlas/sql/postgres"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

type postgresPlatform struct{}

func (postgresPlatform) Name() string { return Postgres }

func (postgresPlatform) QuoteIdentifier(name string) string { return quoteDouble(name) }

// TypeSQL maps the model type to a postgres type. Auto-incremented integer
// columns render as the serial family, which carries the sequence with the
// column definition.
func (postgresPlatform) TypeSQL(c *schema.Column) (string, error) {
	if c.AutoIncrement {
		switch c.Type {
		case schema.TypeSmallInt:
			return postgres.TypeSmallSerial, nil
		case schema.TypeInteger:
			return postgres.TypeSerial, nil
		case schema.TypeBigInt:
			return postgres.TypeBigSerial, nil
		}
	}
	switch c.Type {
	case schema.TypeBoolean:
		return "boolean", nil
	case schema.TypeSmallInt:
		return "smallint", nil
	case schema.TypeInteger:
		return "integer", nil
	case schema.TypeBigInt:
		return "bigint", nil
	case schema.TypeFloat:
		return "real", nil
	case schema.TypeDouble:
		return "double precision", nil
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
		return "bytea", nil
	case schema.TypeUUID:
		return "uuid", nil
	default:
		return "", strata.NewInvalidArgumentError("type", string(c.Type),
			fmt.Sprintf("column %q has no postgres mapping", c.Name))
	}
}

func (postgresPlatform) AutoIncrementSQL() string { return "" }

func (postgresPlatform) InlinePrimaryKey() bool { return false }
