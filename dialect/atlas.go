package dialect

import (
	"fmt"

	atlas "ariga.io/atlas/sql/schema"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

// AtlasSchema converts a finalized database into the atlas sql/schema model,
// the entry point for migration tooling that diffs and plans against a live
// database. Tables flagged SkipSQL are left out, matching DatabaseSQL.
func AtlasSchema(d *schema.Database) (*atlas.Schema, error) {
	s := &atlas.Schema{Name: d.Name}
	tables := make(map[string]*atlas.Table)
	columns := make(map[string]map[string]*atlas.Column)

	for _, t := range d.Tables() {
		if t.SkipSQL {
			continue
		}
		at := &atlas.Table{Name: t.SQLName(), Schema: s}
		cols := make(map[string]*atlas.Column)
		for _, c := range t.Columns() {
			typ, err := atlasType(c)
			if err != nil {
				return nil, err
			}
			ac := &atlas.Column{
				Name: c.Name,
				Type: &atlas.ColumnType{Type: typ, Null: !c.Required},
			}
			switch {
			case c.DefaultExpr != "":
				ac.Default = &atlas.RawExpr{X: c.DefaultExpr}
			case c.DefaultValue != "":
				ac.Default = &atlas.Literal{V: defaultSQL(c)}
			}
			at.Columns = append(at.Columns, ac)
			cols[c.Name] = ac
		}
		if pk := t.PrimaryKey(); len(pk) > 0 {
			ix := &atlas.Index{Unique: true, Table: at}
			for i, c := range pk {
				ix.Parts = append(ix.Parts, &atlas.IndexPart{SeqNo: i, C: cols[c.Name]})
			}
			at.PrimaryKey = ix
		}
		for _, ix := range t.Indexes() {
			aix := &atlas.Index{Name: ix.Name, Unique: ix.Unique, Table: at}
			for i, name := range ix.Columns {
				c, ok := cols[name]
				if !ok {
					return nil, strata.NewInvalidArgumentError("index", ix.Name,
						fmt.Sprintf("index column %q not in table %q", name, t.Name))
				}
				aix.Parts = append(aix.Parts, &atlas.IndexPart{SeqNo: i, C: c})
			}
			at.Indexes = append(at.Indexes, aix)
		}
		s.Tables = append(s.Tables, at)
		tables[t.Name] = at
		columns[t.Name] = cols
	}

	// Foreign keys need every table materialized first.
	for _, t := range d.Tables() {
		if t.SkipSQL {
			continue
		}
		at := tables[t.Name]
		for _, fk := range t.ForeignKeys() {
			ref, ok := tables[fk.ForeignTableName]
			if !ok {
				return nil, strata.NewInvalidArgumentError("foreignKey", fk.Name,
					fmt.Sprintf("references table %q not in the emitted schema", fk.ForeignTableName))
			}
			afk := &atlas.ForeignKey{
				Symbol:   fk.Name,
				Table:    at,
				RefTable: ref,
				OnDelete: atlas.ReferenceOption(fk.OnDelete),
				OnUpdate: atlas.ReferenceOption(fk.OnUpdate),
			}
			for _, name := range fk.LocalColumns {
				afk.Columns = append(afk.Columns, columns[t.Name][name])
			}
			for _, name := range fk.ForeignColumns {
				afk.RefColumns = append(afk.RefColumns, columns[fk.ForeignTableName][name])
			}
			at.ForeignKeys = append(at.ForeignKeys, afk)
		}
	}
	return s, nil
}

func atlasType(c *schema.Column) (atlas.Type, error) {
	switch c.Type {
	case schema.TypeBoolean:
		return &atlas.BoolType{T: "boolean"}, nil
	case schema.TypeSmallInt:
		return &atlas.IntegerType{T: "smallint"}, nil
	case schema.TypeInteger:
		return &atlas.IntegerType{T: "integer"}, nil
	case schema.TypeBigInt:
		return &atlas.IntegerType{T: "bigint"}, nil
	case schema.TypeFloat:
		return &atlas.FloatType{T: "float", Precision: c.Size}, nil
	case schema.TypeDouble:
		return &atlas.FloatType{T: "double precision"}, nil
	case schema.TypeDecimal:
		return &atlas.DecimalType{T: "decimal", Precision: c.Size, Scale: c.Scale}, nil
	case schema.TypeChar:
		return &atlas.StringType{T: "char", Size: c.Size}, nil
	case schema.TypeVarchar:
		return &atlas.StringType{T: "varchar", Size: c.Size}, nil
	case schema.TypeText:
		return &atlas.StringType{T: "text"}, nil
	case schema.TypeDate:
		return &atlas.TimeType{T: "date"}, nil
	case schema.TypeTime:
		return &atlas.TimeType{T: "time"}, nil
	case schema.TypeTimestamp:
		return &atlas.TimeType{T: "timestamp"}, nil
	case schema.TypeBlob:
		return &atlas.BinaryType{T: "blob"}, nil
	case schema.TypeUUID:
		return &atlas.UUIDType{T: "uuid"}, nil
	default:
		return nil, strata.NewInvalidArgumentError("type", string(c.Type),
			fmt.Sprintf("column %q has no atlas mapping", c.Name))
	}
}
