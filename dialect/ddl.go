package dialect

import (
	"fmt"
	"strings"

	"github.com/syssam/strata/schema"
)

// DatabaseSQL renders the full DDL of the finalized database: one CREATE
// TABLE per table in declaration order, each followed by its CREATE INDEX
// statements. Tables flagged SkipSQL are left out.
func DatabaseSQL(d *schema.Database, p Platform) ([]string, error) {
	var stmts []string
	for _, t := range d.Tables() {
		if t.SkipSQL {
			continue
		}
		ct, err := CreateTableSQL(t, p)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, ct)
		for _, ix := range t.Indexes() {
			stmts = append(stmts, IndexSQL(t, ix, p))
		}
	}
	return stmts, nil
}

// DropSQL renders DROP TABLE IF EXISTS statements in reverse declaration
// order, so referenced tables are dropped after their referrers.
func DropSQL(d *schema.Database, p Platform) []string {
	tables := d.Tables()
	var stmts []string
	for i := len(tables) - 1; i >= 0; i-- {
		t := tables[i]
		if t.SkipSQL {
			continue
		}
		stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s;", p.QuoteIdentifier(t.SQLName())))
	}
	return stmts
}

// CreateTableSQL renders the CREATE TABLE statement for a single table,
// with column definitions, the primary key, and foreign key constraints.
func CreateTableSQL(t *schema.Table, p Platform) (string, error) {
	pk := t.PrimaryKey()
	inlinePK := p.InlinePrimaryKey() && len(pk) == 1 && pk[0].AutoIncrement

	var defs []string
	for _, c := range t.Columns() {
		def, err := columnSQL(c, p, inlinePK && c == pk[0])
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
	}
	if len(pk) > 0 && !inlinePK {
		names := make([]string, len(pk))
		for i, c := range pk {
			names[i] = p.QuoteIdentifier(c.Name)
		}
		defs = append(defs, "PRIMARY KEY ("+strings.Join(names, ", ")+")")
	}
	for _, fk := range t.ForeignKeys() {
		defs = append(defs, foreignKeySQL(fk, p))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", p.QuoteIdentifier(t.SQLName()))
	for i, def := range defs {
		b.WriteString("  " + def)
		if i < len(defs)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String(), nil
}

// IndexSQL renders the CREATE INDEX statement for a table index.
func IndexSQL(t *schema.Table, ix *schema.Index, p Platform) string {
	names := make([]string, len(ix.Columns))
	for i, name := range ix.Columns {
		names[i] = p.QuoteIdentifier(name)
	}
	unique := ""
	if ix.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s (%s);",
		unique, p.QuoteIdentifier(ix.Name), p.QuoteIdentifier(t.SQLName()), strings.Join(names, ", "))
}

func columnSQL(c *schema.Column, p Platform, inlinePK bool) (string, error) {
	typ, err := p.TypeSQL(c)
	if err != nil {
		return "", err
	}
	parts := []string{p.QuoteIdentifier(c.Name), typ}
	if c.Required {
		parts = append(parts, "NOT NULL")
	}
	if c.HasDefault() {
		parts = append(parts, "DEFAULT", defaultSQL(c))
	}
	if inlinePK {
		parts = append(parts, "PRIMARY KEY")
		if ai := p.AutoIncrementSQL(); ai != "" {
			parts = append(parts, ai)
		}
	} else if c.AutoIncrement {
		if ai := p.AutoIncrementSQL(); ai != "" {
			parts = append(parts, ai)
		}
	}
	if c.Unique && !c.PrimaryKey {
		parts = append(parts, "UNIQUE")
	}
	return strings.Join(parts, " "), nil
}

func foreignKeySQL(fk *schema.ForeignKey, p Platform) string {
	local := make([]string, len(fk.LocalColumns))
	for i, name := range fk.LocalColumns {
		local[i] = p.QuoteIdentifier(name)
	}
	foreign := make([]string, len(fk.ForeignColumns))
	for i, name := range fk.ForeignColumns {
		foreign[i] = p.QuoteIdentifier(name)
	}
	ftName := fk.ForeignTableName
	if ft := fk.ForeignTable(); ft != nil {
		ftName = ft.SQLName()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
		p.QuoteIdentifier(fk.Name), strings.Join(local, ", "),
		p.QuoteIdentifier(ftName), strings.Join(foreign, ", "))
	if fk.OnUpdate != "" {
		b.WriteString(" ON UPDATE " + string(fk.OnUpdate))
	}
	if fk.OnDelete != "" {
		b.WriteString(" ON DELETE " + string(fk.OnDelete))
	}
	return b.String()
}

// defaultSQL renders the DEFAULT clause value. Expression defaults pass
// through verbatim; literals quote unless the column type is numeric or
// boolean.
func defaultSQL(c *schema.Column) string {
	if c.DefaultExpr != "" {
		return c.DefaultExpr
	}
	if c.Type.Numeric() || c.Type == schema.TypeBoolean {
		return c.DefaultValue
	}
	return "'" + strings.ReplaceAll(c.DefaultValue, "'", "''") + "'"
}

func quoteDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteBacktick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func sizedSQL(base string, size int) string {
	if size == 0 {
		return base
	}
	return fmt.Sprintf("%s(%d)", base, size)
}

func decimalSQL(base string, c *schema.Column) string {
	switch {
	case c.Size > 0 && c.Scale > 0:
		return fmt.Sprintf("%s(%d,%d)", base, c.Size, c.Scale)
	case c.Size > 0:
		return fmt.Sprintf("%s(%d)", base, c.Size)
	default:
		return base
	}
}
