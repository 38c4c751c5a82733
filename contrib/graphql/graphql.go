// Package graphql exports a finalized schema model as GraphQL type
// definitions (SDL): one object type per table, relation fields derived
// from foreign keys, and a Query type with primary-key lookups.
package graphql

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

// SDL renders the GraphQL schema of the database. The emitted document is
// parsed back through gqlparser before it is returned, so an invalid export
// fails here instead of in the consumer's toolchain.
func SDL(d *schema.Database) (string, error) {
	var b strings.Builder
	if usesTime(d) {
		b.WriteString("scalar Time\n\n")
	}
	for _, t := range d.Tables() {
		if err := writeType(&b, t); err != nil {
			return "", err
		}
	}
	writeQuery(&b, d)

	sdl := b.String()
	if _, err := gqlparser.LoadSchema(&ast.Source{Name: d.Name + ".graphql", Input: sdl}); err != nil {
		return "", fmt.Errorf("graphql export of %q: %w", d.Name, err)
	}
	return sdl, nil
}

func writeType(b *strings.Builder, t *schema.Table) error {
	if t.Description != "" {
		fmt.Fprintf(b, "\"\"\"%s\"\"\"\n", t.Description)
	}
	fmt.Fprintf(b, "type %s {\n", t.GoName())
	for _, c := range t.Columns() {
		typ, err := fieldType(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "  %s: %s\n", fieldName(c.GoName()), typ)
	}
	for _, fk := range t.ForeignKeys() {
		ft := fk.ForeignTable()
		if ft == nil {
			continue
		}
		typ := ft.GoName()
		if requiredColumns(t, fk.LocalColumns) {
			typ += "!"
		}
		fmt.Fprintf(b, "  %s: %s\n", fieldName(ft.GoName()), typ)
	}
	for _, ref := range t.Referrers() {
		rt := ref.Table()
		fmt.Fprintf(b, "  %s: [%s!]!\n", inflect.Pluralize(fieldName(rt.GoName())), rt.GoName())
	}
	b.WriteString("}\n\n")
	return nil
}

func writeQuery(b *strings.Builder, d *schema.Database) {
	b.WriteString("type Query {\n")
	for _, t := range d.Tables() {
		name := fieldName(t.GoName())
		if args := lookupArgs(t); len(args) > 0 {
			fmt.Fprintf(b, "  %s(%s): %s\n", name, strings.Join(args, ", "), t.GoName())
		}
		fmt.Fprintf(b, "  %s: [%s!]!\n", inflect.Pluralize(name), t.GoName())
	}
	b.WriteString("}\n")
}

// lookupArgs renders the primary key columns as query arguments.
func lookupArgs(t *schema.Table) []string {
	pk := t.PrimaryKey()
	args := make([]string, 0, len(pk))
	for _, c := range pk {
		typ, err := fieldType(c)
		if err != nil {
			return nil
		}
		args = append(args, fmt.Sprintf("%s: %s", fieldName(c.GoName()), typ))
	}
	return args
}

// fieldType maps a column to its GraphQL type, with "!" for NOT NULL.
func fieldType(c *schema.Column) (string, error) {
	var base string
	switch c.Type {
	case schema.TypeBoolean:
		base = "Boolean"
	case schema.TypeSmallInt, schema.TypeInteger, schema.TypeBigInt:
		base = "Int"
	case schema.TypeFloat, schema.TypeDouble, schema.TypeDecimal:
		base = "Float"
	case schema.TypeChar, schema.TypeVarchar, schema.TypeText, schema.TypeBlob:
		base = "String"
	case schema.TypeDate, schema.TypeTime, schema.TypeTimestamp:
		base = "Time"
	case schema.TypeUUID:
		base = "ID"
	default:
		return "", strata.NewInvalidArgumentError("type", string(c.Type),
			fmt.Sprintf("column %q has no GraphQL mapping", c.Name))
	}
	if c.Required {
		base += "!"
	}
	return base, nil
}

func fieldName(goName string) string {
	return inflect.CamelizeDownFirst(goName)
}

func requiredColumns(t *schema.Table, names []string) bool {
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok || !c.Required {
			return false
		}
	}
	return true
}

func usesTime(d *schema.Database) bool {
	for _, t := range d.Tables() {
		for _, c := range t.Columns() {
			if c.Type.Temporal() {
				return true
			}
		}
	}
	return false
}
