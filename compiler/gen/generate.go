package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/strata/schema"
)

// Generate emits the data-access code for the graph: one file per table
// with the entity struct and its column constants, plus a shared file
// indexing every table. Files are written in parallel; jennifer tracks
// imports and renders formatted output, so no goimports pass is needed.
func Generate(ctx context.Context, g *Graph) error {
	if g.Target == "" {
		return NewConfigError("Target", nil, "missing target directory")
	}
	if err := os.MkdirAll(g.Target, 0o755); err != nil {
		return err
	}
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers())
	for _, t := range g.Database.Tables() {
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			name := strings.ToLower(t.GoName()) + ".go"
			return g.writeFile(g.entityFile(t), name)
		})
	}
	errg.Go(func() error {
		return g.writeFile(g.tablesFile(), "tables.go")
	})
	return errg.Wait()
}

// entityFile builds the per-table file: table and column name constants,
// the entity struct, and its string representation.
func (g *Graph) entityFile(t *schema.Table) *jen.File {
	f := g.newFile()
	entity := t.GoName()

	f.Commentf("%sTable is the emitted SQL name of the %s table.", entity, t.Name)
	f.Const().Id(entity + "Table").Op("=").Lit(t.SQLName())
	f.Line()

	f.Commentf("Column names of the %s table.", t.Name)
	f.Const().DefsFunc(func(d *jen.Group) {
		for _, c := range t.Columns() {
			d.Id(entity + "Column" + c.GoName()).Op("=").Lit(c.Name)
		}
	})
	f.Line()

	f.Commentf("%sColumns holds the column names in declaration order.", entity)
	f.Var().Id(entity + "Columns").Op("=").Index().String().ValuesFunc(func(v *jen.Group) {
		for _, c := range t.Columns() {
			v.Lit(c.Name)
		}
	})
	f.Line()

	if t.Description != "" {
		f.Commentf("%s is the model of the %s table: %s", entity, t.Name, t.Description)
	} else {
		f.Commentf("%s is the model of the %s table.", entity, t.Name)
	}
	f.Type().Id(entity).StructFunc(func(s *jen.Group) {
		for _, c := range t.Columns() {
			s.Id(c.GoName()).Add(goType(c)).Tag(structTags(c))
		}
	})
	f.Line()

	f.Comment("TableName returns the emitted SQL table name.")
	f.Func().Params(jen.Id(entity)).Id("TableName").Params().String().Block(
		jen.Return(jen.Id(entity + "Table")),
	)
	f.Line()

	g.stringMethod(f, t)
	return f
}

// stringMethod emits String() honoring the database string format.
func (g *Graph) stringMethod(f *jen.File, t *schema.Table) {
	entity := t.GoName()
	f.Commentf("String renders the entity in the %s format configured for the database.",
		g.Database.DefaultStringFormat())
	switch g.Database.DefaultStringFormat() {
	case "JSON":
		f.Func().Params(jen.Id("e").Id(entity)).Id("String").Params().String().Block(
			jen.List(jen.Id("out"), jen.Id("_")).Op(":=").Qual("encoding/json", "Marshal").Call(jen.Id("e")),
			jen.Return(jen.String().Call(jen.Id("out"))),
		)
	case "YAML":
		f.Func().Params(jen.Id("e").Id(entity)).Id("String").Params().String().Block(
			jen.List(jen.Id("out"), jen.Id("_")).Op(":=").Qual("gopkg.in/yaml.v3", "Marshal").Call(jen.Id("e")),
			jen.Return(jen.String().Call(jen.Id("out"))),
		)
	case "XML":
		f.Func().Params(jen.Id("e").Id(entity)).Id("String").Params().String().Block(
			jen.List(jen.Id("out"), jen.Id("_")).Op(":=").Qual("encoding/xml", "Marshal").Call(jen.Id("e")),
			jen.Return(jen.String().Call(jen.Id("out"))),
		)
	default:
		f.Func().Params(jen.Id("e").Id(entity)).Id("String").Params().String().Block(
			jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit("%+v"), jen.Id("e"))),
		)
	}
}

// tablesFile builds the shared file listing every table of the database.
func (g *Graph) tablesFile() *jen.File {
	f := g.newFile()
	f.Comment("Tables lists the emitted SQL name of every generated table.")
	f.Var().Id("Tables").Op("=").Index().String().ValuesFunc(func(v *jen.Group) {
		for _, t := range g.Database.Tables() {
			v.Id(t.GoName() + "Table")
		}
	})
	return f
}

// newFile creates a jennifer file with the standard header comment.
func (g *Graph) newFile() *jen.File {
	f := jen.NewFile(g.PackageName())
	f.HeaderComment("Code generated by strata. DO NOT EDIT.")
	if g.Header != "" {
		f.HeaderComment(g.Header)
	}
	return f
}

// writeFile streams the rendered file to the target directory.
func (g *Graph) writeFile(f *jen.File, name string) error {
	out, err := os.Create(filepath.Join(g.Target, name))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := f.Render(out); err != nil {
		return &GenerateError{File: name, Cause: err}
	}
	return nil
}

// goType returns the jennifer code for a column's Go type. Optional
// columns map to pointer types so NULL round-trips. For primitive
// pointers, Id("*type") avoids the whitespace jennifer inserts between
// Op("*") and the identifier in struct fields.
func goType(c *schema.Column) jen.Code {
	if c.Required {
		return baseType(c)
	}
	switch c.Type {
	case schema.TypeDate, schema.TypeTime, schema.TypeTimestamp:
		return jen.Op("*").Qual("time", "Time")
	case schema.TypeUUID:
		return jen.Op("*").Qual("github.com/google/uuid", "UUID")
	case schema.TypeBlob:
		return jen.Id("[]byte")
	default:
		return jen.Id("*" + primitiveName(c.Type))
	}
}

func baseType(c *schema.Column) jen.Code {
	switch c.Type {
	case schema.TypeDate, schema.TypeTime, schema.TypeTimestamp:
		return jen.Qual("time", "Time")
	case schema.TypeUUID:
		return jen.Qual("github.com/google/uuid", "UUID")
	case schema.TypeBlob:
		return jen.Id("[]byte")
	default:
		return jen.Id(primitiveName(c.Type))
	}
}

func primitiveName(t schema.ColumnType) string {
	switch t {
	case schema.TypeBoolean:
		return "bool"
	case schema.TypeSmallInt:
		return "int16"
	case schema.TypeInteger:
		return "int32"
	case schema.TypeBigInt:
		return "int64"
	case schema.TypeFloat:
		return "float32"
	case schema.TypeDouble, schema.TypeDecimal:
		return "float64"
	default:
		return "string"
	}
}

func structTags(c *schema.Column) map[string]string {
	tags := map[string]string{
		"db":   c.Name,
		"json": c.Name,
	}
	if !c.Required {
		tags["json"] = c.Name + ",omitempty"
	}
	return tags
}
