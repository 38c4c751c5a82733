package gen

import (
	"strings"

	"github.com/syssam/strata"
	"github.com/syssam/strata/compiler/load"
	"github.com/syssam/strata/schema"
)

// Build properties the graph builder understands. Declaration attributes
// take precedence; properties fill what the declaration leaves unset.
const (
	defaultBehaviorsProperty    = schema.DefaultBehaviorsProperty
	tablePrefixProperty         = "tablePrefix"
	defaultStringFormatProperty = "defaultStringFormat"
)

// Graph is one fully compiled database model plus the configuration it
// was built under. Construction runs the whole pipeline: descriptor to
// model conversion followed by finalization, so a Graph always holds a
// finalized database.
type Graph struct {
	*Config

	// Database is the finalized model.
	Database *schema.Database
}

// NewGraph builds and finalizes the model for one loaded descriptor.
func NewGraph(c *Config, d *load.Database) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	db, err := buildDatabase(c, d)
	if err != nil {
		return nil, err
	}
	if err := db.Finalize(); err != nil {
		return nil, err
	}
	return &Graph{Config: c, Database: db}, nil
}

// PackageName returns the generated package name: the configured package,
// the model's, or the database name.
func (g *Graph) PackageName() string {
	switch {
	case g.Package != "":
		return g.Package
	case g.Database.Package != "":
		return g.Database.Package
	default:
		return strings.ToLower(g.Database.Name)
	}
}

func buildDatabase(c *Config, d *load.Database) (*schema.Database, error) {
	db := schema.NewDatabase(d.Name)
	db.Namespace = d.Namespace
	db.Package = d.Package
	db.HeavyIndexing = d.HeavyIndexing
	if c.BuildProperties != nil {
		db.SetBuildConfig(c.BuildProperties)
	}
	db.SetMaxBehaviorApplications(c.MaxBehaviorApplications)

	db.TablePrefix = d.TablePrefix
	if db.TablePrefix == "" {
		db.TablePrefix = db.BuildProperty(tablePrefixProperty)
	}
	if m := d.DefaultIDMethod; m != "" {
		if err := db.SetDefaultIDMethod(schema.IDMethod(m)); err != nil {
			return nil, err
		}
	}
	format := d.DefaultStringFormat
	if format == "" {
		format = db.BuildProperty(defaultStringFormatProperty)
	}
	if format != "" {
		if err := db.SetDefaultStringFormat(format); err != nil {
			return nil, err
		}
	}
	for _, dom := range d.Domains {
		typ := schema.ColumnType(strings.ToUpper(dom.Type))
		if !typ.Valid() {
			return nil, NewModelError("", dom.Name, "unknown domain type "+dom.Type, nil)
		}
		db.AddDomain(&schema.Domain{
			Name:         dom.Name,
			Type:         typ,
			Size:         dom.Size,
			Scale:        dom.Scale,
			DefaultValue: dom.Default,
			Description:  dom.Description,
		})
	}
	for _, b := range d.Behaviors {
		if _, err := db.AddBehaviorNamed(b.Name, behaviorParams(b)...); err != nil {
			return nil, err
		}
	}
	for _, t := range d.Tables {
		if err := addTable(db, t); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func addTable(db *schema.Database, t *load.Table) error {
	nt := schema.NewTable(t.Name)
	nt.Namespace = t.Namespace
	nt.Package = t.Package
	nt.Description = t.Description
	nt.HeavyIndexing = t.HeavyIndexing
	nt.SkipSQL = t.SkipSQL
	nt.ReadOnly = t.ReadOnly
	nt.Vendor = vendorInfo(t.Vendor)
	if t.GoName != "" {
		nt.SetGoName(t.GoName)
	}
	if _, err := db.AddTable(nt); err != nil {
		return err
	}
	for _, c := range t.Columns {
		if err := addColumn(nt, c); err != nil {
			return err
		}
	}
	for _, fk := range t.ForeignKeys {
		nfk := schema.NewForeignKey(fk.ForeignTable)
		nfk.Name = fk.Name
		for _, ref := range fk.References {
			nfk.AddReference(ref.Local, ref.Foreign)
		}
		var err error
		if nfk.OnDelete, err = referenceAction(fk.OnDelete); err != nil {
			return NewModelError(t.Name, "", "foreign key to "+fk.ForeignTable, err)
		}
		if nfk.OnUpdate, err = referenceAction(fk.OnUpdate); err != nil {
			return NewModelError(t.Name, "", "foreign key to "+fk.ForeignTable, err)
		}
		nt.AddForeignKey(nfk)
	}
	for _, ix := range t.Indexes {
		names := make([]string, len(ix.Columns))
		for i, col := range ix.Columns {
			if !nt.HasColumn(col.Name) {
				return NewModelError(t.Name, col.Name, "index references an unknown column", nil)
			}
			names[i] = col.Name
		}
		nix := schema.NewIndex(names...)
		nix.Name = ix.Name
		nix.Unique = ix.Unique
		nt.AddIndex(nix)
	}
	for _, b := range t.Behaviors {
		if _, err := nt.AddBehaviorNamed(b.Name, behaviorParams(b)...); err != nil {
			return err
		}
	}
	return nil
}

func addColumn(t *schema.Table, c *load.Column) error {
	typ := schema.ColumnType(strings.ToUpper(c.Type))
	if c.Type != "" && !typ.Valid() {
		return NewModelError(t.Name, c.Name, "unknown column type "+c.Type, nil)
	}
	nc := schema.NewColumn(c.Name, typ)
	nc.DomainName = c.Domain
	nc.Size = c.Size
	nc.Scale = c.Scale
	nc.Required = c.Required
	nc.Unique = c.Unique
	nc.DefaultValue = c.Default
	nc.DefaultExpr = c.DefaultExpr
	nc.Description = c.Description
	nc.Vendor = vendorInfo(c.Vendor)
	if c.GoName != "" {
		nc.SetGoName(c.GoName)
	}
	if c.PrimaryKey {
		nc.AsPrimaryKey()
	}
	if c.AutoIncrement {
		nc.AsAutoIncrement()
	}
	if nc.Type == "" && nc.DomainName == "" {
		return NewModelError(t.Name, c.Name, "column needs a type or a domain", nil)
	}
	_, err := t.AddColumn(nc)
	return err
}

func behaviorParams(b *load.Behavior) []schema.Param {
	out := make([]schema.Param, len(b.Params))
	for i, p := range b.Params {
		out[i] = schema.Param{Name: p.Name, Value: p.Value}
	}
	return out
}

func vendorInfo(vendors []*load.Vendor) []schema.VendorInfo {
	var out []schema.VendorInfo
	for _, v := range vendors {
		info := schema.VendorInfo{Type: v.Type, Params: make(map[string]string, len(v.Params))}
		for _, p := range v.Params {
			info.Params[p.Name] = p.Value
		}
		out = append(out, info)
	}
	return out
}

func referenceAction(s string) (schema.ReferenceAction, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", " ")) {
	case "":
		return "", nil
	case "no action", "none":
		return schema.NoAction, nil
	case "restrict":
		return schema.Restrict, nil
	case "cascade":
		return schema.Cascade, nil
	case "set null", "setnull":
		return schema.SetNull, nil
	case "set default", "setdefault":
		return schema.SetDefault, nil
	default:
		return "", strata.NewInvalidArgumentError("onDelete", s, "unknown reference action")
	}
}

func joinList(names []string) string {
	return strings.Join(names, ",")
}
