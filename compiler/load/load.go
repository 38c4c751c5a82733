package load

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

// LoadFile reads one schema declaration, choosing the decoder from the
// file extension (.yaml, .yml, .xml, .json).
func LoadFile(path string) (*Database, error) {
	var parse func([]byte) (*Database, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = Parse
	case ".xml":
		parse = ParseXML
	case ".json":
		parse = ParseJSON
	default:
		return nil, strata.NewInvalidArgumentError("path", path,
			"unsupported schema file extension")
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := parse(buf)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a YAML schema declaration.
func Parse(buf []byte) (*Database, error) {
	d := &Database{}
	if err := yaml.Unmarshal(buf, d); err != nil {
		return nil, err
	}
	return d, validate(d)
}

// ParseXML decodes an XML schema declaration.
func ParseXML(buf []byte) (*Database, error) {
	d := &Database{}
	if err := xml.Unmarshal(buf, d); err != nil {
		return nil, err
	}
	return d, validate(d)
}

// ParseJSON decodes a JSON schema declaration.
func ParseJSON(buf []byte) (*Database, error) {
	d := &Database{}
	if err := json.Unmarshal(buf, d); err != nil {
		return nil, err
	}
	return d, validate(d)
}

// MarshalYAML encodes the descriptor as YAML.
func MarshalYAML(d *Database) ([]byte, error) {
	return yaml.Marshal(d)
}

// MarshalXML encodes the descriptor as an XML document.
func MarshalXML(d *Database) ([]byte, error) {
	buf, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(buf, '\n')...), nil
}

// validate rejects descriptors the model could never accept, so obvious
// declaration mistakes carry file-level context instead of surfacing
// later from the model builder.
func validate(d *Database) error {
	if d.Name == "" {
		return strata.NewInvalidArgumentError("database", "", "database name is required")
	}
	for _, t := range d.Tables {
		if t.Name == "" {
			return strata.NewInvalidArgumentError("table", "", "table name is required")
		}
		for _, c := range t.Columns {
			if c.Name == "" {
				return strata.NewInvalidArgumentError("column", "",
					fmt.Sprintf("table %q has a column without a name", t.Name))
			}
			if c.Type == "" && c.Domain == "" {
				return strata.NewInvalidArgumentError("column", c.Name,
					fmt.Sprintf("column %q.%q needs a type or a domain", t.Name, c.Name))
			}
		}
		for _, fk := range t.ForeignKeys {
			if fk.ForeignTable == "" {
				return strata.NewInvalidArgumentError("foreign-key", t.Name,
					fmt.Sprintf("table %q has a foreign key without a foreign table", t.Name))
			}
			if len(fk.References) == 0 {
				return strata.NewInvalidArgumentError("foreign-key", fk.ForeignTable,
					fmt.Sprintf("foreign key %q -> %q declares no references", t.Name, fk.ForeignTable))
			}
		}
	}
	return nil
}

// FromDatabase exports a finalized model back into a descriptor tree. The
// export mirrors the load path attribute for attribute, omitting unset
// optional attributes, so the output of a previous export parses back to
// the same descriptor.
func FromDatabase(db *schema.Database) *Database {
	d := &Database{
		Name:                db.Name,
		Namespace:           db.Namespace,
		Package:             db.Package,
		DefaultIDMethod:     string(db.IDMethod),
		DefaultStringFormat: db.DefaultStringFormat(),
		TablePrefix:         db.TablePrefix,
		HeavyIndexing:       db.HeavyIndexing,
	}
	for _, dom := range db.Domains() {
		d.Domains = append(d.Domains, &Domain{
			Name:        dom.Name,
			Type:        string(dom.Type),
			Size:        dom.Size,
			Scale:       dom.Scale,
			Default:     dom.DefaultValue,
			Description: dom.Description,
		})
	}
	for _, b := range db.Behaviors() {
		d.Behaviors = append(d.Behaviors, fromBehavior(b))
	}
	for _, t := range db.Tables() {
		d.Tables = append(d.Tables, fromTable(t))
	}
	return d
}

func fromTable(t *schema.Table) *Table {
	out := &Table{
		Name:          t.Name,
		Namespace:     t.Namespace,
		Package:       t.Package,
		Description:   t.Description,
		HeavyIndexing: t.HeavyIndexing,
		SkipSQL:       t.SkipSQL,
		ReadOnly:      t.ReadOnly,
		Vendor:        fromVendor(t.Vendor),
	}
	for _, c := range t.Columns() {
		out.Columns = append(out.Columns, &Column{
			Name:          c.Name,
			Type:          string(c.Type),
			Domain:        c.DomainName,
			Size:          c.Size,
			Scale:         c.Scale,
			Required:      c.Required,
			PrimaryKey:    c.PrimaryKey,
			AutoIncrement: c.AutoIncrement,
			Unique:        c.Unique,
			Default:       c.DefaultValue,
			DefaultExpr:   c.DefaultExpr,
			Description:   c.Description,
			Vendor:        fromVendor(c.Vendor),
		})
	}
	for _, fk := range t.ForeignKeys() {
		nfk := &ForeignKey{
			Name:         fk.Name,
			ForeignTable: fk.ForeignTableName,
			OnDelete:     strings.ToLower(string(fk.OnDelete)),
			OnUpdate:     strings.ToLower(string(fk.OnUpdate)),
		}
		for i := range fk.LocalColumns {
			nfk.References = append(nfk.References, &Reference{
				Local:   fk.LocalColumns[i],
				Foreign: fk.ForeignColumns[i],
			})
		}
		out.ForeignKeys = append(out.ForeignKeys, nfk)
	}
	for _, ix := range t.Indexes() {
		nix := &Index{Name: ix.Name, Unique: ix.Unique}
		for _, col := range ix.Columns {
			nix.Columns = append(nix.Columns, IndexColumn{Name: col})
		}
		out.Indexes = append(out.Indexes, nix)
	}
	for _, b := range t.Behaviors() {
		out.Behaviors = append(out.Behaviors, fromBehavior(b))
	}
	return out
}

func fromBehavior(b schema.Behavior) *Behavior {
	out := &Behavior{Name: b.Name()}
	for _, p := range b.Parameters().List() {
		out.Params = append(out.Params, Param{Name: p.Name, Value: p.Value})
	}
	return out
}

func fromVendor(infos []schema.VendorInfo) []*Vendor {
	var out []*Vendor
	for _, v := range infos {
		nv := &Vendor{Type: v.Type}
		for _, name := range sortedKeys(v.Params) {
			nv.Params = append(nv.Params, Param{Name: name, Value: v.Params[name]})
		}
		out = append(out, nv)
	}
	return out
}

// sortedKeys keeps vendor parameter export deterministic; the model holds
// them in a map.
func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
