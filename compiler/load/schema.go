// Package load reads declarative schema files into descriptor trees and
// writes finalized models back out. Descriptors are plain data: they carry
// exactly what the declaration said, in declaration order, so a load
// followed by an export round-trips attribute for attribute. Building the
// semantic model out of descriptors is the generator's job.
//
// Three formats share one descriptor set: YAML and JSON through struct
// tags, XML through an element tree with parameters as
// <parameter name="" value=""/> children.
package load

import (
	"encoding/xml"

	"gopkg.in/yaml.v3"
)

// Database is the root descriptor of one schema declaration file.
type Database struct {
	XMLName xml.Name `xml:"database" yaml:"-" json:"-" msgpack:"-"`

	Name                string `xml:"name,attr" yaml:"name" json:"name"`
	Namespace           string `xml:"namespace,attr,omitempty" yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Package             string `xml:"package,attr,omitempty" yaml:"package,omitempty" json:"package,omitempty"`
	Schema              string `xml:"schema,attr,omitempty" yaml:"schema,omitempty" json:"schema,omitempty"`
	DefaultIDMethod     string `xml:"defaultIdMethod,attr,omitempty" yaml:"defaultIdMethod,omitempty" json:"defaultIdMethod,omitempty"`
	DefaultStringFormat string `xml:"defaultStringFormat,attr,omitempty" yaml:"defaultStringFormat,omitempty" json:"defaultStringFormat,omitempty"`
	TablePrefix         string `xml:"tablePrefix,attr,omitempty" yaml:"tablePrefix,omitempty" json:"tablePrefix,omitempty"`
	HeavyIndexing       bool   `xml:"heavyIndexing,attr,omitempty" yaml:"heavyIndexing,omitempty" json:"heavyIndexing,omitempty"`

	Domains   []*Domain   `xml:"domain" yaml:"domains,omitempty" json:"domains,omitempty"`
	Behaviors []*Behavior `xml:"behavior" yaml:"behaviors,omitempty" json:"behaviors,omitempty"`
	Tables    []*Table    `xml:"table" yaml:"tables" json:"tables"`
}

// Table is one table declaration.
type Table struct {
	Name          string `xml:"name,attr" yaml:"name" json:"name"`
	GoName        string `xml:"goName,attr,omitempty" yaml:"goName,omitempty" json:"goName,omitempty"`
	Namespace     string `xml:"namespace,attr,omitempty" yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Package       string `xml:"package,attr,omitempty" yaml:"package,omitempty" json:"package,omitempty"`
	Description   string `xml:"description,attr,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	HeavyIndexing bool   `xml:"heavyIndexing,attr,omitempty" yaml:"heavyIndexing,omitempty" json:"heavyIndexing,omitempty"`
	SkipSQL       bool   `xml:"skipSql,attr,omitempty" yaml:"skipSql,omitempty" json:"skipSql,omitempty"`
	ReadOnly      bool   `xml:"readOnly,attr,omitempty" yaml:"readOnly,omitempty" json:"readOnly,omitempty"`

	Columns     []*Column     `xml:"column" yaml:"columns" json:"columns"`
	ForeignKeys []*ForeignKey `xml:"foreign-key" yaml:"foreignKeys,omitempty" json:"foreignKeys,omitempty"`
	Indexes     []*Index      `xml:"index" yaml:"indexes,omitempty" json:"indexes,omitempty"`
	Behaviors   []*Behavior   `xml:"behavior" yaml:"behaviors,omitempty" json:"behaviors,omitempty"`
	Vendor      []*Vendor     `xml:"vendor" yaml:"vendor,omitempty" json:"vendor,omitempty"`
}

// Column is one column declaration.
type Column struct {
	Name          string `xml:"name,attr" yaml:"name" json:"name"`
	GoName        string `xml:"goName,attr,omitempty" yaml:"goName,omitempty" json:"goName,omitempty"`
	Type          string `xml:"type,attr,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Domain        string `xml:"domain,attr,omitempty" yaml:"domain,omitempty" json:"domain,omitempty"`
	Size          int    `xml:"size,attr,omitempty" yaml:"size,omitempty" json:"size,omitempty"`
	Scale         int    `xml:"scale,attr,omitempty" yaml:"scale,omitempty" json:"scale,omitempty"`
	Required      bool   `xml:"required,attr,omitempty" yaml:"required,omitempty" json:"required,omitempty"`
	PrimaryKey    bool   `xml:"primaryKey,attr,omitempty" yaml:"primaryKey,omitempty" json:"primaryKey,omitempty"`
	AutoIncrement bool   `xml:"autoIncrement,attr,omitempty" yaml:"autoIncrement,omitempty" json:"autoIncrement,omitempty"`
	Unique        bool   `xml:"unique,attr,omitempty" yaml:"unique,omitempty" json:"unique,omitempty"`
	Default       string `xml:"default,attr,omitempty" yaml:"default,omitempty" json:"default,omitempty"`
	DefaultExpr   string `xml:"defaultExpr,attr,omitempty" yaml:"defaultExpr,omitempty" json:"defaultExpr,omitempty"`
	Description   string `xml:"description,attr,omitempty" yaml:"description,omitempty" json:"description,omitempty"`

	Vendor []*Vendor `xml:"vendor" yaml:"vendor,omitempty" json:"vendor,omitempty"`
}

// ForeignKey is one foreign key declaration. References pair local and
// foreign columns positionally.
type ForeignKey struct {
	Name         string       `xml:"name,attr,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	ForeignTable string       `xml:"foreignTable,attr" yaml:"foreignTable" json:"foreignTable"`
	OnDelete     string       `xml:"onDelete,attr,omitempty" yaml:"onDelete,omitempty" json:"onDelete,omitempty"`
	OnUpdate     string       `xml:"onUpdate,attr,omitempty" yaml:"onUpdate,omitempty" json:"onUpdate,omitempty"`
	References   []*Reference `xml:"reference" yaml:"references" json:"references"`
}

// Reference is one local/foreign column pair of a foreign key.
type Reference struct {
	Local   string `xml:"local,attr" yaml:"local" json:"local"`
	Foreign string `xml:"foreign,attr" yaml:"foreign" json:"foreign"`
}

// Index is one index declaration.
type Index struct {
	Name    string        `xml:"name,attr,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Unique  bool          `xml:"unique,attr,omitempty" yaml:"unique,omitempty" json:"unique,omitempty"`
	Columns []IndexColumn `xml:"index-column" yaml:"columns" json:"columns"`
}

// IndexColumn names one indexed column. In YAML and JSON it is a plain
// string; XML keeps the dedicated child element.
type IndexColumn struct {
	Name string `xml:"name,attr" yaml:"-" json:"-"`
}

// UnmarshalYAML decodes the column from a scalar name.
func (c *IndexColumn) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&c.Name)
}

// MarshalYAML encodes the column as a scalar name.
func (c IndexColumn) MarshalYAML() (any, error) { return c.Name, nil }

// UnmarshalJSON decodes the column from a string.
func (c *IndexColumn) UnmarshalJSON(b []byte) error {
	return jsonUnmarshal(b, &c.Name)
}

// MarshalJSON encodes the column as a string.
func (c IndexColumn) MarshalJSON() ([]byte, error) {
	return jsonMarshal(c.Name)
}

// Behavior is one behavior declaration: a registry name plus ordered
// parameters.
type Behavior struct {
	Name   string    `xml:"name,attr" yaml:"name" json:"name"`
	Params ParamList `xml:"parameter" yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Domain is one reusable column type declaration.
type Domain struct {
	Name        string `xml:"name,attr" yaml:"name" json:"name"`
	Type        string `xml:"type,attr" yaml:"type" json:"type"`
	Size        int    `xml:"size,attr,omitempty" yaml:"size,omitempty" json:"size,omitempty"`
	Scale       int    `xml:"scale,attr,omitempty" yaml:"scale,omitempty" json:"scale,omitempty"`
	Default     string `xml:"default,attr,omitempty" yaml:"default,omitempty" json:"default,omitempty"`
	Description string `xml:"description,attr,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
}

// Vendor is one opaque platform-specific block.
type Vendor struct {
	Type   string    `xml:"type,attr" yaml:"type" json:"type"`
	Params ParamList `xml:"parameter" yaml:"parameters,omitempty" json:"parameters,omitempty"`
}
