package schema

// Column describes a single table column. Columns are created with
// NewColumn and attached to exactly one table via Table.AddColumn, which
// stamps the owner back-reference.
type Column struct {
	// Name is the column name in the database schema.
	Name string
	// Type is the platform-agnostic column type.
	Type ColumnType
	// Size is the type size (e.g. VARCHAR length, DECIMAL precision).
	Size int
	// Scale is the decimal scale.
	Scale int
	// Required marks the column NOT NULL.
	Required bool
	// PrimaryKey marks the column as part of the primary key.
	PrimaryKey bool
	// AutoIncrement marks an auto-incremented column.
	AutoIncrement bool
	// Unique marks a single-column unique constraint.
	Unique bool
	// DefaultValue is a literal default, serialized as declared.
	DefaultValue string
	// DefaultExpr is a raw SQL expression default. It takes precedence
	// over DefaultValue when both are set.
	DefaultExpr string
	// DomainName references a database-owned Domain by name.
	DomainName string
	// Description documents the column.
	Description string
	// Vendor holds platform-specific info blocks.
	Vendor []VendorInfo

	goName string
	table  *Table
}

// NewColumn returns a detached column with the given name and type.
func NewColumn(name string, typ ColumnType) *Column {
	return &Column{Name: name, Type: typ}
}

// WithSize sets the size attribute and returns the column.
func (c *Column) WithSize(size int) *Column {
	c.Size = size
	return c
}

// WithScale sets the scale attribute and returns the column.
func (c *Column) WithScale(scale int) *Column {
	c.Scale = scale
	return c
}

// WithDefault sets the literal default value and returns the column.
func (c *Column) WithDefault(value string) *Column {
	c.DefaultValue = value
	return c
}

// AsRequired marks the column NOT NULL and returns it.
func (c *Column) AsRequired() *Column {
	c.Required = true
	return c
}

// AsPrimaryKey marks the column as part of the primary key. Primary key
// columns are implicitly required.
func (c *Column) AsPrimaryKey() *Column {
	c.PrimaryKey = true
	c.Required = true
	return c
}

// AsAutoIncrement marks the column auto-incremented and returns it.
func (c *Column) AsAutoIncrement() *Column {
	c.AutoIncrement = true
	return c
}

// Table returns the owning table, or nil for a detached column.
func (c *Column) Table() *Table { return c.table }

// GoName returns the exported Go identifier derived from the column name.
// It is computed during the naming pass and may be overridden upfront with
// SetGoName.
func (c *Column) GoName() string {
	if c.goName == "" {
		return goName(c.Name)
	}
	return c.goName
}

// SetGoName overrides the derived Go identifier.
func (c *Column) SetGoName(name string) { c.goName = name }

// HasDefault reports whether the column carries any default.
func (c *Column) HasDefault() bool {
	return c.DefaultValue != "" || c.DefaultExpr != ""
}

// ApplyDomain copies every domain attribute the column does not set itself.
func (c *Column) ApplyDomain(d *Domain) {
	if d == nil {
		return
	}
	c.DomainName = d.Name
	if c.Type == "" {
		c.Type = d.Type
	}
	if c.Size == 0 {
		c.Size = d.Size
	}
	if c.Scale == 0 {
		c.Scale = d.Scale
	}
	if c.DefaultValue == "" {
		c.DefaultValue = d.DefaultValue
	}
}

// clone returns a detached copy of the column.
func (c *Column) clone() *Column {
	nc := *c
	nc.table = nil
	nc.Vendor = append([]VendorInfo(nil), c.Vendor...)
	return &nc
}

// VendorInfo is an opaque platform-specific information block. The schema
// model carries it through to the emitters without interpreting it.
type VendorInfo struct {
	// Type names the platform the block applies to (e.g. "mysql").
	Type string
	// Params holds the vendor parameters.
	Params map[string]string
}
