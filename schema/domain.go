package schema

// ColumnType is a platform-agnostic column type. Platforms in the dialect
// package map these to their native SQL types.
type ColumnType string

// Supported column types.
const (
	TypeBoolean   ColumnType = "BOOLEAN"
	TypeSmallInt  ColumnType = "SMALLINT"
	TypeInteger   ColumnType = "INTEGER"
	TypeBigInt    ColumnType = "BIGINT"
	TypeFloat     ColumnType = "FLOAT"
	TypeDouble    ColumnType = "DOUBLE"
	TypeDecimal   ColumnType = "DECIMAL"
	TypeChar      ColumnType = "CHAR"
	TypeVarchar   ColumnType = "VARCHAR"
	TypeText      ColumnType = "TEXT"
	TypeDate      ColumnType = "DATE"
	TypeTime      ColumnType = "TIME"
	TypeTimestamp ColumnType = "TIMESTAMP"
	TypeBlob      ColumnType = "BLOB"
	TypeUUID      ColumnType = "UUID"
)

var columnTypes = map[ColumnType]bool{
	TypeBoolean: true, TypeSmallInt: true, TypeInteger: true, TypeBigInt: true,
	TypeFloat: true, TypeDouble: true, TypeDecimal: true, TypeChar: true,
	TypeVarchar: true, TypeText: true, TypeDate: true, TypeTime: true,
	TypeTimestamp: true, TypeBlob: true, TypeUUID: true,
}

// Valid reports whether t is a supported column type.
func (t ColumnType) Valid() bool { return columnTypes[t] }

// Numeric reports whether t is a numeric type.
func (t ColumnType) Numeric() bool {
	switch t {
	case TypeSmallInt, TypeInteger, TypeBigInt, TypeFloat, TypeDouble, TypeDecimal:
		return true
	}
	return false
}

// Textual reports whether t holds character data.
func (t ColumnType) Textual() bool {
	switch t {
	case TypeChar, TypeVarchar, TypeText:
		return true
	}
	return false
}

// Temporal reports whether t holds date/time data.
func (t ColumnType) Temporal() bool {
	switch t {
	case TypeDate, TypeTime, TypeTimestamp:
		return true
	}
	return false
}

// Domain is a named, reusable column-type template: base type plus size,
// scale, and default. Columns referencing a domain inherit every attribute
// they do not set themselves. Domains are owned by the database.
type Domain struct {
	Name         string
	Type         ColumnType
	Size         int
	Scale        int
	DefaultValue string
	Description  string
}

// NewDomain returns a domain with the given name and base type.
func NewDomain(name string, typ ColumnType) *Domain {
	return &Domain{Name: name, Type: typ}
}

// WithSize sets the size attribute and returns the domain.
func (d *Domain) WithSize(size int) *Domain {
	d.Size = size
	return d
}

// WithScale sets the scale attribute and returns the domain.
func (d *Domain) WithScale(scale int) *Domain {
	d.Scale = scale
	return d
}

// WithDefault sets the default value and returns the domain.
func (d *Domain) WithDefault(value string) *Domain {
	d.DefaultValue = value
	return d
}
