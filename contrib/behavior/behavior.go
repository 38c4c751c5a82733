// Package behavior provides common behavior implementations for strata
// schemas.
//
// These behaviors are OPTIONAL and provided as convenient starting points.
// Users are encouraged to create their own behaviors tailored to their needs.
//
// Available behaviors:
//   - Timestampable: adds created_at and updated_at columns
//   - SoftDelete: adds a deleted_at column for soft deletion
//   - AutoAddPK: adds an auto-incremented integer primary key when missing
//   - UUIDPK: adds a UUID primary key column
//   - I18n: factors translatable columns out into a companion table
//
// Importing the package registers every behavior in the default registry,
// so declarative schemas can reference them by name:
//
//	import _ "github.com/syssam/strata/contrib/behavior"
//
// Custom behaviors:
//
// For project-specific needs, embed schema.Base and override the hooks:
//
//	type Sluggable struct {
//	    schema.Base
//	}
//
//	func (s *Sluggable) ModifyTable(t *schema.Table) error { ... }
package behavior

import (
	"strings"

	"github.com/google/uuid"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

func init() {
	schema.Register("timestampable", func() schema.Behavior { return NewTimestampable() })
	schema.Register("soft_delete", func() schema.Behavior { return NewSoftDelete() })
	schema.Register("auto_add_pk", func() schema.Behavior { return NewAutoAddPK() })
	schema.Register("uuid_pk", func() schema.Behavior { return NewUUIDPK() })
	schema.Register("i18n", func() schema.Behavior { return NewI18n() })
}

// Timestampable adds creation and update timestamp columns.
//
// Parameters:
//   - create_column: name of the creation column (default created_at)
//   - update_column: name of the update column (default updated_at)
//   - disable_created_at: "true" skips the creation column
//   - disable_updated_at: "true" skips the update column
//
// Generated columns:
//
//	created_at TIMESTAMP NOT NULL
//	updated_at TIMESTAMP NOT NULL
type Timestampable struct {
	schema.Base
}

// NewTimestampable returns the behavior with its default parameters.
func NewTimestampable() *Timestampable {
	b := &Timestampable{}
	b.SetName("timestampable")
	b.SetParameter("create_column", "created_at")
	b.SetParameter("update_column", "updated_at")
	return b
}

// ModifyTable adds the timestamp columns unless present or disabled.
func (b *Timestampable) ModifyTable(t *schema.Table) error {
	if b.Parameter("disable_created_at") != "true" {
		if err := addColumnIfMissing(t, b.Parameter("create_column"), func(c *schema.Column) {
			c.AsRequired()
		}); err != nil {
			return err
		}
	}
	if b.Parameter("disable_updated_at") != "true" {
		if err := addColumnIfMissing(t, b.Parameter("update_column"), func(c *schema.Column) {
			c.AsRequired()
		}); err != nil {
			return err
		}
	}
	return nil
}

var _ schema.Behavior = (*Timestampable)(nil)

// SoftDelete adds a deletion timestamp column. Rows are not physically
// deleted but marked with a deletion time; the generated access code is
// expected to filter on it.
//
// Parameters:
//   - delete_column: name of the deletion column (default deleted_at)
//
// Generated column:
//
//	deleted_at TIMESTAMP NULL
type SoftDelete struct {
	schema.Base
}

// NewSoftDelete returns the behavior with its default parameters.
func NewSoftDelete() *SoftDelete {
	b := &SoftDelete{}
	b.SetName("soft_delete")
	b.SetParameter("delete_column", "deleted_at")
	return b
}

// ModifyTable adds the nullable deletion column unless present.
func (b *SoftDelete) ModifyTable(t *schema.Table) error {
	return addColumnIfMissing(t, b.Parameter("delete_column"), nil)
}

var _ schema.Behavior = (*SoftDelete)(nil)

// AutoAddPK adds an auto-incremented integer primary key to tables that
// declare none. It runs before other table behaviors so companion tables
// they create can mirror the key.
//
// Parameters:
//   - name: column name (default id)
//   - type: column type (default integer)
//
// Generated column:
//
//	id INTEGER NOT NULL PRIMARY KEY AUTO_INCREMENT
type AutoAddPK struct {
	schema.Base
}

// NewAutoAddPK returns the behavior with its default parameters.
func NewAutoAddPK() *AutoAddPK {
	b := &AutoAddPK{}
	b.SetName("auto_add_pk")
	b.SetParameter("name", "id")
	b.SetParameter("type", "integer")
	b.SetTableModificationOrder(10)
	return b
}

// ModifyTable adds the key column when the table has no primary key.
func (b *AutoAddPK) ModifyTable(t *schema.Table) error {
	if t.HasPrimaryKey() || t.SkipSQL {
		return nil
	}
	typ := schema.ColumnType(strings.ToUpper(b.Parameter("type")))
	if !typ.Valid() || !typ.Numeric() {
		return strata.NewInvalidArgumentError("type", b.Parameter("type"),
			"auto_add_pk requires a numeric column type")
	}
	col := schema.NewColumn(b.Parameter("name"), typ).AsPrimaryKey()
	if db := t.Database(); db == nil || db.IDMethod == schema.IDMethodNative {
		col.AsAutoIncrement()
	}
	_, err := t.AddColumn(col)
	return err
}

var _ schema.Behavior = (*AutoAddPK)(nil)

// UUIDPK adds a UUID primary key column. The column type is TypeUUID; the
// platforms map it to a native uuid type where one exists and CHAR(36)
// elsewhere.
//
// Parameters:
//   - column: column name (default id)
//   - default: fixed default value, validated as a UUID
//
// Generated column:
//
//	id UUID NOT NULL PRIMARY KEY
type UUIDPK struct {
	schema.Base
}

// NewUUIDPK returns the behavior with its default parameters.
func NewUUIDPK() *UUIDPK {
	b := &UUIDPK{}
	b.SetName("uuid_pk")
	b.SetParameter("column", "id")
	b.SetTableModificationOrder(10)
	return b
}

// ModifyTable adds the key column when the table has no primary key.
func (b *UUIDPK) ModifyTable(t *schema.Table) error {
	if t.HasPrimaryKey() {
		return nil
	}
	col := schema.NewColumn(b.Parameter("column"), schema.TypeUUID).AsPrimaryKey()
	if def := b.Parameter("default"); def != "" {
		if err := uuid.Validate(def); err != nil {
			return strata.NewInvalidArgumentError("default", def, "not a valid UUID")
		}
		col.WithDefault(def)
	}
	_, err := t.AddColumn(col)
	return err
}

var _ schema.Behavior = (*UUIDPK)(nil)

// addColumnIfMissing adds a required-by-caller timestamp column. Tables
// that already declare the column keep their declaration untouched.
func addColumnIfMissing(t *schema.Table, name string, customize func(*schema.Column)) error {
	if name == "" || t.HasColumn(name) {
		return nil
	}
	col := schema.NewColumn(name, schema.TypeTimestamp)
	if customize != nil {
		customize(col)
	}
	_, err := t.AddColumn(col)
	return err
}
