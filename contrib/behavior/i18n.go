package behavior

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema"
)

// I18n moves translatable columns out of the table into a companion
// translation table keyed by the owner's primary key plus a locale column.
// Unlike most behaviors it is opt-in per table: registering it at the
// database level only distributes the default locale to tables that
// already carry it.
//
// Parameters:
//   - i18n_table: companion table name, %TABLE% expands to the owner name
//     (default %TABLE%_i18n)
//   - i18n_columns: comma-separated owner columns to move
//   - locale_column: name of the locale column (default locale)
//   - locale_length: size of the locale column (default 5)
//   - default_locale: default value of the locale column, validated as a
//     BCP 47 tag ("fr_FR" is accepted and kept verbatim)
//
// Generated companion table for book(id, title, summary) with
// i18n_columns "summary":
//
//	book_i18n (
//	    id     INTEGER     NOT NULL PRIMARY KEY REFERENCES book ON DELETE CASCADE,
//	    locale VARCHAR(5)  NOT NULL PRIMARY KEY,
//	    summary TEXT
//	)
type I18n struct {
	schema.Base
}

// NewI18n returns the behavior with its default parameters.
func NewI18n() *I18n {
	b := &I18n{}
	b.SetName("i18n")
	b.SetParameter("i18n_table", "%TABLE%_i18n")
	b.SetParameter("locale_column", "locale")
	b.SetParameter("locale_length", "5")
	// Runs after key-adding behaviors so the mirrored key is final.
	b.SetTableModificationOrder(70)
	return b
}

// ModifyDatabase distributes the database default locale to every table
// that opted in but set none of its own. Table-level parameters always win.
func (b *I18n) ModifyDatabase(d *schema.Database) error {
	def := b.Parameter("default_locale")
	if def == "" {
		return nil
	}
	for _, t := range d.Tables() {
		tb, ok := t.Behavior(b.Name())
		if !ok {
			continue
		}
		tb.Parameters().SetDefault("default_locale", def)
	}
	return nil
}

// ModifyTable builds the companion translation table: it mirrors the
// owner's primary key, appends the locale column, wires a cascading
// foreign key back to the owner, and moves the translatable columns over.
func (b *I18n) ModifyTable(t *schema.Table) error {
	db := t.Database()
	if db == nil {
		return strata.NewInvalidArgumentError("i18n", t.Name, "table is not attached to a database")
	}
	pk := t.PrimaryKey()
	if len(pk) == 0 {
		return strata.NewInvalidArgumentError("i18n", t.Name, "i18n requires the table to have a primary key")
	}
	def := b.Parameter("default_locale")
	if def != "" {
		if _, err := language.Parse(strings.ReplaceAll(def, "_", "-")); err != nil {
			return strata.NewInvalidArgumentError("default_locale", def, "not a valid locale tag")
		}
	}
	length := 5
	if v := b.Parameter("locale_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return strata.NewInvalidArgumentError("locale_length", v, "must be a positive integer")
		}
		length = n
	}

	name := strings.ReplaceAll(b.Parameter("i18n_table"), "%TABLE%", t.Name)
	i18nTable, ok := db.Table(name)
	if !ok {
		nt, err := db.AddTable(schema.NewTable(name))
		if err != nil {
			return err
		}
		i18nTable = nt
	}
	i18nTable.SkipSQL = t.SkipSQL

	// Owner key columns first, locale last, matching the key order the
	// generated lookup code expects.
	fk := schema.NewForeignKey(t.Name).WithOnDelete(schema.Cascade)
	for _, c := range pk {
		if i18nTable.HasColumn(c.Name) {
			continue
		}
		mirror := schema.NewColumn(c.Name, c.Type).AsPrimaryKey()
		mirror.Size = c.Size
		if _, err := i18nTable.AddColumn(mirror); err != nil {
			return err
		}
		fk.AddReference(c.Name, c.Name)
	}
	if len(fk.LocalColumns) > 0 {
		i18nTable.AddForeignKey(fk)
	}

	locale := b.Parameter("locale_column")
	if !i18nTable.HasColumn(locale) {
		lc := schema.NewColumn(locale, schema.TypeVarchar).WithSize(length).AsPrimaryKey()
		if def != "" {
			lc.WithDefault(def)
		}
		if _, err := i18nTable.AddColumn(lc); err != nil {
			return err
		}
	}

	for _, colName := range splitList(b.Parameter("i18n_columns")) {
		moved, ok := t.RemoveColumn(colName)
		if !ok {
			return strata.NewInvalidArgumentError("i18n_columns", colName,
				fmt.Sprintf("table %q has no such column to translate", t.Name))
		}
		// Translated columns lose key and autoincrement status; the
		// companion key is the owner key plus locale.
		moved.PrimaryKey = false
		moved.AutoIncrement = false
		if _, err := i18nTable.AddColumn(moved); err != nil {
			return err
		}
	}
	return nil
}

var _ schema.Behavior = (*I18n)(nil)

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
