// Package schema holds the mutable schema model that strata compiles:
// databases, tables, columns, domains, foreign keys, indexes, and the
// behaviors that transform them.
//
// # Model
//
// A [Database] owns an ordered set of [Table] values, the reusable column
// type templates ([Domain]), and the database-scoped behaviors. A [Table]
// owns its [Column] values, [Index] and [ForeignKey] definitions, and the
// table-scoped behaviors. Insertion order is declaration order and is
// preserved for stable output.
//
//	db := schema.NewDatabase("bookstore")
//	book := schema.NewTable("book")
//	book.AddColumn(schema.NewColumn("id", schema.TypeInteger).AsPrimaryKey())
//	book.AddColumn(schema.NewColumn("title", schema.TypeVarchar).WithSize(255))
//	db.AddTable(book)
//
// # Behaviors
//
// A [Behavior] is a named, parameterized schema transformation attached to a
// database or a table. Implementations embed [Base] and override the hooks
// they need:
//
//	type Sluggable struct{ schema.Base }
//
//	func (s *Sluggable) ModifyTable(t *schema.Table) error {
//	    _, err := t.AddColumn(schema.NewColumn("slug", schema.TypeVarchar).WithSize(255))
//	    return err
//	}
//
// Behaviors resolve by name through a [Registry]; ready-made implementations
// live in contrib/behavior.
//
// # Finalization
//
// [Database.Finalize] drives schema compilation to a fixed point: naming and
// referrer wiring, default-behavior injection, a single database-level
// behavior pass, and an iterative table-level pass that re-scans live state
// after every application, so behaviors may add new tables and behaviors
// while finalization is in progress. After Finalize returns, the model is
// structurally stable and ready for the emitters in compiler/gen and dialect.
package schema
