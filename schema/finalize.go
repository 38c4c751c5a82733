package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/strata"
)

// DefaultBehaviorsProperty is the build property holding the
// comma-separated list of behaviors applied to every database.
const DefaultBehaviorsProperty = "behavior.default"

// Finalize drives schema compilation to its fixed point:
//
//  1. Naming and referrer wiring, so behaviors can inspect relations.
//  2. Default-behavior injection from the "behavior.default" build property.
//  3. Database-level pass: every currently registered database behavior's
//     ModifyDatabase hook runs exactly once, in registration order. Hooks
//     registered during this pass are not invoked.
//  4. Table-level pass: the scheduler repeatedly scans the live table list
//     for unapplied behaviors, applies the one with the lowest table
//     modification order (ties broken by discovery order: table order, then
//     per-table registration order), marks it applied, and re-scans.
//     Tables and behaviors added by a hook become visible immediately.
//  5. Per-table final initialization and referrer re-wiring, since step 4
//     may have added columns and foreign keys.
//
// Any error aborts compilation; partially applied behaviors are not rolled
// back and no partial schema should be handed to the emitters. A second
// call on a finalized database is a no-op.
//
// The scheduler does not detect behaviors that keep re-adding unapplied
// behaviors forever; SetMaxBehaviorApplications turns such a runaway loop
// into a diagnostic error instead of a hang.
func (d *Database) Finalize() error {
	if d.finalized {
		return nil
	}
	for _, t := range d.tableList {
		t.doNaming()
	}
	if err := d.setupReferrers(); err != nil {
		return err
	}
	if err := d.registerDefaultBehaviors(); err != nil {
		return err
	}
	// Snapshot: database hooks added by a database hook do not run.
	for _, b := range slices.Clone(d.behaviorList) {
		if err := b.ModifyDatabase(d); err != nil {
			return fmt.Errorf("behavior %q: modify database: %w", b.Name(), err)
		}
	}
	applied := 0
	for {
		b := d.nextTableBehavior()
		if b == nil {
			break
		}
		if d.maxBehaviorApplications > 0 && applied >= d.maxBehaviorApplications {
			return strata.NewInvalidArgumentError("behavior fixed point", applied,
				"application limit exceeded; a behavior keeps adding unapplied behaviors")
		}
		bb := b.base()
		if err := b.ModifyTable(bb.table); err != nil {
			return fmt.Errorf("behavior %q on table %q: modify table: %w", b.Name(), bb.table.Name, err)
		}
		bb.applied = true
		applied++
	}
	for _, t := range d.tableList {
		t.doFinalInitialization()
	}
	if err := d.setupReferrers(); err != nil {
		return err
	}
	d.finalized = true
	return nil
}

// registerDefaultBehaviors reads the comma-separated default-behaviors
// build property and registers each named behavior at the database level,
// without parameters. Runs exactly once, before any behavior hook.
func (d *Database) registerDefaultBehaviors() error {
	list := d.BuildProperty(DefaultBehaviorsProperty)
	if list == "" {
		return nil
	}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := d.AddBehaviorNamed(name); err != nil {
			return err
		}
	}
	return nil
}

// nextTableBehavior scans the live state for the next behavior to apply:
// the unapplied table behavior with the lowest modification order, first in
// discovery order on ties. The scan re-reads live state on every call
// because applying one behavior can register new tables and behaviors whose
// priorities interleave with not-yet-applied ones; a work list computed
// once up front would miss them.
func (d *Database) nextTableBehavior() Behavior {
	var next Behavior
	for _, t := range d.tableList {
		for _, b := range t.behaviorList {
			if b.base().applied {
				continue
			}
			if next == nil || b.TableModificationOrder() < next.TableModificationOrder() {
				next = b
			}
		}
	}
	return next
}

// setupReferrers recomputes foreign key back-links so every referenced
// table knows which tables point at it. Earlier links are discarded first:
// the pass runs again after the behavior fixed point, when behaviors may
// have added or moved foreign keys.
func (d *Database) setupReferrers() error {
	for _, t := range d.tableList {
		t.referrers = nil
	}
	for _, t := range d.tableList {
		for _, fk := range t.foreignKeys {
			ft, ok := d.tables[fk.ForeignTableName]
			if !ok {
				return strata.NewInvalidArgumentError("foreignTable", fk.ForeignTableName,
					fmt.Sprintf("foreign key %q of table %q references an unknown table", fk.Name, t.Name))
			}
			for _, col := range fk.LocalColumns {
				if !t.HasColumn(col) {
					return strata.NewInvalidArgumentError("foreignKey", col,
						fmt.Sprintf("foreign key %q of table %q references a local column that does not exist", fk.Name, t.Name))
				}
			}
			for _, col := range fk.ForeignColumns {
				if !ft.HasColumn(col) {
					return strata.NewInvalidArgumentError("foreignKey", col,
						fmt.Sprintf("foreign key %q of table %q references a column missing on %q", fk.Name, t.Name, ft.Name))
				}
			}
			fk.foreignTable = ft
			ft.referrers = append(ft.referrers, fk)
		}
	}
	return nil
}
