package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/strata/dialect"
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Emit the platform DDL for the schema",
	RunE:  runSQL,
}

var (
	sqlPlatform string
	sqlOutput   string
	sqlDrop     bool
)

func init() {
	sqlCmd.Flags().StringVar(&sqlPlatform, "platform", dialect.SQLite, "target platform: sqlite, mysql, or postgres")
	sqlCmd.Flags().StringVarP(&sqlOutput, "output", "o", "", "write to file instead of stdout")
	sqlCmd.Flags().BoolVar(&sqlDrop, "drop", false, "emit DROP TABLE statements before the CREATE statements")
}

func runSQL(cmd *cobra.Command, args []string) error {
	stmts, err := schemaSQL(sqlPlatform, sqlDrop)
	if err != nil {
		return err
	}
	out := strings.Join(stmts, "\n\n") + "\n"
	if sqlOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(sqlOutput, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", sqlOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d statements to %s\n", len(stmts), sqlOutput)
	return nil
}

// schemaSQL compiles the schema and renders its DDL for the named platform.
func schemaSQL(platform string, drop bool) ([]string, error) {
	p, err := dialect.PlatformByName(platform)
	if err != nil {
		return nil, err
	}
	g, err := newGraph()
	if err != nil {
		return nil, err
	}
	var stmts []string
	if drop {
		stmts = dialect.DropSQL(g.Database, p)
	}
	create, err := dialect.DatabaseSQL(g.Database, p)
	if err != nil {
		return nil, err
	}
	return append(stmts, create...), nil
}
