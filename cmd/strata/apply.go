package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/strata/dialect"

	// Drivers for the supported platforms.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the schema DDL to a live database",
	RunE:  runApply,
}

var (
	applyPlatform string
	applyDSN      string
	applyDrop     bool
)

func init() {
	applyCmd.Flags().StringVar(&applyPlatform, "platform", dialect.SQLite, "target platform: sqlite, mysql, or postgres")
	applyCmd.Flags().StringVar(&applyDSN, "dsn", "", "database connection string (required)")
	applyCmd.Flags().BoolVar(&applyDrop, "drop", false, "drop existing tables first")
	applyCmd.MarkFlagRequired("dsn")
}

func runApply(cmd *cobra.Command, args []string) error {
	stmts, err := schemaSQL(applyPlatform, applyDrop)
	if err != nil {
		return err
	}
	// Each driver registers under its platform name: modernc.org/sqlite as
	// "sqlite", go-sql-driver as "mysql", lib/pq as "postgres".
	conn, err := sql.Open(applyPlatform, applyDSN)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := dialect.Apply(cmd.Context(), conn, stmts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "applied %d statements\n", len(stmts))
	return nil
}
