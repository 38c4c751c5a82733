// Command strata compiles declarative schema files into SQL DDL and
// generated Go data-access code.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/strata/compiler/gen"
	"github.com/syssam/strata/compiler/load"

	// Register the ready-made behaviors so named references resolve.
	_ "github.com/syssam/strata/contrib/behavior"
)

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Schema compiler for SQL DDL and Go data-access code",
	Long: `strata reads a declarative schema file (YAML, XML, or JSON), extends it
with the behaviors it declares, and emits platform SQL and generated Go code.`,
	SilenceUsage: true,
}

var (
	schemaPath string
	properties []string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "schema.yaml", "schema file to compile")
	rootCmd.PersistentFlags().StringArrayVarP(&properties, "property", "p", nil, "build property as key=value (repeatable)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(versionCmd)
}

// newGraph loads the schema file and compiles it into a finalized graph.
func newGraph(opts ...gen.Option) (*gen.Graph, error) {
	desc, err := load.LoadFile(schemaPath)
	if err != nil {
		return nil, err
	}
	for _, p := range properties {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --property %q: expected key=value", p)
		}
		opts = append(opts, gen.WithBuildProperty(key, value))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, desc)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
