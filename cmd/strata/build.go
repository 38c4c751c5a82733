package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/strata/compiler/gen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate Go data-access code from the schema",
	RunE:  runBuild,
}

var (
	buildTarget  string
	buildPackage string
	buildWatch   bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildTarget, "target", "o", "./model", "output directory for generated code")
	buildCmd.Flags().StringVar(&buildPackage, "package", "", "package name for generated code (default: derived from the schema)")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "watch the schema file and regenerate on change")
}

func runBuild(cmd *cobra.Command, args []string) error {
	rebuild := func() error {
		opts := []gen.Option{gen.WithTarget(buildTarget)}
		if buildPackage != "" {
			opts = append(opts, gen.WithPackage(buildPackage))
		}
		g, err := newGraph(opts...)
		if err != nil {
			return err
		}
		if err := gen.Generate(cmd.Context(), g); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "generated %d tables into %s\n", len(g.Database.Tables()), buildTarget)
		return nil
	}
	if err := rebuild(); err != nil {
		return err
	}
	if !buildWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", schemaPath)
	return gen.Watch(ctx, []string{schemaPath}, rebuild, func(err error) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	})
}
