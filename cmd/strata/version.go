package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/syssam/strata"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "strata version %s (%s, %s/%s)\n",
			strata.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
