// Package cli implements the querykit command line: building,
// signing and dispatching queries, and serving the demo ledger.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/blockberries/querykit/internal/config"
)

// NewRootCmd returns the querykit root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "querykit",
		Short:        "Build, sign and send ledger queries",
		SilenceUsage: true,
	}
	root.AddCommand(newBuildCmd())
	root.AddCommand(newFindCmd())
	root.AddCommand(newKeygenCmd())
	root.AddCommand(newServeCmd())
	return root
}

func loadConfig() (config.Config, error) {
	return config.Load()
}
