package root

import (
	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-sync/cmd/run"
	"github.com/fekuna/omnipos-catalog-sync/cmd/schema"
)

// NewRootCommand returns the catalog-sync command tree. The bare binary runs
// a sync, same as "catalog-sync run".
func NewRootCommand() *cobra.Command {
	rootCmd := run.NewRunCommand()
	rootCmd.Use = "catalog-sync"
	rootCmd.Short = "Sync the remote product catalog into product_inventory"

	rootCmd.AddCommand(run.NewRunCommand())
	rootCmd.AddCommand(schema.NewSchemaCommand())
	return rootCmd
}
