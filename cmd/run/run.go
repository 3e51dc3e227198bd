package run

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-sync/cmd/flags"
	"github.com/fekuna/omnipos-catalog-sync/internal/app"
)

// NewRunCommand returns the command that performs one catalog sync.
func NewRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch the product catalog and upsert it into product_inventory",
		Long: `Run one catalog sync: connect to the database, ensure the product_inventory
table exists, fetch every product from the catalog endpoint and upsert the whole
batch in a single transaction.

In value mode inventory_value (price x stock) is stored as well.

Examples:
  catalog-sync run                        # sync using .env and the environment
  catalog-sync run --mode base            # store raw catalog fields only
  catalog-sync run --db-driver postgres   # sync into PostgreSQL`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd)
		},
	}

	flags.Register(runCmd)
	return runCmd
}

func runSync(cmd *cobra.Command) error {
	overrides, err := flags.Overrides(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.LoadConfig(overrides)
	if err != nil {
		return err
	}

	log := app.NewLogger(cfg)
	defer log.Sync()

	uc, err := app.NewSyncUseCase(cfg, log)
	if err != nil {
		return err
	}

	result := uc.Sync(cmd.Context())
	if !result.Succeeded() {
		return result.Err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Success! %d products synced.\n", result.Count)
	return nil
}
