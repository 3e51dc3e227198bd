package schema

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-sync/cmd/flags"
	"github.com/fekuna/omnipos-catalog-sync/internal/app"
)

// NewSchemaCommand returns the command that only creates product_inventory.
func NewSchemaCommand() *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Create the product_inventory table if it does not exist",
		Long: `Connect to the database and create the product_inventory table for the
selected sync mode without contacting the catalog. Safe to run repeatedly.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			if err := uc.EnsureSchema(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "product_inventory is ready (%s mode).\n", cfg.Sync.Mode)
			return nil
		},
	}

	flags.Register(schemaCmd)
	return schemaCmd
}
