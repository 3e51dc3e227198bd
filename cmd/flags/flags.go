// Package flags holds the command line flags shared by every catalog-sync
// command.
package flags

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-sync/internal/app"
)

const (
	envFileFlag    = "env-file"
	modeFlag       = "mode"
	catalogURLFlag = "catalog-url"
	dbDriverFlag   = "db-driver"
)

func newSyncFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		envFileFlag: &cobraflags.StringFlag{
			Name:  envFileFlag,
			Value: ".env",
			Usage: "Env file loaded before reading the environment (ignored if missing)",
		},
		modeFlag: &cobraflags.StringFlag{
			Name:  modeFlag,
			Value: "",
			Usage: "Sync mode (value, base). Overrides SYNC_MODE",
		},
		catalogURLFlag: &cobraflags.StringFlag{
			Name:  catalogURLFlag,
			Value: "",
			Usage: "Product catalog endpoint. Overrides CATALOG_URL",
		},
		dbDriverFlag: &cobraflags.StringFlag{
			Name:  dbDriverFlag,
			Value: "",
			Usage: "Database driver (mysql, postgres). Overrides DB_DRIVER",
		},
	}
}

// Register adds a fresh set of the shared flags to cmd. Each command owns
// its own set; values are read back from cmd's flag set, not from the
// Flag values, so commands never share state.
func Register(cmd *cobra.Command) {
	cobraflags.RegisterMap(cmd, newSyncFlags())
}

// Overrides reads the flag values parsed for cmd.
func Overrides(cmd *cobra.Command) (app.Overrides, error) {
	fs := cmd.Flags()

	var o app.Overrides
	for name, dst := range map[string]*string{
		envFileFlag:    &o.EnvFile,
		modeFlag:       &o.Mode,
		catalogURLFlag: &o.CatalogURL,
		dbDriverFlag:   &o.DBDriver,
	} {
		v, err := fs.GetString(name)
		if err != nil {
			return app.Overrides{}, fmt.Errorf("read --%s: %w", name, err)
		}
		*dst = v
	}
	return o, nil
}
