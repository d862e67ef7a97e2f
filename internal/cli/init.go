package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/srs/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var sheetID string
	var serviceAccount string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Configure the storage backend",
		Long: `Configure the storage backend.

Without flags, items are stored in a local database (~/.srs/srs.db).
With --sheet-id and --service-account, items are stored one row per
item in a Google Sheets spreadsheet instead.

Examples:
  srs init
  srs init --sheet-id 1AbC... --service-account ~/.srs/sa.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (sheetID == "") != (serviceAccount == "") {
				return fmt.Errorf("--sheet-id and --service-account must be set together")
			}

			dir, err := config.DefaultDir()
			if err != nil {
				return err
			}

			cfg := &config.Config{Version: "1", Backend: config.BackendSQLite}
			if sheetID != "" {
				cfg.Backend = config.BackendSheets
				cfg.SheetID = sheetID
				cfg.ServiceAccount = serviceAccount
			}

			if err := config.Save(dir, cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if cfg.Backend == config.BackendSheets {
				fmt.Printf("✓ Configured Google Sheets backend (sheet %s)\n", cfg.SheetID)
			} else {
				fmt.Println("✓ Configured local backend (~/.srs/srs.db)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetID, "sheet-id", "", "Google Sheets spreadsheet ID")
	cmd.Flags().StringVar(&serviceAccount, "service-account", "", "Path to service-account credentials JSON")
	return cmd
}
