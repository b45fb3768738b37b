package cmd

import (
	"github.com/fekalegi/property-management-system/config"
	"github.com/fekalegi/property-management-system/internal/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema (Postgres tables or Mongo indexes)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		return app.Migrate(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
