package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "property",
	Short: "Property Management Backend",
	Long:  `HTTP backend for tenants, house bookings and contact-form submissions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			return godotenv.Load(envFile)
		}
		// A missing .env in the working directory is fine.
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file loaded before the config")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
