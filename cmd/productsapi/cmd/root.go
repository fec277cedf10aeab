package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourorg/products-api/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "productsapi",
	Short:        "REST API for managing products",
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	config.SetDefaults(viper.GetViper())
	viper.AutomaticEnv()
}
