// cmd/mbebench/root.go
package mbebench

import (
	"fmt"
	"os"

	"github.com/hawaiilawtech/mbebench/internal/appconfig"
	"github.com/hawaiilawtech/mbebench/internal/dataset"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	dataFile      string
	currentConfig *appconfig.Config
	tableCache    = dataset.NewCache()
)

var rootCmd = &cobra.Command{
	Use:   "mbebench",
	Short: "mbebench — terminal dashboard for AI model performance on MBE questions",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load and validate the config file (or defaults when absent).
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2) Flags override config values.
		if cmd.Flags().Changed("debug") || viper.GetBool("debug") {
			cfg.Debug = viper.GetBool("debug")
		}
		if dataFile != "" {
			cfg.DataFile = dataFile
		}

		// 3) Materialize the merged configuration so commands share one
		//    stable snapshot.
		currentConfig = &cfg
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "results CSV to load (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// getConfig returns the loaded application configuration for subcommands.
func getConfig() *appconfig.Config {
	return currentConfig
}

// loadTable loads the configured dataset through the process-wide cache.
func loadTable(cfg *appconfig.Config) (*dataset.Table, error) {
	table, err := tableCache.Load(cfg.DataFilePath(), cfg.Schema())
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return table, nil
}
