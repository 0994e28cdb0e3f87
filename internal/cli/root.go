// Package cli implements the wlcdiff CLI commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wlcdiff",
	Short: "Compare wireless controller configuration snapshots",
	Long: `wlcdiff aligns and diffs two wireless network controller configuration
snapshots (tenants, venues) that share no stable identifiers.

Items are paired per section using fuzzy multi-field similarity, classified
as matched, source-only, or destination-only, and matched pairs get a
field-level diff with volatile fields suppressed.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wlcdiff/config.yaml)")

	viper.SetEnvPrefix("WLCDIFF")
	viper.AutomaticEnv()

	// Add subcommands
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newPolicyCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.wlcdiff")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// Read config file if it exists
	_ = viper.ReadInConfig()
}
