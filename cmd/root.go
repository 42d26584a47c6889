/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/logger"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cosmos",
	Short: "Cosmos - task and meeting status for the office calendar",
	Long: `Cosmos reconciles free-form task and meeting statuses into one taxonomy,
works out which recurring tasks fall on a day, and shades the month calendar
by the most urgent status on each day.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.ConfigureColor(viper.GetBool("no-color"))
		if viper.GetBool("no-color") {
			color.NoColor = true
		}
		logger.Setup(cmd.ErrOrStderr(), isVerbose())
		logger.SetCommand(cmd.CommandPath(), args)
		logger.SetRecordsPath(GetConfig().Records.Path)
		logger.SetBasePath(filepath.Dir(GetConfig().Records.Path))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.HandlePanic()

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)
	logger.SetVersion(version)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.cosmos/.cosmos.yaml or $HOME/.cosmos.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("records", "", "records file or database (default .cosmos/records.yaml)")
	rootCmd.PersistentFlags().String("records-driver", "", "records driver: file or sqlite")

	bindFlags()
}

// bindFlags binds the persistent flags to Viper.
func bindFlags() {
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag(config.KeyRecordsPath, rootCmd.PersistentFlags().Lookup("records"))
	_ = viper.BindPFlag(config.KeyRecordsDriver, rootCmd.PersistentFlags().Lookup("records-driver"))
}
