/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/types"
	"github.com/spf13/viper"
)

const (
	configName = ".cosmos"
	envPrefix  = "COSMOS"
	projectDir = ".cosmos"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Translate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	// Env handling must be set up before the config file is located.
	viper.SetEnvPrefix(envPrefix)                          // e.g., COSMOS_VERBOSE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names

	cfgFileFlag := viper.GetString("config")

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if _, err := os.Stat(projectDir); err == nil {
			viper.AddConfigPath(projectDir) // ./.cosmos/.cosmos.yaml
		}
		if dir, err := config.GetGlobalConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Dir(dir)) // $HOME/.cosmos.yaml
		}
		viper.AddConfigPath(".") // ./.cosmos.yaml
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		LogError("using config file "+viper.ConfigFileUsed(), nil)
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			}
		case os.IsNotExist(err) && cfgFileFlag != "":
			fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
		default:
			fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", viper.ConfigFileUsed(), err)
		}
	}

	setDefaults()

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling config: %v\n", err)
		os.Exit(1)
	}

	// Records path resolution falls through several locations, so it is not
	// a plain viper default.
	GlobalAppConfig.Records.Path = config.GetRecordsPath()
	GlobalAppConfig.Calendar.Layout = strings.ToLower(GlobalAppConfig.Calendar.Layout)
	GlobalAppConfig.Calendar.WeekStart = strings.ToLower(GlobalAppConfig.Calendar.WeekStart)
	GlobalAppConfig.Records.Driver = strings.ToLower(GlobalAppConfig.Records.Driver)

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

func setDefaults() {
	viper.SetDefault(config.KeyStatusOptions, config.DefaultStatusOptions())
	viper.SetDefault(config.KeyCalendarLayout, config.DefaultCalendarLayout)
	viper.SetDefault(config.KeyCalendarWeekStart, config.DefaultWeekStart)
	viper.SetDefault(config.KeyRecordsDriver, config.DefaultRecordsDriver)
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// configFilePath returns the config file in use, or the project config file
// that would be created.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(projectDir, configName+".yaml")
}
