package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.cosmos).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cosmos"), nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return homedir.Expand(path)
}

// GetRecordsPath returns the location of the record source.
// Resolution order (first match wins):
// 1. Explicit config via "records.path" (Viper/env/flag)
// 2. Local project file: .cosmos/records.yaml (if exists)
// 3. XDG_DATA_HOME/cosmos/records.yaml (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.cosmos/records.yaml
func GetRecordsPath() string {
	if path := viper.GetString(KeyRecordsPath); path != "" {
		if expanded, err := ExpandPath(path); err == nil {
			return expanded
		}
		return path
	}

	if info, err := os.Stat(DefaultRecordsPath); err == nil && !info.IsDir() {
		return DefaultRecordsPath
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "cosmos", "records.yaml")
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return DefaultRecordsPath
	}
	return filepath.Join(dir, "records.yaml")
}
