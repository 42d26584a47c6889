package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// ErrNoConfigFile is returned when an operation needs a config file and none
// is in use.
var ErrNoConfigFile = errors.New("no config file in use")

// ErrUnsupportedConfigType is returned for config files Viper cannot encode.
var ErrUnsupportedConfigType = errors.New("unsupported config file type")

// configTypes are the formats Viper reads and writes out of the box.
var configTypes = []string{"yaml", "yml", "json", "toml"}

// configTypeFor derives the Viper config type from path's extension.
// Extensionless files such as .cosmos are YAML.
func configTypeFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimPrefix(filepath.Base(path), ".")))
	if ext == "" {
		return "yaml", nil
	}
	ext = ext[1:]
	if !slices.Contains(configTypes, ext) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedConfigType, path)
	}
	return ext, nil
}

// SaveStatusOptions writes labels to status.options in the config file at
// path, preserving every other setting. The file is created when missing.
func SaveStatusOptions(path string, labels []string) error {
	if path == "" {
		return ErrNoConfigFile
	}
	cleaned := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			cleaned = append(cleaned, l)
		}
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("status options cannot be empty")
	}
	configType, err := configTypeFor(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType)

	// Read existing if any to preserve other settings
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}

	v.Set(KeyStatusOptions, cleaned)
	return v.WriteConfigAs(path)
}

// ReadStatusOptions reads status.options from the config file at path
// through a private Viper instance.
func ReadStatusOptions(path string) ([]string, error) {
	if path == "" {
		return nil, ErrNoConfigFile
	}
	configType, err := configTypeFor(path)
	if err != nil {
		return nil, err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return statusOptionsFrom(v), nil
}
