package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/framewright/framebom/internal/model"
)

// DefaultConfigPath returns the default file path for the app config.
// This is located at ~/.framebom/config.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".framebom", "config.json"), nil
}

// SaveAppConfig writes the app config to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the app config from the specified JSON file. If the
// file does not exist the built-in defaults are returned with no error, so
// commands work before any config has been saved.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentExports == nil {
		config.RecentExports = []string{}
	}
	return config, nil
}

// LoadDefaultAppConfig loads the app config from the default path.
func LoadDefaultAppConfig() (model.AppConfig, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return model.DefaultAppConfig(), err
	}
	return LoadAppConfig(path)
}

// SaveDefaultAppConfig saves the app config to the default path.
func SaveDefaultAppConfig(config model.AppConfig) error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return SaveAppConfig(path, config)
}
