package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".todo"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// LoadGlobalConfig loads the global configuration from ~/.todo/config.toml.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*FileConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadGlobalConfigFromDir(homeDir)
}

// LoadGlobalConfigFromDir loads global config using the specified directory as home.
func LoadGlobalConfigFromDir(homeDir string) (*FileConfig, error) {
	configPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &FileConfig{}, nil
	}

	raw, err := decodeFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("global config: %w", err)
	}

	cfg, err := raw.validate()
	if err != nil {
		return nil, fmt.Errorf("global config %s: %w", configPath, err)
	}
	cfg.Path = configPath

	return cfg, nil
}
