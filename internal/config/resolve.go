package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. Explicit override (the --endpoint flag)
// 2. TODO_API_ENDPOINT environment variable
// 3. Project config (todo.toml / todo.yaml, discovered upwards from cwd)
// 4. Global config (~/.todo/config.toml)
// 5. Built-in default (http://localhost:7433)
//
// Timeout follows the same order minus the first two sources.
type ResolvedConfig struct {
	Endpoint string
	Timeout  time.Duration
	// Source names where Endpoint came from: "flag", "env", a file path, or
	// "default".
	Source string
}

// Options carries the inputs to ResolveConfig that do not come from files.
type Options struct {
	Endpoint string
	HomeDir  string
	WorkDir  string
	Getenv   func(string) string
}

// ResolveConfig discovers the project config, loads the global config,
// and merges them according to precedence rules.
func ResolveConfig(endpointOverride string) (*ResolvedConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return ResolveConfigWith(Options{
		Endpoint: endpointOverride,
		HomeDir:  homeDir,
		WorkDir:  workDir,
		Getenv:   os.Getenv,
	})
}

// ResolveConfigWith resolves config from explicit directories and
// environment lookup.
func ResolveConfigWith(opts Options) (*ResolvedConfig, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	// Project config is optional
	projectCfg, err := DiscoverProjectConfigFrom(opts.WorkDir)
	if errors.Is(err, ErrNoProjectConfig) {
		projectCfg = &FileConfig{}
	} else if err != nil {
		return nil, err
	}

	globalCfg, err := LoadGlobalConfigFromDir(opts.HomeDir)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		Endpoint: DefaultEndpoint,
		Source:   "default",
	}

	// Apply file configs, global first so project wins
	for _, fc := range []*FileConfig{globalCfg, projectCfg} {
		if fc.Endpoint != "" {
			resolved.Endpoint = fc.Endpoint
			resolved.Source = fc.Path
		}
		if fc.Timeout != 0 {
			resolved.Timeout = fc.Timeout
		}
	}

	if env := getenv(EndpointEnvVar); env != "" {
		if err := ValidateEndpoint(env); err != nil {
			return nil, fmt.Errorf("%s: %w", EndpointEnvVar, err)
		}
		resolved.Endpoint = env
		resolved.Source = "env"
	}

	if opts.Endpoint != "" {
		if err := ValidateEndpoint(opts.Endpoint); err != nil {
			return nil, err
		}
		resolved.Endpoint = opts.Endpoint
		resolved.Source = "flag"
	}

	return resolved, nil
}
