package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEndpoint is the base URL used when no configuration sets one.
	DefaultEndpoint = "http://localhost:7433"

	// EndpointEnvVar overrides every file-based endpoint setting.
	EndpointEnvVar = "TODO_API_ENDPOINT"
)

// ProjectConfigFileNames are the project file names searched for, in order of
// preference within a single directory.
var ProjectConfigFileNames = []string{"todo.toml", "todo.yaml", "todo.yml"}

// ErrNoProjectConfig is returned when no project file exists between the start
// directory and the filesystem root.
var ErrNoProjectConfig = errors.New("no todo.toml, todo.yaml or todo.yml found")

// FileConfig is the content of one config file, project or global. Zero
// fields were not set in the file.
type FileConfig struct {
	Path     string
	Endpoint string
	Timeout  time.Duration
}

// configFile represents the raw structure shared by every config file format.
type configFile struct {
	Server serverSection `toml:"server" yaml:"server"`
	Client clientSection `toml:"client" yaml:"client"`
}

// serverSection represents the [server] section.
type serverSection struct {
	Endpoint string `toml:"endpoint" yaml:"endpoint"`
}

// clientSection represents the [client] section.
type clientSection struct {
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// DiscoverProjectConfig finds and parses the project config file by
// traversing up the directory tree from the current working directory.
func DiscoverProjectConfig() (*FileConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return DiscoverProjectConfigFrom(cwd)
}

// DiscoverProjectConfigFrom searches for a project config file starting from
// the given directory. It returns ErrNoProjectConfig when none is found.
func DiscoverProjectConfigFrom(startDir string) (*FileConfig, error) {
	dir := startDir

	for {
		for _, name := range ProjectConfigFileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return ParseProjectConfig(configPath)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return nil, ErrNoProjectConfig
		}
		dir = parent
	}
}

// ParseProjectConfig parses the project config file at the given path. The
// format is chosen from the file extension.
func ParseProjectConfig(path string) (*FileConfig, error) {
	raw, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := raw.validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path

	return cfg, nil
}

// decodeFile reads a TOML or YAML config file.
func decodeFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw configFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	return &raw, nil
}

// validate checks the raw values and converts them.
func (f *configFile) validate() (*FileConfig, error) {
	cfg := &FileConfig{}

	if f.Server.Endpoint != "" {
		if err := ValidateEndpoint(f.Server.Endpoint); err != nil {
			return nil, err
		}
		cfg.Endpoint = f.Server.Endpoint
	}

	if f.Client.Timeout != "" {
		d, err := time.ParseDuration(f.Client.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid client timeout %q: %w", f.Client.Timeout, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid client timeout %q: must not be negative", f.Client.Timeout)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// ValidateEndpoint checks that endpoint is an absolute http or https URL.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: host is required", endpoint)
	}
	return nil
}
