package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL = "http://localhost:5000"
	ServerURLEnvVar  = "NOTES_SERVER_URL"
)

// ClientConfig configures the terminal client.
type ClientConfig struct {
	ServerURL string `yaml:"server_url"`
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
	// exports client spans through the honeycomb distro, HONEYCOMB_API_KEY must be set
	TracingEnabled bool `yaml:"tracing_enabled"`
}

// DefaultClientConfigPath returns ~/.config/notes/config.yaml.
func DefaultClientConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "notes", "config.yaml"), nil
}

// LoadClient resolves the client config: defaults < file < env.
// A missing file is not an error. Flags are applied by the caller.
func LoadClient(path string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerURL: DefaultServerURL,
		LogFile:   filepath.Join(os.TempDir(), "notes-tui.log"),
		LogLevel:  "info",
	}

	if path != "" {
		fileCfg, err := readClientConfigFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, err
		default:
			if fileCfg.ServerURL != "" {
				cfg.ServerURL = fileCfg.ServerURL
			}
			if fileCfg.LogFile != "" {
				cfg.LogFile = fileCfg.LogFile
			}
			if fileCfg.LogLevel != "" {
				cfg.LogLevel = fileCfg.LogLevel
			}
			cfg.TracingEnabled = fileCfg.TracingEnabled
		}
	}

	if envURL := os.Getenv(ServerURLEnvVar); envURL != "" {
		cfg.ServerURL = envURL
	}

	return cfg, nil
}

func readClientConfigFile(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fileCfg ClientConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse client config %s: %w", path, err)
	}
	return &fileCfg, nil
}
