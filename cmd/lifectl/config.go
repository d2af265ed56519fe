package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const defaultServerURL = "http://localhost:9000"

type cliConfig struct {
	ServerURL string `yaml:"server_url"`
	Token     string `yaml:"token,omitempty"`
	// shows up in the server request logs
	DeviceID string `yaml:"device_id"`
	// local session records, defaults to <config dir>/state
	StateDir string `yaml:"state_dir,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "lifedash", "lifectl.yaml")
}

// loadConfig reads the config file, a missing one yields defaults.
func loadConfig(path string) (*cliConfig, error) {
	cfg := &cliConfig{}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config [%s]: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("decode config [%s]: %w", path, err)
		}
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	if cfg.DeviceID == "" {
		cfg.DeviceID = uuid.NewString()
	}
	if cfg.StateDir == "" {
		cfg.StateDir = filepath.Join(filepath.Dir(path), "state")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg, nil
}

// save writes the config readable by the owner only, it holds the login token.
func (c *cliConfig) save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write config [%s]: %w", path, err)
	}
	return nil
}
