package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".vqascore"
	ConfigFileName = "config.yml"
)

// ErrConfigNotFound is returned by FindConfigPath when no config exists up to the root.
var ErrConfigNotFound = errors.New("config not found")

// ConfigPath returns the config file path under a directory.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// FindConfigPath searches upward from startDir (or the working directory) for
// .vqascore/config.yml.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configPath := ConfigPath(dir)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or parent directories", ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), abs)
		}
		dir = parent
	}
}

// Resolve loads the config at explicitPath, or the nearest config found from the working
// directory. Without either, the defaults are returned with an empty path.
func Resolve(explicitPath string) (Config, string, error) {
	if strings.TrimSpace(explicitPath) != "" {
		abs, err := filepath.Abs(explicitPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := Load(abs)
		return cfg, abs, err
	}
	found, err := FindConfigPath("")
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(found)
	return cfg, found, err
}
