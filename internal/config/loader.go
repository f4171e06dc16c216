package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dbgvis/pkg/logging"
)

// For mocking in tests.
var (
	osUserHomeDir = os.UserHomeDir
	osGetwd       = os.Getwd
)

const (
	userConfigDir    = ".config/dbgvis"
	projectConfigDir = ".dbgvis"
	configFileName   = "config.yaml"
)

// LoadConfig layers the built-in defaults, the user config and the project
// config, in that order. Missing files are fine; unreadable or malformed
// files are an error.
func LoadConfig() (Config, error) {
	config := DefaultConfig()

	userPath, err := userConfigPath()
	if err != nil {
		logging.Warn("config", "could not determine user config path: %v", err)
	} else if fileExists(userPath) {
		userConfig, err := loadConfigFromFile(userPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectPath, err := projectConfigPath()
	if err != nil {
		logging.Warn("config", "could not determine project config path: %v", err)
	} else if fileExists(projectPath) {
		projectConfig, err := loadConfigFromFile(projectPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

func userConfigPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

func projectConfigPath() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func loadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}

// mergeConfigs overlays non-zero fields of overlay onto base.
func mergeConfigs(base, overlay Config) Config {
	if overlay.Window.Title != "" {
		base.Window.Title = overlay.Window.Title
	}
	if overlay.Window.MainTile != "" {
		base.Window.MainTile = overlay.Window.MainTile
	}
	if overlay.Window.FrameRate > 0 {
		base.Window.FrameRate = overlay.Window.FrameRate
	}
	if overlay.Graph.DefaultMaxSamples > 0 {
		base.Graph.DefaultMaxSamples = overlay.Graph.DefaultMaxSamples
	}
	if overlay.Console.SnapshotInterval > 0 {
		base.Console.SnapshotInterval = overlay.Console.SnapshotInterval
	}
	return base
}
