package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests.
var (
	osUserHomeDir = os.UserHomeDir
	osGetwd       = os.Getwd
)

const (
	userConfigDir    = ".config/swatch"
	projectConfigDir = ".swatch"
	configFileName   = "config.yaml"
)

// Loader builds a Config from its layers.
type Loader struct {
	useEnv   bool
	filePath string
	warn     func(format string, args ...any)
}

// NewLoader creates a loader that reads the default, user and project
// layers.
func NewLoader() *Loader {
	return &Loader{
		warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		},
	}
}

// WithEnvConfig applies SWATCH_BASE, SWATCH_NAMES, SWATCH_PREVIEW and
// SWATCH_LOG_LEVEL after the files.
func (l *Loader) WithEnvConfig() *Loader {
	l.useEnv = true
	return l
}

// WithFile adds an explicit configuration file, read after the project
// layer. Unlike the other layers it must exist.
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// WithWarnings sets the function that reports unreadable optional layers.
func (l *Loader) WithWarnings(warn func(format string, args ...any)) *Loader {
	l.warn = warn
	return l
}

// Load merges every layer and validates the result.
func (l *Loader) Load() (Config, error) {
	config := Default()

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			// Optional layers never fail the load.
			l.warn("could not determine %s config path: %v", layer.name, err)
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		config = merge(config, overlay)
	}

	if l.filePath != "" {
		overlay, err := loadConfigFromFile(l.filePath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", l.filePath, err)
		}
		config = merge(config, overlay)
	}

	if l.useEnv {
		config = merge(config, Config{
			Base:     os.Getenv("SWATCH_BASE"),
			Names:    os.Getenv("SWATCH_NAMES"),
			Preview:  os.Getenv("SWATCH_PREVIEW"),
			LogLevel: os.Getenv("SWATCH_LOG_LEVEL"),
		})
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// UserConfigDir returns the user configuration directory.
func UserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
