// Package config loads the optional bindings.yaml project configuration
// and resolves defaults from the enclosing Go module.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional bindings.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Inspect InspectConfig `yaml:"inspect"`
	Storage StorageConfig `yaml:"storage"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// InspectConfig contains inspection server settings.
type InspectConfig struct {
	Port         int    `yaml:"port,omitempty"`
	FeedInterval string `yaml:"feedInterval,omitempty"`
}

// StorageConfig contains state persistence settings.
type StorageConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root         string
	ModulePath   string
	AppName      string
	InspectPort  int
	FeedInterval time.Duration
	StatePath    string
}

// LoadOptional reads bindings.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "bindings.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read bindings.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bindings.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads bindings.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	feedInterval := 250 * time.Millisecond
	if raw := strings.TrimSpace(cfg.Inspect.FeedInterval); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid inspect.feedInterval %q: %w", raw, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("inspect.feedInterval must be positive (got %q)", raw)
		}
		feedInterval = parsed
	}

	statePath := strings.TrimSpace(cfg.Storage.Path)
	if statePath == "" {
		statePath = filepath.Join(dir, "bindings.db")
	} else if !filepath.IsAbs(statePath) {
		statePath = filepath.Join(dir, statePath)
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      appName,
		InspectPort:  cfg.Inspect.Port,
		FeedInterval: feedInterval,
		StatePath:    statePath,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "bindings_app"
	}
	return base
}
