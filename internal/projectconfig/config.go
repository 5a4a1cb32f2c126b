// Package projectconfig provides the ProjectConfig struct and loader for
// .simbench.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file looked up from the
// working directory upward.
const ConfigFileName = ".simbench.yaml"

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultDataPath = "data/results.json"

	DefaultServerPort = 3000

	DefaultPageSize   = 25
	DefaultSampleSize = 100
	DefaultSampleSeed = 42
)

// DataConfig holds the results data source settings. Source may be a JSON
// file, a directory of JSON files, or an HTTP(S) URL.
type DataConfig struct {
	Source string `yaml:"source,omitempty"`
}

// ServerConfig holds explorer server settings. CORSOrigins lists origins
// allowed to call the API cross-origin; empty means same-origin only.
type ServerConfig struct {
	Port        int      `yaml:"port,omitempty"`
	NoBrowser   *bool    `yaml:"no_browser,omitempty"`
	CORSOrigins []string `yaml:"cors_origins,omitempty"`
}

// ExplorerConfig holds pipeline defaults for the explorer view.
type ExplorerConfig struct {
	PageSize int    `yaml:"page_size,omitempty"`
	Sort     string `yaml:"sort,omitempty"`
}

// SampleConfig holds the synthetic fallback dataset settings.
type SampleConfig struct {
	Size int   `yaml:"size,omitempty"`
	Seed int64 `yaml:"seed,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .simbench.yaml.
type ProjectConfig struct {
	Data     DataConfig     `yaml:"data,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Explorer ExplorerConfig `yaml:"explorer,omitempty"`
	Sample   SampleConfig   `yaml:"sample,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Data: DataConfig{
			Source: DefaultDataPath,
		},
		Server: ServerConfig{
			Port:      DefaultServerPort,
			NoBrowser: boolPtr(false),
		},
		Explorer: ExplorerConfig{
			PageSize: DefaultPageSize,
			Sort:     "index",
		},
		Sample: SampleConfig{
			Size: DefaultSampleSize,
			Seed: DefaultSampleSeed,
		},
	}
}

// Load finds .simbench.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// Save writes the configuration to dir/.simbench.yaml.
func (c *ProjectConfig) Save(dir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", ConfigFileName, err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// findConfigFile walks up from dir looking for .simbench.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Data.Source != "" {
		dst.Data.Source = src.Data.Source
	}

	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Server.NoBrowser != nil {
		dst.Server.NoBrowser = src.Server.NoBrowser
	}
	if len(src.Server.CORSOrigins) > 0 {
		dst.Server.CORSOrigins = src.Server.CORSOrigins
	}

	if src.Explorer.PageSize != 0 {
		dst.Explorer.PageSize = src.Explorer.PageSize
	}
	if src.Explorer.Sort != "" {
		dst.Explorer.Sort = src.Explorer.Sort
	}

	if src.Sample.Size != 0 {
		dst.Sample.Size = src.Sample.Size
	}
	if src.Sample.Seed != 0 {
		dst.Sample.Seed = src.Sample.Seed
	}
}

func boolPtr(b bool) *bool {
	return &b
}
