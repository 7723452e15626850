// SPDX-License-Identifier: EPL-2.0

// Package config loads CLI settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/ik5/soundbank/dataset"
	"github.com/ik5/soundbank/normalize"
)

const (
	// DefaultBaseDir is the per-user configuration directory name.
	DefaultBaseDir = ".soundbank"
	// DefaultConfigFile is the configuration filename inside DefaultBaseDir.
	DefaultConfigFile = "config.yaml"
)

// Config is the file and environment configuration. Command-line flags are
// applied on top by the caller.
type Config struct {
	Root       string   `yaml:"root,omitempty"`
	RecordsURL string   `yaml:"records_url,omitempty"`
	SegmentURL string   `yaml:"segment_url,omitempty"`
	LabelURL   string   `yaml:"label_url,omitempty"`
	IDs        []string `yaml:"ids,omitempty"`
	Workers    int      `yaml:"workers,omitempty"`

	// Timeout is the per-request HTTP timeout, e.g. "2m".
	Timeout string `yaml:"timeout,omitempty"`

	// NormalizeTool is the path of the external loudness normalizer.
	NormalizeTool string `yaml:"normalize_tool,omitempty"`

	// path is where the file was read from; empty when none was found.
	path string
}

// Default returns the built-in settings.
func Default() *Config {
	d := dataset.DefaultConfig()
	return &Config{
		Root:          d.Root,
		RecordsURL:    d.RecordsURL,
		SegmentURL:    d.SegmentURL,
		LabelURL:      d.LabelURL,
		Workers:       d.Workers,
		NormalizeTool: normalize.DefaultTool,
	}
}

// DefaultPath is ~/.soundbank/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DefaultBaseDir, DefaultConfigFile), nil
}

// Load reads customPath, or the default path when empty, over the defaults
// and then applies environment overrides. A missing default file is not an
// error; a missing custom file is.
func Load(customPath string) (*Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			cfg.path = path
		case os.IsNotExist(err) && customPath == "":
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnv()

	if _, err := cfg.HTTPTimeout(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Root = envStr("SOUNDBANK_ROOT", c.Root)
	c.RecordsURL = envStr("SOUNDBANK_RECORDS_URL", c.RecordsURL)
	c.SegmentURL = envStr("SOUNDBANK_SEGMENT_URL", c.SegmentURL)
	c.LabelURL = envStr("SOUNDBANK_LABEL_URL", c.LabelURL)
	c.Workers = envInt("SOUNDBANK_WORKERS", c.Workers)
	c.Timeout = envStr("SOUNDBANK_TIMEOUT", c.Timeout)
	c.NormalizeTool = envStr("SOUNDBANK_NORMALIZE_TOOL", c.NormalizeTool)
}

// Path returns the file the configuration was read from, if any.
func (c *Config) Path() string { return c.path }

// HTTPTimeout parses Timeout. Zero means the client default.
func (c *Config) HTTPTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// Dataset converts the settings into a dataset configuration.
func (c *Config) Dataset() dataset.Config {
	d := dataset.DefaultConfig()
	d.Root = c.Root
	d.RecordsURL = c.RecordsURL
	d.SegmentURL = c.SegmentURL
	d.LabelURL = c.LabelURL
	d.IDs = c.IDs
	d.Workers = c.Workers
	return d
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
