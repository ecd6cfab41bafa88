// Package config loads the optional .tapreport.yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig holds reporting preferences from .tapreport.yaml.
type AppConfig struct {
	Reporter       string `yaml:"reporter"`        // "spec" or "live"
	Theme          string `yaml:"theme"`           // "default" or "mono"
	NoColor        bool   `yaml:"no_color"`        // force the mono theme
	SlowMs         int    `yaml:"slow_ms"`         // slow-test threshold in milliseconds
	HumanizeTitles bool   `yaml:"humanize_titles"` // prettify machine-shaped names
}

// Constants for default values.
const (
	DefaultReporter = "spec"
	DefaultTheme    = "default"
	DefaultSlowMs   = 75
	configFileName  = ".tapreport.yaml"
)

// Load reads the configuration, falling back to defaults for anything
// missing or unreadable. Loading never fails; problems are reported to
// stderr and the defaults win.
func Load() *AppConfig {
	cfg := &AppConfig{
		Reporter: DefaultReporter,
		Theme:    DefaultTheme,
		SlowMs:   DefaultSlowMs,
	}

	debug := os.Getenv("TAPREPORT_DEBUG") != ""

	path := configPath()
	if path == "" {
		if debug {
			fmt.Fprintln(os.Stderr, "[DEBUG config] no "+configFileName+" found, using defaults")
		}
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	if fileCfg.Reporter != "" {
		cfg.Reporter = fileCfg.Reporter
	}
	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	if fileCfg.SlowMs > 0 {
		cfg.SlowMs = fileCfg.SlowMs
	}
	cfg.NoColor = fileCfg.NoColor
	cfg.HumanizeTitles = fileCfg.HumanizeTitles

	if cfg.NoColor {
		cfg.Theme = "mono"
	}

	if debug {
		fmt.Fprintf(os.Stderr, "[DEBUG config] loaded %s: %+v\n", path, cfg)
	}
	return cfg
}

// configPath finds the nearest config file: current directory first, then
// the user config directory.
func configPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	userDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(userDir, "tapreport", configFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
