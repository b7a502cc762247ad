// Package config loads excat settings from defaults, a config file and the
// environment.
package config

import (
	"github.com/mouse-blink/excat/internal/adapter"
	"github.com/mouse-blink/excat/internal/domain"
	m "github.com/mouse-blink/excat/internal/model"
)

// Config represents the complete excat configuration.
type Config struct {
	Scan     ScanConfig     `yaml:"scan" mapstructure:"scan"`
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ScanConfig selects files and the call shapes recognised in them.
type ScanConfig struct {
	Extensions  []string `yaml:"extensions" mapstructure:"extensions"`     // file suffixes, e.g. ".cpp"
	ExcludeDirs []string `yaml:"exclude_dirs" mapstructure:"exclude_dirs"` // directory names, case-insensitive
	Ignore      []string `yaml:"ignore" mapstructure:"ignore"`             // glob patterns on relative paths
	Encoding    string   `yaml:"encoding" mapstructure:"encoding"`         // IANA name
	Keywords    []string `yaml:"keywords" mapstructure:"keywords"`         // exception class names after "throw"
	Parallel    int      `yaml:"parallel" mapstructure:"parallel"`         // extraction workers
}

// RegistryConfig locates code definitions and the manual override table.
type RegistryConfig struct {
	Definitions string         `yaml:"definitions" mapstructure:"definitions"` // relative to the scan root unless absolute
	Overrides   []CodeOverride `yaml:"overrides" mapstructure:"overrides"`
}

// CodeOverride is one manual name → number entry. Overrides are a list rather
// than a map because viper lowercases map keys.
type CodeOverride struct {
	Name string `yaml:"name" mapstructure:"name"`
	Code int    `yaml:"code" mapstructure:"code"`
}

// OutputConfig controls where the catalog is written.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn or error
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions:  append([]string(nil), adapter.DefaultExtensions...),
			ExcludeDirs: append([]string(nil), adapter.DefaultExcludeDirs...),
			Ignore:      []string{},
			Encoding:    adapter.DefaultEncoding,
			Keywords:    append([]string(nil), domain.DefaultKeywords...),
			Parallel:    1,
		},
		Registry: RegistryConfig{
			Definitions: "src/Common/ErrorCodes.cpp",
			Overrides: []CodeOverride{
				{Name: "ERROR_CODE_FOR_UNEXPECTED_NAME", Code: 100},
				{Name: "storage_already_exists_error_code", Code: 101},
				{Name: "too_many_rows_exception_code", Code: 102},
				{Name: "too_many_bytes_exception_code", Code: 103},
				{Name: "NO_ELEMENTS_IN_CONFIG", Code: 106},
				{Name: "SOME_CODE", Code: 107},
				{Name: "TOO_MANY_ROWS", Code: 108},
			},
		},
		Output: OutputConfig{
			Path: "data/errors_clickhouse.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// OverrideEntries converts the override table for the registry builder.
func (c *Config) OverrideEntries() []m.ErrorCodeEntry {
	entries := make([]m.ErrorCodeEntry, 0, len(c.Registry.Overrides))
	for _, o := range c.Registry.Overrides {
		entries = append(entries, m.ErrorCodeEntry{Name: o.Name, Number: o.Code})
	}

	return entries
}

// DiscoverOptions converts the scan section for the filesystem adapter.
func (c *Config) DiscoverOptions() adapter.DiscoverOptions {
	return adapter.DiscoverOptions{
		Extensions:  c.Scan.Extensions,
		ExcludeDirs: c.Scan.ExcludeDirs,
		Ignore:      c.Scan.Ignore,
	}
}
