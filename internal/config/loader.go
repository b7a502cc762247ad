package config

import (
	"os"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a loader that looks for .excat.yml (or .excat.yaml) in
// rootDir.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewFileLoader creates a loader for an explicit config file, which must exist.
func NewFileLoader(path string) Loader {
	return &loader{configFile: path}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (EXCAT_*)
// 2. Config file
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(".excat")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix("EXCAT")
	v.AutomaticEnv()
	// EXCAT_SCAN_PARALLEL → scan.parallel
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"scan.encoding",
		"scan.parallel",
		"registry.definitions",
		"output.path",
		"log.level",
	} {
		_ = v.BindEnv(key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || l.configFile != "" {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to unmarshal config")
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "invalid configuration")
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("scan.extensions", defaults.Scan.Extensions)
	v.SetDefault("scan.exclude_dirs", defaults.Scan.ExcludeDirs)
	v.SetDefault("scan.ignore", defaults.Scan.Ignore)
	v.SetDefault("scan.encoding", defaults.Scan.Encoding)
	v.SetDefault("scan.keywords", defaults.Scan.Keywords)
	v.SetDefault("scan.parallel", defaults.Scan.Parallel)

	overrides := make([]map[string]interface{}, 0, len(defaults.Registry.Overrides))
	for _, o := range defaults.Registry.Overrides {
		overrides = append(overrides, map[string]interface{}{"name": o.Name, "code": o.Code})
	}

	v.SetDefault("registry.definitions", defaults.Registry.Definitions)
	v.SetDefault("registry.overrides", overrides)

	v.SetDefault("output.path", defaults.Output.Path)
	v.SetDefault("log.level", defaults.Log.Level)
}

// LoadConfig loads configuration from the current working directory.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to get working directory")
	}

	return NewLoader(wd).Load()
}
