package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mouse-blink/excat/internal/adapter"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks a loaded configuration for values the scanner cannot use.
func Validate(cfg *Config) error {
	var problems []string

	if len(cfg.Scan.Keywords) == 0 {
		problems = append(problems, "scan.keywords must not be empty")
	}

	for _, kw := range cfg.Scan.Keywords {
		if !identifier.MatchString(kw) {
			problems = append(problems, fmt.Sprintf("scan.keywords: %q is not an identifier", kw))
		}
	}

	if len(cfg.Scan.Extensions) == 0 {
		problems = append(problems, "scan.extensions must not be empty")
	}

	for _, ext := range cfg.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			problems = append(problems, fmt.Sprintf("scan.extensions: %q must start with '.'", ext))
		}
	}

	if cfg.Scan.Parallel < 1 {
		problems = append(problems, fmt.Sprintf("scan.parallel must be at least 1, got %d", cfg.Scan.Parallel))
	}

	if _, err := adapter.LookupEncoding(cfg.Scan.Encoding); err != nil {
		problems = append(problems, fmt.Sprintf("scan.encoding: %v", err))
	}

	for _, o := range cfg.Registry.Overrides {
		if o.Name == "" {
			problems = append(problems, "registry.overrides: entry without a name")
		}

		if o.Code < 0 {
			problems = append(problems, fmt.Sprintf("registry.overrides: %s has negative code %d", o.Name, o.Code))
		}
	}

	if cfg.Output.Path == "" {
		problems = append(problems, "output.path must not be empty")
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return nil
}

// ParseLevel maps a log.level value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", level)
	}

	return l, nil
}
