package domain

import (
	"bufio"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	m "github.com/mouse-blink/excat/internal/model"
)

var (
	// M(<number>, <NAME>) as used by X-macro code lists. A trailing line
	// continuation backslash is tolerated.
	macroDefinition = regexp.MustCompile(`M\s*\(\s*(\d+)\s*,\s*([A-Z0-9_]+)\s*\)\\?`)
	// const int <NAME> = <number>;
	constDefinition = regexp.MustCompile(`const\s+int\s+([A-Z0-9_]+)\s*=\s*(\d+)\s*;`)
)

// Registry resolves symbolic error code names to numbers. It is read-only
// once built and safe for concurrent lookups.
type Registry struct {
	index   map[string]int
	entries []m.ErrorCodeEntry
	logger  *slog.Logger
}

// BuildRegistry parses definitions line by line and then layers overrides on
// top, in the given order. Every redefinition of a name is logged at warning
// level and the later number wins, so overrides always take precedence over
// the definitions text.
func BuildRegistry(definitions string, overrides []m.ErrorCodeEntry, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &Registry{
		index:  make(map[string]int),
		logger: logger,
	}

	sc := bufio.NewScanner(strings.NewReader(definitions))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++

		name, number, ok := r.parseDefinitionLine(sc.Text(), lineNo)
		if ok {
			r.insert(name, number, "definitions")
		}
	}

	if err := sc.Err(); err != nil {
		logger.Error("failed to read error code definitions", "line", lineNo, "error", err)
	}

	for _, override := range overrides {
		r.insert(override.Name, override.Number, "override")
	}

	return r
}

func (r *Registry) parseDefinitionLine(line string, lineNo int) (string, int, bool) {
	var name, num string

	if match := macroDefinition.FindStringSubmatch(line); match != nil {
		num, name = match[1], match[2]
	} else if match := constDefinition.FindStringSubmatch(line); match != nil {
		name, num = match[1], match[2]
	} else {
		return "", 0, false
	}

	number, err := strconv.Atoi(num)
	if err != nil {
		r.logger.Warn("skipping error code definition with invalid number",
			"code", name, "number", num, "line", lineNo)

		return "", 0, false
	}

	return name, number, true
}

func (r *Registry) insert(name string, number int, source string) {
	if i, exists := r.index[name]; exists {
		r.logger.Warn("duplicate error code definition",
			"code", name,
			"number", number,
			"previous", r.entries[i].Number,
			"source", source)
		r.entries[i].Number = number

		return
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, m.ErrorCodeEntry{Name: name, Number: number})
}

// Lookup returns the number registered for name.
func (r *Registry) Lookup(name string) (int, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}

	return r.entries[i].Number, true
}

// Entries returns the registry contents in first-definition order.
func (r *Registry) Entries() []m.ErrorCodeEntry {
	out := make([]m.ErrorCodeEntry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Len returns the number of distinct code names.
func (r *Registry) Len() int {
	return len(r.entries)
}
