package domain

import (
	"log/slog"
	"strings"

	m "github.com/mouse-blink/excat/internal/model"
)

const throwToken = "throw"

// DefaultKeywords lists the exception class names recognised when none are
// configured.
var DefaultKeywords = []string{"Exception"}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ")

// Extractor finds `throw <Keyword>(<code>, "<template>", <args>...)` call
// sites in source text and resolves their codes against a Registry.
// It holds no per-file state, so one Extractor may serve many goroutines.
type Extractor struct {
	registry *Registry
	keywords map[string]struct{}
	logger   *slog.Logger
}

// NewExtractor creates an Extractor. An empty keyword list falls back to
// DefaultKeywords.
func NewExtractor(registry *Registry, keywords []string, logger *slog.Logger) *Extractor {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if registry == nil {
		registry = BuildRegistry("", nil, logger)
	}

	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw] = struct{}{}
	}

	return &Extractor{
		registry: registry,
		keywords: set,
		logger:   logger,
	}
}

// Extract returns every call site in text, in order of appearance. Sites whose
// code is not in the registry carry m.UnresolvedCode and are logged at
// warning level.
func (e *Extractor) Extract(text string, relPath m.Path) []m.ExceptionSite {
	filePath := m.Path(strings.ReplaceAll(string(relPath), `\`, "/"))
	sites := []m.ExceptionSite{}

	pos := 0
	for {
		i := strings.Index(text[pos:], throwToken)
		if i < 0 {
			break
		}

		start := pos + i
		pos = start + len(throwToken)

		if start > 0 && isIdentByte(text[start-1]) {
			continue
		}

		call, ok := e.matchCall(text, start)
		if !ok {
			continue
		}

		sites = append(sites, e.newSite(call, filePath))
		pos = call.end
	}

	return sites
}

// callMatch is one recognised call, sliced out of the scanned text.
type callMatch struct {
	end      int // offset just past the closing parenthesis
	keyword  string
	codeRef  string
	template string // quotes excluded, escapes intact
	rest     string // everything between the template's closing quote and the call's ')'
	original string // "throw" through the closing parenthesis
}

// matchCall scans one candidate starting at the "throw" token. Quote and
// nesting state are tracked once, yielding both the template boundaries and
// the closing parenthesis of the call.
func (e *Extractor) matchCall(text string, start int) (callMatch, bool) {
	var call callMatch

	p := start + len(throwToken)

	q := skipSpace(text, p)
	if q == p {
		return call, false
	}

	kwEnd := scanWhile(text, q, isIdentByte)
	call.keyword = text[q:kwEnd]

	if _, ok := e.keywords[call.keyword]; !ok {
		return call, false
	}

	p = skipSpace(text, kwEnd)
	if !hasByte(text, p, '(') {
		return call, false
	}

	p = skipSpace(text, p+1)

	codeEnd := scanWhile(text, p, isCodeRefByte)
	if codeEnd == p {
		return call, false
	}

	call.codeRef = text[p:codeEnd]

	p = skipSpace(text, codeEnd)
	if !hasByte(text, p, ',') {
		return call, false
	}

	p = skipSpace(text, p+1)
	if !hasByte(text, p, '"') {
		return call, false
	}

	tmplStart := p + 1

	tmplEnd := closingQuote(text, tmplStart)
	if tmplEnd <= tmplStart {
		return call, false
	}

	closeParen := balancingParen(text, tmplEnd+1)
	if closeParen < 0 {
		return call, false
	}

	call.template = text[tmplStart:tmplEnd]
	call.rest = text[tmplEnd+1 : closeParen]
	call.original = text[start : closeParen+1]
	call.end = closeParen + 1

	return call, true
}

func (e *Extractor) newSite(call callMatch, filePath m.Path) m.ExceptionSite {
	name := call.codeRef
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}

	number, ok := e.registry.Lookup(name)
	if !ok {
		e.logger.Warn("error code not found in definitions or overrides",
			"code", name, "file", filePath)

		number = m.UnresolvedCode
	}

	rest := strings.TrimSpace(newlineReplacer.Replace(call.rest))
	rest = strings.TrimPrefix(rest, ",")

	return m.ExceptionSite{
		FilePath:        filePath,
		ErrorCodeNumber: number,
		ErrorCodeName:   name,
		ClassName:       call.keyword,
		MessageTemplate: newlineReplacer.Replace(strings.TrimSpace(call.template)),
		Variables:       SplitArguments(rest),
		Severity:        m.SeverityError,
		OriginalText:    strings.TrimSpace(newlineReplacer.Replace(call.original)),
	}
}

// closingQuote returns the index of the first unescaped '"' at or after from,
// or -1.
func closingQuote(text string, from int) int {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}

	return -1
}

// balancingParen returns the index of the ')' closing a call whose opening
// parenthesis precedes from, or -1 if the text ends first.
func balancingParen(text string, from int) int {
	sc := argScanner{depth: 1}

	for i := from; i < len(text); i++ {
		if sc.step(text[i]) && text[i] == ')' && sc.depth == 0 {
			return i
		}
	}

	return -1
}
