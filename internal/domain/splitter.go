package domain

import "strings"

// SplitArguments splits raw call-argument text on commas at parenthesis depth
// zero. Commas and parentheses inside double-quoted strings are ignored, and a
// backslash always escapes the following byte. Each argument is trimmed. A
// blank trailing remainder yields no argument, so "" and "a," split into []
// and ["a"].
func SplitArguments(args string) []string {
	out := []string{}

	var sc argScanner

	start := 0

	for i := 0; i < len(args); i++ {
		c := args[i]
		if !sc.step(c) {
			continue
		}

		if c == ',' && sc.depth == 0 {
			out = append(out, strings.TrimSpace(args[start:i]))
			start = i + 1
		}
	}

	if rest := strings.TrimSpace(args[start:]); rest != "" {
		out = append(out, rest)
	}

	return out
}
