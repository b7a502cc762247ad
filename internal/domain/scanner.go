package domain

// argScanner tracks parenthesis depth and double-quote state over call
// argument text one byte at a time. All delimiters it reacts to are ASCII, so
// stepping over UTF-8 input byte-wise is safe.
type argScanner struct {
	depth    int
	inQuotes bool
	escape   bool
}

// step consumes c and reports whether it is a structural byte, i.e. one that
// appeared outside quotes and outside an escape pair.
func (s *argScanner) step(c byte) bool {
	if s.escape {
		s.escape = false
		return false
	}

	switch {
	case c == '\\':
		s.escape = true
		return false
	case c == '"':
		s.inQuotes = !s.inQuotes
		return false
	case s.inQuotes:
		return false
	case c == '(':
		s.depth++
	case c == ')':
		s.depth--
	}

	return true
}

func isIdentByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isCodeRefByte(c byte) bool {
	return c == ':' || isIdentByte(c)
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

// skipSpace returns the first offset at or after i that is not whitespace.
func skipSpace(text string, i int) int {
	return scanWhile(text, i, isSpaceByte)
}

// scanWhile returns the first offset at or after i whose byte fails keep.
func scanWhile(text string, i int, keep func(byte) bool) int {
	for i < len(text) && keep(text[i]) {
		i++
	}

	return i
}

func hasByte(text string, i int, c byte) bool {
	return i < len(text) && text[i] == c
}
