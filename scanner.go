package usfm

// scanner provides character-level access to the source buffer with position
// tracking. Byte-level scanning is safe here: every grammar-significant
// character is ASCII, and UTF-8 continuation bytes never collide with ASCII,
// so multibyte text passes through text runs untouched.
type scanner struct {
	src  []byte
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

// mark is a saved scanner state used to backtrack a failed speculative parse.
type mark struct {
	pos, line, col int
}

func (s *scanner) mark() mark {
	return mark{s.pos, s.line, s.col}
}

func (s *scanner) reset(m mark) {
	s.pos, s.line, s.col = m.pos, m.line, m.col
}

func (s *scanner) position() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

// skipSpace consumes a possibly-empty run of whitespace. It never fails.
func (s *scanner) skipSpace() {
	for !s.atEnd() && isSpace(s.peek()) {
		s.advance()
	}
}

// readText consumes the longest run of characters that are neither backslash
// nor pipe. The run may be empty.
func (s *scanner) readText() string {
	start := s.pos
	for !s.atEnd() && s.peek() != '\\' && s.peek() != '|' {
		s.advance()
	}
	return string(s.src[start:s.pos])
}

// readTagID consumes a tag identifier: one ASCII letter followed by any run
// of letters, digits, or hyphens. Returns "" without consuming anything when
// the next character cannot start an identifier.
func (s *scanner) readTagID() string {
	if s.atEnd() || !isLetter(s.peek()) {
		return ""
	}
	start := s.pos
	s.advance()
	for !s.atEnd() && isTagIDPart(s.peek()) {
		s.advance()
	}
	return string(s.src[start:s.pos])
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isTagIDPart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '-'
}
