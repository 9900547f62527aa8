package usfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerReadText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello world", "hello world"},
		{`hello \w`, "hello "},
		{"hello | x", "hello "},
		{`\w`, ""},
		{"|", ""},
		{"", ""},
		{"a b\nc d", "a b\nc d"},
	}
	for _, tt := range tests {
		s := newScanner([]byte(tt.input))
		assert.Equal(t, tt.want, s.readText(), "input: %q", tt.input)
	}
}

func TestScannerReadTagID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"id GEN", "id"},
		{"zaln-s\\*", "zaln-s"},
		{"w*", "w"},
		{"x-occurences=", "x-occurences"},
		{"q2 text", "q2"},
		{"1abc", ""},
		{"-abc", ""},
		{"*", ""},
		{"", ""},
	}
	for _, tt := range tests {
		s := newScanner([]byte(tt.input))
		assert.Equal(t, tt.want, s.readTagID(), "input: %q", tt.input)
		if tt.want == "" {
			assert.Equal(t, 0, s.pos, "failed match must not consume, input: %q", tt.input)
		}
	}
}

func TestScannerSkipSpace(t *testing.T) {
	s := newScanner([]byte(" \t\r\n  x"))
	s.skipSpace()
	assert.Equal(t, byte('x'), s.peek())

	// Always succeeds, possibly consuming nothing.
	s = newScanner([]byte("x"))
	s.skipSpace()
	assert.Equal(t, 0, s.pos)
}

func TestScannerPositionTracking(t *testing.T) {
	s := newScanner([]byte("ab\ncd"))
	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, s.position())

	s.advance() // a
	s.advance() // b
	assert.Equal(t, Position{Line: 1, Column: 3, Offset: 2}, s.position())

	s.advance() // newline
	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 3}, s.position())
}

func TestScannerMarkReset(t *testing.T) {
	s := newScanner([]byte("abc\ndef"))
	s.advance()
	m := s.mark()

	s.readText()
	assert.True(t, s.atEnd())

	s.reset(m)
	assert.Equal(t, Position{Line: 1, Column: 2, Offset: 1}, s.position())
	assert.Equal(t, byte('b'), s.peek())
}
