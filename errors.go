package usfm

import "fmt"

// ParseError is the base error type for all parser errors.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

// SyntaxError reports the position at which no grammar production could
// continue. Pos.Offset is a byte offset into the source passed to Parse.
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}
