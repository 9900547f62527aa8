package usfm

import "fmt"

// Parse parses backslash-tag markup and returns the document tree.
// Either the entire input parses or a *SyntaxError is returned; there is no
// partial-tree recovery. Each call is independent and side-effect-free, so
// concurrent calls on different buffers are safe.
func Parse(src []byte) (*Document, error) {
	p := &parser{s: newScanner(src)}
	return p.parseDocument()
}

// ParseString is a convenience wrapper around Parse.
func ParseString(src string) (*Document, error) {
	return Parse([]byte(src))
}

type parser struct {
	s *scanner
}

// parseDocument parses zero or more top-level elements and requires that
// they consume the entire input. Trailing characters that do not form a
// valid element are a syntax error at the offset where the last successful
// element parse ended.
func (p *parser) parseDocument() (*Document, error) {
	doc := &Document{}
	for {
		p.s.skipSpace()
		if p.s.atEnd() {
			return doc, nil
		}
		if p.s.peek() != '\\' {
			break
		}
		el, ok, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		doc.Elements = append(doc.Elements, el)
	}

	pos := p.s.position()
	got := p.snippet()

	// A pipe can only ever introduce an attributes block. Parse it before
	// reporting so that a malformed block (unterminated value, missing
	// value after '=') is diagnosed at its own position rather than at
	// the stray pipe.
	if p.s.peek() == '|' {
		if _, err := p.parseAttributes(); err != nil {
			return nil, err
		}
	}

	return nil, &SyntaxError{
		ParseError: ParseError{Pos: pos},
		Expected:   "element or end of input",
		Got:        got,
	}
}

// parseElement parses tag_start, optional leading text, and a greedy run of
// (inline element, trailing text) pairs. Returns ok=false without consuming
// input when no element starts at the current position. Hard failures inside
// a committed attribute value propagate as errors.
func (p *parser) parseElement() (*Element, bool, error) {
	start := p.s.mark()
	pos := p.s.position()

	tag, ok := p.parseTagStart()
	if !ok {
		p.s.reset(start)
		return nil, false, nil
	}

	el := &Element{Tag: tag, Pos: pos}
	el.LeadingText = p.s.readText()

	for p.s.peek() == '\\' {
		m := p.s.mark()
		inl, ok, err := p.parseInlineElement()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			// The backslash is not the start of a valid inline
			// element; it belongs to the enclosing context (its
			// closing tag) or is a syntax error surfaced there.
			p.s.reset(m)
			break
		}
		el.Children = append(el.Children, Child{Inline: inl, Tail: p.s.readText()})
	}

	return el, true, nil
}

// parseInlineElement parses a nested element, an optional attributes block,
// and the mandatory closing tag. A missing closing tag fails the whole
// attempt; the caller backtracks.
func (p *parser) parseInlineElement() (*InlineElement, bool, error) {
	el, ok, err := p.parseElement()
	if err != nil || !ok {
		return nil, false, err
	}

	inl := &InlineElement{Element: el}
	if p.s.peek() == '|' {
		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, false, err
		}
		inl.Attrs = attrs
	}

	closePos := p.s.position()
	id, ok := p.parseTagEnd()
	if !ok {
		return nil, false, nil
	}
	inl.ClosingTag = id
	inl.ClosePos = closePos
	return inl, true, nil
}

// parseTagStart parses '\' tag_id and consumes trailing whitespace, so the
// following text or element parse begins cleanly.
func (p *parser) parseTagStart() (string, bool) {
	if p.s.peek() != '\\' {
		return "", false
	}
	p.s.advance()
	id := p.s.readTagID()
	if id == "" {
		return "", false
	}
	p.s.skipSpace()
	return id, true
}

// parseTagEnd parses '\' [tag_id] '*'. The id is optional: both \w* and the
// anonymous \* are closing tags. No whitespace is allowed inside.
func (p *parser) parseTagEnd() (string, bool) {
	m := p.s.mark()
	if p.s.peek() != '\\' {
		return "", false
	}
	p.s.advance()
	id := p.s.readTagID()
	if p.s.peek() != '*' {
		p.s.reset(m)
		return "", false
	}
	p.s.advance()
	return id, true
}

// parseAttributes parses '|' followed by zero or more pairs. Whitespace
// around keys, '=', and values is insignificant, and the block consumes
// trailing whitespace so the closing-tag parse starts at its backslash.
// The repetition stops at the first position where no pair can start; that
// is not an error.
func (p *parser) parseAttributes() (Attributes, error) {
	p.s.advance() // '|', checked by the caller
	var attrs Attributes
	for {
		p.s.skipSpace()
		pair, ok, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		if !ok {
			return attrs, nil
		}
		attrs = append(attrs, pair)
	}
}

// parsePair parses key ['=' value]. Once '=' is consumed the value is
// committed: a missing or unterminated quoted string is a hard failure.
func (p *parser) parsePair() (Pair, bool, error) {
	pos := p.s.position()
	key := p.s.readTagID()
	if key == "" {
		return Pair{}, false, nil
	}
	pair := Pair{Key: key, Pos: pos}

	m := p.s.mark()
	p.s.skipSpace()
	if p.s.peek() != '=' {
		p.s.reset(m)
		return pair, true, nil
	}
	p.s.advance()
	p.s.skipSpace()

	val, err := p.parseValue()
	if err != nil {
		return Pair{}, false, err
	}
	pair.Value = val
	pair.HasValue = true
	return pair, true, nil
}

// parseValue parses a double-quoted literal. There is no escape mechanism:
// the value is every character up to the next double quote, and "" is valid.
func (p *parser) parseValue() (string, error) {
	if p.s.peek() != '"' {
		return "", &SyntaxError{
			ParseError: ParseError{Pos: p.s.position()},
			Expected:   "quoted attribute value",
			Got:        p.snippet(),
		}
	}
	p.s.advance() // opening quote

	start := p.s.pos
	for !p.s.atEnd() && p.s.peek() != '"' {
		p.s.advance()
	}
	if p.s.atEnd() {
		return "", &SyntaxError{
			ParseError: ParseError{Pos: p.s.position()},
			Expected:   `closing '"' of unterminated attribute value`,
			Got:        "end of input",
		}
	}
	val := string(p.s.src[start:p.s.pos])
	p.s.advance() // closing quote
	return val, nil
}

// snippet describes the upcoming input for error messages.
func (p *parser) snippet() string {
	if p.s.atEnd() {
		return "end of input"
	}
	rest := p.s.src[p.s.pos:]
	if len(rest) > 10 {
		rest = rest[:10]
	}
	return fmt.Sprintf("%q", rest)
}
