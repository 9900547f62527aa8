package usfm

import "strings"

// Position tracks a source location for error messages and diagnostics.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// Document is the root of a parse: the top-level elements in source order.
type Document struct {
	Elements []*Element
}

// Element is a tagged region of the document: an opening tag, optional
// leading text, and zero or more nested inline elements each followed by
// optional trailing text.
type Element struct {
	Tag         string  // matches [A-Za-z][A-Za-z0-9-]*, never empty
	LeadingText string  // text between the opening tag and the first child; "" if none
	Children    []Child // nested inline elements in source order
	Pos         Position // position of the opening backslash
}

// Child pairs a nested inline element with the text that follows it, up to
// the next sibling or the end of the enclosing element. Tail is "" when no
// text follows.
type Child struct {
	Inline *InlineElement
	Tail   string
}

// InlineElement is an element nested inside another element's body, followed
// by an optional attributes block and a mandatory closing tag.
//
// ClosingTag is "" for an anonymous close (\*). A non-empty ClosingTag is
// recorded as written and is not required to match Element.Tag; Lint reports
// mismatches as warnings.
type InlineElement struct {
	Element    *Element
	Attrs      Attributes
	ClosingTag string
	ClosePos   Position // position of the closing tag's backslash
}

// Attributes is an ordered list of key/value pairs from a pipe-prefixed
// attribute block. Order is preserved; lookup is first-definition-wins.
type Attributes []Pair

// Pair is a single attribute. HasValue distinguishes key="" (present, empty)
// from a bare key with no value at all.
type Pair struct {
	Key      string
	Value    string
	HasValue bool
	Pos      Position
}

// Get looks up an attribute by key. The first definition wins. Returns the
// value and true if found; a bare key is found with value "".
func (a Attributes) Get(key string) (string, bool) {
	for _, p := range a {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether an attribute with the given key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// ElementsByTag returns the top-level elements with the given tag, in source
// order.
func (d *Document) ElementsByTag(tag string) []*Element {
	var result []*Element
	for _, e := range d.Elements {
		if e.Tag == tag {
			result = append(result, e)
		}
	}
	return result
}

// Walk visits every element in the document depth-first, in source order.
func (d *Document) Walk(fn func(*Element)) {
	for _, e := range d.Elements {
		walkElement(e, fn)
	}
}

func walkElement(e *Element, fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		walkElement(c.Inline.Element, fn)
	}
}

// Text returns the concatenated literal text of the element's subtree:
// leading text, then each child's text followed by its trailing text.
func (e *Element) Text() string {
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	sb.WriteString(e.LeadingText)
	for _, c := range e.Children {
		c.Inline.Element.writeText(sb)
		sb.WriteString(c.Tail)
	}
}
