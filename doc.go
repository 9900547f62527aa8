// Package usfm implements a parser for backslash-tag markup in the USFM/SFM
// style: literal text interspersed with backslash-prefixed tags that open
// elements, nest other elements inline, carry pipe-delimited attributes, and
// close with a matching or anonymous (\*) closing tag.
//
// The grammar, in PEG form:
//
//	document       = { element } EOF
//	element        = tag_start [text] { inline_element [text] } [text]
//	inline_element = element [attributes] tag_end
//	tag_start      = '\' tag_id ws
//	tag_end        = '\' [tag_id] '*'
//	attributes     = '|' { pair }
//	pair           = tag_id [ '=' '"' [^"]* '"' ]
//	text           = longest run of characters that are neither '\' nor '|'
//	tag_id         = [A-Za-z][A-Za-z0-9-]*
//
// The parser is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Scanner: character-level access to the source buffer with position
//     tracking and mark/reset backtracking. The grammar is scannerless
//     because whitespace is significant inside text runs.
//   - Parser: one parsing function per grammar production, building the tree
//     bottom-up with greedy repetition and ordered-choice backtracking.
//   - AST types: the output data structures (Document, Element,
//     InlineElement, Attributes, Pair).
//
// Usage:
//
//	doc, err := usfm.ParseString(`\v 1 \w hello | strong="H1234"\w*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Elements[0].Tag, doc.Elements[0].Text())
//
// Parsing either consumes the entire input or fails with a *SyntaxError; there
// is no partial-tree recovery. The parser enforces no tag vocabulary and does
// not require a closing tag's id to match its opening tag; use Lint to surface
// such mismatches as warnings.
package usfm
