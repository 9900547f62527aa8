package usfm

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a lint diagnostic.
type Severity int

const (
	// Error means the document should not be processed further. No
	// built-in rule emits it; it exists for custom rules.
	Error Severity = iota
	// Warning means the document parsed but may not mean what it says.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single lint finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "closing_tag_match")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Pos      Position // source location of the finding
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, " (line %d, col %d)", d.Pos.Line, d.Pos.Column)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single lint rule.
type LintRule interface {
	Name() string
	Apply(doc *Document) []Diagnostic
}

// Lint runs all built-in rules (and any extra rules) against a parsed
// document. The grammar is deliberately permissive; Lint surfaces the
// constructs that parse but are usually mistakes. It never rejects a
// document: built-in findings are Warning severity.
func Lint(doc *Document, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(doc)...)
	}
	return diagnostics
}

func builtInRules() []LintRule {
	return []LintRule{
		closingTagMatchRule{},
		duplicateAttrKeyRule{},
	}
}

// closing_tag_match: a closing tag that names an id should name the id of
// the element it closes. The grammar accepts \w ... \x* as written.
type closingTagMatchRule struct{}

func (closingTagMatchRule) Name() string { return "closing_tag_match" }

func (closingTagMatchRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	doc.Walk(func(e *Element) {
		for _, c := range e.Children {
			inl := c.Inline
			if inl.ClosingTag == "" || inl.ClosingTag == inl.Element.Tag {
				continue
			}
			diags = append(diags, Diagnostic{
				Rule:     "closing_tag_match",
				Severity: Warning,
				Message:  fmt.Sprintf("element %q is closed by tag %q", inl.Element.Tag, inl.ClosingTag),
				Pos:      inl.ClosePos,
				Fix:      fmt.Sprintf("close with \\%s* or the anonymous \\*", inl.Element.Tag),
			})
		}
	})
	return diags
}

// duplicate_attr_key: attribute lookup is first-definition-wins, so a later
// definition of the same key is silently shadowed.
type duplicateAttrKeyRule struct{}

func (duplicateAttrKeyRule) Name() string { return "duplicate_attr_key" }

func (duplicateAttrKeyRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	doc.Walk(func(e *Element) {
		for _, c := range e.Children {
			seen := make(map[string]bool, len(c.Inline.Attrs))
			for _, p := range c.Inline.Attrs {
				if seen[p.Key] {
					diags = append(diags, Diagnostic{
						Rule:     "duplicate_attr_key",
						Severity: Warning,
						Message:  fmt.Sprintf("attribute %q is defined more than once; the first definition wins", p.Key),
						Pos:      p.Pos,
						Fix:      "remove the shadowed definition",
					})
					continue
				}
				seen[p.Key] = true
			}
		}
	})
	return diags
}
