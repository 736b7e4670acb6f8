// Package diag carries the two diagnostic kinds the parse-expression
// evaluator can produce and the furthest-progress merge that turns a set
// of sibling match failures into a single representative diagnostic.
package diag

import (
	"fmt"
	"strings"
)

// Kind distinguishes a grammar-level fault from an input match failure.
type Kind int

const (
	// BadMatchKind is a failure to satisfy the grammar at some cursor
	// position. It is mergeable and recoverable by repetition/optional.
	BadMatchKind Kind = iota
	// UnknownNonTerminalKind is a grammar fault: a NonTerminal reference
	// that does not resolve against the Parser's rule map. It is never
	// merged and always propagates immediately.
	UnknownNonTerminalKind
)

// Diagnostic is the value type returned on the Err side of an evaluator
// outcome, and attached to Ok on the Recovered side.
type Diagnostic struct {
	Kind Kind

	// UnknownNonTerminalKind fields.
	Name        string
	Suggestions []string

	// BadMatchKind fields.
	ByteIndex int
	LineSlice string
	Column    int
	Message   string
	RuleStack []string

	expected *stringSet
}

// NewUnknownNonTerminal builds a grammar-fault diagnostic for a NonTerminal
// reference that is not a key of the Parser's rule map.
func NewUnknownNonTerminal(name string) Diagnostic {
	return Diagnostic{Kind: UnknownNonTerminalKind, Name: name}
}

// NewUnknownNonTerminalWithSuggestions is NewUnknownNonTerminal plus a list
// of candidate rule names a caller (typically the suggest package) thinks
// the author meant instead.
func NewUnknownNonTerminalWithSuggestions(name string, suggestions []string) Diagnostic {
	return Diagnostic{Kind: UnknownNonTerminalKind, Name: name, Suggestions: suggestions}
}

// NewBadMatch builds a match-failure diagnostic at byteIndex into source,
// computing the line slice and column per the invariant in the data model:
// line_slice spans from the newline preceding byteIndex (exclusive) to the
// first newline at or after it (exclusive), or the whole source if there
// is no newline; column is byteIndex's offset from the start of that line.
func NewBadMatch(source string, byteIndex int, message string, expected []string, ruleStack []string) Diagnostic {
	lineStart := 0
	if idx := strings.LastIndexByte(source[:byteIndex], '\n'); idx >= 0 {
		lineStart = idx + 1
	}
	lineEnd := len(source)
	if idx := strings.IndexByte(source[byteIndex:], '\n'); idx >= 0 {
		lineEnd = byteIndex + idx
	}

	stack := make([]string, len(ruleStack))
	copy(stack, ruleStack)

	return Diagnostic{
		Kind:      BadMatchKind,
		ByteIndex: byteIndex,
		LineSlice: source[lineStart:lineEnd],
		Column:    byteIndex - lineStart,
		Message:   message,
		RuleStack: stack,
		expected:  newStringSet(expected...),
	}
}

// Expected returns the ordered, deduplicated set of terminal/pattern texts
// expected at ByteIndex. Empty for UnknownNonTerminalKind.
func (d Diagnostic) Expected() []string {
	return d.expected.Items()
}

// Merge combines a non-empty list of diagnostics into the single
// representative one, per the furthest-progress-wins rule: any
// UnknownNonTerminal short-circuits the merge (it is a hard grammar
// fault, never combined with match failures); otherwise the diagnostics
// sitting at the greatest ByteIndex contribute their expected sets to one
// merged BadMatch, and the remaining context (line slice, column, rule
// stack) is carried from the first diagnostic seen at that index.
func Merge(ds []Diagnostic) Diagnostic {
	if len(ds) == 0 {
		return Diagnostic{Kind: BadMatchKind, Message: "(no expectations)", expected: newStringSet()}
	}
	for _, d := range ds {
		if d.Kind == UnknownNonTerminalKind {
			return d
		}
	}

	maxIdx := ds[0].ByteIndex
	for _, d := range ds[1:] {
		if d.ByteIndex > maxIdx {
			maxIdx = d.ByteIndex
		}
	}

	merged := newStringSet()
	var first *Diagnostic
	for i := range ds {
		if ds[i].ByteIndex != maxIdx {
			continue
		}
		merged.addAll(ds[i].expected)
		if first == nil {
			first = &ds[i]
		}
	}

	out := Diagnostic{
		Kind:      BadMatchKind,
		ByteIndex: maxIdx,
		LineSlice: first.LineSlice,
		Column:    first.Column,
		RuleStack: first.RuleStack,
		expected:  merged,
	}
	out.Message = formatMessage(merged.Items())
	return out
}

func formatMessage(expected []string) string {
	switch len(expected) {
	case 0:
		return "(no expectations)"
	case 1:
		return fmt.Sprintf("Expected `%s` here.", expected[0])
	default:
		quoted := make([]string, len(expected))
		for i, e := range expected {
			quoted[i] = fmt.Sprintf("`%s`", e)
		}
		return fmt.Sprintf("Expected one of %s or %s.", strings.Join(quoted[:len(quoted)-1], ", "), quoted[len(quoted)-1])
	}
}

// Error implements the error interface with the user-visible layout from
// the external-interfaces section: message, source line, a caret under
// the offending column, and the open rule stack.
func (d Diagnostic) Error() string {
	if d.Kind == UnknownNonTerminalKind {
		base := fmt.Sprintf("Grammar Error - Unknown rule: `%s`", d.Name)
		if len(d.Suggestions) > 0 {
			base += fmt.Sprintf(" (did you mean `%s`?)", strings.Join(d.Suggestions, "`, `"))
		}
		return base
	}

	var b strings.Builder
	fmt.Fprintln(&b, d.Message)
	fmt.Fprintln(&b, d.LineSlice)
	fmt.Fprintln(&b, strings.Repeat(" ", d.Column)+"^")
	fmt.Fprintf(&b, "rules: %s", formatRuleStack(d.RuleStack))
	return b.String()
}

func formatRuleStack(stack []string) string {
	return "[" + strings.Join(stack, ", ") + "]"
}
