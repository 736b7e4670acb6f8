// Package tree defines the parse-tree node the evaluator produces on a
// successful or recovered parse: a tagged, single-owner, non-cyclic tree
// whose Terminal leaves reference the original input by byte range.
package tree

import "fmt"

// Kind tags which Grouping variant a Node holds.
type Kind int

const (
	// Terminal is a leaf spanning [Start, End) of the original input.
	Terminal Kind = iota
	// Sequence is an ordered list of children, one per expression in a
	// grammar Sequence.
	Sequence
	// Optional is either absent (Inner == nil) or wraps one grouping.
	Optional
	// Wrapped carries a single child, produced by Choice and by
	// NonTerminal references.
	Wrapped
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case Sequence:
		return "Sequence"
	case Optional:
		return "Optional"
	case Wrapped:
		return "Wrapped"
	default:
		return "Unknown"
	}
}

// Node is `{rule: name, grouping: G}` from the data model: Rule names the
// innermost rule on the stack at construction time, Kind selects which of
// Start/End, Children, or Inner is meaningful.
type Node struct {
	Rule string
	Kind Kind

	// Terminal
	Start, End int
	// LiteralText carries fixed text not derived from the input slice, used
	// only by the EndOfInput atomic (whose match has no bytes of its own
	// to point at). It is empty for every other node.
	LiteralText string

	// Sequence
	Children []Node

	// Optional (nil means the absent branch) / Wrapped (never nil)
	Inner *Node
}

// NewTerminal builds a Terminal node spanning [start, end) of the input
// that produced it.
func NewTerminal(rule string, start, end int) Node {
	return Node{Rule: rule, Kind: Terminal, Start: start, End: end}
}

// NewLiteralTerminal builds a Terminal node carrying fixed text instead of
// a slice of the input, spanning the zero-width range [at, at) for cursor
// bookkeeping. Used by the EndOfInput atomic.
func NewLiteralTerminal(rule, text string, at int) Node {
	return Node{Rule: rule, Kind: Terminal, Start: at, End: at, LiteralText: text}
}

// NewSequence builds a Sequence node from already-evaluated children.
func NewSequence(rule string, children []Node) Node {
	return Node{Rule: rule, Kind: Sequence, Children: children}
}

// NewOptionalSome wraps a present Optional grouping.
func NewOptionalSome(rule string, inner Node) Node {
	return Node{Rule: rule, Kind: Optional, Inner: &inner}
}

// NewOptionalNone builds an absent Optional grouping.
func NewOptionalNone(rule string) Node {
	return Node{Rule: rule, Kind: Optional, Inner: nil}
}

// NewWrapped wraps a single child, as Choice and NonTerminal references do.
func NewWrapped(rule string, child Node) Node {
	return Node{Rule: rule, Kind: Wrapped, Inner: &child}
}

// Text returns the exact input slice a Terminal node spans. It panics if
// called on a non-Terminal node: callers are expected to switch on Kind
// first, the same contract the grammar's capture-mode rules rely on.
func (n Node) Text(source string) string {
	if n.Kind != Terminal {
		panic(fmt.Sprintf("tree: Text called on a %s node", n.Kind))
	}
	if n.LiteralText != "" {
		return n.LiteralText
	}
	return source[n.Start:n.End]
}
