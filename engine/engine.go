// Package engine is the core of this module: the recursive
// parse-expression evaluator. It walks a grammar.Expr tree over an input
// string with a byte cursor, producing a three-valued Outcome so that
// repetition and optional can absorb a terminal failure while still
// surfacing the furthest diagnostic to an eventual caller.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/aledsdavies/peggen/diag"
	"github.com/aledsdavies/peggen/grammar"
	"github.com/aledsdavies/peggen/regexcache"
	"github.com/aledsdavies/peggen/suggest"
	"github.com/aledsdavies/peggen/tree"
)

// evaluator holds the state shared across one Parse call: the immutable
// Parser and the input being matched against it. Both are read-only for
// the duration of the parse, so a Parser may be reused concurrently by
// different Parse calls as long as each supplies its own source.
type evaluator struct {
	parser grammar.Parser
	source string
	tel    *Telemetry
}

// Parse runs p against source, coercing the evaluator's three-valued
// outcome per the Parser façade: a complete successful parse (Ok or
// Recovered) returns its tree and discards any absorbed diagnostic; a
// failed parse returns the furthest diagnostic as an error.
func Parse(p grammar.Parser, source string) (tree.Node, error) {
	node, _, err := ParseWithTelemetry(p, source)
	return node, err
}

// ParseWithTelemetry is Parse plus optional instrumentation. Without
// WithTelemetryTiming the returned *Telemetry is nil, and the evaluator
// does no extra bookkeeping.
func ParseWithTelemetry(p grammar.Parser, source string, opts ...Option) (tree.Node, *Telemetry, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	ev := &evaluator{parser: p, source: source}
	var started time.Time
	if cfg.timing {
		ev.tel = &Telemetry{}
		started = time.Now()
	}

	rule := p.Rules[p.Start]
	_, out := ev.eval(rule.Expr, rule.Capture, 0, []string{p.Start})
	if ev.tel != nil {
		ev.tel.Duration = time.Since(started)
	}

	switch out.Status {
	case StatusOk, StatusRecovered:
		return out.Node, ev.tel, nil
	default:
		return tree.Node{}, ev.tel, out.Diag
	}
}

func topRule(stack []string) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}

// eval is the recursive interpreter. capture is the enclosing rule's
// capture-flag: it is threaded unchanged through Sequence, Choice,
// repetition, and Optional (none of those introduce a new rule boundary)
// and only changes when a NonTerminal reference descends into a
// different rule.
func (ev *evaluator) eval(e grammar.Expr, capture bool, cursor int, stack []string) (int, Outcome) {
	switch e.Kind {
	case grammar.Literal:
		return ev.evalLiteral(e, cursor, stack)
	case grammar.Regex:
		return ev.evalRegex(e, cursor, stack)
	case grammar.NonTerminal:
		return ev.evalNonTerminal(e, cursor, stack)
	case grammar.EndOfInput:
		return ev.evalEndOfInput(cursor, stack)
	case grammar.SeqExpr:
		return ev.evalSequence(e, capture, cursor, stack)
	case grammar.ChoiceExpr:
		return ev.evalChoice(e, capture, cursor, stack)
	case grammar.ZeroOrMoreExpr:
		return ev.evalRepetition(e, capture, cursor, stack, false)
	case grammar.OneOrMoreExpr:
		return ev.evalRepetition(e, capture, cursor, stack, true)
	case grammar.OptionalExpr:
		return ev.evalOptional(e, capture, cursor, stack)
	default:
		panic(fmt.Sprintf("engine: unhandled expression kind %v", e.Kind))
	}
}

// 4.1 Atomic matcher

func (ev *evaluator) evalLiteral(e grammar.Expr, cursor int, stack []string) (int, Outcome) {
	if ev.tel != nil {
		ev.tel.AtomicAttempts++
	}
	if strings.HasPrefix(ev.source[cursor:], e.Text) {
		end := cursor + len(e.Text)
		return end, ok(tree.NewTerminal(topRule(stack), cursor, end))
	}
	d := diag.NewBadMatch(ev.source, cursor, fmt.Sprintf("Expected `%s` here.", e.Text), []string{e.Text}, stack)
	return cursor, fail(d)
}

func (ev *evaluator) evalRegex(e grammar.Expr, cursor int, stack []string) (int, Outcome) {
	if ev.tel != nil {
		ev.tel.AtomicAttempts++
	}
	re := regexcache.Compile(e.Pattern)
	loc := re.FindStringIndex(ev.source[cursor:])
	if loc == nil || loc[0] != 0 {
		d := diag.NewBadMatch(ev.source, cursor, fmt.Sprintf("Failed to match `%s`.", e.Pattern), []string{e.Pattern}, stack)
		return cursor, fail(d)
	}
	end := cursor + loc[1]
	return end, ok(tree.NewTerminal(topRule(stack), cursor, end))
}

func (ev *evaluator) evalNonTerminal(e grammar.Expr, cursor int, stack []string) (int, Outcome) {
	if ev.tel != nil {
		ev.tel.RuleEvals++
	}
	rule, found := ev.parser.Rules[e.Name]
	if !found {
		names := suggest.RuleNames(e.Name, ev.parser.RuleNames())
		return cursor, fail(diag.NewUnknownNonTerminalWithSuggestions(e.Name, names))
	}

	pushed := make([]string, len(stack)+1)
	copy(pushed, stack)
	pushed[len(stack)] = e.Name

	newCursor, sub := ev.eval(rule.Expr, rule.Capture, cursor, pushed)
	switch sub.Status {
	case StatusErr:
		return newCursor, fail(sub.Diag)
	case StatusRecovered:
		return newCursor, recovered(tree.NewWrapped(e.Name, sub.Node), sub.Diag)
	default:
		return newCursor, ok(tree.NewWrapped(e.Name, sub.Node))
	}
}

func (ev *evaluator) evalEndOfInput(cursor int, stack []string) (int, Outcome) {
	if ev.tel != nil {
		ev.tel.AtomicAttempts++
	}
	if cursor >= len(ev.source) {
		return cursor, ok(tree.NewLiteralTerminal(topRule(stack), "EOF", cursor))
	}
	d := diag.NewBadMatch(ev.source, cursor, "Expected `EOF` here.", []string{"EOF"}, stack)
	return cursor, fail(d)
}

// 4.2 Sequence

func (ev *evaluator) evalSequence(e grammar.Expr, capture bool, cursor int, stack []string) (int, Outcome) {
	start := cursor
	cur := cursor
	var children []tree.Node
	var diags []diag.Diagnostic

	for _, sub := range e.Subs {
		newCur, out := ev.eval(sub, capture, cur, stack)
		switch out.Status {
		case StatusOk:
			children = append(children, out.Node)
			cur = newCur
		case StatusRecovered:
			children = append(children, out.Node)
			diags = append(diags, out.Diag)
			cur = newCur
		default: // StatusErr
			diags = append(diags, out.Diag)
			return start, fail(diag.Merge(diags))
		}
	}

	node := sequenceNode(topRule(stack), capture, start, cur, children)
	if len(diags) > 0 {
		return cur, recovered(node, diag.Merge(diags))
	}
	return cur, ok(node)
}

func sequenceNode(rule string, capture bool, start, end int, children []tree.Node) tree.Node {
	if capture {
		return tree.NewTerminal(rule, start, end)
	}
	return tree.NewSequence(rule, children)
}

// 4.2 Choice

func (ev *evaluator) evalChoice(e grammar.Expr, capture bool, cursor int, stack []string) (int, Outcome) {
	var diags []diag.Diagnostic

	for _, alt := range e.Subs {
		newCur, out := ev.eval(alt, capture, cursor, stack)
		switch out.Status {
		case StatusOk:
			return newCur, ok(tree.NewWrapped(topRule(stack), out.Node))
		case StatusRecovered:
			diags = append(diags, out.Diag)
			return newCur, recovered(tree.NewWrapped(topRule(stack), out.Node), diag.Merge(diags))
		default: // StatusErr
			diags = append(diags, out.Diag)
		}
	}

	return cursor, fail(diag.Merge(diags))
}

// 4.2 Optional

func (ev *evaluator) evalOptional(e grammar.Expr, capture bool, cursor int, stack []string) (int, Outcome) {
	newCur, out := ev.eval(*e.Sub, capture, cursor, stack)
	switch out.Status {
	case StatusOk:
		return newCur, ok(tree.NewOptionalSome(topRule(stack), out.Node))
	case StatusRecovered:
		return newCur, recovered(tree.NewOptionalSome(topRule(stack), out.Node), out.Diag)
	default: // StatusErr
		return cursor, recovered(tree.NewOptionalNone(topRule(stack)), out.Diag)
	}
}

// 4.2 ZeroOrMore / OneOrMore
//
// Termination is guaranteed because a failed probe does not advance the
// cursor and a successful probe always advances at least its matched
// bytes — except a body that matches the empty string, which the spec
// calls out explicitly: such a probe must be treated as a terminating
// failure rather than looped on forever.

func (ev *evaluator) evalRepetition(e grammar.Expr, capture bool, cursor int, stack []string, mandatory bool) (int, Outcome) {
	start := cursor
	cur := cursor
	var children []tree.Node
	var terminator diag.Diagnostic

	if mandatory {
		newCur, out := ev.eval(*e.Sub, capture, cur, stack)
		if out.Status == StatusErr {
			return cur, fail(out.Diag)
		}
		children = append(children, out.Node)
		cur = newCur
	}

	for {
		newCur, out := ev.eval(*e.Sub, capture, cur, stack)
		if out.Status == StatusErr {
			terminator = out.Diag
			break
		}
		if newCur == cur {
			terminator = diag.NewBadMatch(ev.source, cur,
				"Repetition body matched zero bytes; stopping to avoid looping forever.", nil, stack)
			break
		}
		children = append(children, out.Node)
		cur = newCur
	}

	node := sequenceNode(topRule(stack), capture, start, cur, children)
	return cur, recovered(node, terminator)
}
