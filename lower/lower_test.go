package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/peggen/bootstrap"
	"github.com/aledsdavies/peggen/engine"
	"github.com/aledsdavies/peggen/grammar"
	"github.com/aledsdavies/peggen/tree"
)

func parseAndLower(t *testing.T, source string) grammar.Parser {
	t.Helper()
	root, err := engine.Parse(bootstrap.Grammar, source)
	require.NoError(t, err)
	p, err := Lower(root, source)
	require.NoError(t, err)
	return p
}

func TestLowerSingleLiteralRule(t *testing.T) {
	p := parseAndLower(t, `start = "hi" ;`)
	assert.Equal(t, "start", p.Start)
	require.Contains(t, p.Rules, "start")

	rule := p.Rules["start"]
	assert.False(t, rule.Capture)
	// Every non-suppressed atomic is prefixed with an implicit \s* atom.
	require.Equal(t, grammar.SeqExpr, rule.Expr.Kind)
	require.Len(t, rule.Expr.Subs, 2)
	assert.Equal(t, grammar.Regex, rule.Expr.Subs[0].Kind)
	assert.Equal(t, grammar.Literal, rule.Expr.Subs[1].Kind)
	assert.Equal(t, "hi", rule.Expr.Subs[1].Text)
}

func TestLowerFirstRuleIsStart(t *testing.T) {
	p := parseAndLower(t, `
first = "a" ;
second = "b" ;
`)
	assert.Equal(t, "first", p.Start)
	assert.Contains(t, p.Rules, "second")
}

func TestLowerCaptureFlag(t *testing.T) {
	p := parseAndLower(t, `@word = "a" "b" ;`)
	rule := p.Rules["word"]
	assert.True(t, rule.Capture)
}

func TestLowerSuppressionOmitsImplicitWhitespace(t *testing.T) {
	p := parseAndLower(t, `start = "a" _"b" ;`)
	rule := p.Rules["start"]
	require.Equal(t, grammar.SeqExpr, rule.Expr.Kind)
	require.Len(t, rule.Expr.Subs, 2)

	// "a" gets the implicit \s* wrapper.
	a := rule.Expr.Subs[0]
	require.Equal(t, grammar.SeqExpr, a.Kind)
	assert.Equal(t, grammar.Regex, a.Subs[0].Kind)
	assert.Equal(t, grammar.Literal, a.Subs[1].Kind)

	// _"b" is suppressed: no implicit whitespace wrapper, literal directly.
	b := rule.Expr.Subs[1]
	assert.Equal(t, grammar.Literal, b.Kind)
	assert.Equal(t, "b", b.Text)
}

func TestLowerChoiceAndModifiers(t *testing.T) {
	p := parseAndLower(t, `start = "a"+ | "b"* | "c"? ;`)
	rule := p.Rules["start"]
	require.Equal(t, grammar.ChoiceExpr, rule.Expr.Kind)
	require.Len(t, rule.Expr.Subs, 2)

	// Nested right-associative choice: (+ , (* , ?)). The implicit \s*
	// wrapper sits inside each repetition/optional, around its atom, not
	// around the repetition/optional itself.
	plus := rule.Expr.Subs[0]
	require.Equal(t, grammar.OneOrMoreExpr, plus.Kind)
	require.Equal(t, grammar.SeqExpr, plus.Sub.Kind)
	assert.Equal(t, grammar.Literal, plus.Sub.Subs[1].Kind)

	rest := rule.Expr.Subs[1]
	require.Equal(t, grammar.ChoiceExpr, rest.Kind)
	assert.Equal(t, grammar.ZeroOrMoreExpr, rest.Subs[0].Kind)
	assert.Equal(t, grammar.OptionalExpr, rest.Subs[1].Kind)
}

func TestLowerNonTerminalReference(t *testing.T) {
	p := parseAndLower(t, `
start = inner ;
inner = "z" ;
`)
	rule := p.Rules["start"]
	// implicit ws wrapper then the reference
	ref := rule.Expr.Subs[1]
	assert.Equal(t, grammar.NonTerminal, ref.Kind)
	assert.Equal(t, "inner", ref.Name)
}

func TestLowerEOFIsReserved(t *testing.T) {
	p := parseAndLower(t, `start = "a" EOF ;`)
	rule := p.Rules["start"]
	require.Len(t, rule.Expr.Subs, 2)
	eofAtom := rule.Expr.Subs[1].Subs[1]
	assert.Equal(t, grammar.EndOfInput, eofAtom.Kind)
}

func TestLowerRegexAtomic(t *testing.T) {
	p := parseAndLower(t, `start = re "[0-9]+" ;`)
	rule := p.Rules["start"]
	re := rule.Expr.Subs[1]
	assert.Equal(t, grammar.Regex, re.Kind)
	assert.Equal(t, "[0-9]+", re.Pattern)
}

func TestLowerRegexAtomicNoSeparator(t *testing.T) {
	p := parseAndLower(t, `start = re"[0-9]+" ;`)
	rule := p.Rules["start"]
	re := rule.Expr.Subs[1]
	assert.Equal(t, grammar.Regex, re.Kind)
	assert.Equal(t, "[0-9]+", re.Pattern)
}

func TestLowerEscapedQuoteInLiteral(t *testing.T) {
	p := parseAndLower(t, `start = "\"" ;`)
	rule := p.Rules["start"]
	lit := rule.Expr.Subs[1]
	assert.Equal(t, grammar.Literal, lit.Kind)
	assert.Equal(t, `"`, lit.Text)
}

func TestLowerParenthesizedGrouping(t *testing.T) {
	p := parseAndLower(t, `start = ("a" "b")? ;`)
	rule := p.Rules["start"]
	// A grouped primary is not itself atomic, so it gets no implicit \s*
	// wrapper of its own: the whole rule body collapses straight to the
	// Optional over the inner two-element sequence.
	require.Equal(t, grammar.OptionalExpr, rule.Expr.Kind)
	require.Equal(t, grammar.SeqExpr, rule.Expr.Sub.Kind)
	assert.Len(t, rule.Expr.Sub.Subs, 2)
}

func TestLowerMalformedTreeReturnsError(t *testing.T) {
	_, err := Lower(tree.Node{}, "")
	assert.Error(t, err)
}
