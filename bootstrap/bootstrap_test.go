package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/peggen/engine"
)

func TestGrammarStartRule(t *testing.T) {
	assert.Equal(t, "grammar", Grammar.Start)
	assert.Contains(t, Grammar.RuleNames(), "grammar")
}

func TestParsesMinimalOneRuleGrammar(t *testing.T) {
	_, err := engine.Parse(Grammar, `start = "a" ;`)
	require.NoError(t, err)
}

func TestParsesCaptureRuleAndChoiceAndModifiers(t *testing.T) {
	src := `
start = term ;
@expr = term ("+" term)* ;
term = "a" | "b" | paren ;
paren = "(" expr ")" ;
`
	_, err := engine.Parse(Grammar, src)
	assert.NoError(t, err)
}

func TestParsesRegexAndSuppressionAndEOF(t *testing.T) {
	src := `
start = re "[0-9]+" _"," re "[0-9]+" EOF ;
`
	_, err := engine.Parse(Grammar, src)
	assert.NoError(t, err)
}

func TestParsesRegexWithNoSeparatorFromQuote(t *testing.T) {
	src := `
ALPHA = _re"[a-zA-Z_]" ;
DIGIT = _re"[0-9]" ;
`
	_, err := engine.Parse(Grammar, src)
	assert.NoError(t, err, `"re" butting directly against the opening quote, per the original rtulip/lexemic source, must parse`)
}

func TestRejectsTextMissingTrailingSemicolon(t *testing.T) {
	_, err := engine.Parse(Grammar, `start = "a"`)
	assert.Error(t, err)
}

func TestRejectsEmptyInput(t *testing.T) {
	_, err := engine.Parse(Grammar, ``)
	assert.Error(t, err, "grammar requires at least one rule")
}
