// Package peggen is the external entry point: build_from_grammar and
// Parser.parse from spec.md §6. It wires the bootstrap meta-grammar, the
// core evaluator, and the lowering transform together so a caller never
// has to touch those packages directly.
package peggen

import (
	"github.com/aledsdavies/peggen/bootstrap"
	"github.com/aledsdavies/peggen/engine"
	"github.com/aledsdavies/peggen/grammar"
	"github.com/aledsdavies/peggen/lower"
	"github.com/aledsdavies/peggen/tree"
)

// Parser is a grammar built from user-supplied grammar text, ready to
// parse input strings against its start rule.
type Parser struct {
	rules grammar.Parser
}

// Build parses grammarText against the bootstrap meta-grammar and lowers
// the result into a Parser. A malformed grammar text returns a
// diagnostic describing where the meta-grammar failed to match; a
// well-formed grammar that itself has structural trouble (empty rule
// set, missing start) returns the error grammar.New produced.
func Build(grammarText string) (*Parser, error) {
	root, err := engine.Parse(bootstrap.Grammar, grammarText)
	if err != nil {
		return nil, err
	}
	rules, err := lower.Lower(root, grammarText)
	if err != nil {
		return nil, err
	}
	return &Parser{rules: rules}, nil
}

// Parse runs p against source, returning the parse tree on success or a
// diagnostic pointing at the furthest byte the input violated an
// expectation at.
func (p *Parser) Parse(source string) (tree.Node, error) {
	return engine.Parse(p.rules, source)
}

// ParseWithTelemetry is Parse plus optional instrumentation (rule-eval
// and atomic-attempt counters, wall-clock timing) gathered per
// engine.Option. Without engine.WithTelemetryTiming the returned
// *engine.Telemetry is nil.
func (p *Parser) ParseWithTelemetry(source string, opts ...engine.Option) (tree.Node, *engine.Telemetry, error) {
	return engine.ParseWithTelemetry(p.rules, source, opts...)
}

// StartRule returns the name of the rule p begins matching from.
func (p *Parser) StartRule() string {
	return p.rules.Start
}

// RuleNames returns every rule name p knows about, in no particular
// order. Useful for tooling that wants to validate a reference before
// attempting a parse.
func (p *Parser) RuleNames() []string {
	return p.rules.RuleNames()
}

// WithStartRule returns a copy of p that begins matching from name
// instead of the grammar's own first-rule-in-source-order start. Used by
// a project manifest's per-grammar startRule override (config package);
// name must already be one of p's rules.
func (p *Parser) WithStartRule(name string) (*Parser, error) {
	rules, err := grammar.New(p.rules.Rules, name)
	if err != nil {
		return nil, err
	}
	return &Parser{rules: rules}, nil
}
