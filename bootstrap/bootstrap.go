// Package bootstrap is the hand-assembled Parser that describes the
// grammar notation itself (spec.md §4.4). It is built once, as a literal
// Go data value, and is what Build uses to parse a user's grammar text
// before lowering the resulting tree into that user's own Parser.
//
// This is not parsed from the textual sketch in spec.md — it IS that
// sketch, transcribed directly into grammar.Expr values. The sketch's
// bare `\s*`/`ALPHA`/`DIGIT`/`STRING` tokens are shorthand for regex
// atoms and helper non-terminals the generator's own notation has no way
// to spell without an explicit `re "..."` prefix; the bootstrap, being
// hand data rather than something lowered by §4.5, writes them directly.
package bootstrap

import "github.com/aledsdavies/peggen/grammar"

// Start is the bootstrap's start rule: the first rule in its own source
// order, per spec.md §4.5.
const Start = "grammar"

// Grammar is the literal meta-grammar Parser.
var Grammar = mustBuild()

func mustBuild() grammar.Parser {
	g := grammar.NewRegex
	l := grammar.NewLiteral
	nt := grammar.NewNonTerminal
	seq := grammar.NewSequence
	choice := grammar.NewChoice
	opt := grammar.NewOptional
	star := grammar.NewZeroOrMore
	plus := grammar.NewOneOrMore

	ws := func() grammar.Expr { return g(`\s*`) }

	rules := map[string]grammar.Rule{
		// grammar = rule+ \s* EOF ;
		"grammar": {Expr: seq(plus(nt("rule")), ws(), grammar.NewEndOfInput())},

		// rule = \s* "@"? non_terminal \s* "=" \s* sequence \s* ";" \s* ;
		"rule": {Expr: seq(
			ws(),
			opt(l("@")),
			nt("non_terminal"),
			ws(),
			l("="),
			ws(),
			nt("sequence"),
			ws(),
			l(";"),
			ws(),
		)},

		// sequence = (modifier \s+ sequence)
		//          | (modifier \s* "|" \s* sequence)
		//          | modifier ;
		"sequence": {Expr: choice(
			seq(nt("modifier"), g(`\s+`), nt("sequence")),
			seq(nt("modifier"), ws(), l("|"), ws(), nt("sequence")),
			nt("modifier"),
		)},

		// modifier = ("_" primary)
		//          | (primary "+") | (primary "*") | (primary "?")
		//          | primary ;
		"modifier": {Expr: choice(
			seq(l("_"), nt("primary")),
			seq(nt("primary"), l("+")),
			seq(nt("primary"), l("*")),
			seq(nt("primary"), l("?")),
			nt("primary"),
		)},

		// primary = "(" \s* sequence \s* ")" | atomic ;
		"primary": {Expr: choice(
			seq(l("("), ws(), nt("sequence"), ws(), l(")")),
			nt("atomic"),
		)},

		// atomic = terminal | regex | non_terminal ;
		"atomic": {Expr: choice(nt("terminal"), nt("regex"), nt("non_terminal"))},

		// regex = "re" STRING ;
		//
		// The separator between "re" and STRING is optional whitespace, not
		// mandatory: the original rtulip/lexemic source writes this atom with
		// no space at all (`_re"[a-zA-Z_]"`), relying on "re" butting directly
		// against the opening quote. \s* accepts that form and the
		// space-separated `re "..."` form alike.
		"regex": {Expr: seq(l("re"), g(`\s*`), nt("STRING"))},

		// non_terminal = ALPHA (ALPHA|DIGIT)* ; [capture]
		"non_terminal": {Capture: true, Expr: seq(
			nt("ALPHA"),
			star(choice(nt("ALPHA"), nt("DIGIT"))),
		)},

		// terminal = STRING ;
		"terminal": {Expr: nt("STRING")},

		// STRING = "\"" (escape | char)* "\"" ; [capture]
		"STRING": {Capture: true, Expr: seq(
			l(`"`),
			star(choice(nt("escape"), nt("char"))),
			l(`"`),
		)},

		// escape = "\\" \S ;
		"escape": {Expr: seq(l(`\`), g(`\S`))},

		// char = [^|\\"] ;
		"char": {Expr: g(`[^|\\"]`)},

		// ALPHA = [a-zA-Z_] ;
		"ALPHA": {Expr: g(`[a-zA-Z_]`)},

		// DIGIT = [0-9] ;
		"DIGIT": {Expr: g(`[0-9]`)},
	}

	p, err := grammar.New(rules, Start)
	if err != nil {
		// The bootstrap grammar is fixed program data; a failure here is a
		// programming error in this package, never a runtime condition.
		panic("bootstrap: invalid meta-grammar: " + err.Error())
	}
	return p
}
