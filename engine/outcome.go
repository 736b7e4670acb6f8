package engine

import (
	"github.com/aledsdavies/peggen/diag"
	"github.com/aledsdavies/peggen/tree"
)

// Status tags the three-valued outcome an expression evaluation produces.
type Status int

const (
	// StatusOk is full success with no diagnostics generated.
	StatusOk Status = iota
	// StatusRecovered is a success that carries forward an absorbed
	// failure diagnostic: a repetition terminated on a failed element, an
	// optional chose the absent branch, or a sequence contained a
	// recovered child.
	StatusRecovered
	// StatusErr is failure: no node could be produced.
	StatusErr
)

// Outcome is the evaluator's three-valued result. Node is meaningful for
// StatusOk/StatusRecovered; Diag is meaningful for StatusRecovered/StatusErr.
type Outcome struct {
	Status Status
	Node   tree.Node
	Diag   diag.Diagnostic
}

func ok(node tree.Node) Outcome {
	return Outcome{Status: StatusOk, Node: node}
}

func recovered(node tree.Node, d diag.Diagnostic) Outcome {
	return Outcome{Status: StatusRecovered, Node: node, Diag: d}
}

func fail(d diag.Diagnostic) Outcome {
	return Outcome{Status: StatusErr, Diag: d}
}
