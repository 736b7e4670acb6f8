// Package serialize encodes a tree.Node to CBOR and back. This is the
// "serialization of trees to external formats" spec.md names as an
// out-of-scope external collaborator: a surrounding concern engine and
// grammar never import.
package serialize

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/peggen/tree"
)

// wireNode mirrors tree.Node field-for-field. tree.Node itself is not
// encoded directly: cbor would happily marshal its unexported-free struct,
// but keeping a dedicated wire type means the on-disk shape doesn't shift
// silently if tree.Node grows an internal-only field later.
type wireNode struct {
	Rule        string
	Kind        uint8
	Start       int
	End         int
	LiteralText string     `cbor:",omitempty"`
	Children    []wireNode `cbor:",omitempty"`
	Inner       *wireNode  `cbor:",omitempty"`
}

func toWire(n tree.Node) wireNode {
	w := wireNode{
		Rule:        n.Rule,
		Kind:        uint8(n.Kind),
		Start:       n.Start,
		End:         n.End,
		LiteralText: n.LiteralText,
	}
	if len(n.Children) > 0 {
		w.Children = make([]wireNode, len(n.Children))
		for i, c := range n.Children {
			w.Children[i] = toWire(c)
		}
	}
	if n.Inner != nil {
		inner := toWire(*n.Inner)
		w.Inner = &inner
	}
	return w
}

func fromWire(w wireNode) tree.Node {
	n := tree.Node{
		Rule:        w.Rule,
		Kind:        tree.Kind(w.Kind),
		Start:       w.Start,
		End:         w.End,
		LiteralText: w.LiteralText,
	}
	if len(w.Children) > 0 {
		n.Children = make([]tree.Node, len(w.Children))
		for i, c := range w.Children {
			n.Children[i] = fromWire(c)
		}
	}
	if w.Inner != nil {
		inner := fromWire(*w.Inner)
		n.Inner = &inner
	}
	return n
}

// Marshal encodes n as deterministic CBOR: the same tree always produces
// the same bytes, via cbor.CanonicalEncOptions() (map-key sorting and
// shortest-form integer encoding), the same option set the teacher's
// planfmt.CanonicalPlan.MarshalBinary uses to hash plans reproducibly.
func Marshal(n tree.Node) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("serialize: build encoder: %w", err)
	}
	data, err := encMode.Marshal(toWire(n))
	if err != nil {
		return nil, fmt.Errorf("serialize: encode tree: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a tree.Node previously produced by Marshal. The
// Terminal slices inside the returned node are indices only; they are
// only meaningful against the original input string that produced the
// tree, which the caller is responsible for keeping alongside the bytes.
func Unmarshal(data []byte) (tree.Node, error) {
	var w wireNode
	if err := cbor.Unmarshal(data, &w); err != nil {
		return tree.Node{}, fmt.Errorf("serialize: decode tree: %w", err)
	}
	return fromWire(w), nil
}
