package serialize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/peggen/tree"
)

func sampleTree() tree.Node {
	a := tree.NewTerminal("a", 0, 1)
	b := tree.NewTerminal("b", 1, 2)
	seq := tree.NewSequence("seq", []tree.Node{a, b})
	opt := tree.NewOptionalSome("opt", seq)
	return tree.NewWrapped("start", opt)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	original := sampleTree()

	data, err := Marshal(original)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)

	if diff := cmp.Diff(original, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	n := sampleTree()

	first, err := Marshal(n)
	require.NoError(t, err)
	second, err := Marshal(n)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoundTripLiteralTerminal(t *testing.T) {
	original := tree.NewLiteralTerminal("eof", "EOF", 7)

	data, err := Marshal(original)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestRoundTripOptionalNone(t *testing.T) {
	original := tree.NewOptionalNone("opt")

	data, err := Marshal(original)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Nil(t, got.Inner)
	assert.Equal(t, tree.Optional, got.Kind)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := Unmarshal([]byte{0xff, 0x00, 0x01})
	assert.Error(t, err)
}
