package artPrinter

import (
	"bytes"
	"strings"
	"testing"

	"MisakaART/customDataStructure/adaptiveRadixTree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintEmptyTree(t *testing.T) {
	assert.Equal(t, "Empty Tree\n", Sprint(adaptiveRadixTree.New[int]()))
}

func TestSprintScenario(t *testing.T) {
	tree := adaptiveRadixTree.New[float64]()
	tree.Insert(adaptiveRadixTree.Key("abcas"), 1.2)
	tree.Insert(adaptiveRadixTree.Key("ababdw"), 2.1)

	lines := strings.Split(strings.TrimRight(Sprint(tree), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#Node4 {ab}", lines[0])
	assert.Contains(t, lines[1], "-[97(a)] @LeafNode <ababdw, 2.1>")
	assert.Contains(t, lines[2], "-[99(c)] @LeafNode <abcas, 1.2>")
}

func TestSprintShapes(t *testing.T) {
	tree := adaptiveRadixTree.New[int]()
	tree.Insert(adaptiveRadixTree.Key("k"), -1)
	for i := 0; i < 49; i++ {
		tree.Insert(adaptiveRadixTree.Key{'k', 'a', byte(i)}, i)
	}
	for i := 0; i < 17; i++ {
		tree.Insert(adaptiveRadixTree.Key{'k', 'b', byte(i)}, i)
	}
	for i := 0; i < 5; i++ {
		tree.Insert(adaptiveRadixTree.Key{'k', 'c', byte(i)}, i)
	}

	result := Sprint(tree)
	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	assert.Equal(t, "#Node4 {k}", lines[0])
	assert.Contains(t, lines[1], "-[$] @LeafNode <k, -1>")
	assert.Contains(t, result, "-[97(a)] ^Node256 {}")
	assert.Contains(t, result, "-[98(b)] %Node48 {}")
	assert.Contains(t, result, "-[99(c)] $Node16 {}")
	assert.Contains(t, result, `-[0] @LeafNode <ka\x00, 0>`)
	assert.Len(t, lines, 1+1+3+49+17+5)
}

func TestDraw(t *testing.T) {
	tree := adaptiveRadixTree.New[string]()
	tree.Insert(adaptiveRadixTree.Key("misaka"), "mikoto")

	buffer := &bytes.Buffer{}
	require.NoError(t, Draw(tree, buffer))
	assert.Equal(t, "@LeafNode <misaka, mikoto>", strings.TrimSpace(buffer.String()))
}
