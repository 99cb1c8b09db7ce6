package exprgen

import (
	"math/rand"
	"testing"

	"github.com/eriklarko/exprtree/src/exprtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depth(node *exprtree.Node) int {
	if node == nil || node.IsValue() {
		return 0
	}
	return 1 + max(depth(node.Left), depth(node.Right))
}

func leaves(node *exprtree.Node) []*exprtree.Node {
	if node == nil {
		return nil
	}
	if node.IsValue() {
		return []*exprtree.Node{node}
	}
	return append(leaves(node.Left), leaves(node.Right)...)
}

func TestGenerate_DepthZero(t *testing.T) {
	g := &Generator{Rand: rand.New(rand.NewSource(1))}
	for i := 0; i < 100; i++ {
		node := g.Generate(0)
		assert.True(t, node.IsValue())
	}
}

func TestGenerate_Bounds(t *testing.T) {
	g := &Generator{MaxValue: 9, Rand: rand.New(rand.NewSource(2))}
	for i := 0; i < 200; i++ {
		node := g.Generate(4)
		assert.LessOrEqual(t, depth(node), 4)

		for _, leaf := range leaves(node) {
			assert.GreaterOrEqual(t, leaf.Value, 0)
			assert.LessOrEqual(t, leaf.Value, 9)
		}
	}
}

func TestGenerate_NoZeroDivisor(t *testing.T) {
	// small literals make zero divisors likely
	g := &Generator{MaxValue: 2, NoZeroDivisor: true, Rand: rand.New(rand.NewSource(3))}
	for i := 0; i < 500; i++ {
		tree := exprtree.NewTree(g.Generate(5))

		_, err := tree.EvaluateWholeTree()
		require.NoError(t, err, tree.InfixOrder())
	}
}

func TestParenthesize(t *testing.T) {
	node := exprtree.NewOperatorNode(
		exprtree.TIMES,
		exprtree.NewOperatorNode(exprtree.PLUS, exprtree.NewValueNode(1), exprtree.NewValueNode(2)),
		exprtree.NewValueNode(3),
	)

	assert.Equal(t, "((1 + 2) * 3)", Parenthesize(node))
	assert.Equal(t, "7", Parenthesize(exprtree.NewValueNode(7)))
	assert.Equal(t, "", Parenthesize(nil))
}

func TestGenerateExpression_Parses(t *testing.T) {
	g := &Generator{Rand: rand.New(rand.NewSource(4))}
	for i := 0; i < 100; i++ {
		expression := g.GenerateExpression(4)

		_, err := exprtree.New(expression)
		require.NoError(t, err, expression)
	}
}
