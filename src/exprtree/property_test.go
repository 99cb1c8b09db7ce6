package exprtree_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/eriklarko/exprtree/src/exprgen"
	"github.com/eriklarko/exprtree/src/exprtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arithmetic evaluates a generated tree without going through the parser.
func arithmetic(node *exprtree.Node) int {
	if node.IsValue() {
		return node.Value
	}
	left, right := arithmetic(node.Left), arithmetic(node.Right)
	switch node.Operator {
	case exprtree.PLUS:
		return left + right
	case exprtree.MINUS:
		return left - right
	case exprtree.TIMES:
		return left * right
	default:
		return left / right
	}
}

func TestRandomExpressions(t *testing.T) {
	g := &exprgen.Generator{
		MaxValue:      50,
		NoZeroDivisor: true,
		Rand:          rand.New(rand.NewSource(42)),
	}

	for i := 0; i < 300; i++ {
		generated := g.Generate(5)
		expression := exprgen.Parenthesize(generated)

		tree, err := exprtree.New(expression)
		require.NoError(t, err, expression)

		result, err := tree.EvaluateWholeTree()
		require.NoError(t, err, expression)
		assert.Equal(t, arithmetic(generated), result, expression)

		assert.Equal(t, exprtree.NewTree(generated).Size(), tree.Size(), expression)
		assert.Len(t, strings.Fields(tree.PrefixOrder()), tree.Size())

		// the postfix rendering parses back into the same tree
		roundTripped, err := exprtree.NewFromPostfix(tree.PostfixOrder())
		require.NoError(t, err, expression)
		assert.Equal(t, tree.Root(), roundTripped.Root(), expression)
	}
}
