package exprgen

import (
	"math/rand"

	"github.com/eriklarko/exprtree/src/exprtree"
)

// DefaultMaxValue is the largest literal generated when
// Generator.MaxValue is 0.
const DefaultMaxValue = 100

var binaryOperators = []exprtree.Operator{
	exprtree.PLUS,
	exprtree.MINUS,
	exprtree.TIMES,
	exprtree.DIVIDE,
}

// A Generator generates random well-formed expression trees.
type Generator struct {
	// MaxValue is the largest literal in generated trees. Literals are never
	// negative.
	// If this is 0, DefaultMaxValue is used.
	MaxValue int

	// If NoZeroDivisor is set, the right operand of a division never
	// evaluates to 0, so every generated tree can be evaluated.
	NoZeroDivisor bool

	// Rand is the source of randomness. If nil, the global source is used.
	Rand *rand.Rand
}

// Generate generates a random tree with a given maximum nesting depth.
// If maxDepth is 0, the result is a single value.
func (g *Generator) Generate(maxDepth int) *exprtree.Node {
	if maxDepth <= 0 || g.intn(maxDepth+1) == 0 {
		return g.randomValue()
	}
	return g.randomOperator(maxDepth)
}

// GenerateExpression generates a random infix expression, see Parenthesize.
func (g *Generator) GenerateExpression(maxDepth int) string {
	return Parenthesize(g.Generate(maxDepth))
}

func (g *Generator) randomOperator(maxDepth int) *exprtree.Node {
	op := binaryOperators[g.intn(len(binaryOperators))]
	left := g.Generate(maxDepth - 1)
	right := g.Generate(maxDepth - 1)

	if op == exprtree.DIVIDE && g.NoZeroDivisor {
		if divisor, err := right.Evaluate(); err != nil || divisor == 0 {
			op = exprtree.PLUS
		}
	}
	return exprtree.NewOperatorNode(op, left, right)
}

func (g *Generator) randomValue() *exprtree.Node {
	maxValue := g.MaxValue
	if maxValue == 0 {
		maxValue = DefaultMaxValue
	}
	return exprtree.NewValueNode(g.intn(maxValue + 1))
}

func (g *Generator) intn(n int) int {
	if g.Rand != nil {
		return g.Rand.Intn(n)
	}
	return rand.Intn(n)
}

// Parenthesize renders a tree in infix notation with every operation wrapped
// in parentheses, so that parsing the result gives back the same tree.
func Parenthesize(node *exprtree.Node) string {
	if node == nil {
		return ""
	}
	if node.IsValue() {
		return node.Symbol()
	}
	return "(" + Parenthesize(node.Left) + " " + node.Symbol() + " " + Parenthesize(node.Right) + ")"
}
