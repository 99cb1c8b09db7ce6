package exprtree

import (
	"fmt"
	"strconv"
)

type Operator int

const (
	VALUE Operator = iota
	PLUS
	MINUS
	TIMES
	DIVIDE
)

var operatorSymbols = map[Operator]string{
	PLUS:   "+",
	MINUS:  "-",
	TIMES:  "*",
	DIVIDE: "/",
}

func (o Operator) String() string {
	if symbol, ok := operatorSymbols[o]; ok {
		return symbol
	}
	if o == VALUE {
		return "value"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Precedence returns how tightly the operator binds. Values bind tighter than
// any operator.
func (o Operator) Precedence() int {
	switch o {
	case PLUS, MINUS:
		return 1
	case TIMES, DIVIDE:
		return 2
	}
	return 3
}

// Node is either a value leaf or an operator with exactly two children.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	Value int
}

// NewValueNode creates a leaf holding v.
func NewValueNode(v int) *Node {
	return &Node{Operator: VALUE, Value: v}
}

// NewOperatorNode creates an operator node with the given children.
func NewOperatorNode(op Operator, left, right *Node) *Node {
	return &Node{Operator: op, Left: left, Right: right}
}

func (n *Node) IsValue() bool {
	return n.Operator == VALUE
}

// Symbol returns the numeral of a value node or the operator symbol.
func (n *Node) Symbol() string {
	if n.IsValue() {
		return strconv.Itoa(n.Value)
	}
	return n.Operator.String()
}

// New creates a new expression tree from an infix expression.
// Example usage:
//
//	tree, err := exprtree.New("3 + 4 * 2")
//	if err != nil {
//		log.Fatalf("failed to build expression tree: %v", err)
//	}
//	fmt.Println(tree.EvaluateWholeTree()) // Output: 11 <nil>
//	fmt.Println(tree.PrefixOrder())       // Output: + 3 * 4 2
func New(expression string) (*ExprTree, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize expression '%s': %w", expression, err)
	}

	tree, err := BuildTree(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}
	return tree, nil
}

// NewFromPostfix builds a tree from an expression in postfix notation, such as
// the output of PostfixOrder. Tokens must be separated by whitespace.
func NewFromPostfix(expression string) (*ExprTree, error) {
	tokens, err := TokenizePostfix(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize postfix expression '%s': %w", expression, err)
	}

	nodes, err := postfixTokensToNodes(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to read postfix expression '%s': %w", expression, err)
	}

	tree, err := BuildFromPostfix(nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}
	return tree, nil
}
