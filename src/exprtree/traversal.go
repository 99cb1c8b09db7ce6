package exprtree

import (
	"strings"

	"github.com/samber/lo"
)

// joinSymbols renders nodes in the order they were visited, separated by
// single spaces.
func joinSymbols(nodes []*Node) string {
	return strings.Join(lo.Map(nodes, func(n *Node, _ int) string {
		return n.Symbol()
	}), " ")
}

// PrefixOrder renders the tree in prefix notation, e.g. "+ 3 * 4 2".
func (t *ExprTree) PrefixOrder() string {
	if t.root == nil {
		return ""
	}

	visited := make([]*Node, 0, t.size)
	stack := []*Node{t.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited = append(visited, current)

		// right goes first so that left is popped first
		if current.Right != nil {
			stack = append(stack, current.Right)
		}
		if current.Left != nil {
			stack = append(stack, current.Left)
		}
	}
	return joinSymbols(visited)
}

// InfixOrder renders the tree in infix notation without parentheses, e.g.
// "3 + 4 * 2". The grouping of the tree is not visible in the output.
func (t *ExprTree) InfixOrder() string {
	visited := make([]*Node, 0, t.size)
	var stack []*Node
	current := t.root
	for current != nil || len(stack) > 0 {
		if current != nil {
			stack = append(stack, current)
			current = current.Left
			continue
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited = append(visited, current)
		current = current.Right
	}
	return joinSymbols(visited)
}

// PostfixOrder renders the tree in postfix notation, e.g. "3 4 2 * +".
func (t *ExprTree) PostfixOrder() string {
	visited := make([]*Node, 0, t.size)
	var visit func(node *Node)
	visit = func(node *Node) {
		if node == nil {
			return
		}
		visit(node.Left)
		visit(node.Right)
		visited = append(visited, node)
	}
	visit(t.root)
	return joinSymbols(visited)
}

func PrefixOrder(t *ExprTree) string {
	return t.PrefixOrder()
}

func InfixOrder(t *ExprTree) string {
	return t.InfixOrder()
}

func PostfixOrder(t *ExprTree) string {
	return t.PostfixOrder()
}
