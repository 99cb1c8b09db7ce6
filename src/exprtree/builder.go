package exprtree

import (
	"fmt"
)

// BuildTree builds an expression tree from infix tokens, as produced by
// Tokenize.
func BuildTree(tokens []Token) (*ExprTree, error) {
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to postfix: %w", err)
	}

	tree, err := BuildFromPostfix(postfix)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble tree: %w", err)
	}
	return tree, nil
}

// BuildFromPostfix links nodes given in postfix order into a tree. Each
// operator takes the two most recent operands, the last one becoming its right
// child. The children of the given operator nodes are overwritten, but only
// once the whole sequence is known to form a tree; on error no node is touched.
func BuildFromPostfix(postfix []*Node) (*ExprTree, error) {
	if err := checkPostfix(postfix); err != nil {
		return nil, err
	}

	var operands []*Node
	for _, node := range postfix {
		if !node.IsValue() {
			node.Right = operands[len(operands)-1]
			node.Left = operands[len(operands)-2]
			operands = operands[:len(operands)-2]
		}
		operands = append(operands, node)
	}
	return NewTree(operands[0]), nil
}

// checkPostfix makes sure the nodes form exactly one tree in which every node
// appears once, so that no node ends up with two parents.
func checkPostfix(postfix []*Node) error {
	if len(postfix) == 0 {
		return NewMalformedExpressionError("empty expression")
	}

	seen := make(map[*Node]struct{}, len(postfix))
	depth := 0
	for i, node := range postfix {
		if node == nil {
			return NewMalformedExpressionError(fmt.Sprintf("missing node at position %d", i))
		}
		if _, ok := seen[node]; ok {
			return NewMalformedExpressionError(fmt.Sprintf("node '%s' at position %d appears more than once", node.Symbol(), i))
		}
		seen[node] = struct{}{}

		if node.IsValue() {
			depth++
			continue
		}

		if _, ok := operatorSymbols[node.Operator]; !ok {
			return NewMalformedExpressionError(fmt.Sprintf("unknown operator %v at position %d", node.Operator, i))
		}
		if depth < 2 {
			return NewMalformedExpressionError(fmt.Sprintf("missing operand for '%s' at position %d", node.Symbol(), i))
		}
		depth--
	}

	if depth != 1 {
		return NewMalformedExpressionError(fmt.Sprintf("missing operator: %d operands left without one", depth))
	}
	return nil
}

func postfixTokensToNodes(tokens []Token) ([]*Node, error) {
	nodes := make([]*Node, 0, len(tokens))
	for i, token := range tokens {
		switch token.Kind {
		case NUMBER:
			node, err := valueNodeFromToken(token)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		case OPERATOR:
			node, err := operatorNodeFromToken(token, i)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		default:
			return nil, NewMalformedExpressionError(fmt.Sprintf("unexpected '%s' in postfix expression", token.Text))
		}
	}
	return nodes, nil
}
