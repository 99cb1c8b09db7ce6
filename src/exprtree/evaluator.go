package exprtree

import (
	"fmt"
)

// Evaluate computes the value of the sub-expression rooted at n. Division
// truncates towards zero.
func (n *Node) Evaluate() (int, error) {
	if n == nil {
		return 0, NewMalformedExpressionError("missing operand")
	}
	if n.IsValue() {
		return n.Value, nil
	}

	left, err := n.Left.Evaluate()
	if err != nil {
		return 0, err
	}
	right, err := n.Right.Evaluate()
	if err != nil {
		return 0, err
	}

	switch n.Operator {
	case PLUS:
		return left + right, nil
	case MINUS:
		return left - right, nil
	case TIMES:
		return left * right, nil
	case DIVIDE:
		if right == 0 {
			return 0, fmt.Errorf("%d / %d: %w", left, right, ErrDivisionByZero)
		}
		return left / right, nil
	}

	return 0, fmt.Errorf("unknown operator: %v", n.Operator)
}

// EvaluateWholeTree evaluates the expression from the root.
func (t *ExprTree) EvaluateWholeTree() (int, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}

	result, err := t.root.Evaluate()
	if err != nil {
		return 0, fmt.Errorf("failed evaluating expression: %w", err)
	}
	return result, nil
}
