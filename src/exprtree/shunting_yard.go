package exprtree

import (
	"fmt"
	"log/slog"
	"strconv"
)

// stackEntry is an element of the operator stack. An open parenthesis is
// represented by a placeholder, which never ends up in the output.
type stackEntry struct {
	placeholder bool
	node        *Node
}

// ToPostfix converts infix tokens to a sequence of nodes in postfix order
// using the shunting-yard algorithm. The returned nodes have no children yet.
//
// Tokens are also checked against the grammar as they are consumed, so a
// missing operand or operator is reported here rather than producing a tree
// for an expression like "+ 1 (2)".
func ToPostfix(tokens []Token) ([]*Node, error) {
	if len(tokens) == 0 {
		return nil, NewMalformedExpressionError("empty expression")
	}

	var output []*Node
	var operators []stackEntry

	pop := func() stackEntry {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		return top
	}

	expectOperand := true
	for i, token := range tokens {
		if err := checkPosition(token, i, expectOperand); err != nil {
			return nil, err
		}

		switch token.Kind {
		case NUMBER:
			expectOperand = false
			node, err := valueNodeFromToken(token)
			if err != nil {
				return nil, err
			}
			output = append(output, node)

		case OPEN_PAREN:
			operators = append(operators, stackEntry{placeholder: true})

		case CLOSE_PAREN:
			matched := false
			for len(operators) > 0 {
				top := pop()
				if top.placeholder {
					matched = true
					break
				}
				output = append(output, top.node)
			}
			if !matched {
				return nil, NewMalformedExpressionError(fmt.Sprintf("unbalanced parentheses: unexpected ')' at token %d", i))
			}

		case OPERATOR:
			current, err := operatorNodeFromToken(token, i)
			if err != nil {
				return nil, err
			}
			// equal precedence pops the stacked operator, which makes
			// operators left associative
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.placeholder || top.node.Operator.Precedence() < current.Operator.Precedence() {
					break
				}
				output = append(output, pop().node)
			}
			operators = append(operators, stackEntry{node: current})
			expectOperand = true

		default:
			return nil, NewUnrecognizedTokenError(token.Text, i)
		}
	}

	if expectOperand {
		return nil, NewMalformedExpressionError("missing operand at end of expression")
	}

	for len(operators) > 0 {
		top := pop()
		if top.placeholder {
			return nil, NewMalformedExpressionError("unbalanced parentheses: missing ')'")
		}
		output = append(output, top.node)
	}

	slog.Debug("converted infix tokens to postfix", "tokens", len(tokens), "nodes", len(output))
	return output, nil
}

// checkPosition reports a token that can't appear where it is. Numbers and
// '(' start an operand, operators and ')' must follow one.
func checkPosition(token Token, position int, expectOperand bool) error {
	switch token.Kind {
	case NUMBER, OPEN_PAREN:
		if !expectOperand {
			return NewMalformedExpressionError(fmt.Sprintf("missing operator before '%s' at token %d", token.Text, position))
		}
	case OPERATOR, CLOSE_PAREN:
		if expectOperand {
			return NewMalformedExpressionError(fmt.Sprintf("missing operand before '%s' at token %d", token.Text, position))
		}
	}
	return nil
}

func valueNodeFromToken(token Token) (*Node, error) {
	value, err := strconv.Atoi(token.Text)
	if err != nil {
		return nil, &MalformedExpressionError{
			Reason: fmt.Sprintf("invalid number '%s'", token.Text),
			Err:    err,
		}
	}
	return NewValueNode(value), nil
}

func operatorNodeFromToken(token Token, position int) (*Node, error) {
	op, ok := operatorsBySymbol[token.Text]
	if !ok {
		return nil, NewUnrecognizedTokenError(token.Text, position)
	}
	return NewOperatorNode(op, nil, nil), nil
}
