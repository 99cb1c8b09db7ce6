package exprtree

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when the right operand of a division
	// evaluates to 0.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrEmptyTree is returned when evaluating a tree without a root.
	ErrEmptyTree = errors.New("cannot evaluate an empty tree")
)

// MalformedExpressionError is returned when the tokens can't be turned into a
// tree, e.g. unbalanced parentheses, a missing operand or empty input.
type MalformedExpressionError struct {
	Reason string
	Err    error
}

// NewMalformedExpressionError creates a new MalformedExpressionError with the given reason.
func NewMalformedExpressionError(reason string) error {
	return &MalformedExpressionError{Reason: reason}
}

func (e *MalformedExpressionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed expression: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed expression: %s", e.Reason)
}

func (e *MalformedExpressionError) Unwrap() error {
	return e.Err
}

// UnrecognizedTokenError is returned when the input contains a character that
// is neither a digit, an operator nor a parenthesis.
type UnrecognizedTokenError struct {
	Token string
	// Position locates the token. For Tokenize it is the rune index in the
	// input after whitespace was removed, for TokenizePostfix it is the index
	// of the whitespace separated field.
	Position int
}

// NewUnrecognizedTokenError creates a new UnrecognizedTokenError.
func NewUnrecognizedTokenError(token string, position int) error {
	return &UnrecognizedTokenError{Token: token, Position: position}
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token '%s' at position %d", e.Token, e.Position)
}
