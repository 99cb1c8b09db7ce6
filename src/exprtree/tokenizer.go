package exprtree

import (
	"strings"
	"unicode"
)

type TokenKind int

const (
	NUMBER TokenKind = iota
	OPERATOR
	OPEN_PAREN
	CLOSE_PAREN
)

type Token struct {
	Kind TokenKind
	Text string
}

var operatorsBySymbol = map[string]Operator{
	"+": PLUS,
	"-": MINUS,
	"*": TIMES,
	"/": DIVIDE,
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func classify(text string) (TokenKind, bool) {
	if isNumber(text) {
		return NUMBER, true
	}
	if _, ok := operatorsBySymbol[text]; ok {
		return OPERATOR, true
	}
	switch text {
	case "(":
		return OPEN_PAREN, true
	case ")":
		return CLOSE_PAREN, true
	}
	return 0, false
}

func removeWhitespace(expression string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expression)
}

// Tokenize splits an infix expression into numbers, operators and
// parentheses. Whitespace is ignored entirely, so "1 2" is the number 12.
func Tokenize(expression string) ([]Token, error) {
	var tokens []Token
	var pending strings.Builder

	flush := func() {
		if pending.Len() > 0 {
			tokens = append(tokens, Token{Kind: NUMBER, Text: pending.String()})
			pending.Reset()
		}
	}

	for i, r := range []rune(removeWhitespace(expression)) {
		if isDigit(r) {
			pending.WriteRune(r)
			continue
		}

		flush()
		text := string(r)
		kind, ok := classify(text)
		if !ok {
			return nil, NewUnrecognizedTokenError(text, i)
		}
		tokens = append(tokens, Token{Kind: kind, Text: text})
	}
	flush()

	return tokens, nil
}

// TokenizePostfix splits a postfix expression on whitespace. Unlike Tokenize
// the whitespace is significant, as "3 4 +" would otherwise read as "34+".
func TokenizePostfix(expression string) ([]Token, error) {
	fields := strings.Fields(expression)
	tokens := make([]Token, 0, len(fields))
	for i, field := range fields {
		kind, ok := classify(field)
		if !ok {
			return nil, NewUnrecognizedTokenError(field, i)
		}
		tokens = append(tokens, Token{Kind: kind, Text: field})
	}
	return tokens, nil
}
