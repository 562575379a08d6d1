// lexer.go: whitespace tokenizer for the minilisp surface syntax.
//
// The surface grammar is deliberately primitive: a token is any maximal run
// of non-space runes, full stop. There are no string literals, no comments,
// no escapes, and parentheses are ordinary characters unless they stand
// alone — "(foo)" is a single SYMBOL token, not a list. Anyone who wants a
// list writes "( foo )". Tokenization cannot fail; classification of each
// token into its kind happens here so the parser only ever looks at Type.
package minilisp

import (
	"strconv"
	"unicode"
)

// TokenType represents the kind of token.
type TokenType int

const (
	LPAREN  TokenType = iota // "(" standing alone
	RPAREN                   // ")" standing alone
	BOOLEAN                  // exactly "true" or "false"
	NUMBER                   // anything strconv.ParseFloat accepts
	SYMBOL                   // everything else
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string // raw text slice
	Literal any    // float64 for NUMBER, bool for BOOLEAN, nil otherwise
	Col     int    // 1-based rune column of the first rune
}

// Tokenize splits one line of input into classified tokens. Empty or
// all-space input yields an empty slice; there are no error conditions.
func Tokenize(src string) []Token {
	var toks []Token
	col := 0   // 1-based rune column of the current rune
	start := 0 // column where the pending lexeme began
	var lexeme []rune
	flush := func() {
		if len(lexeme) > 0 {
			toks = append(toks, classify(string(lexeme), start))
			lexeme = lexeme[:0]
		}
	}
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			flush()
			continue
		}
		if len(lexeme) == 0 {
			start = col
		}
		lexeme = append(lexeme, r)
	}
	flush()
	return toks
}

func classify(lexeme string, col int) Token {
	switch lexeme {
	case "(":
		return Token{Type: LPAREN, Lexeme: lexeme, Col: col}
	case ")":
		return Token{Type: RPAREN, Lexeme: lexeme, Col: col}
	case "true":
		return Token{Type: BOOLEAN, Lexeme: lexeme, Literal: true, Col: col}
	case "false":
		return Token{Type: BOOLEAN, Lexeme: lexeme, Literal: false, Col: col}
	}
	if f, err := strconv.ParseFloat(lexeme, 64); err == nil {
		return Token{Type: NUMBER, Lexeme: lexeme, Literal: f, Col: col}
	}
	return Token{Type: SYMBOL, Lexeme: lexeme, Col: col}
}
