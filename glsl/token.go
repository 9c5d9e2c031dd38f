// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota

	// TokenOther is any character outside the recognized subset.
	TokenOther

	TokenIdent
	TokenType
	TokenNumber

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenComma      // ,
	TokenSemicolon  // ;
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenOther:
		return "Other"
	case TokenIdent:
		return "Ident"
	case TokenType:
		return "Type"
	case TokenNumber:
		return "Number"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenComma:
		return ","
	case TokenSemicolon:
		return ";"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string

	// Type is set when Kind is TokenType.
	Type TypeName

	// Space holds the whitespace between the previous token and this one.
	Space string

	// LineStart is true when only whitespace precedes the token on its line.
	LineStart bool

	Line   int
	Column int
	Offset int
}

// adjacent reports whether nothing separates the token from its predecessor.
func (t Token) adjacent() bool {
	return t.Space == ""
}
