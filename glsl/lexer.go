// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "unicode/utf8"

// Lexer tokenizes GLSL-like source text.
//
// The lexer never fails: characters outside the recognized subset become
// TokenOther so that arbitrary shader code can be scanned.
type Lexer struct {
	source      string
	pos         int
	line        int
	column      int
	start       int
	startColumn int
	spaceStart  int
	lineStart   bool
	tokens      []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	// Estimate ~1 token per 4 characters of source.
	estTokens := len(source) / 4
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source:    source,
		line:      1,
		column:    1,
		lineStart: true,
		tokens:    make([]Token, 0, estTokens),
	}
}

// Tokenize returns all tokens from the source, terminated by TokenEOF.
// The EOF token's Space holds any trailing whitespace.
func (l *Lexer) Tokenize() []Token {
	for {
		l.skipWhitespace()
		l.start = l.pos
		l.startColumn = l.column
		if l.isAtEnd() {
			break
		}
		l.scanToken()
	}

	l.addToken(TokenEOF)
	return l.tokens
}

func (l *Lexer) scanToken() {
	r := l.advance()

	switch r {
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case '{':
		l.addToken(TokenLeftBrace)
	case '}':
		l.addToken(TokenRightBrace)
	case ',':
		l.addToken(TokenComma)
	case ';':
		l.addToken(TokenSemicolon)
	default:
		switch {
		case isAlpha(r) || r == '_':
			l.identifier()
		case isDigit(r):
			l.number()
		default:
			l.addToken(TokenOther)
		}
	}
}

func (l *Lexer) skipWhitespace() {
	l.spaceStart = l.pos
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\f', '\v':
			l.advance()
		case '\n':
			l.advance()
			l.line++
			l.column = 1
			l.lineStart = true
		default:
			return
		}
	}
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	if typ, ok := ParseTypeName(l.source[l.start:l.pos]); ok {
		l.addTypeToken(typ)
		return
	}
	l.addToken(TokenIdent)
}

// number consumes a numeric literal loosely; its value is never needed.
func (l *Lexer) number() {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' || l.peek() == '.' {
		l.advance()
	}
	l.addToken(TokenNumber)
}

func (l *Lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, l.token(kind))
	l.lineStart = false
}

func (l *Lexer) addTypeToken(typ TypeName) {
	tok := l.token(TokenType)
	tok.Type = typ
	l.tokens = append(l.tokens, tok)
	l.lineStart = false
}

func (l *Lexer) token(kind TokenKind) Token {
	return Token{
		Kind:      kind,
		Lexeme:    l.source[l.start:l.pos],
		Space:     l.source[l.spaceStart:l.start],
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.startColumn,
		Offset:    l.start,
	}
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isAlpha accepts ASCII letters only; identifiers are ASCII.
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
