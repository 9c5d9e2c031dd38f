// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "fmt"

// Parser parses a single function header from a token stream.
type Parser struct {
	tokens  []Token
	current int

	// layoutErr records the first declaration whose type and name are not
	// separated by exactly one space. The header still matches.
	layoutErr *ParseError
}

// ParseError represents a parsing error.
type ParseError struct {
	Message string
	Token   Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// NewParser creates a parser positioned at tokens[start].
// tokens must be terminated by TokenEOF.
func NewParser(tokens []Token, start int) *Parser {
	return &Parser{
		tokens:  tokens,
		current: start,
	}
}

// Header parses a function header according to rule.
func (p *Parser) Header(rule HeaderRule) (Signature, *ParseError) {
	if !p.check(TokenType) {
		return Signature{}, p.errorf("expected return type, got %s", p.peek().Kind)
	}
	returnType := p.advance()

	if !p.check(TokenIdent) || p.peek().adjacent() {
		return Signature{}, p.errorf("expected function name, got %s", p.peek().Kind)
	}
	name := p.advance()

	if err := p.expectAdjacent(TokenLeftParen); err != nil {
		return Signature{}, err
	}

	params, err := p.argList(rule.Decl)
	if err != nil {
		return Signature{}, err
	}

	if err := p.expectAdjacent(TokenRightParen); err != nil {
		return Signature{}, err
	}

	if err := p.expectErr(rule.Trailer); err != nil {
		return Signature{}, err
	}

	if rule.WholeLine && !p.isAtEnd() {
		return Signature{}, p.errorf("unexpected %s after %s", p.peek().Kind, rule.Trailer)
	}

	return Signature{
		Name:       name.Lexeme,
		Params:     params,
		ReturnType: returnType.Type,
	}, nil
}

// LayoutError returns the first parameter layout problem seen by Header.
func (p *Parser) LayoutError() *ParseError {
	return p.layoutErr
}

// argList parses the text between the parentheses. Both "void" and an empty
// list yield no parameters.
func (p *Parser) argList(rule DeclRule) ([]Parameter, *ParseError) {
	if p.checkVoidArgs() {
		p.advance()
		return nil, nil
	}
	if p.check(TokenRightParen) && p.peek().adjacent() {
		return nil, nil
	}

	params := make([]Parameter, 0, 4) // most functions have few params
	for {
		if len(params) == 0 && !p.peek().adjacent() {
			return nil, p.errorf("unexpected whitespace after (")
		}
		param, err := p.declaration(rule)
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if !p.check(TokenComma) || !p.peek().adjacent() {
			break
		}
		p.advance()
	}

	return params, nil
}

func (p *Parser) checkVoidArgs() bool {
	tok := p.peek()
	if tok.Kind != TokenType || tok.Type != TypeVoid || !tok.adjacent() {
		return false
	}
	next := p.peekNext()
	return next.Kind == TokenRightParen && next.adjacent()
}

// declaration parses "type name", or "type" alone for anonymous rules.
func (p *Parser) declaration(rule DeclRule) (Parameter, *ParseError) {
	if !p.check(TokenType) {
		return Parameter{}, p.errorf("expected parameter type, got %s", p.peek().Kind)
	}
	typ := p.advance()
	param := Parameter{Type: typ.Type}

	if !p.check(TokenIdent) {
		if rule == AnonymousDeclaration {
			return param, nil
		}
		return Parameter{}, p.errorf("expected parameter name after %s", typ.Lexeme)
	}
	name := p.advance()

	if name.Space != " " && p.layoutErr == nil {
		p.layoutErr = &ParseError{
			Message: fmt.Sprintf("parameter %q: type and name must be separated by a single space",
				typ.Lexeme+name.Space+name.Lexeme),
			Token: name,
		}
	}

	param.Name = name.Lexeme
	return param, nil
}

func (p *Parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Token:   p.peek(),
	}
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.isAtEnd() {
		return p.peek()
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) expectErr(kind TokenKind) *ParseError {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return p.errorf("expected %s, got %s", kind, p.peek().Kind)
}

// expectAdjacent is expectErr for tokens that must not be preceded by
// whitespace.
func (p *Parser) expectAdjacent(kind TokenKind) *ParseError {
	if p.check(kind) && !p.peek().adjacent() {
		return p.errorf("unexpected whitespace before %s", kind)
	}
	return p.expectErr(kind)
}
