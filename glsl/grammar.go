// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// DeclRule selects how a single parameter declaration is parsed.
type DeclRule uint8

const (
	// NamedDeclaration is "type name"; the name is required.
	NamedDeclaration DeclRule = iota
	// AnonymousDeclaration is "type" optionally followed by a name.
	AnonymousDeclaration
)

// String returns the rule name.
func (r DeclRule) String() string {
	switch r {
	case NamedDeclaration:
		return "named"
	case AnonymousDeclaration:
		return "anonymous"
	default:
		return "unknown"
	}
}

// HeaderRule describes a function header:
//
//	type name(void | decl, decl, ...) trailer
//
// Whitespace is required between the return type and the name and is
// forbidden between the name and "(", after "(", before ")" and before each
// ",". Any whitespace may follow a comma or precede the trailer.
type HeaderRule struct {
	// Decl is the rule used for every parameter declaration.
	Decl DeclRule
	// Trailer is the token that must follow the closing parenthesis.
	Trailer TokenKind
	// WholeLine requires the trailer to be the last token of the input.
	WholeLine bool
}

// Grammar holds the header rules used by ParseFunctionSignature and
// FindPrototypes. Grammar is a plain value: copies share nothing mutable and
// it is safe for concurrent use.
type Grammar struct {
	// Definition matches "vec4 name(float x, float y) {".
	Definition HeaderRule
	// Prototype matches a whole line such as "vec4 name(float, float);".
	Prototype HeaderRule
}

var defaultGrammar = Grammar{
	Definition: HeaderRule{
		Decl:    NamedDeclaration,
		Trailer: TokenLeftBrace,
	},
	Prototype: HeaderRule{
		Decl:      AnonymousDeclaration,
		Trailer:   TokenSemicolon,
		WholeLine: true,
	},
}

// DefaultGrammar returns the grammar used by the package-level functions.
func DefaultGrammar() Grammar {
	return defaultGrammar
}

// ParseFunctionSignature parses the first function definition in code using
// the default grammar.
func ParseFunctionSignature(code string) (Signature, error) {
	return defaultGrammar.ParseFunctionSignature(code)
}

// FindPrototypes returns every function prototype declared in code using the
// default grammar.
func FindPrototypes(code string) []Signature {
	return defaultGrammar.FindPrototypes(code)
}
