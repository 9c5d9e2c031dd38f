// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "strings"

// FindPrototypes returns a signature for each line of code that is entirely a
// function prototype, in line order. Parameter names are optional. Lines that
// do not match are skipped; the result is empty, never nil, when none match.
func (g Grammar) FindPrototypes(code string) []Signature {
	prototypes := make([]Signature, 0)

	for _, line := range strings.Split(code, "\n") {
		tokens := NewLexer(line).Tokenize()
		if tokens[0].Kind != TokenType {
			continue
		}

		p := NewParser(tokens, 0)
		sig, err := p.Header(g.Prototype)
		if err != nil || p.LayoutError() != nil {
			continue
		}
		prototypes = append(prototypes, sig)
	}

	return prototypes
}
