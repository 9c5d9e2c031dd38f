// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// ParseFunctionSignature returns the signature of the first function
// definition in code: a header that starts a line and is followed by "{".
// Later definitions are ignored.
//
// If no definition is found, or the first one has a parameter whose type and
// name are not separated by a single space, the error is a
// *MalformedSignatureError holding code.
func (g Grammar) ParseFunctionSignature(code string) (Signature, error) {
	tokens := NewLexer(code).Tokenize()

	for i, tok := range tokens {
		if tok.Kind != TokenType || !tok.LineStart {
			continue
		}

		p := NewParser(tokens, i)
		sig, err := p.Header(g.Definition)
		if err != nil {
			continue
		}
		if layoutErr := p.LayoutError(); layoutErr != nil {
			return Signature{}, newMalformedSignatureError(code, layoutErr)
		}
		return sig, nil
	}

	return Signature{}, newMalformedSignatureError(code, nil)
}
