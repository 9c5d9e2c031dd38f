// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl extracts function signatures from GLSL shader chunks.
//
// Shader composition stitches independently written chunks together and
// needs machine-readable signatures to connect them. This package recognizes
// a deliberately small subset of GLSL: function headers whose return and
// parameter types come from a closed set (void, int, float, vec2-4, mat2-4).
// Expressions, qualifiers, arrays, structs and the preprocessor are not
// understood.
//
// # Components
//
//   - Lexer: tokenizes source into types, identifiers and punctuation,
//     recording the whitespace before each token
//   - Parser: recursive descent over one function header
//   - Grammar: the header rules for definitions and prototypes
//
// # Usage
//
// The first definition in a chunk:
//
//	sig, err := glsl.ParseFunctionSignature(`
//	vec4 blend(vec4 a, vec4 b) {
//	    return a * b;
//	}`)
//	if err != nil {
//	    var malformed *glsl.MalformedSignatureError
//	    if errors.As(err, &malformed) {
//	        fmt.Fprint(os.Stderr, malformed.FormatWithContext())
//	    }
//	}
//	// sig.String() == "vec4 blend(vec4 a, vec4 b)"
//
// Every prototype, one per line:
//
//	protos := glsl.FindPrototypes("vec4 blend(vec4, vec4);\nfloat noise(vec2 p);")
//
// All functions are safe for concurrent use.
package glsl
