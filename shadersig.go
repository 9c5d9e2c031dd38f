// Package shadersig extracts function signatures from GLSL shader chunks.
//
// Shader composition systems stitch independently written chunks of GLSL
// together. To connect one chunk's outputs to another's inputs they need
// machine-readable signatures: the function a chunk defines, and the
// functions it forward-declares and expects another chunk to provide.
//
// Example usage:
//
//	chunk := `
//	vec4 map_local_to_nd(vec4);
//
//	vec4 transform(vec4 pos) {
//	    return map_local_to_nd(pos);
//	}
//	`
//	def, err := shadersig.ParseFunctionSignature(chunk)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// def.String() == "vec4 transform(vec4 pos)"
//
//	deps := shadersig.FindPrototypes(chunk)
//	// deps[0].String() == "vec4 map_local_to_nd(vec4)"
//
// The parsing itself lives in the glsl package; this package re-exports the
// types and entry points most callers need.
package shadersig

import (
	"github.com/gogpu/shadersig/glsl"
)

// Signature is a function name, its ordered parameters and return type.
type Signature = glsl.Signature

// Parameter is a single function parameter. Name is empty for anonymous
// prototype parameters.
type Parameter = glsl.Parameter

// TypeName is the closed set of recognized GLSL types.
type TypeName = glsl.TypeName

// MalformedSignatureError is returned by ParseFunctionSignature when the
// source has no parsable function definition. Source holds the full input.
type MalformedSignatureError = glsl.MalformedSignatureError

// ErrMalformedSignature matches every MalformedSignatureError with errors.Is.
var ErrMalformedSignature = glsl.ErrMalformedSignature

// ParseFunctionSignature returns the name, parameters and return type of the
// first function definition in code.
//
// A definition is a header at the start of a line followed by "{". Only the
// first one is considered; later definitions in the same text are ignored.
func ParseFunctionSignature(code string) (Signature, error) {
	return glsl.ParseFunctionSignature(code)
}

// FindPrototypes returns a signature for every line of code that is a
// function prototype such as "vec4 f(float, float);", in line order.
//
// Lines that are not prototypes are skipped, so this never fails.
func FindPrototypes(code string) []Signature {
	return glsl.FindPrototypes(code)
}
