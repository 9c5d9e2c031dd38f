// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "strings"

// Parameter is a single declared function parameter.
type Parameter struct {
	Type TypeName `json:"type" yaml:"type"`
	// Name is empty for anonymous prototype parameters.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Anonymous reports whether the parameter was declared without a name.
func (p Parameter) Anonymous() bool {
	return p.Name == ""
}

// String returns the declaration as written in GLSL.
func (p Parameter) String() string {
	if p.Anonymous() {
		return p.Type.String()
	}
	return p.Type.String() + " " + p.Name
}

// Signature describes a function definition or prototype.
type Signature struct {
	Name       string      `json:"name" yaml:"name"`
	Params     []Parameter `json:"params" yaml:"params"`
	ReturnType TypeName    `json:"return_type" yaml:"return_type"`
}

// String returns the function header, e.g. "vec4 foo(float x, float y)".
func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteString(s.ReturnType.String())
	sb.WriteByte(' ')
	sb.WriteString(s.Name)
	sb.WriteByte('(')
	if len(s.Params) == 0 {
		sb.WriteString("void")
	}
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Prototype returns the forward declaration line for the signature.
func (s Signature) Prototype() string {
	return s.String() + ";"
}

// Matches reports whether a definition with signature o satisfies s.
// Names, return type and parameter types must agree; parameter names are
// ignored.
func (s Signature) Matches(o Signature) bool {
	if s.Name != o.Name || s.ReturnType != o.ReturnType || len(s.Params) != len(o.Params) {
		return false
	}
	for i := range s.Params {
		if s.Params[i].Type != o.Params[i].Type {
			return false
		}
	}
	return true
}
