// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "fmt"

// TypeName is one of the closed set of GLSL types a signature may use.
type TypeName uint8

const (
	TypeVoid TypeName = iota
	TypeInt
	TypeFloat
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat2
	TypeMat3
	TypeMat4

	typeNameCount
)

var typeNames = [typeNameCount]string{
	TypeVoid:  "void",
	TypeInt:   "int",
	TypeFloat: "float",
	TypeVec2:  "vec2",
	TypeVec3:  "vec3",
	TypeVec4:  "vec4",
	TypeMat2:  "mat2",
	TypeMat3:  "mat3",
	TypeMat4:  "mat4",
}

// ParseTypeName returns the TypeName spelled by s.
// Only the exact GLSL spelling is accepted.
func ParseTypeName(s string) (TypeName, bool) {
	switch s {
	case "void":
		return TypeVoid, true
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "vec2":
		return TypeVec2, true
	case "vec3":
		return TypeVec3, true
	case "vec4":
		return TypeVec4, true
	case "mat2":
		return TypeMat2, true
	case "mat3":
		return TypeMat3, true
	case "mat4":
		return TypeMat4, true
	default:
		return 0, false
	}
}

// String returns the GLSL spelling of the type.
func (t TypeName) String() string {
	if t < typeNameCount {
		return typeNames[t]
	}
	return fmt.Sprintf("TypeName(%d)", uint8(t))
}

// Valid reports whether t is a member of the closed type set.
func (t TypeName) Valid() bool {
	return t < typeNameCount
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeName) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid type name %d", uint8(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeName) UnmarshalText(text []byte) error {
	name, ok := ParseTypeName(string(text))
	if !ok {
		return fmt.Errorf("unknown type name %q", text)
	}
	*t = name
	return nil
}
