// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"encoding/json"
	"testing"
)

func TestTypeNameRoundTrip(t *testing.T) {
	for typ := TypeVoid; typ < typeNameCount; typ++ {
		parsed, ok := ParseTypeName(typ.String())
		if !ok {
			t.Errorf("ParseTypeName(%q) failed", typ.String())
			continue
		}
		if parsed != typ {
			t.Errorf("ParseTypeName(%q) = %v, want %v", typ.String(), parsed, typ)
		}
	}
}

func TestParseTypeNameRejects(t *testing.T) {
	for _, s := range []string{"", "bool", "ivec2", "vec5", "mat2x2", "Vec4", "float ", "sampler2D"} {
		if typ, ok := ParseTypeName(s); ok {
			t.Errorf("ParseTypeName(%q) = %v, want rejection", s, typ)
		}
	}
}

func TestTypeNameInvalid(t *testing.T) {
	bad := TypeName(200)
	if bad.Valid() {
		t.Error("TypeName(200) reported valid")
	}
	if got := bad.String(); got != "TypeName(200)" {
		t.Errorf("String() = %q", got)
	}
	if _, err := bad.MarshalText(); err == nil {
		t.Error("MarshalText succeeded for invalid type")
	}
}

func TestSignatureJSON(t *testing.T) {
	sig := Signature{
		Name:       "light",
		Params:     []Parameter{{TypeVec3, "n"}, {TypeFloat, ""}},
		ReturnType: TypeVec4,
	}

	data, err := json.Marshal(sig)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"name":"light","params":[{"type":"vec3","name":"n"},{"type":"float"}],"return_type":"vec4"}`
	if string(data) != expected {
		t.Errorf("Marshal = %s, want %s", data, expected)
	}

	var bad Signature
	if err := json.Unmarshal([]byte(`{"name":"x","params":[],"return_type":"bool"}`), &bad); err == nil {
		t.Error("Unmarshal accepted unknown return type")
	}
}

func TestSignatureString(t *testing.T) {
	tests := []struct {
		sig       Signature
		header    string
		prototype string
	}{
		{
			sig:       Signature{Name: "f", ReturnType: TypeVoid},
			header:    "void f(void)",
			prototype: "void f(void);",
		},
		{
			sig:       Signature{Name: "g", Params: []Parameter{{TypeMat3, "m"}, {TypeVec3, ""}}, ReturnType: TypeVec3},
			header:    "vec3 g(mat3 m, vec3)",
			prototype: "vec3 g(mat3 m, vec3);",
		},
	}

	for _, tt := range tests {
		if got := tt.sig.String(); got != tt.header {
			t.Errorf("String() = %q, want %q", got, tt.header)
		}
		if got := tt.sig.Prototype(); got != tt.prototype {
			t.Errorf("Prototype() = %q, want %q", got, tt.prototype)
		}
	}
}

func TestSignatureStringReparses(t *testing.T) {
	sig, err := ParseFunctionSignature("vec4 tint(vec4 color, float amount) {}")
	if err != nil {
		t.Fatalf("ParseFunctionSignature failed: %v", err)
	}

	protos := FindPrototypes(sig.Prototype())
	if len(protos) != 1 {
		t.Fatalf("FindPrototypes(%q) returned %d signatures", sig.Prototype(), len(protos))
	}
	if !protos[0].Matches(sig) {
		t.Errorf("reparsed prototype %s does not match %s", protos[0], sig)
	}
}

func TestSignatureMatches(t *testing.T) {
	def := Signature{Name: "f", Params: []Parameter{{TypeFloat, "x"}, {TypeVec2, "uv"}}, ReturnType: TypeVec4}

	tests := []struct {
		name  string
		proto Signature
		want  bool
	}{
		{"anonymous", Signature{Name: "f", Params: []Parameter{{TypeFloat, ""}, {TypeVec2, ""}}, ReturnType: TypeVec4}, true},
		{"other names", Signature{Name: "f", Params: []Parameter{{TypeFloat, "a"}, {TypeVec2, "b"}}, ReturnType: TypeVec4}, true},
		{"different name", Signature{Name: "g", Params: []Parameter{{TypeFloat, ""}, {TypeVec2, ""}}, ReturnType: TypeVec4}, false},
		{"different return", Signature{Name: "f", Params: []Parameter{{TypeFloat, ""}, {TypeVec2, ""}}, ReturnType: TypeVec3}, false},
		{"different param", Signature{Name: "f", Params: []Parameter{{TypeFloat, ""}, {TypeVec3, ""}}, ReturnType: TypeVec4}, false},
		{"fewer params", Signature{Name: "f", Params: []Parameter{{TypeFloat, ""}}, ReturnType: TypeVec4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.proto.Matches(def); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
