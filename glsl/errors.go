// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSignature is wrapped by every MalformedSignatureError.
var ErrMalformedSignature = errors.New("malformed function signature")

// MalformedSignatureError is returned when no function definition can be
// parsed. It keeps the full input so the caller can show what failed.
type MalformedSignatureError struct {
	// Source is the complete text that was parsed.
	Source string
	// Line and Column locate the problem; zero when no header was found.
	Line   int
	Column int
	Reason string
}

// Error implements the error interface.
func (e *MalformedSignatureError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedSignature, e.Reason)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, ErrMalformedSignature, e.Reason)
}

// Unwrap returns ErrMalformedSignature.
func (e *MalformedSignatureError) Unwrap() error {
	return ErrMalformedSignature
}

// FormatWithContext returns the error message with source context.
// When the error has a position the offending line is shown with a caret,
// otherwise the full source is included.
func (e *MalformedSignatureError) FormatWithContext() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s: %s\n", ErrMalformedSignature, e.Reason)

	lines := strings.Split(e.Source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		sb.WriteString("   |\n")
		for i, line := range lines {
			fmt.Fprintf(&sb, "%3d| %s\n", i+1, line)
		}
		return sb.String()
	}

	line := lines[e.Line-1]
	col := e.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	fmt.Fprintf(&sb, "  --> line %d:%d\n", e.Line, col)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", e.Line, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

func newMalformedSignatureError(source string, cause *ParseError) *MalformedSignatureError {
	if cause == nil {
		return &MalformedSignatureError{
			Source: source,
			Reason: "no function definition found",
		}
	}
	return &MalformedSignatureError{
		Source: source,
		Line:   cause.Token.Line,
		Column: cause.Token.Column,
		Reason: cause.Message,
	}
}
