// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "parse manifest",
			},
			expected: "failed to parse manifest",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "parse manifest",
				Resource:  "FOOTER",
			},
			expected: "failed to parse manifest: FOOTER",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "render recipe",
				Cause:     errors.New("template: build.sh: bad syntax"),
			},
			expected: "failed to render recipe: template: build.sh: bad syntax",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "resolve program name",
				Resource:  "bedGraphToBigWig",
				Cause:     errors.New("no description"),
			},
			expected: "failed to resolve program name: bedGraphToBigWig: no description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := &ActionableError{
		Operation:   "download manifest",
		Resource:    "http://example.invalid/FOOTER",
		Suggestions: []string{"Check your network connection", "Verify the manifest URL in the config"},
		Cause:       errors.New("connection refused"),
	}

	got := err.Format(false)
	if !strings.Contains(got, "failed to download manifest") {
		t.Errorf("Format() missing operation: %q", got)
	}
	if !strings.Contains(got, "• Check your network connection") {
		t.Errorf("Format() missing suggestion bullet: %q", got)
	}
	if strings.Contains(got, "Error chain:") {
		t.Errorf("non-verbose Format() should not include the error chain: %q", got)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("verbose Format() should include the error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "1. connection refused") {
		t.Errorf("verbose Format() should enumerate the chain: %q", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("locate source directory").
		WithResource("toolA").
		WithSuggestion("Re-download the source tarball").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil for a context with an operation")
	}
	if err.Operation != "locate source directory" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Resource != "toolA" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if len(err.Suggestions) != 1 {
		t.Errorf("Suggestions = %v", err.Suggestions)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation should be nil, got %v", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	got := WrapWithOperation(cause, "fetch archive")
	if got == nil || got.Operation != "fetch archive" || !errors.Is(got, cause) {
		t.Errorf("WrapWithOperation() = %+v", got)
	}
}
