package errorwrapper

import (
	"errors"
	"testing"
)

func TestWrapError(t *testing.T) {
	base := NewError("boom")

	wrapped := WrapError(base, "loading config")
	if wrapped.Error() != "loading config: boom" {
		t.Errorf("unexpected message: %s", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("expected wrapped error to match its cause")
	}

	nilWrapped := WrapError(nil, "loading config")
	if nilWrapped.Error() != "loading config: <nil>" {
		t.Errorf("unexpected message for nil cause: %s", nilWrapped.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("base_url", "", "site base URL is required")

	expected := "validation error: field 'base_url' with value '': site base URL is required"
	if err.Error() != expected {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestParseError(t *testing.T) {
	cause := NewError("unexpected token")
	err := NewParseError("config.yaml", "invalid YAML config", cause)

	if err.Error() != "parse error for input 'config.yaml': invalid YAML config" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected parse error to unwrap to its cause")
	}
}
