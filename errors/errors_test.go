package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeConfigInvalid, "bad config")
	if err.Code != ErrCodeConfigInvalid {
		t.Errorf("expected code %s, got %s", ErrCodeConfigInvalid, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if !strings.Contains(wrapped.Error(), "caused by: underlying error") {
		t.Errorf("Error() should mention the cause, got %q", wrapped.Error())
	}

	// Test Is function
	if !Is(wrapped, ErrCodeCommandFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeConfigNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	if Is(nil, "") {
		t.Error("Is should return false for nil error")
	}

	// Test WithDetail
	detailed := err.WithDetail("path", "orcdk.yml").WithDetail("line", 3)
	if detailed.Details["path"] != "orcdk.yml" {
		t.Error("WithDetail should add details")
	}
}

func TestGetCodeThroughWrapping(t *testing.T) {
	inner := EnvironmentNotFound("staging")
	outer := fmt.Errorf("loading: %w", inner)

	if got := GetCode(outer); got != ErrCodeEnvironmentNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeEnvironmentNotFound, got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty code for plain error, got %s", got)
	}

	e, ok := As(outer)
	if !ok || e.Details["environment"] != "staging" {
		t.Errorf("As should find the wrapped error, got %v", e)
	}
}

func TestErrorConstructors(t *testing.T) {
	err := ConfigNotFound("/tmp/orcdk.yml")
	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeConfigNotFound, err.Code)
	}
	if err.Details["path"] != "/tmp/orcdk.yml" {
		t.Error("ConfigNotFound should include path detail")
	}

	err = CommandNotFound("cdklocal", fmt.Errorf("not in PATH"))
	if err.Code != ErrCodeCommandNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeCommandNotFound, err.Code)
	}
	if err.Details["command"] != "cdklocal" {
		t.Error("CommandNotFound should include command detail")
	}

	err = ConfigValidation("plugins[0].name", "must not be empty")
	if err.Details["field"] != "plugins[0].name" {
		t.Error("ConfigValidation should include field detail")
	}

	if !strings.Contains(err.ToJSON(), `"code": "CONFIG_VALIDATION"`) {
		t.Errorf("ToJSON should include the code, got %s", err.ToJSON())
	}
}
