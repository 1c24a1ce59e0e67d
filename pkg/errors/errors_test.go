// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and classification

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/here/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "program not found",
			wantStr: "[NOT_FOUND] program not found",
		},
		{
			name:    "invalid_search_term",
			code:    errors.ErrInvalidSearchTerm,
			message: "search term required",
			wantStr: "[INVALID_SEARCH_TERM] search term required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNotFound, "no match for %q", "python")
	if err.Message != `no match for "python"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrWorkingDir, "cannot read working directory")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[WORKING_DIR] cannot read working directory: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found").
		WithDetail("term", "python").
		WithDetail("backend", "command")

	if err.Details["term"] != "python" {
		t.Errorf("WithDetail() term = %v", err.Details["term"])
	}
	if err.Details["backend"] != "command" {
		t.Errorf("WithDetail() backend = %v", err.Details["backend"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrAborted, "error 1")
	err2 := errors.New(errors.ErrAborted, "error 2")
	err3 := errors.New(errors.ErrNotFound, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"here_error", errors.New(errors.ErrLocateFailed, "x"), errors.ErrLocateFailed},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		abort   bool
		warning bool
	}{
		{"aborted", errors.New(errors.ErrAborted, "skipped"), true, false},
		{"prompt_unavailable", errors.New(errors.ErrPromptUnavailable, "no tty"), true, false},
		{"not_found", errors.New(errors.ErrNotFound, "none"), false, false},
		{"clipboard", errors.New(errors.ErrClipboard, "no clipboard"), false, true},
		{"keystroke", errors.New(errors.ErrKeystroke, "no tty"), false, true},
		{"plain", stderrors.New("plain"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsAbort(tt.err); got != tt.abort {
				t.Errorf("IsAbort() = %v, want %v", got, tt.abort)
			}
			if got := errors.IsWarning(tt.err); got != tt.warning {
				t.Errorf("IsWarning() = %v, want %v", got, tt.warning)
			}
			if got := errors.IsFatal(tt.err); got != !tt.warning {
				t.Errorf("IsFatal() = %v, want %v", got, !tt.warning)
			}
		})
	}
}

func TestIsFatal_Nil(t *testing.T) {
	if errors.IsFatal(nil) {
		t.Error("IsFatal(nil) should be false")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("exec: \"which\": executable file not found in $PATH")
	locateErr := errors.Wrap(rootCause, errors.ErrLocateFailed, "cannot start locate command")

	if !errors.IsErrorCode(locateErr, errors.ErrLocateFailed) {
		t.Error("Top level should have ErrLocateFailed code")
	}
	if !stderrors.Is(locateErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
