package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindValidation, "validation error"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindConfig, "configuration error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "api.Get", Context: "GET /users", Err: errors.New("connection refused")},
			expected: "api.Get: GET /users: connection refused",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "api.Get", Err: errors.New("connection refused")},
			expected: "api.Get: connection refused",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("connection refused")},
			expected: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		wantOp   Op
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "with all args",
			args:     []any{Op("api.Post"), KindNetwork, "POST /comments", errors.New("eof")},
			wantOp:   "api.Post",
			wantKind: KindNetwork,
			wantMsg:  "api.Post: POST /comments: eof",
		},
		{
			name:     "context becomes the error",
			args:     []any{Op("composer.Validate"), KindValidation, "name is required"},
			wantOp:   "composer.Validate",
			wantKind: KindValidation,
			wantMsg:  "composer.Validate: name is required",
		},
		{
			name:     "with just error",
			args:     []any{errors.New("plain")},
			wantKind: KindUnknown,
			wantMsg:  "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", E(Op("x"), KindNetwork, "down"), KindNetwork, true},
		{"non-matching kind", E(Op("x"), KindNetwork, "down"), KindValidation, false},
		{"foreign error", errors.New("regular error"), KindNetwork, false},
		{"nil error", nil, KindNetwork, false},
		{"wrapped error", fmt.Errorf("wrapped: %w", E(Op("x"), KindConfig, "bad")), KindConfig, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(E(Op("x"), KindIO, "disk")); got != KindIO {
		t.Errorf("GetKind() = %v, want %v", got, KindIO)
	}
	if got := GetKind(errors.New("regular")); got != KindUnknown {
		t.Errorf("GetKind(regular) = %v, want %v", got, KindUnknown)
	}
	if got := GetKind(nil); got != KindUnknown {
		t.Errorf("GetKind(nil) = %v, want %v", got, KindUnknown)
	}
}

func TestNetworkFailed(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NetworkFailed(Op("api.Get"), "GET", "/users", underlying)

	if !IsNetwork(err) {
		t.Error("NetworkFailed should return a network error")
	}
	if !errors.Is(err, underlying) {
		t.Error("NetworkFailed should wrap the underlying error")
	}
	if !strings.Contains(err.Error(), "GET /users") {
		t.Errorf("error should name the request, got %q", err.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	err := HTTPStatus(Op("api.Delete"), "DELETE", "/comments/3", 503)

	if !IsNetwork(err) {
		t.Error("HTTPStatus should return a network error")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error should carry the status code, got %q", err.Error())
	}
}

func TestFieldRequired(t *testing.T) {
	err := FieldRequired("email")

	if !IsValidation(err) {
		t.Error("FieldRequired should return a validation error")
	}
	if IsNetwork(err) {
		t.Error("FieldRequired should not be a network error")
	}
	if !strings.Contains(err.Error(), "email is required") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestConfigErrors(t *testing.T) {
	if err := ConfigLoadFailed("/tmp/config.yaml", errors.New("boom")); !Is(err, KindConfig) {
		t.Error("ConfigLoadFailed should return KindConfig error")
	}
	if err := ConfigInvalid("api_url is required"); !Is(err, KindConfig) {
		t.Error("ConfigInvalid should return KindConfig error")
	}
}

func TestErrorChaining(t *testing.T) {
	innerErr := errors.New("original error")
	middleErr := E(Op("middle.Op"), KindIO, innerErr)
	outerErr := E(Op("outer.Op"), KindConfig, middleErr)

	if !errors.Is(outerErr, innerErr) {
		t.Error("Should be able to find inner error through chain")
	}
	if GetKind(outerErr) != KindConfig {
		t.Error("GetKind should return outer error's kind")
	}
}
