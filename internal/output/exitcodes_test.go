package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
		wantCause   error
	}{
		{
			name:        "user error",
			err:         NewUserError("source path is required"),
			wantCode:    ExitUserError,
			wantMessage: "source path is required",
		},
		{
			name:        "user error with cause",
			err:         NewUserErrorWithCause("invalid options", cause),
			wantCode:    ExitUserError,
			wantMessage: "invalid options",
			wantCause:   cause,
		},
		{
			name:        "system error",
			err:         NewSystemError("disk full"),
			wantCode:    ExitSystemError,
			wantMessage: "disk full",
		},
		{
			name:        "system error with cause",
			err:         NewSystemErrorWithCause("copying attachment failed", cause),
			wantCode:    ExitSystemError,
			wantMessage: "copying attachment failed",
			wantCause:   cause,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
			if tt.wantCause != nil && !errors.Is(tt.err, tt.wantCause) {
				t.Errorf("errors.Is(err, cause) = false, want true")
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user error", NewUserError("bad flag"), ExitUserError},
		{"system error", NewSystemError("io"), ExitSystemError},
		{"wrapped user error", fmt.Errorf("export: %w", NewUserError("bad")), ExitUserError},
		{"plain error", errors.New("unexpected"), ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
