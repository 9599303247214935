package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseArray,
				Kind:   KindOutOfBounds,
				Detail: "index 7 out of bounds (length 3)",
			},
			contains: []string{"[array]", "out_of_bounds", "index 7"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRender,
				Kind:  KindMalformedPlaceholder,
			},
			contains: []string{"[render]", "malformed_placeholder"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseFile,
				Kind:   KindIOFailure,
				Detail: "open",
				Cause:  errors.New("permission denied"),
			},
			contains: []string{"[file]", "io_failure", "open", "caused by", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := IO(PhaseInput, "read line", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := OutOfBounds(PhaseArray, 3, 2)

	if !errors.Is(err, &Error{Phase: PhaseArray, Kind: KindOutOfBounds}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseRender, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseArray, Kind: KindAllocation}) {
		t.Error("Is should not match different kind")
	}
}

func TestError_Code(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{AllocationFailed(PhaseArray, 8), CodeNoMem},
		{InvalidArgument(PhaseArray, "bad index"), CodeInval},
		{NilHandle(PhaseArray, "array"), CodeInval},
		{OutOfBounds(PhaseRender, 4, 2), CodeInval},
		{MalformedPlaceholder(12), CodeInval},
		{IO(PhaseFile, "read", errors.New("eof")), CodeIO},
	}
	for _, tt := range tests {
		if got := tt.err.Code(); got != tt.want {
			t.Errorf("%v: Code() = %d, want %d", tt.err.Kind, got, tt.want)
		}
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != 0 {
		t.Errorf("CodeOf(nil) = %d, want 0", got)
	}
	if got := CodeOf(errors.New("plain")); got != CodeIO {
		t.Errorf("CodeOf(plain error) = %d, want %d", got, CodeIO)
	}
	if got := CodeOf(InvalidArgument(PhaseValue, "x")); got != CodeInval {
		t.Errorf("CodeOf(*Error) = %d, want %d", got, CodeInval)
	}
}
