package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestJobDefinitionError(t *testing.T) {
	defErr := NewJobDefinitionError("arm64", "version sequence is empty")

	expectedMsg := "job arm64: version sequence is empty: invalid job definition"
	if defErr.Error() != expectedMsg {
		t.Errorf("JobDefinitionError.Error() = %v, want %v", defErr.Error(), expectedMsg)
	}

	// Test Unwrap
	if unwrapped := defErr.Unwrap(); unwrapped != ErrInvalidJobDefinition {
		t.Errorf("JobDefinitionError.Unwrap() = %v, want %v", unwrapped, ErrInvalidJobDefinition)
	}
}

func TestJobDefinitionError_NoJob(t *testing.T) {
	defErr := NewJobDefinitionError("", "architecture name is empty")

	expectedMsg := "job definition: architecture name is empty: invalid job definition"
	if defErr.Error() != expectedMsg {
		t.Errorf("JobDefinitionError.Error() = %v, want %v", defErr.Error(), expectedMsg)
	}
}

func TestIsInvalidJobDefinition(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "direct sentinel",
			err:  ErrInvalidJobDefinition,
			want: true,
		},
		{
			name: "wrapped in JobDefinitionError",
			err:  NewJobDefinitionError("x86_64", "bad version"),
			want: true,
		},
		{
			name: "double wrapped",
			err:  fmt.Errorf("generating catalog: %w", NewJobDefinitionError("arm64", "bad version")),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("disk full"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidJobDefinition(tt.err); got != tt.want {
				t.Errorf("IsInvalidJobDefinition() = %v, want %v", got, tt.want)
			}
		})
	}
}
