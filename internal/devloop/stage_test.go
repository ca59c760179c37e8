package devloop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stage Stage
		want  string
	}{
		{StageFormat, "format"},
		{StageBuild, "build"},
		{StageGate, "gate"},
		{StageLaunch, "launch"},
		{Stage(99), "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.stage.String())
		})
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		want  string
	}{
		{StateFormat, "format"},
		{StateBuild, "build"},
		{StateWaitForUser, "wait_for_user"},
		{StateLaunched, "launched"},
		{StateDone, "done"},
		{StateFailed, "failed"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestStageErrorError(t *testing.T) {
	t.Parallel()

	t.Run("exit code only", func(t *testing.T) {
		t.Parallel()
		err := &StageError{Stage: StageBuild, Code: 2}
		assert.Equal(t, "build stage failed with exit code 2", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := &StageError{
			Stage: StageGate,
			Code:  1,
			Err:   errors.New("stdin closed before a line arrived"),
		}
		assert.Equal(t, "gate stage failed: stdin closed before a line arrived", err.Error())
	})
}

func TestStageErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := &StageError{Stage: StageLaunch, Code: 127, Err: fmt.Errorf("open: %w", cause)}

	assert.ErrorIs(t, err, cause)

	bare := &StageError{Stage: StageFormat, Code: 3}
	assert.Nil(t, bare.Unwrap())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "stage error", err: &StageError{Stage: StageLaunch, Code: 7}, want: 7},
		{
			name: "wrapped stage error",
			err:  fmt.Errorf("run failed: %w", &StageError{Stage: StageBuild, Code: 2}),
			want: 2,
		},
		{name: "plain error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
