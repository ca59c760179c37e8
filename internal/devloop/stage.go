package devloop

import (
	"errors"
	"fmt"
)

// Stage identifies one step of the pipeline.
type Stage int

const (
	StageFormat Stage = iota
	StageBuild
	StageGate
	StageLaunch
)

// String returns the stage name used in logs and error messages.
func (s Stage) String() string {
	switch s {
	case StageFormat:
		return "format"
	case StageBuild:
		return "build"
	case StageGate:
		return "gate"
	case StageLaunch:
		return "launch"
	}
	return "unknown"
}

// State is where a run currently stands. A run walks format, build,
// wait_for_user and launched in order; done is reached only when the
// launched artifact exits zero, failed from any stage's failure.
type State int

const (
	StateFormat State = iota
	StateBuild
	StateWaitForUser
	StateLaunched
	StateDone
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateFormat:
		return "format"
	case StateBuild:
		return "build"
	case StateWaitForUser:
		return "wait_for_user"
	case StateLaunched:
		return "launched"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// StageError reports the stage that stopped the run and the exit code
// the process should adopt. Err carries the underlying cause when the
// stage failed for a reason other than its command exiting non-zero.
type StageError struct {
	Stage Stage
	Code  int
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s stage failed with exit code %d", e.Stage, e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *StageError) Unwrap() error {
	return e.Err
}

// ExitCode maps a pipeline error to a process exit status: nil is 0, a
// StageError carries its stage's code, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Code
	}
	return 1
}
