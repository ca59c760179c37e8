package devloop

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Command describes one child process invocation.
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Argv returns the full command line, for logs.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// CommandRunner is the process-spawning seam between the pipeline and
// the operating system. ExecRunner is the real implementation;
// MockRunner stands in for it in tests.
type CommandRunner interface {
	// Run executes the command and blocks until it exits. A non-zero
	// exit status is a result, not an error: Run returns (code, nil).
	// The error is set when the command could not run at all, with the
	// code carrying the conventional shell status (127 for a missing
	// or unexecutable command).
	Run(ctx context.Context, cmd Command) (int, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, cmd Command) (int, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	err := c.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return 127, err
	}
	return 1, err
}

// MockRunner is a test double for CommandRunner. It records every
// command it is asked to run.
type MockRunner struct {
	// RunFunc handles each invocation when set. If nil, Run reports
	// exit code 0.
	RunFunc func(ctx context.Context, cmd Command) (int, error)

	// Commands holds the commands passed to Run, in order.
	Commands []Command
}

// Run implements CommandRunner.
func (m *MockRunner) Run(ctx context.Context, cmd Command) (int, error) {
	m.Commands = append(m.Commands, cmd)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd)
	}
	return 0, nil
}
