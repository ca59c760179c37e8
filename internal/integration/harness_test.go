//go:build integration

// harness_test.go provides a workspace harness for the devloop
// binary. Each harness gets a scratch directory whose .devloop.yaml
// points every stage at a stub shell script, so tests can dictate
// exit codes and output without touching real tools.
package integration

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thruflo/keymode/internal/testutil"
)

// defaultConfig wires every stage to a stub script in the workspace.
// The build stub deposits editor.sh at the conventional artifact path
// so the launch stage runs it.
const defaultConfig = `format:
  command: ./format.sh
build:
  example: termion
  output_dir: bin
  command: ./build.sh
gate:
  prompt: "press enter to launch %s "
launch:
  target: target.txt
  log: run.log
`

// Result is the observable outcome of one devloop run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Harness owns one scratch workspace the devloop binary runs in.
type Harness struct {
	WorkDir string

	t *testing.T
}

// NewHarness creates a workspace with well-behaved stub tools: each
// stage records itself in stages.txt, the stub editor prints to
// stdout, writes a diagnostic line to stderr and exits zero.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{WorkDir: testutil.Workspace(t), t: t}
	testutil.WriteFile(t, h.WorkDir, ".devloop.yaml", defaultConfig)
	testutil.WriteFile(t, h.WorkDir, "target.txt", "target contents\n")
	h.Format("echo format >> stages.txt\nexit 0\n")
	h.Build("echo build >> stages.txt\nmkdir -p bin\ncp editor.sh bin/termion\nexit 0\n")
	h.Editor("echo launch >> stages.txt\necho \"editor says hello\"\necho \"diag $1\" >&2\nexit 0\n")
	return h
}

// Config replaces the workspace .devloop.yaml.
func (h *Harness) Config(content string) {
	h.t.Helper()
	testutil.WriteFile(h.t, h.WorkDir, ".devloop.yaml", content)
}

// Format replaces the formatter stub's script body.
func (h *Harness) Format(body string) {
	h.t.Helper()
	testutil.WriteScript(h.t, h.WorkDir, "format.sh", body)
}

// Build replaces the builder stub's script body.
func (h *Harness) Build(body string) {
	h.t.Helper()
	testutil.WriteScript(h.t, h.WorkDir, "build.sh", body)
}

// Editor replaces the stub editor's script body. The default build
// stub copies it to bin/termion, so changes here reach the artifact
// on the next run.
func (h *Harness) Editor(body string) {
	h.t.Helper()
	testutil.WriteScript(h.t, h.WorkDir, "editor.sh", body)
}

// Run executes the devloop binary in the workspace with stdin as its
// input and returns what it printed and how it exited.
func (h *Harness) Run(stdin string) Result {
	h.t.Helper()
	return h.RunArgs(stdin)
}

// RunArgs is Run with extra command line arguments.
func (h *Harness) RunArgs(stdin string, args ...string) Result {
	h.t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = h.WorkDir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		require.True(h.t, errors.As(err, &exitErr), "devloop did not run: %v", err)
		result.ExitCode = exitErr.ExitCode()
	}
	return result
}

// Stages returns the stage names the stub tools recorded, in order.
func (h *Harness) Stages() []string {
	h.t.Helper()
	if !testutil.FileExists(h.t, h.WorkDir, "stages.txt") {
		return nil
	}
	recorded := strings.TrimSpace(testutil.ReadFile(h.t, h.WorkDir, "stages.txt"))
	if recorded == "" {
		return nil
	}
	return strings.Split(recorded, "\n")
}
