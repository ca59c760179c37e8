package devloop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thruflo/keymode/internal/logging"
)

// Options configures a Pipeline. Format, Build, Artifact, Target and
// LogPath are required; everything else has a working default.
type Options struct {
	// Dir is the workspace the stage commands run in. Empty means the
	// current directory.
	Dir string

	// Format and Build are the complete argvs for the first two stages.
	Format []string
	Build  []string

	// Artifact is the path of the binary the build stage deposits and
	// the launch stage executes.
	Artifact string

	// Target is the single positional argument handed to the artifact.
	Target string

	// LogPath receives the artifact's stderr. It is created or
	// truncated by the launch stage and untouched by every other stage.
	LogPath string

	// Prompt is written before the gate blocks. A %s placeholder is
	// replaced with the artifact path.
	Prompt string

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Runner defaults to ExecRunner.
	Runner CommandRunner

	// Logger defaults to the package default logger.
	Logger *logging.Logger
}

// Result describes where a run ended.
type Result struct {
	State    State
	Stage    Stage
	ExitCode int
}

// Pipeline executes the four stages in order, stopping at the first
// failure.
type Pipeline struct {
	dir      string
	format   []string
	build    []string
	artifact string
	target   string
	logPath  string
	prompt   string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	runner CommandRunner
	log    *logging.Logger

	state State
}

// New validates opts and returns a ready-to-run Pipeline.
func New(opts Options) (*Pipeline, error) {
	if len(opts.Format) == 0 {
		return nil, errors.New("format command is required")
	}
	if len(opts.Build) == 0 {
		return nil, errors.New("build command is required")
	}
	if opts.Artifact == "" {
		return nil, errors.New("artifact path is required")
	}
	if opts.Target == "" {
		return nil, errors.New("launch target is required")
	}
	if opts.LogPath == "" {
		return nil, errors.New("log path is required")
	}

	p := &Pipeline{
		dir:      opts.Dir,
		format:   opts.Format,
		build:    opts.Build,
		artifact: opts.Artifact,
		target:   opts.Target,
		logPath:  opts.LogPath,
		prompt:   opts.Prompt,
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		runner:   opts.Runner,
		log:      opts.Logger,
	}
	if p.stdin == nil {
		p.stdin = os.Stdin
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	if p.stderr == nil {
		p.stderr = os.Stderr
	}
	if p.runner == nil {
		p.runner = ExecRunner{}
	}
	if p.log == nil {
		p.log = logging.Default()
	}
	return p, nil
}

// Run walks the stages in order: format, build, gate, launch. The
// first failure aborts the run and is returned as a *StageError whose
// code the process should exit with; on success the artifact's exit
// status was zero and the Result state is done.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	p.setState(StateFormat)
	if err := p.runTool(ctx, StageFormat, p.format); err != nil {
		return p.fail(StageFormat, err)
	}

	p.setState(StateBuild)
	if err := p.runTool(ctx, StageBuild, p.build); err != nil {
		return p.fail(StageBuild, err)
	}

	p.setState(StateWaitForUser)
	if err := p.waitForUser(); err != nil {
		return p.fail(StageGate, err)
	}

	p.setState(StateLaunched)
	if err := p.launch(ctx); err != nil {
		return p.fail(StageLaunch, err)
	}

	p.setState(StateDone)
	return Result{State: StateDone, Stage: StageLaunch}, nil
}

func (p *Pipeline) fail(stage Stage, err error) (Result, error) {
	p.setState(StateFailed)
	return Result{State: StateFailed, Stage: stage, ExitCode: ExitCode(err)}, err
}

func (p *Pipeline) setState(s State) {
	p.state = s
	p.log.Debug("pipeline state", "state", s.String())
}

// runTool executes a stage command with its output passed through to
// the terminal. Only the exit status is inspected.
func (p *Pipeline) runTool(ctx context.Context, stage Stage, argv []string) error {
	p.log.Debug("running stage command",
		"stage", stage.String(),
		"argv", strings.Join(argv, " "),
	)

	code, err := p.runner.Run(ctx, Command{
		Name:   argv[0],
		Args:   argv[1:],
		Dir:    p.dir,
		Stdout: p.stdout,
		Stderr: p.stderr,
	})
	if err != nil {
		return &StageError{Stage: stage, Code: code, Err: err}
	}
	if code != 0 {
		return &StageError{Stage: stage, Code: code}
	}
	return nil
}

// waitForUser writes the prompt and blocks until a full line arrives.
// Any line satisfies the gate, including an empty one; the content is
// discarded. There is no timeout. Stdin closing before a newline is a
// gate failure.
func (p *Pipeline) waitForUser() error {
	prompt := p.prompt
	if strings.Contains(prompt, "%s") {
		prompt = fmt.Sprintf(prompt, p.artifact)
	}
	if _, err := io.WriteString(p.stdout, prompt); err != nil {
		return &StageError{
			Stage: StageGate,
			Code:  1,
			Err:   fmt.Errorf("failed to write prompt: %w", err),
		}
	}

	// One byte at a time: everything after the newline stays unread
	// for the launched artifact.
	buf := make([]byte, 1)
	for {
		n, err := p.stdin.Read(buf)
		if n > 0 && buf[0] == '\n' {
			return nil
		}
		if err != nil {
			return &StageError{
				Stage: StageGate,
				Code:  1,
				Err:   fmt.Errorf("stdin closed before a line arrived: %w", err),
			}
		}
	}
}

// launch runs the artifact against the target with stderr captured to
// the log file. The log file is created or truncated here and nowhere
// else.
func (p *Pipeline) launch(ctx context.Context) error {
	logPath := p.logPath
	if p.dir != "" && !filepath.IsAbs(logPath) {
		logPath = filepath.Join(p.dir, logPath)
	}
	logFile, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &StageError{
			Stage: StageLaunch,
			Code:  1,
			Err:   fmt.Errorf("failed to open log file: %w", err),
		}
	}
	defer logFile.Close()

	p.log.Debug("launching artifact",
		"artifact", p.artifact,
		"target", p.target,
		"log", p.logPath,
	)

	code, err := p.runner.Run(ctx, Command{
		Name:   p.artifact,
		Args:   []string{p.target},
		Dir:    p.dir,
		Stdin:  p.stdin,
		Stdout: p.stdout,
		Stderr: logFile,
	})
	if err != nil {
		return &StageError{Stage: StageLaunch, Code: code, Err: err}
	}
	if code != 0 {
		return &StageError{Stage: StageLaunch, Code: code}
	}
	return nil
}
