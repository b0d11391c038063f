package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	sitekiterrors "sitekit.dev/sitekit/internal/errors"
)

// Runner defines the version-control operations the deploy helper sequences.
// This allows the deploy helper to be driven by both real git and fakes.
type Runner interface {
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// NewCommandRunner creates a CommandRunner whose passthrough commands are
// connected to the invoking terminal.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{
		workingDir: workingDir,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithOutput returns a copy of the runner whose passthrough commands write to
// the given writers instead of the terminal. Stdin is detached.
func (r *CommandRunner) WithOutput(stdout, stderr io.Writer) *CommandRunner {
	return &CommandRunner{
		workingDir: r.workingDir,
		stdout:     stdout,
		stderr:     stderr,
	}
}

func (r *CommandRunner) command(ctx context.Context, args ...string) *exec.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, "git", args...) //#nosec G204 -- args are constructed internally
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	return cmd
}

// Run executes a git command and returns its trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := r.command(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", sitekiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Passthrough executes a git command with its input and output connected to
// the runner's streams. Nothing is captured.
func (r *CommandRunner) Passthrough(ctx context.Context, args ...string) error {
	cmd := r.command(ctx, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return sitekiterrors.NewGitCommandError("git", args, "", "", err)
	}
	return nil
}
