package deploy

import (
	"context"
	"errors"

	"sitekit.dev/sitekit/internal/config"
	sitekiterrors "sitekit.dev/sitekit/internal/errors"
	"sitekit.dev/sitekit/internal/git"
)

// Logger is the subset of output.Splog the deploy helper reports through
type Logger interface {
	Step(format string, args ...interface{})
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// Step names one stage of a deploy
type Step string

const (
	StepStage  Step = "stage"
	StepCommit Step = "commit"
	StepPush   Step = "push"
)

// StepResult is the outcome of a single step
type StepResult struct {
	Step Step
	Err  error
}

// OK reports whether the step succeeded
func (r StepResult) OK() bool {
	return r.Err == nil
}

// Result records the steps that ran, in execution order
type Result struct {
	Steps []StepResult
}

// Committed reports whether the commit step ran and succeeded
func (r *Result) Committed() bool {
	for _, s := range r.Steps {
		if s.Step == StepCommit {
			return s.OK()
		}
	}
	return false
}

func (r *Result) record(step Step, err error) StepResult {
	res := StepResult{Step: step, Err: err}
	r.Steps = append(r.Steps, res)
	return res
}

// Run stages, commits and pushes. The returned Result is never nil and lists
// every step attempted; the error is the first fatal step failure.
func Run(ctx context.Context, runner git.Runner, log Logger) (*Result, error) {
	result := &Result{}

	log.Step("Staging all changes...")
	if res := result.record(StepStage, runner.StageAll(ctx)); !res.OK() {
		return result, res.Err
	}

	if res := result.record(StepCommit, runner.Commit(ctx, config.DeployCommitMessage)); res.OK() {
		log.Step("Committed. Pushing...")
	} else {
		log.Debug("commit failed: %v", res.Err)
		log.Warn("Nothing new to commit (or commit failed). Pushing existing commits...")
	}

	if res := result.record(StepPush, runner.Push(ctx)); !res.OK() {
		return result, res.Err
	}

	log.Success("Done. If Cloudflare Pages is connected to this repo, the site will update in a minute.")
	return result, nil
}

// ExitCode maps a deploy error to a process exit status: 0 on success, the
// failing git process's status when known, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var gitErr *sitekiterrors.GitCommandError
	if errors.As(err, &gitErr) {
		if code := gitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
