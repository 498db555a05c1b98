package bootstrap

import (
	"context"
	"errors"
	"os/exec"
)

// RunResult is what a subprocess left behind once it exited.
type RunResult struct {
	ExitCode int
	Output   []byte
}

// Runner launches subprocesses. Run returns an error only when the process
// could not be launched (or waited on); a non-zero exit is reported through
// RunResult.ExitCode with a nil error.
type Runner interface {
	Run(ctx context.Context, dir string, c Command) (RunResult, error)
}

// ExecRunner runs commands with os/exec, capturing combined output.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, dir string, c Command) (RunResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return RunResult{ExitCode: -1, Output: out}, ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return RunResult{ExitCode: exitErr.ExitCode(), Output: out}, nil
		}
		return RunResult{ExitCode: -1, Output: out}, err
	}
	return RunResult{Output: out}, nil
}
