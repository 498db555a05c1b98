package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/letsgetcoding/lgc/pkg/bootstrap"
	"github.com/pterm/pterm"
)

// captureOutput sets pterm writers for tests
func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.Info.Writer = &buf
	pterm.Error.Writer = &buf
	pterm.Success.Writer = &buf
	pterm.Warning.Writer = &buf
	pterm.DefaultTable = *pterm.DefaultTable.WithWriter(&buf)
	t.Cleanup(func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.Info.Writer = os.Stdout
		pterm.Error.Writer = os.Stdout
		pterm.Success.Writer = os.Stdout
		pterm.Warning.Writer = os.Stdout
		pterm.DefaultTable = *pterm.DefaultTable.WithWriter(os.Stdout)
	})
	return &buf
}

// FakeRunner stands in for the toolchains; RunFunc decides each outcome.
type FakeRunner struct {
	RunFunc  func(ctx context.Context, dir string, c bootstrap.Command) (bootstrap.RunResult, error)
	Commands []string
}

func (f *FakeRunner) Run(ctx context.Context, dir string, c bootstrap.Command) (bootstrap.RunResult, error) {
	f.Commands = append(f.Commands, c.String())
	if f.RunFunc != nil {
		return f.RunFunc(ctx, dir, c)
	}
	return bootstrap.RunResult{}, nil
}
