package bootstrap

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/pterm/pterm"
)

// captureOutput sets pterm writers for tests
func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.Info.Writer = &buf
	pterm.Success.Writer = &buf
	pterm.Warning.Writer = &buf
	pterm.Error.Writer = &buf
	t.Cleanup(func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.Info.Writer = os.Stdout
		pterm.Success.Writer = os.Stdout
		pterm.Warning.Writer = os.Stdout
		pterm.Error.Writer = os.Stdout
	})
	return &buf
}

type runCall struct {
	Dir     string
	Command Command
}

// FakeRunner records every command and answers with RunFunc, or with a clean
// zero exit when RunFunc is nil.
type FakeRunner struct {
	RunFunc func(ctx context.Context, dir string, c Command) (RunResult, error)
	Calls   []runCall
}

func (f *FakeRunner) Run(ctx context.Context, dir string, c Command) (RunResult, error) {
	f.Calls = append(f.Calls, runCall{Dir: dir, Command: c})
	if f.RunFunc != nil {
		return f.RunFunc(ctx, dir, c)
	}
	return RunResult{}, nil
}

func (f *FakeRunner) Commands() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.Command.String()
	}
	return out
}

// callLog is shared by the step fakes to assert ordering.
type callLog struct {
	steps []string
}

func (l *callLog) add(step string) { l.steps = append(l.steps, step) }

type FakeProber struct {
	log    *callLog
	Result Availability
	Names  []string
}

func (f *FakeProber) Probe(ctx context.Context, spec LanguageSpec) Availability {
	f.log.add("probe")
	f.Names = append(f.Names, spec.ID)
	return f.Result
}

type FakeInstaller struct {
	log     *callLog
	Outcome InstallOutcome
	Err     error
}

func (f *FakeInstaller) PromptAndInstall(ctx context.Context, spec LanguageSpec) (InstallOutcome, error) {
	f.log.add("prompt")
	return f.Outcome, f.Err
}

type FakeScaffolder struct {
	log        *callLog
	Result     ScaffoldResult
	Names      []string
	OnScaffold func()
}

func (f *FakeScaffolder) Scaffold(ctx context.Context, name string, spec LanguageSpec) ScaffoldResult {
	f.log.add("scaffold")
	f.Names = append(f.Names, name)
	if f.OnScaffold != nil {
		f.OnScaffold()
	}
	return f.Result
}

type FakeTemplates struct {
	log   *callLog
	Err   error
	Names []string
}

func (f *FakeTemplates) InstallTemplate(name string, spec LanguageSpec) (string, error) {
	f.log.add("template")
	f.Names = append(f.Names, name)
	if f.Err != nil {
		return "", f.Err
	}
	return name + "/" + name + "/" + spec.TemplateFile(), nil
}
