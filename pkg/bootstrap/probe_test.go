package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecProber_UsesLaunchNotExitCode(t *testing.T) {
	tests := []struct {
		name string
		run  func(ctx context.Context, dir string, c Command) (RunResult, error)
		want Availability
	}{
		{
			name: "zero exit",
			run: func(ctx context.Context, dir string, c Command) (RunResult, error) {
				return RunResult{Output: []byte("Poetry (version 1.8.3)")}, nil
			},
			want: Available,
		},
		{
			name: "non-zero exit",
			run: func(ctx context.Context, dir string, c Command) (RunResult, error) {
				return RunResult{ExitCode: 2}, nil
			},
			want: Available,
		},
		{
			name: "cannot launch",
			run: func(ctx context.Context, dir string, c Command) (RunResult, error) {
				return RunResult{ExitCode: -1}, errors.New("executable file not found in $PATH")
			},
			want: Unavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &FakeRunner{RunFunc: tt.run}
			got := ExecProber{Runner: runner}.Probe(context.Background(), Python)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"poetry --version"}, runner.Commands())
		})
	}
}

func TestExecProber_EmptyPathMeansUnavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	p := ExecProber{Runner: ExecRunner{}}
	for _, spec := range DefaultRegistry.All() {
		t.Run(spec.ID, func(t *testing.T) {
			assert.Equal(t, Unavailable, p.Probe(context.Background(), spec))
		})
	}
}

func TestExecProber_FailingBinaryOnPathIsAvailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs require a POSIX shell")
	}

	bin := t.TempDir()
	for _, spec := range DefaultRegistry.All() {
		stub := filepath.Join(bin, spec.Probe.Name)
		err := os.WriteFile(stub, []byte("#!/bin/sh\necho unsupported flag >&2\nexit 3\n"), 0o755)
		assert.NoError(t, err)
	}
	t.Setenv("PATH", bin)

	p := ExecProber{Runner: ExecRunner{}}
	for _, spec := range DefaultRegistry.All() {
		t.Run(spec.ID, func(t *testing.T) {
			assert.Equal(t, Available, p.Probe(context.Background(), spec))
		})
	}
}

func TestExecRunner_ReportsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	res, err := ExecRunner{}.Run(context.Background(), t.TempDir(), Command{Name: "sh", Args: []string{"-c", "echo out; exit 4"}})
	assert.NoError(t, err)
	assert.Equal(t, 4, res.ExitCode)
	assert.Equal(t, "out\n", string(res.Output))
}
