package bootstrap

import (
	"context"
	"os/exec"

	"github.com/pterm/pterm"
)

// Availability is the outcome of a toolchain probe.
type Availability int

const (
	Unavailable Availability = iota
	Available
)

func (a Availability) String() string {
	if a == Available {
		return "available"
	}
	return "unavailable"
}

// Prober decides whether a language's toolchain can be invoked.
type Prober interface {
	Probe(ctx context.Context, spec LanguageSpec) Availability
}

// ExecProber runs the spec's probe command. Many tools exit non-zero for
// --help, so any process that starts and returns counts as available.
type ExecProber struct {
	Runner Runner
	Logger *pterm.Logger
}

var _ Prober = ExecProber{}

func (p ExecProber) Probe(ctx context.Context, spec LanguageSpec) Availability {
	logger := loggerOrDiscard(p.Logger)

	res, err := p.Runner.Run(ctx, "", spec.Probe)
	if err != nil {
		logger.Debug("toolchain probe failed", logger.Args("language", spec.Name, "command", spec.Probe.String(), "error", err))
		return Unavailable
	}

	path, _ := exec.LookPath(spec.Probe.Name)
	logger.Debug("toolchain found", logger.Args("language", spec.Name, "path", path, "exit_code", res.ExitCode))
	return Available
}

func loggerOrDiscard(l *pterm.Logger) *pterm.Logger {
	if l != nil {
		return l
	}
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
}
