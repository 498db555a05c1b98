// Package bootstrap sets up a new project for a supported language: it probes
// the language toolchain, offers to install it when missing, runs the
// toolchain's own scaffold command and copies a starter template into the
// result.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
)

// State is a step of a bootstrap run.
type State int

const (
	StateProbingToolchain State = iota
	StatePrompting
	StateScaffolding
	StateInstallingTemplate
	StateDone
	StateFatal
)

var stateNames = map[State]string{
	StateProbingToolchain:   "probing-toolchain",
	StatePrompting:          "prompting",
	StateScaffolding:        "scaffolding",
	StateInstallingTemplate: "installing-template",
	StateDone:               "done",
	StateFatal:              "fatal",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ScaffoldPolicy decides what happens when the native scaffold command fails.
type ScaffoldPolicy string

const (
	// ScaffoldContinue logs the failure and still installs the template.
	ScaffoldContinue ScaffoldPolicy = "continue"
	// ScaffoldAbort stops the run with ErrScaffoldFailed.
	ScaffoldAbort ScaffoldPolicy = "abort"
)

// ParseScaffoldPolicy accepts "continue" or "abort"; empty means continue.
func ParseScaffoldPolicy(s string) (ScaffoldPolicy, error) {
	switch ScaffoldPolicy(s) {
	case "", ScaffoldContinue:
		return ScaffoldContinue, nil
	case ScaffoldAbort:
		return ScaffoldAbort, nil
	}
	return "", fmt.Errorf("invalid scaffold failure policy %q (want %s or %s)", s, ScaffoldContinue, ScaffoldAbort)
}

// Outcome summarises a bootstrap run. On a fatal error State is StateFatal and
// the fields reflect how far the run got.
type Outcome struct {
	Request          ProjectRequest
	State            State
	InstallAttempted bool
	Scaffold         ScaffoldResult
	TemplatePath     string
}

// Bootstrapper composes probe, prompt, scaffold and template steps for any
// LanguageSpec in its registry.
type Bootstrapper struct {
	Registry   *Registry
	Prober     Prober
	Installer  Installer
	Scaffolder Scaffolder
	Templates  TemplateInstaller
	Policy     ScaffoldPolicy
	Logger     *pterm.Logger
}

// BuildEnvironment bootstraps projectName for language. Any returned error is
// fatal for the run; a failed scaffold is only fatal under ScaffoldAbort.
func (b Bootstrapper) BuildEnvironment(ctx context.Context, projectName, language string) (Outcome, error) {
	logger := loggerOrDiscard(b.Logger)
	out := Outcome{State: StateProbingToolchain}

	registry := b.Registry
	if registry == nil {
		registry = DefaultRegistry
	}
	req, err := NewProjectRequest(registry, projectName, language)
	if err != nil {
		out.State = StateFatal
		return out, err
	}
	out.Request = req
	spec := req.Language
	logger.Debug("bootstrapping project", logger.Args("name", req.Name, "language", spec.Name))

	availability := b.Prober.Probe(ctx, spec)
	if err := ctx.Err(); err != nil {
		out.State = StateFatal
		return out, err
	}

	if availability == Unavailable {
		out.State = StatePrompting
		answer, err := b.Installer.PromptAndInstall(ctx, spec)
		if err != nil {
			out.State = StateFatal
			return out, err
		}
		if answer == Declined {
			out.State = StateFatal
			return out, fmt.Errorf("%w: %s environment cannot be set up without a %s installation (%w)", ErrInstallationDeclined, spec.Name, spec.Toolchain, ErrToolchainUnavailable)
		}
		out.InstallAttempted = true
	}

	out.State = StateScaffolding
	out.Scaffold = b.Scaffolder.Scaffold(ctx, req.Name, spec)
	if failure := out.Scaffold.Failure(); failure != nil {
		if b.Policy == ScaffoldAbort {
			out.State = StateFatal
			return out, failure
		}
		logger.Warn("scaffold command failed, continuing", logger.Args("error", failure))
	}
	if err := ctx.Err(); err != nil {
		out.State = StateFatal
		return out, err
	}

	out.State = StateInstallingTemplate
	dest, err := b.Templates.InstallTemplate(req.Name, spec)
	if err != nil {
		out.State = StateFatal
		return out, err
	}
	out.TemplatePath = dest
	out.State = StateDone
	logger.Debug("template installed", logger.Args("path", dest))
	return out, nil
}
