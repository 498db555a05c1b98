package bootstrap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// InstallOutcome is the user's answer to the installation prompt.
type InstallOutcome int

const (
	Declined InstallOutcome = iota
	Installed
)

func (o InstallOutcome) String() string {
	if o == Installed {
		return "installed"
	}
	return "declined"
}

// Installer asks whether a missing toolchain should be installed and, if so,
// attempts the installation.
type Installer interface {
	PromptAndInstall(ctx context.Context, spec LanguageSpec) (InstallOutcome, error)
}

// PromptInstaller asks once on Out and reads a single line from In. Only "y"
// and "yes" (any case) are affirmative; everything else, including EOF, is a
// decline. Install commands are best-effort: failures are logged, not returned.
//
// Toolchains without install commands get their installation instructions
// instead: the DocsURL is printed and handed to OpenURL when it is set.
type PromptInstaller struct {
	In        io.Reader
	Out       io.Writer
	Runner    Runner
	AssumeYes bool
	OpenURL   func(url string) error
	Logger    *pterm.Logger
}

var _ Installer = (*PromptInstaller)(nil)

// InstallQuestion is the question asked for a missing toolchain.
func InstallQuestion(spec LanguageSpec) string {
	return fmt.Sprintf("%s installation not found. Would you like to install it? (y/n)", spec.Toolchain)
}

func (p *PromptInstaller) PromptAndInstall(ctx context.Context, spec LanguageSpec) (InstallOutcome, error) {
	pterm.Fprintln(p.Out, InstallQuestion(spec))

	if !p.AssumeYes {
		pterm.Fprint(p.Out, ">> ")
		answer, err := readAnswer(p.In)
		if err != nil {
			return Declined, err
		}
		if !isAffirmative(answer) {
			return Declined, nil
		}
	} else {
		pterm.Fprintln(p.Out, ">> y")
	}

	p.install(ctx, spec)
	return Installed, nil
}

func (p *PromptInstaller) install(ctx context.Context, spec LanguageSpec) {
	logger := loggerOrDiscard(p.Logger)

	if !spec.CanInstall() {
		p.showInstructions(spec)
		return
	}

	spinner, _ := pterm.DefaultSpinner.WithWriter(p.Out).Start(fmt.Sprintf("Installing %s...", spec.Toolchain))
	failed := false
	for _, c := range spec.Install {
		logger.Debug("running install command", logger.Args("command", c.String()))
		res, err := p.Runner.Run(ctx, "", c)
		switch {
		case err != nil:
			failed = true
			logger.Warn("install command could not be started", logger.Args("command", c.String(), "error", err))
		case res.ExitCode != 0:
			failed = true
			logger.Warn("install command failed", logger.Args("command", c.String(), "exit_code", res.ExitCode, "output", strings.TrimSpace(string(res.Output))))
		}
	}
	if failed {
		spinner.Warning(fmt.Sprintf("%s installation may not have completed", spec.Toolchain))
		return
	}
	spinner.Success(fmt.Sprintf("%s installed", spec.Toolchain))
}

func (p *PromptInstaller) showInstructions(spec LanguageSpec) {
	pterm.Fprintln(p.Out, fmt.Sprintf("%s has to be installed manually: %s", spec.Toolchain, spec.DocsURL))
	if p.OpenURL == nil {
		return
	}
	if err := p.OpenURL(spec.DocsURL); err != nil {
		logger := loggerOrDiscard(p.Logger)
		logger.Warn("could not open installation instructions", logger.Args("url", spec.DocsURL, "error", err))
	}
}

func readAnswer(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
