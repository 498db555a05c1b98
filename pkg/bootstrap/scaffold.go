package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pterm/pterm"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?`)

// ScaffoldResult describes one run of a native scaffold command. A failed
// scaffold is reported here rather than as an error so the caller can apply
// its ScaffoldPolicy.
type ScaffoldResult struct {
	Command  Command
	Dir      string
	ExitCode int
	Output   string
	Err      error
}

// OK reports whether the command launched and exited zero.
func (r ScaffoldResult) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Failure returns nil on success, otherwise an error wrapping ErrScaffoldFailed
// that carries the tool's diagnostics.
func (r ScaffoldResult) Failure() error {
	switch {
	case r.Err != nil:
		return fmt.Errorf("%w: %s: %w", ErrScaffoldFailed, r.Command, r.Err)
	case r.ExitCode != 0:
		if out := strings.TrimSpace(r.Output); out != "" {
			return fmt.Errorf("%w: %s exited with status %d: %s", ErrScaffoldFailed, r.Command, r.ExitCode, out)
		}
		return fmt.Errorf("%w: %s exited with status %d", ErrScaffoldFailed, r.Command, r.ExitCode)
	}
	return nil
}

// Scaffolder runs a language's native project-creation command.
type Scaffolder interface {
	Scaffold(ctx context.Context, name string, spec LanguageSpec) ScaffoldResult
}

// ExecScaffolder runs scaffold commands relative to WorkDir.
type ExecScaffolder struct {
	Runner  Runner
	WorkDir string
	Logger  *pterm.Logger
}

var _ Scaffolder = ExecScaffolder{}

func (s ExecScaffolder) Scaffold(ctx context.Context, name string, spec LanguageSpec) ScaffoldResult {
	logger := loggerOrDiscard(s.Logger)

	res := ScaffoldResult{
		Command: s.command(ctx, name, spec),
		Dir:     s.WorkDir,
	}
	if sub := spec.scaffoldDir(name); sub != "" {
		res.Dir = filepath.Join(s.WorkDir, filepath.FromSlash(sub))
		if err := os.MkdirAll(res.Dir, DIR_PERM); err != nil {
			res.ExitCode = -1
			res.Err = fmt.Errorf("failed to create directory %s: %w", res.Dir, err)
			return res
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Creating %s project %s...", spec.Name, name))
	logger.Debug("running scaffold command", logger.Args("command", res.Command.String(), "dir", res.Dir))

	run, err := s.Runner.Run(ctx, res.Dir, res.Command)
	res.ExitCode = run.ExitCode
	res.Output = string(run.Output)
	res.Err = err

	if !res.OK() {
		spinner.Fail(fmt.Sprintf("%s did not complete", res.Command))
		return res
	}
	spinner.Success(fmt.Sprintf("Created %s project %s", spec.Name, name))
	return res
}

// command expands the scaffold command for name and appends the VersionArgs
// matching the installed toolchain. An unknown version adds nothing.
func (s ExecScaffolder) command(ctx context.Context, name string, spec LanguageSpec) Command {
	cmd := spec.scaffoldCommand(name)
	if len(spec.Scaffold.VersionArgs) == 0 {
		return cmd
	}

	logger := loggerOrDiscard(s.Logger)
	v, err := s.toolchainVersion(ctx, spec)
	if err != nil {
		logger.Debug("toolchain version unknown", logger.Args("command", spec.Probe.String(), "error", err))
		return cmd
	}
	for _, va := range spec.Scaffold.VersionArgs {
		c, err := semver.NewConstraint(va.Constraint)
		if err != nil {
			logger.Warn("ignoring invalid version constraint", logger.Args("constraint", va.Constraint, "error", err))
			continue
		}
		if c.Check(v) {
			cmd.Args = append(cmd.Args, va.Args...)
		}
	}
	logger.Debug("toolchain version detected", logger.Args("language", spec.Name, "version", v.String()))
	return cmd
}

func (s ExecScaffolder) toolchainVersion(ctx context.Context, spec LanguageSpec) (*semver.Version, error) {
	res, err := s.Runner.Run(ctx, "", spec.Probe)
	if err != nil {
		return nil, err
	}
	match := versionPattern.FindString(string(res.Output))
	if match == "" {
		return nil, fmt.Errorf("no version in %s output", spec.Probe)
	}
	return semver.NewVersion(match)
}
