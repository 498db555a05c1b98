package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/letsgetcoding/lgc/pkg/bootstrap"
	"github.com/letsgetcoding/lgc/pkg/config"
	"github.com/letsgetcoding/lgc/pkg/templates"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// maxListedFiles caps the post-create file listing.
const maxListedFiles = 20

type CreateInput struct {
	Name     string
	Language string
}

// CreateCmd is a cobra-independent command handler for create operations
type CreateCmd struct {
	bootstrapper bootstrap.Bootstrapper
	workDir      string
}

// newCreateCmd wires the production bootstrapper from cfg.
func newCreateCmd(cfg config.Config, l *pterm.Logger) (CreateCmd, error) {
	policy, err := bootstrap.ParseScaffoldPolicy(cfg.OnScaffoldFailure)
	if err != nil {
		return CreateCmd{}, err
	}
	workDir, err := cfg.ResolveWorkDir()
	if err != nil {
		return CreateCmd{}, err
	}

	var store fs.FS = templates.FS
	if cfg.TemplateDir != "" {
		store = os.DirFS(cfg.TemplateDir)
	}

	runner := bootstrap.ExecRunner{}
	return CreateCmd{
		workDir: workDir,
		bootstrapper: bootstrap.Bootstrapper{
			Registry: bootstrap.DefaultRegistry,
			Prober:   bootstrap.ExecProber{Runner: runner, Logger: l},
			Installer: &bootstrap.PromptInstaller{
				In:        os.Stdin,
				Out:       os.Stdout,
				Runner:    runner,
				AssumeYes: cfg.AssumeYes,
				OpenURL:   browser.OpenURL,
				Logger:    l,
			},
			Scaffolder: bootstrap.ExecScaffolder{Runner: runner, WorkDir: workDir, Logger: l},
			Templates:  bootstrap.StoreInstaller{Store: store, WorkDir: workDir},
			Policy:     policy,
			Logger:     l,
		},
	}, nil
}

// Create bootstraps a new project and prints what was generated.
func (c CreateCmd) Create(ctx context.Context, ci CreateInput) error {
	outcome, err := c.bootstrapper.BuildEnvironment(ctx, ci.Name, ci.Language)
	if err != nil {
		return fmt.Errorf("failed to build %s environment: %w", ci.Language, err)
	}

	req := outcome.Request
	if failure := outcome.Scaffold.Failure(); failure != nil {
		pterm.Warning.Printf("%s reported a problem: %v\n", outcome.Scaffold.Command, failure)
	}
	pterm.Success.Printf("%s project %s created\n", req.Language.Name, req.Name)
	pterm.Info.Printf("Starter file: %s\n", outcome.TemplatePath)

	projectDir := filepath.Join(c.workDir, req.Name)
	if files, err := bootstrap.ListProjectFiles(projectDir); err == nil && len(files) > 0 {
		pterm.Println()
		pterm.Info.Println("Project files:")
		for i, f := range files {
			if i == maxListedFiles {
				pterm.Printf("  ... and %d more\n", len(files)-maxListedFiles)
				break
			}
			pterm.Printf("  %s\n", f)
		}
	}

	pterm.Println()
	pterm.FgYellow.Printf("Next steps:\n  cd %s\n", req.Name)
	return nil
}

var createCmd = &cobra.Command{
	Use:   "create [language] [name]",
	Short: "Create a new project",
	Long: `Create a new project with the language's native tooling and copy a starter
file into it. Missing arguments are asked for interactively.

Project names have spaces and hyphens replaced with underscores.`,
	Example: `  lgc create python "My Project"
  lgc create -l go -n service --work-dir ~/src
  lgc create julia analysis --yes`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringP("name", "n", "", "Name of the project")
	createCmd.Flags().StringP("language", "l", "", "Language of the project")
	config.BindFlags(createCmd.Flags())
}

func runCreate(cmd *cobra.Command, args []string) error {
	language, _ := cmd.Flags().GetString("language")
	name, _ := cmd.Flags().GetString("name")
	if len(args) > 0 && language == "" {
		language = args[0]
	}
	if len(args) > 1 && name == "" {
		name = args[1]
	}

	cfg := settings
	cfg.ApplyFlags(cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return err
	}

	language, err := bootstrap.PromptForLanguage(bootstrap.DefaultRegistry, language)
	if err != nil {
		return err
	}
	name, err = bootstrap.PromptForProjectName(name)
	if err != nil {
		return fmt.Errorf("failed to get project name: %w", err)
	}

	c, err := newCreateCmd(cfg, logger)
	if err != nil {
		return err
	}
	return c.Create(cmd.Context(), CreateInput{
		Name:     name,
		Language: language,
	})
}
