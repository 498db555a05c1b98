package cmd

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/letsgetcoding/lgc/pkg/bootstrap"
	"github.com/letsgetcoding/lgc/pkg/config"
	"github.com/letsgetcoding/lgc/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("executable file not found in $PATH")

// poetryRunner behaves like a machine with or without poetry installed.
func poetryRunner(installed bool) *FakeRunner {
	return &FakeRunner{
		RunFunc: func(ctx context.Context, dir string, c bootstrap.Command) (bootstrap.RunResult, error) {
			switch {
			case c.Name == "poetry" && !installed:
				return bootstrap.RunResult{ExitCode: -1}, errNotFound
			case c.Name == "poetry" && len(c.Args) == 2 && c.Args[0] == "new":
				name := c.Args[1]
				if err := os.MkdirAll(filepath.Join(dir, name, name), 0755); err != nil {
					return bootstrap.RunResult{}, err
				}
				return bootstrap.RunResult{}, os.WriteFile(filepath.Join(dir, name, "pyproject.toml"), []byte("[tool.poetry]\n"), 0644)
			}
			return bootstrap.RunResult{}, nil
		},
	}
}

func testCreateCmd(workDir string, runner bootstrap.Runner, stdin string, store fstest.MapFS) CreateCmd {
	return CreateCmd{
		workDir: workDir,
		bootstrapper: bootstrap.Bootstrapper{
			Registry:   bootstrap.DefaultRegistry,
			Prober:     bootstrap.ExecProber{Runner: runner},
			Installer:  &bootstrap.PromptInstaller{In: strings.NewReader(stdin), Out: &bytes.Buffer{}, Runner: runner},
			Scaffolder: bootstrap.ExecScaffolder{Runner: runner, WorkDir: workDir},
			Templates:  bootstrap.StoreInstaller{Store: store, WorkDir: workDir},
			Policy:     bootstrap.ScaffoldContinue,
		},
	}
}

func TestCreateCommand(t *testing.T) {
	pythonStore := fstest.MapFS{"Python/template.py": {Data: []byte("print('hi')\n")}}

	tests := []struct {
		name        string
		input       CreateInput
		installed   bool
		stdin       string
		wantErr     error
		errContains string
		validate    func(t *testing.T, workDir, output string, runner *FakeRunner)
	}{
		{
			name:      "python with poetry installed",
			input:     CreateInput{Name: "My Project", Language: "python"},
			installed: true,
			validate: func(t *testing.T, workDir, output string, runner *FakeRunner) {
				assert.FileExists(t, filepath.Join(workDir, "My_Project", "My_Project", "template.py"))
				assert.FileExists(t, filepath.Join(workDir, "My_Project", "pyproject.toml"))
				assert.Equal(t, []string{"poetry --version", "poetry --version", "poetry new My_Project"}, runner.Commands)
				assert.Contains(t, output, "Python project My_Project created")
				assert.Contains(t, output, "My_Project/template.py")
				assert.Contains(t, output, "cd My_Project")
			},
		},
		{
			name:  "python installs poetry after yes",
			input: CreateInput{Name: "demo", Language: "py"},
			stdin: "y\n",
			validate: func(t *testing.T, workDir, output string, runner *FakeRunner) {
				assert.Equal(t, []string{"poetry --version", "pip install poetry", "poetry --version", "poetry new demo"}, runner.Commands)
				assert.NoFileExists(t, filepath.Join(workDir, "demo", "demo", "template.py"))
			},
			wantErr: bootstrap.ErrTemplateCopyFailed,
		},
		{
			name:        "declined installation",
			input:       CreateInput{Name: "demo", Language: "python"},
			stdin:       "n\n",
			wantErr:     bootstrap.ErrInstallationDeclined,
			errContains: "failed to build python environment",
			validate: func(t *testing.T, workDir, output string, runner *FakeRunner) {
				assert.Equal(t, []string{"poetry --version"}, runner.Commands)
				assert.NoDirExists(t, filepath.Join(workDir, "demo"))
			},
		},
		{
			name:      "unsupported language",
			input:     CreateInput{Name: "demo", Language: "cobol"},
			installed: true,
			wantErr:   bootstrap.ErrUnsupportedLanguage,
			validate: func(t *testing.T, workDir, output string, runner *FakeRunner) {
				assert.Empty(t, runner.Commands, "no subprocess may run for an unknown language")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			workDir := t.TempDir()
			runner := poetryRunner(tt.installed)

			c := testCreateCmd(workDir, runner, tt.stdin, pythonStore)
			err := c.Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err, "failed to execute create command")
			}

			if tt.validate != nil {
				tt.validate(t, workDir, buf.String(), runner)
			}
		})
	}
}

func TestCreateCommand_EmbeddedTemplates(t *testing.T) {
	captureOutput(t)
	workDir := t.TempDir()
	runner := &FakeRunner{}

	c := CreateCmd{
		workDir: workDir,
		bootstrapper: bootstrap.Bootstrapper{
			Prober:     bootstrap.ExecProber{Runner: runner},
			Installer:  &bootstrap.PromptInstaller{In: strings.NewReader(""), Out: &bytes.Buffer{}, Runner: runner},
			Scaffolder: bootstrap.ExecScaffolder{Runner: runner, WorkDir: workDir},
			Templates:  bootstrap.StoreInstaller{Store: templates.FS, WorkDir: workDir},
		},
	}
	require.NoError(t, c.Create(context.Background(), CreateInput{Name: "svc", Language: "go"}))

	want, err := fs.ReadFile(templates.FS, "Go/template.go")
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(workDir, "svc", "svc", "template.go"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"go --help", "go mod init svc"}, runner.Commands)
}

func TestNewCreateCmd(t *testing.T) {
	workDir := t.TempDir()

	cfg := config.Default()
	cfg.WorkDir = workDir
	cfg.OnScaffoldFailure = "abort"
	cfg.AssumeYes = true

	c, err := newCreateCmd(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, workDir, c.workDir)
	assert.Equal(t, bootstrap.ScaffoldAbort, c.bootstrapper.Policy)

	installer, ok := c.bootstrapper.Installer.(*bootstrap.PromptInstaller)
	require.True(t, ok)
	assert.True(t, installer.AssumeYes)

	store, ok := c.bootstrapper.Templates.(bootstrap.StoreInstaller)
	require.True(t, ok)
	assert.Equal(t, templates.FS, store.Store)

	cfg.TemplateDir = workDir
	c, err = newCreateCmd(cfg, nil)
	require.NoError(t, err)
	store = c.bootstrapper.Templates.(bootstrap.StoreInstaller)
	assert.NotEqual(t, templates.FS, store.Store)

	cfg.OnScaffoldFailure = "shrug"
	_, err = newCreateCmd(cfg, nil)
	assert.Error(t, err)
}

func TestRunCreate_RejectsUnknownLanguageBeforePrompting(t *testing.T) {
	captureOutput(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LGC_NO_UPDATE_CHECK", "1")

	rootCmd.SetArgs([]string{"create", "cobol", "demo", "--config", filepath.Join(t.TempDir(), "none.toml")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, bootstrap.ErrUnsupportedLanguage)
}
