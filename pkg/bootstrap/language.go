package bootstrap

import (
	"fmt"
	"strings"
)

// NamePlaceholder is replaced by the project name in scaffold commands and directories.
const NamePlaceholder = "{name}"

// Command is a subprocess invocation: a binary looked up on PATH and its arguments.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// expand returns a copy of c with every NamePlaceholder replaced by name.
func (c Command) expand(name string) Command {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strings.ReplaceAll(a, NamePlaceholder, name)
	}
	return Command{Name: strings.ReplaceAll(c.Name, NamePlaceholder, name), Args: args}
}

// ScaffoldSpec describes the native "new project" command of a toolchain.
//
// Dir is a path relative to the working directory in which Command runs. When
// set, the scaffolder creates it first. Tools that only initialise the current
// directory (go mod init) use Dir to produce the <name>/<name> layout the
// template installer copies into.
//
// VersionArgs are appended to Command when the toolchain version reported by
// the probe command satisfies their constraint.
type ScaffoldSpec struct {
	Command     Command
	Dir         string
	VersionArgs []VersionArg
}

// VersionArg is a set of extra scaffold arguments gated on a semver constraint.
type VersionArg struct {
	Constraint string
	Args       []string
}

// LanguageSpec binds a language to its toolchain commands and starter template.
type LanguageSpec struct {
	ID        string
	Name      string
	Aliases   []string
	Toolchain string
	Extension string
	Probe     Command
	Scaffold  ScaffoldSpec
	// Install commands run in order after the user accepts the installation
	// prompt. Languages without an automated installer leave this empty and
	// point the user at DocsURL instead.
	Install []Command
	DocsURL string
}

// TemplateFile is the starter file name, e.g. "template.py".
func (s LanguageSpec) TemplateFile() string {
	return fmt.Sprintf("template.%s", s.Extension)
}

// CanInstall reports whether lgc can run an installer for the toolchain.
func (s LanguageSpec) CanInstall() bool {
	return len(s.Install) > 0
}

func (s LanguageSpec) scaffoldCommand(project string) Command {
	return s.Scaffold.Command.expand(project)
}

func (s LanguageSpec) scaffoldDir(project string) string {
	return strings.ReplaceAll(s.Scaffold.Dir, NamePlaceholder, project)
}

var Python = LanguageSpec{
	ID:        "python",
	Name:      "Python",
	Aliases:   []string{"py"},
	Toolchain: "Poetry",
	Extension: "py",
	Probe:     Command{Name: "poetry", Args: []string{"--version"}},
	Scaffold: ScaffoldSpec{
		Command: Command{Name: "poetry", Args: []string{"new", NamePlaceholder}},
		// Poetry 2 defaults to a src/ layout; --flat keeps <name>/<name>.
		VersionArgs: []VersionArg{
			{Constraint: ">= 2.0.0-0", Args: []string{"--flat"}},
		},
	},
	Install: []Command{
		{Name: "pip", Args: []string{"install", "poetry"}},
	},
	DocsURL: "https://python-poetry.org/docs/",
}

var Julia = LanguageSpec{
	ID:        "julia",
	Name:      "Julia",
	Aliases:   []string{"jl"},
	Toolchain: "Julia",
	Extension: "jl",
	Probe:     Command{Name: "julia", Args: []string{"--help"}},
	Scaffold: ScaffoldSpec{
		Command: Command{Name: "julia", Args: []string{
			"--startup-file=no", "-e", `using Pkg; Pkg.generate("` + NamePlaceholder + `")`,
		}},
		Dir: NamePlaceholder,
	},
	Install: []Command{
		{Name: "pip", Args: []string{"install", "jill"}},
		{Name: "jill", Args: []string{"install", "--confirm"}},
	},
	DocsURL: "https://docs.julialang.org/en/v1/stdlib/Pkg/",
}

var Go = LanguageSpec{
	ID:        "go",
	Name:      "Go",
	Aliases:   []string{"golang"},
	Toolchain: "Go",
	Extension: "go",
	Probe:     Command{Name: "go", Args: []string{"--help"}},
	Scaffold: ScaffoldSpec{
		Command: Command{Name: "go", Args: []string{"mod", "init", NamePlaceholder}},
		Dir:     NamePlaceholder + "/" + NamePlaceholder,
	},
	DocsURL: "https://go.dev/doc/install",
}

var Rust = LanguageSpec{
	ID:        "rust",
	Name:      "Rust",
	Aliases:   []string{"rs"},
	Toolchain: "Cargo",
	Extension: "rs",
	Probe:     Command{Name: "cargo", Args: []string{"--version"}},
	Scaffold: ScaffoldSpec{
		Command: Command{Name: "cargo", Args: []string{"new", NamePlaceholder}},
		Dir:     NamePlaceholder,
	},
	DocsURL: "https://www.rust-lang.org/tools/install",
}
