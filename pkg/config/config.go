// Package config resolves lgc settings from defaults, a TOML file, env files,
// the process environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/letsgetcoding/lgc/pkg/bootstrap"
)

const (
	EnvTemplateDir       = "LGC_TEMPLATE_DIR"
	EnvWorkDir           = "LGC_WORK_DIR"
	EnvOnScaffoldFailure = "LGC_ON_SCAFFOLD_FAILURE"
	EnvAssumeYes         = "LGC_ASSUME_YES"
	EnvLogLevel          = "LGC_LOG_LEVEL"

	configRelPath = "lgc/config.toml"
)

// Flag names shared by BindFlags and ApplyFlags.
const (
	FlagTemplateDir       = "template-dir"
	FlagWorkDir           = "work-dir"
	FlagOnScaffoldFailure = "on-scaffold-failure"
	FlagYes               = "yes"
)

// Config holds the settings the create command needs.
type Config struct {
	// TemplateDir is a directory laid out as <Language>/template.<ext>. Empty
	// selects the templates embedded in the binary.
	TemplateDir string `toml:"template_dir"`
	// WorkDir is where projects are created. Empty means the current directory.
	WorkDir           string `toml:"work_dir"`
	OnScaffoldFailure string `toml:"on_scaffold_failure"`
	AssumeYes         bool   `toml:"assume_yes"`
	LogLevel          string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OnScaffoldFailure: string(bootstrap.ScaffoldContinue),
		LogLevel:          "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lgc/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, configRelPath)
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".config", configRelPath)
	}
	return ""
}

// Load builds a Config from defaults, the TOML file at path (a missing file is
// not an error), envFiles and the process environment. Values from envFiles
// never override variables already set in the environment.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	env := map[string]string{}
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read env file %s: %w", f, err)
		}
		for k, v := range vars {
			env[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}

	if v, ok := lookup(EnvTemplateDir); ok {
		cfg.TemplateDir = v
	}
	if v, ok := lookup(EnvWorkDir); ok {
		cfg.WorkDir = v
	}
	if v, ok := lookup(EnvOnScaffoldFailure); ok {
		cfg.OnScaffoldFailure = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvAssumeYes); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvAssumeYes, v, err)
		}
		cfg.AssumeYes = b
	}

	return cfg, nil
}

// BindFlags registers the flags ApplyFlags understands on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagTemplateDir, "", "Directory containing <Language>/template.<ext> starter files (default: built-in templates)")
	fs.String(FlagWorkDir, "", "Directory in which to create the project (default: current directory)")
	fs.String(FlagOnScaffoldFailure, "", "What to do when the native scaffold command fails (continue, abort)")
	fs.BoolP(FlagYes, "y", false, "Install missing toolchains without asking")
}

// ApplyFlags overrides c with every flag from BindFlags that was set explicitly.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) {
	if fs.Changed(FlagTemplateDir) {
		c.TemplateDir, _ = fs.GetString(FlagTemplateDir)
	}
	if fs.Changed(FlagWorkDir) {
		c.WorkDir, _ = fs.GetString(FlagWorkDir)
	}
	if fs.Changed(FlagOnScaffoldFailure) {
		c.OnScaffoldFailure, _ = fs.GetString(FlagOnScaffoldFailure)
	}
	if fs.Changed(FlagYes) {
		c.AssumeYes, _ = fs.GetBool(FlagYes)
	}
}

// Validate checks values that cannot be verified by type alone.
func (c Config) Validate() error {
	if _, err := bootstrap.ParseScaffoldPolicy(c.OnScaffoldFailure); err != nil {
		return err
	}
	if c.TemplateDir != "" {
		info, err := os.Stat(c.TemplateDir)
		if err != nil {
			return fmt.Errorf("template directory %s: %w", c.TemplateDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("template directory %s is not a directory", c.TemplateDir)
		}
	}
	return nil
}

// ResolveWorkDir returns WorkDir as an absolute path, defaulting to the
// current directory.
func (c Config) ResolveWorkDir() (string, error) {
	dir := c.WorkDir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve work directory: %w", err)
	}
	return abs, nil
}
