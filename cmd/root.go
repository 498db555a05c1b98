package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/letsgetcoding/lgc/pkg/config"
	"github.com/letsgetcoding/lgc/pkg/update"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Metadata carries build information injected through ldflags.
type Metadata struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

func (m Metadata) String() string {
	s := m.Version
	if m.Commit != "" && m.Commit != "none" {
		s += fmt.Sprintf(" (%s)", m.Commit)
	}
	if m.GoVersion != "" {
		s += " " + m.GoVersion
	}
	if m.Date != "" && m.Date != "unknown" {
		s += " " + m.Date
	}
	return s
}

const updateCheckFrequency = 24 * time.Hour

var metadata = Metadata{Version: "dev"}

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "lgc",
	Short: "Bootstrap new projects with each language's native tooling",
	Long: `lgc ("let's get coding") checks that a language toolchain is installed,
offers to install it when it is missing, scaffolds a project with the toolchain's
own "new project" command and drops a starter source file into it.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If called without any subcommands, just show help.
		_ = cmd.Help()
	},
}

var (
	logger   *pterm.Logger
	settings config.Config
)

func logLevelToPterm(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "fatal":
		return pterm.LogLevelFatal
	case "print":
		return pterm.LogLevelPrint
	default:
		return pterm.LogLevelInfo
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("no-color", "", false, "Disable color output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Set the log level (trace, debug, info, warn, error, fatal, print)")
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Path to the lgc config file")
	rootCmd.PersistentFlags().StringArray("env-file", []string{}, "Read LGC_* settings from a file (.env format). May be specified multiple times")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentPreRunE = loadSettings
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		update.MaybeShowMessage(cmd.Context(), metadata.Version, updateCheckFrequency)
	}

	// Register subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(docsCmd)
}

// loadSettings resolves configuration and the logger before any subcommand runs.
func loadSettings(cmd *cobra.Command, args []string) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		pterm.DisableStyling()
	}

	path, _ := cmd.Flags().GetString("config")
	envFiles, _ := cmd.Flags().GetStringArray("env-file")
	cfg, err := config.Load(path, envFiles...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	settings = cfg
	logger = pterm.DefaultLogger.WithLevel(logLevelToPterm(cfg.LogLevel))
	logger.Debug("configuration loaded", logger.Args("config", path, "env_files", envFiles))
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute(m Metadata) {
	metadata = m

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, rootCmd, fang.WithVersion(m.String())); err != nil {
		stop()
		os.Exit(1)
	}
}
