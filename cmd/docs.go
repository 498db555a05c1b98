package cmd

import (
	"context"

	"github.com/letsgetcoding/lgc/pkg/bootstrap"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type DocsInput struct {
	Language string
}

// DocsCmd opens a language toolchain's installation documentation.
type DocsCmd struct {
	registry *bootstrap.Registry
	openURL  func(url string) error
}

func (d DocsCmd) Open(ctx context.Context, in DocsInput) error {
	spec, err := d.registry.Lookup(in.Language)
	if err != nil {
		return err
	}

	pterm.Info.Printf("%s documentation: %s\n", spec.Toolchain, spec.DocsURL)
	if err := d.openURL(spec.DocsURL); err != nil {
		pterm.Warning.Printf("Could not open a browser: %v\n", err)
	}
	return nil
}

var docsCmd = &cobra.Command{
	Use:   "docs <language>",
	Short: "Open the toolchain documentation for a language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := DocsCmd{registry: bootstrap.DefaultRegistry, openURL: browser.OpenURL}
		return d.Open(cmd.Context(), DocsInput{Language: args[0]})
	},
}
