package cmd

import (
	"context"

	"github.com/letsgetcoding/lgc/pkg/bootstrap"
	"github.com/letsgetcoding/lgc/pkg/util"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// LanguagesCmd lists the languages lgc can bootstrap.
type LanguagesCmd struct {
	registry *bootstrap.Registry
}

func (l LanguagesCmd) List(ctx context.Context) error {
	specs := l.registry.All()
	if len(specs) == 0 {
		pterm.Info.Println("No languages registered")
		return nil
	}

	data := pterm.TableData{{"ID", "Name", "Aliases", "Toolchain", "Probe", "Scaffold", "Installer"}}
	for _, s := range specs {
		installer := lo.Map(s.Install, func(c bootstrap.Command, _ int) string { return c.String() })
		data = append(data, []string{
			s.ID,
			s.Name,
			util.JoinOrDash(s.Aliases...),
			util.OrDash(s.Toolchain),
			s.Probe.String(),
			s.Scaffold.Command.String(),
			util.JoinOrDash(installer...),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

var languagesCmd = &cobra.Command{
	Use:     "languages",
	Aliases: []string{"langs"},
	Short:   "List supported languages",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return LanguagesCmd{registry: bootstrap.DefaultRegistry}.List(cmd.Context())
	},
}
