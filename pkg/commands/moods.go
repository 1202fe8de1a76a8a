package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/willow/pkg/commands/options"
	"tableflip.dev/willow/pkg/runner/moods"
)

func addMoods(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the moods a reflection can be tagged with",
		Example: `
willow moods
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m := moods.Moods{JSON: oo.JSON, NoColor: color.NoColor, Out: oo.Writer()}
			return oo.HandleError(m.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
