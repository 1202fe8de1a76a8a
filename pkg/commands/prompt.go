package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/willow/pkg/commands/options"
	"tableflip.dev/willow/pkg/runner/prompt"
)

func addPrompt(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Show the reflection prompt for today or another day",
		Example: `
willow prompt
willow prompt --on 2024-12-31 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			day, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			p := prompt.Prompt{On: day, JSON: oo.JSON, NoColor: color.NoColor, Out: oo.Writer()}
			return oo.HandleError(p.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
