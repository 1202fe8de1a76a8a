package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/willow/pkg/config"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "willow",
		Short: base.Wrap80("Gentle reflective journaling on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			applyColor(settings)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addPrompt(topLevel)
	addMoods(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

// applyColor turns styling off when settings ask for it. Color detection on
// non-terminals is left to fatih/color.
func applyColor(settings *config.Settings) {
	if !settings.Color {
		color.NoColor = true
	}
}
