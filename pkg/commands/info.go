package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/willow/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where it is read from.",
		Example: `
willow info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			i := info.Info{Out: cmd.OutOrStdout()}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
