package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/willow/pkg/config"
	"tableflip.dev/willow/pkg/insights"
	"tableflip.dev/willow/pkg/journal"
	"tableflip.dev/willow/pkg/printers"
	"tableflip.dev/willow/pkg/runner/session"
)

func addWrite(topLevel *cobra.Command) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Start a journaling session",
		Long: `Write starts an interactive session. Type freely to add to today's
reflection and use :commands to set a mood, save, or look back.

Entries live for the length of the session only.`,
		Example: `
willow write
willow write --autosave 1m --sample=false
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			settings, err := config.LoadWith(v)
			if err != nil {
				return err
			}
			applyColor(settings)
			log := settings.Logger()

			j := journal.New(journal.WithLogger(log))
			if settings.Sample {
				if _, err := j.SeedSample(); err != nil {
					return err
				}
			}

			reader, closeReader, err := session.NewReader(os.Stdin, color.Output, "› ")
			if err != nil {
				return err
			}
			defer func() { _ = closeReader() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
			defer stop()

			s := &session.Session{
				Journal:  j,
				Insights: insights.New(j),
				Printer:  &printers.PrettyPrint{NoColor: !settings.Color},
				Reader:   reader,
				Autosave: settings.Autosave,
				Log:      log,
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().Duration("autosave", config.DefaultAutosave, "how often to quietly note the draft, 0 to turn off")
	cmd.Flags().Bool("sample", true, "start with a sample reflection from yesterday")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "one of debug, info, warn or error")
	_ = v.BindPFlag("autosave", cmd.Flags().Lookup("autosave"))
	_ = v.BindPFlag("sample", cmd.Flags().Lookup("sample"))
	_ = v.BindPFlag("log-level", cmd.Flags().Lookup("log-level"))

	topLevel.AddCommand(cmd)
}
