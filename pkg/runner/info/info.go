package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/willow/pkg/config"
)

// Info prints where settings come from and their effective values.
type Info struct {
	Settings *config.Settings
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = config.Load()
		if err != nil {
			return err
		}
	}

	file := n.Settings.File
	if file == "" {
		file = "none, using defaults"
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("config file:", file)
	autosave := n.Settings.Autosave.String()
	if n.Settings.Autosave == 0 {
		autosave = "off"
	}
	tbl.AddRow("autosave:", autosave)
	tbl.AddRow("sample entry:", n.Settings.Sample)
	tbl.AddRow("log level:", n.Settings.LogLevel)
	tbl.AddRow("color:", n.Settings.Color)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
