package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects machine readable output for a command.
type OutputOptions struct {
	JSON bool

	cmd *cobra.Command
}

func AddOutputArg(cmd *cobra.Command, oo *OutputOptions) {
	oo.cmd = cmd
	cmd.Flags().BoolVar(&oo.JSON, "json", false,
		"Output as JSON.")
}

// Writer is the command's output, color.Output before the options are
// bound to a command.
func (oo *OutputOptions) Writer() io.Writer {
	if oo.cmd == nil {
		return color.Output
	}
	return oo.cmd.OutOrStdout()
}

// HandleError reports err as {"error": "..."} in JSON mode and returns nil,
// so scripts always read a JSON document. Otherwise err is returned as is.
func (oo *OutputOptions) HandleError(err error) error {
	if err == nil || !oo.JSON {
		return err
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return fmt.Errorf("encode %v: %w", err, merr)
	}
	_, _ = fmt.Fprintln(oo.Writer(), string(b))
	return nil
}
