// Package moods prints the mood catalog.
package moods

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/willow/pkg/mood"
	"tableflip.dev/willow/pkg/printers"
)

type Moods struct {
	JSON    bool
	NoColor bool
	Out     io.Writer
}

func (m *Moods) Do(ctx context.Context) error {
	out := m.Out
	if out == nil {
		out = color.Output
	}
	all := mood.DefaultMoods()

	if m.JSON {
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{Out: out, NoColor: m.NoColor}
	pp.Moods(all)
	return nil
}
