// Package prompt prints the reflection prompt for a day.
package prompt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/willow/pkg/entry"
	"tableflip.dev/willow/pkg/insights"
	"tableflip.dev/willow/pkg/printers"
)

type Prompt struct {
	// On is the day to pick the prompt for, today when nil.
	On   *time.Time
	JSON bool
	// NoColor strips styling from the text output.
	NoColor bool
	Out     io.Writer
}

type result struct {
	Date   string `json:"date"`
	Prompt string `json:"prompt"`
}

func (p *Prompt) Do(ctx context.Context) error {
	out := p.Out
	if out == nil {
		out = color.Output
	}
	day := time.Now()
	if p.On != nil {
		day = *p.On
	}
	text := insights.DailyPrompt(day)

	if p.JSON {
		b, err := json.Marshal(result{Date: day.Format(entry.LayoutISO), Prompt: text})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{Out: out, NoColor: p.NoColor}
	pp.Title(day.Format("Monday, January 2, 2006"))
	pp.Prompt(text)
	return nil
}
