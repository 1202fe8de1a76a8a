// Package printers renders journal state for a terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tableflip.dev/willow/pkg/entry"
	"tableflip.dev/willow/pkg/insights"
	"tableflip.dev/willow/pkg/mood"
)

// WrapWidth is the column entry text is wrapped at.
const WrapWidth = 72

type PrettyPrint struct {
	Out io.Writer
	// NoColor strips all styling, for pipes and tests.
	NoColor bool
}

// Writer is where output goes, color.Output when Out is unset.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.NoColor {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer())
}

func (pp *PrettyPrint) Title(title string) {
	_, _ = pp.style(color.Bold, color.Underline).Fprintln(pp.Writer(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.style(color.Bold, color.Underline)
	c := pp.style(color.Faint)

	_, _ = t.Fprint(pp.Writer(), title)
	_, _ = c.Fprintf(pp.Writer(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Writer(), " entry")
	default:
		_, _ = c.Fprintln(pp.Writer(), " entries")
	}
}

func (pp *PrettyPrint) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(pp.Writer(), format, a...)
}

// Message prints a confirmation or notice line.
func (pp *PrettyPrint) Message(msg string) {
	_, _ = pp.style(color.FgGreen).Fprintln(pp.Writer(), msg)
}

// Warn prints a user facing problem.
func (pp *PrettyPrint) Warn(msg string) {
	_, _ = pp.style(color.FgYellow).Fprintln(pp.Writer(), msg)
}

// Prompt prints the daily prompt, wrapped.
func (pp *PrettyPrint) Prompt(prompt string) {
	_, _ = pp.style(color.Italic).Fprintln(pp.Writer(), wordwrap.String(prompt, WrapWidth))
}

// WordCount prints the running word count of the draft.
func (pp *PrettyPrint) WordCount(n int) {
	_, _ = pp.style(color.Faint).Fprintf(pp.Writer(), "%d words\n", n)
}

// Mood renders a mood chip in the mood's own color.
func (pp *PrettyPrint) Mood(m mood.Mood) string {
	r, g, b, err := m.RGB()
	if err != nil || pp.NoColor {
		return m.String()
	}
	return color.RGB(int(r), int(g), int(b)).Sprint(m.String())
}

// Moods prints the mood catalog, numbered in catalog order.
func (pp *PrettyPrint) Moods(moods []mood.Mood) {
	bold := pp.style(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Mood"), bold.Sprint("Color"))
	for i, m := range moods {
		tbl.AddRow(i+1, pp.Mood(m), m.Color)
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}

// Draft prints the draft under composition.
func (pp *PrettyPrint) Draft(d entry.Draft) {
	f := pp.style(color.Faint)
	m := "none"
	if d.Mood != nil {
		m = pp.Mood(*d.Mood)
	}
	intensity := "-"
	if d.Intensity != nil {
		intensity = fmt.Sprint(*d.Intensity)
	}
	_, _ = f.Fprintf(pp.Writer(), "%s · mood %s · intensity %s · %d words\n", d.Date, m, intensity, d.WordCount)
	if !d.Blank() {
		_, _ = fmt.Fprintln(pp.Writer(), wordwrap.String(d.Text, WrapWidth))
	}
}

// Entries prints the history as a table, newest first. Rows are numbered
// from 1 so they can be referred to by position.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := pp.style(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.Writer(), "Your reflection journey will appear here.")
		_, _ = f.Fprint(pp.Writer(), "Start by writing your first entry!\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for i, e := range entries {
		date, label, words, preview := e.Row()
		if e.Mood != nil {
			label = pp.Mood(*e.Mood)
		}
		tbl.AddRow(i+1, date, label, words, preview)
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
	pp.NewLine()
}

// Entry prints one entry in full.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	pp.Title(e.Date)
	if e.Mood != nil {
		line := pp.Mood(*e.Mood)
		if e.Intensity != nil {
			line = fmt.Sprintf("%s (%d)", line, *e.Intensity)
		}
		_, _ = fmt.Fprintln(pp.Writer(), line)
	}
	_, _ = fmt.Fprintln(pp.Writer(), wordwrap.String(e.Text, WrapWidth))
	_, _ = pp.style(color.Faint).Fprintf(pp.Writer(), "%d words · %s\n\n", e.WordCount, e.Timestamp)
}

// Insights prints the statistics summary.
func (pp *PrettyPrint) Insights(s insights.Summary) {
	pp.TitleWithCount("Insights", s.TotalEntries)
	_, _ = fmt.Fprintf(pp.Writer(), "Total words: %s\n", groupThousands(s.TotalWords))

	if s.TotalEntries == 0 {
		_, _ = pp.style(color.Faint).Fprintln(pp.Writer(), "Start journaling to see your emotional patterns")
	} else if len(s.Moods) > 0 {
		tags := make([]string, 0, len(s.Moods))
		for _, mc := range s.Moods {
			tags = append(tags, fmt.Sprintf("%s (%d)", mc.Mood, mc.Count))
		}
		_, _ = fmt.Fprintf(pp.Writer(), "Moods: %s\n", strings.Join(tags, "  "))
	}

	if s.Encouragement != "" {
		pp.NewLine()
		_, _ = pp.style(color.Italic).Fprintln(pp.Writer(), wordwrap.String(s.Encouragement, WrapWidth))
	}
	pp.NewLine()
}

var numbers = message.NewPrinter(language.English)

func groupThousands(n int) string {
	return numbers.Sprintf("%d", n)
}
