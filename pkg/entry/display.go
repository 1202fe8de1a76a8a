package entry

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// PreviewWidth is the number of cells shown for an entry in a list.
const PreviewWidth = 150

const noMoodLabel = "📝 Reflection"

// MoodLabel renders the mood for list views.
func (e Entry) MoodLabel() string {
	if e.Mood == nil {
		return noMoodLabel
	}
	return e.Mood.String()
}

// Preview flattens the text onto one line and cuts it to width cells.
func (e Entry) Preview(width int) string {
	flat := strings.Join(strings.Fields(e.Text), " ")
	if width <= 0 {
		return flat
	}
	return truncate.StringWithTail(flat, uint(width), "...")
}

// Row returns the columns used when listing entries in a table.
func (e Entry) Row() (string, string, string, string) {
	words := strconv.Itoa(e.WordCount) + " words"
	if e.WordCount == 1 {
		words = "1 word"
	}
	return e.Date, e.MoodLabel(), words, e.Preview(PreviewWidth)
}
