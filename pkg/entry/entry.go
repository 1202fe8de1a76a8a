// Package entry holds the journal draft being composed and the immutable
// entries it is promoted to.
package entry

import (
	"strings"
	"time"

	"tableflip.dev/willow/pkg/mood"
)

const (
	// LayoutISO is the calendar date layout used for drafts.
	LayoutISO = "2006-01-02"
	// LayoutDisplay is the date layout shown on saved entries.
	LayoutDisplay = "January 2, 2006"
)

// WordCount returns the number of whitespace separated tokens in text.
// Empty or whitespace-only text counts as zero words.
func WordCount(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// Draft is the single in-progress entry of a journaling session.
type Draft struct {
	Date      string     `json:"date"`
	Mood      *mood.Mood `json:"mood,omitempty"`
	Intensity *int       `json:"intensity,omitempty"`
	Text      string     `json:"text"`
	WordCount int        `json:"wordCount"`
}

// NewDraft returns an empty draft dated on the calendar day of now.
func NewDraft(now time.Time) Draft {
	return Draft{Date: now.Format(LayoutISO)}
}

// SetText replaces the draft text and returns the recomputed word count.
func (d *Draft) SetText(text string) int {
	d.Text = text
	d.WordCount = WordCount(text)
	return d.WordCount
}

// Blank reports whether the draft has nothing worth saving.
func (d Draft) Blank() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Clone returns a copy that shares no pointers with d.
func (d Draft) Clone() Draft {
	d.Mood = cloneMood(d.Mood)
	d.Intensity = cloneInt(d.Intensity)
	return d
}

// Entry is a saved reflection. Entries are never mutated once created.
type Entry struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	Mood      *mood.Mood `json:"mood,omitempty"`
	Intensity *int       `json:"intensity,omitempty"`
	Text      string     `json:"text"`
	WordCount int        `json:"wordCount"`
	Timestamp Timestamp  `json:"timestamp"`
}

// New snapshots the draft into an entry created at now.
func New(id string, d Draft, now time.Time) Entry {
	return Entry{
		ID:        id,
		Date:      now.Format(LayoutDisplay),
		Mood:      cloneMood(d.Mood),
		Intensity: cloneInt(d.Intensity),
		Text:      d.Text,
		WordCount: d.WordCount,
		Timestamp: Timestamp{Time: now},
	}
}

// Clone returns a copy that shares no pointers with e.
func (e Entry) Clone() Entry {
	e.Mood = cloneMood(e.Mood)
	e.Intensity = cloneInt(e.Intensity)
	return e
}

// MoodName returns the mood name, or "" when the entry has no mood.
func (e Entry) MoodName() string {
	if e.Mood == nil {
		return ""
	}
	return e.Mood.Name
}

func cloneMood(m *mood.Mood) *mood.Mood {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
