// Package journal owns a journaling session: the single active draft and
// the newest-first history of saved entries.
package journal

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/willow/pkg/entry"
	"tableflip.dev/willow/pkg/mood"
)

// Journal is the session state. All methods are safe to call from the
// session goroutine and a background reader such as the autosave ticker.
type Journal struct {
	mu      sync.Mutex
	now     func() time.Time
	newID   func() (string, error)
	log     *slog.Logger
	draft   entry.Draft
	entries []entry.Entry
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		j.now = now
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(j *Journal) {
		if l != nil {
			j.log = l
		}
	}
}

// WithIDFunc replaces the UUIDv7 id generator.
func WithIDFunc(fn func() (string, error)) Option {
	return func(j *Journal) {
		j.newID = fn
	}
}

// New returns a session with an empty draft and no entries.
func New(opts ...Option) *Journal {
	j := &Journal{
		now:   time.Now,
		newID: newV7,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(j)
	}
	j.draft = entry.NewDraft(j.now())
	return j
}

// UUIDv7 is time ordered and monotonic within a process.
func newV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// SelectMood sets the draft mood, replacing any earlier choice.
func (j *Journal) SelectMood(m mood.Mood) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.draft.Mood = &m
	j.log.Debug("mood selected", slog.String("mood", m.Name))
}

// SelectIntensity sets the draft intensity. Any value is accepted.
func (j *Journal) SelectIntensity(v int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.draft.Intensity = &v
	j.log.Debug("intensity selected", slog.Int("intensity", v))
}

// UpdateText replaces the draft text and returns the new word count.
func (j *Journal) UpdateText(text string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.draft.SetText(text)
}

// SaveEntry promotes the draft to an entry at the head of the history and
// resets the draft. A blank draft yields a *ValidationError and no change.
func (j *Journal) SaveEntry() (entry.Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.draft.Blank() {
		j.log.Info("save rejected", slog.String("reason", ReasonEmptyReflection))
		return entry.Entry{}, &ValidationError{Reason: ReasonEmptyReflection}
	}

	id, err := j.newID()
	if err != nil {
		return entry.Entry{}, err
	}
	now := j.now()
	e := entry.New(id, j.draft, now)

	j.entries = append([]entry.Entry{e}, j.entries...)
	j.draft = entry.NewDraft(now)

	j.log.Info("entry saved",
		slog.String("id", e.ID),
		slog.String("mood", e.MoodName()),
		slog.Int("words", e.WordCount),
		slog.Int("total", len(j.entries)))
	return e.Clone(), nil
}

// ResetDraft discards the draft and starts a new empty one dated today.
func (j *Journal) ResetDraft() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.draft = entry.NewDraft(j.now())
	j.log.Debug("draft reset")
}

// Draft returns a copy of the current draft.
func (j *Journal) Draft() entry.Draft {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.draft.Clone()
}

// Entries returns a copy of the history, newest first.
func (j *Journal) Entries() []entry.Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]entry.Entry, len(j.entries))
	for i, e := range j.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of saved entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Delete removes the entry with the given id.
func (j *Journal) Delete(id string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, e := range j.entries {
		if e.ID == id {
			j.entries = append(j.entries[:i:i], j.entries[i+1:]...)
			j.log.Info("entry deleted", slog.String("id", id))
			return nil
		}
	}
	return ErrNotFound
}
