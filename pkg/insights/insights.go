// Package insights computes read-only statistics over a journal history and
// picks the daily prompt and encouragement messages.
package insights

import (
	"math/rand"
	"sort"
	"time"

	"tableflip.dev/willow/pkg/entry"
)

// TopMoods is the number of moods reported by MoodFrequency.
const TopMoods = 5

// History is the read side of a journal.
type History interface {
	Entries() []entry.Entry
}

// Random picks an index in [0, n).
type Random interface {
	Intn(n int) int
}

// MoodCount is a mood name with the number of entries tagged with it.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// Summary bundles every statistic for a single render.
type Summary struct {
	TotalEntries  int         `json:"totalEntries"`
	TotalWords    int         `json:"totalWords"`
	Moods         []MoodCount `json:"moods"`
	Encouragement string      `json:"encouragement"`
}

// Aggregator derives statistics from a History on demand. It never mutates
// the history.
type Aggregator struct {
	history History
	random  Random
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithRandom replaces the random source used for encouragements.
func WithRandom(r Random) Option {
	return func(a *Aggregator) {
		if r != nil {
			a.random = r
		}
	}
}

// New returns an Aggregator over h.
func New(h History, opts ...Option) *Aggregator {
	a := &Aggregator{
		history: h,
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Aggregator) TotalEntries() int {
	return len(a.history.Entries())
}

func (a *Aggregator) TotalWords() int {
	return TotalWords(a.history.Entries())
}

func (a *Aggregator) MoodFrequency() []MoodCount {
	return MoodFrequency(a.history.Entries())
}

func (a *Aggregator) DailyPrompt(date time.Time) string {
	return DailyPrompt(date)
}

// Encouragement returns a uniformly chosen message.
func (a *Aggregator) Encouragement() string {
	n := len(Encouragements)
	i := a.random.Intn(n) % n
	if i < 0 {
		i += n
	}
	return Encouragements[i]
}

// Summary computes every statistic from one snapshot of the history.
func (a *Aggregator) Summary() Summary {
	all := a.history.Entries()
	return Summary{
		TotalEntries:  len(all),
		TotalWords:    TotalWords(all),
		Moods:         MoodFrequency(all),
		Encouragement: a.Encouragement(),
	}
}

// TotalWords sums the word counts of entries.
func TotalWords(entries []entry.Entry) int {
	total := 0
	for _, e := range entries {
		total += e.WordCount
	}
	return total
}

// MoodFrequency counts entries per mood and returns the TopMoods most
// frequent, most frequent first. Ties keep the order in which the moods were
// first seen. Entries without a mood are skipped.
func MoodFrequency(entries []entry.Entry) []MoodCount {
	index := make(map[string]int)
	counts := make([]MoodCount, 0)
	for _, e := range entries {
		name := e.MoodName()
		if name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			counts[i].Count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, MoodCount{Mood: name, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > TopMoods {
		counts = counts[:TopMoods]
	}
	return counts
}

// DailyPrompt picks the prompt for the calendar day of date. The same day
// always yields the same prompt.
func DailyPrompt(date time.Time) string {
	return Prompts[date.YearDay()%len(Prompts)]
}
