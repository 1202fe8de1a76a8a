package insights

import (
	"testing"
	"time"

	"tableflip.dev/willow/pkg/entry"
	"tableflip.dev/willow/pkg/journal"
	"tableflip.dev/willow/pkg/mood"
)

type history []entry.Entry

func (h history) Entries() []entry.Entry {
	return h
}

type sequence struct {
	values []int
	next   int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func withMood(name string, words int) entry.Entry {
	e := entry.Entry{WordCount: words}
	if name != "" {
		m := mood.MustForName(name)
		e.Mood = &m
	}
	return e
}

func TestEmptyHistory(t *testing.T) {
	a := New(history(nil))
	if got := a.TotalEntries(); got != 0 {
		t.Fatalf("expected 0 entries, got %d", got)
	}
	if got := a.TotalWords(); got != 0 {
		t.Fatalf("expected 0 words, got %d", got)
	}
	if got := a.MoodFrequency(); len(got) != 0 {
		t.Fatalf("expected no moods, got %v", got)
	}
}

func TestTotalWords(t *testing.T) {
	h := history{withMood("sad", 3), withMood("", 0), withMood("peaceful", 78), withMood("", 12)}
	a := New(h)
	if got := a.TotalWords(); got != 93 {
		t.Fatalf("expected 93 words, got %d", got)
	}
	if got := a.TotalEntries(); got != 4 {
		t.Fatalf("expected 4 entries, got %d", got)
	}
}

func TestMoodFrequency(t *testing.T) {
	tests := []struct {
		name  string
		moods []string
		want  []MoodCount
	}{
		{
			name:  "ranked",
			moods: []string{"peaceful", "peaceful", "sad"},
			want:  []MoodCount{{"peaceful", 2}, {"sad", 1}},
		},
		{
			name:  "moodless excluded",
			moods: []string{"peaceful", "", ""},
			want:  []MoodCount{{"peaceful", 1}},
		},
		{
			name:  "only moodless",
			moods: []string{"", ""},
			want:  []MoodCount{},
		},
		{
			name:  "ties keep first seen order",
			moods: []string{"sad", "hopeful", "hopeful", "sad", "anxious"},
			want:  []MoodCount{{"sad", 2}, {"hopeful", 2}, {"anxious", 1}},
		},
		{
			name:  "top five",
			moods: []string{"peaceful", "grateful", "anxious", "excited", "sad", "content", "content", "frustrated"},
			want:  []MoodCount{{"content", 2}, {"peaceful", 1}, {"grateful", 1}, {"anxious", 1}, {"excited", 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := make(history, 0, len(tt.moods))
			for _, m := range tt.moods {
				h = append(h, withMood(m, 1))
			}
			got := New(h).MoodFrequency()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
			if n := New(h).TotalEntries(); n != len(tt.moods) {
				t.Fatalf("expected %d entries, got %d", len(tt.moods), n)
			}
		})
	}
}

func TestDailyPrompt(t *testing.T) {
	day := time.Date(2023, time.March, 1, 8, 0, 0, 0, time.UTC)
	first := DailyPrompt(day)
	if again := DailyPrompt(day.Add(10 * time.Hour)); again != first {
		t.Fatalf("same day gave different prompts: %q vs %q", first, again)
	}
	if next := DailyPrompt(day.AddDate(0, 0, 1)); next == first {
		t.Fatalf("consecutive days gave the same prompt %q", first)
	}

	// 2022 is not a leap year.
	start := time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)
	if a, b := DailyPrompt(start), DailyPrompt(start.AddDate(0, 0, 365)); a != b {
		t.Fatalf("expected yearly cycle, got %q and %q", a, b)
	}

	// Day 1 of the year maps to index 1.
	if got := DailyPrompt(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)); got != Prompts[1] {
		t.Fatalf("unexpected prompt for Jan 1: %q", got)
	}
	// Day 15 wraps to index 0.
	if got := DailyPrompt(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)); got != Prompts[0] {
		t.Fatalf("unexpected prompt for Jan 15: %q", got)
	}

	a := New(history(nil))
	if got := a.DailyPrompt(day); got != first {
		t.Fatalf("aggregator prompt %q differs from %q", got, first)
	}
}

func TestEncouragement(t *testing.T) {
	seq := &sequence{values: []int{0, 4, 2, 7, -1}}
	a := New(history(nil), WithRandom(seq))

	want := []string{Encouragements[0], Encouragements[4], Encouragements[2], Encouragements[2], Encouragements[4]}
	for i, w := range want {
		if got := a.Encouragement(); got != w {
			t.Fatalf("call %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestEncouragementDefaultRandom(t *testing.T) {
	valid := make(map[string]bool, len(Encouragements))
	for _, m := range Encouragements {
		valid[m] = true
	}
	a := New(history(nil))
	for i := 0; i < 100; i++ {
		if msg := a.Encouragement(); !valid[msg] {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestSummaryOverJournal(t *testing.T) {
	j := journal.New()
	for _, tc := range []struct {
		mood string
		text string
	}{
		{"sad", "rough day at work"},
		{"", "no mood today"},
		{"sad", "still low"},
		{"hopeful", "tomorrow will be better"},
	} {
		if tc.mood != "" {
			j.SelectMood(mood.MustForName(tc.mood))
		}
		j.UpdateText(tc.text)
		if _, err := j.SaveEntry(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	s := New(j, WithRandom(&sequence{values: []int{1}})).Summary()
	if s.TotalEntries != 4 {
		t.Fatalf("expected 4 entries, got %d", s.TotalEntries)
	}
	if s.TotalWords != 4+3+2+4 {
		t.Fatalf("expected 13 words, got %d", s.TotalWords)
	}
	if len(s.Moods) != 2 || s.Moods[0] != (MoodCount{"sad", 2}) || s.Moods[1] != (MoodCount{"hopeful", 1}) {
		t.Fatalf("unexpected moods %v", s.Moods)
	}
	if s.Encouragement != Encouragements[1] {
		t.Fatalf("unexpected encouragement %q", s.Encouragement)
	}
	if j.Len() != 4 {
		t.Fatalf("summary mutated history")
	}
}
