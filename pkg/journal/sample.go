package journal

import (
	"time"

	"tableflip.dev/willow/pkg/entry"
	"tableflip.dev/willow/pkg/mood"
)

const sampleText = "Today I took a moment to really notice the small things around me. " +
	"The way the morning light filtered through my window, the sound of birds outside, " +
	"and the warmth of my coffee cup in my hands. Sometimes I get so caught up in the rush " +
	"of daily life that I forget to appreciate these gentle moments. I'm learning that " +
	"mindfulness doesn't have to be complicated - it can be as simple as pausing to breathe " +
	"and notice what's right in front of me."

// SeedSample appends a demonstration entry dated one day ago to the end of
// the history so a fresh session has something to show.
func (j *Journal) SeedSample() (entry.Entry, error) {
	id, err := j.newID()
	if err != nil {
		return entry.Entry{}, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	d := entry.NewDraft(j.now())
	m := mood.MustForName("peaceful")
	intensity := 3
	d.Mood = &m
	d.Intensity = &intensity
	d.SetText(sampleText)

	e := entry.New(id, d, j.now().Add(-24*time.Hour))
	j.entries = append(j.entries, e)
	return e.Clone(), nil
}
