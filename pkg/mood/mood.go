// Package mood defines the fixed catalog of moods an entry can be tagged with.
package mood

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownMood is returned when a name does not match any catalog mood.
var ErrUnknownMood = errors.New("mood: unknown mood")

// Mood is a named emotional category with its display glyph and color.
type Mood struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

var catalog = []Mood{
	{Name: "peaceful", Emoji: "😌", Color: "#99ad7d"},
	{Name: "grateful", Emoji: "🙏", Color: "#d9aa28"},
	{Name: "anxious", Emoji: "😰", Color: "#819295"},
	{Name: "excited", Emoji: "✨", Color: "#ea9566"},
	{Name: "sad", Emoji: "😢", Color: "#e1b1b1"},
	{Name: "content", Emoji: "😊", Color: "#99ad7d"},
	{Name: "frustrated", Emoji: "😤", Color: "#ea9566"},
	{Name: "hopeful", Emoji: "🌱", Color: "#d9aa28"},
}

// DefaultMoods returns a copy of the catalog in display order.
func DefaultMoods() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the catalog names in display order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, m := range catalog {
		names = append(names, m.Name)
	}
	return names
}

// ForName looks up a mood by name, ignoring case and surrounding space.
func ForName(name string) (Mood, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range catalog {
		if m.Name == key {
			return m, nil
		}
	}
	return Mood{}, fmt.Errorf("%w %q", ErrUnknownMood, name)
}

// MustForName is ForName that panics on unknown names.
func MustForName(name string) Mood {
	m, err := ForName(name)
	if err != nil {
		panic(err)
	}
	return m
}

// RGB returns the 8-bit channels of the mood color.
func (m Mood) RGB() (uint8, uint8, uint8, error) {
	c, err := colorful.Hex(m.Color)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("mood: parse color for %s: %w", m.Name, err)
	}
	r, g, b := c.RGB255()
	return r, g, b, nil
}

func (m Mood) String() string {
	return fmt.Sprintf("%s %s", m.Emoji, m.Name)
}
