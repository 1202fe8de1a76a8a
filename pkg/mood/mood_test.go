package mood

import (
	"errors"
	"testing"
)

func TestDefaultMoodsCatalog(t *testing.T) {
	moods := DefaultMoods()
	if len(moods) != 8 {
		t.Fatalf("expected 8 moods, got %d", len(moods))
	}
	if moods[0].Name != "peaceful" || moods[7].Name != "hopeful" {
		t.Fatalf("unexpected catalog order: %v", Names())
	}

	moods[0].Name = "changed"
	if DefaultMoods()[0].Name != "peaceful" {
		t.Fatalf("catalog mutated through returned copy")
	}
}

func TestForName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "peaceful", want: "peaceful"},
		{in: "  Sad ", want: "sad"},
		{in: "HOPEFUL", want: "hopeful"},
		{in: "bored", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ForName(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownMood) {
				t.Fatalf("ForName(%q): expected ErrUnknownMood, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ForName(%q): unexpected error: %v", tt.in, err)
		}
		if got.Name != tt.want {
			t.Fatalf("ForName(%q) = %q, want %q", tt.in, got.Name, tt.want)
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b, err := MustForName("peaceful").RGB()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 0x99 || g != 0xad || b != 0x7d {
		t.Fatalf("unexpected rgb %d,%d,%d", r, g, b)
	}

	if _, _, _, err := (Mood{Name: "broken", Color: "nope"}).RGB(); err == nil {
		t.Fatalf("expected error for invalid color")
	}
}
