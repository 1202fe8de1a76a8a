package moods

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/willow/pkg/mood"
	"tableflip.dev/willow/pkg/printers"
)

func TestMoodsTable(t *testing.T) {
	var buf bytes.Buffer
	m := &Moods{NoColor: true, Out: &buf}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Mood", "😌 peaceful", "#99ad7d", "🌱 hopeful"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestMoodsJSON(t *testing.T) {
	var buf bytes.Buffer
	m := &Moods{JSON: true, Out: &buf}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []mood.Mood
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 8 || got[4].Name != "sad" {
		t.Fatalf("unexpected moods %+v", got)
	}
}

func TestMoodsMatchesSessionTable(t *testing.T) {
	var buf bytes.Buffer
	m := &Moods{NoColor: true, Out: &buf}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want bytes.Buffer
	pp := &printers.PrettyPrint{Out: &want, NoColor: true}
	pp.Moods(mood.DefaultMoods())

	if buf.String() != want.String() {
		t.Fatalf("moods table differs from the printer's:\n%s\nwant:\n%s", buf.String(), want.String())
	}
}
