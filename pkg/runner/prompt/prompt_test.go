package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/willow/pkg/insights"
)

func TestPromptJSON(t *testing.T) {
	on := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	p := &Prompt{On: &on, JSON: true, Out: &buf}
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got.Date != "2024-01-15" || got.Prompt != insights.Prompts[0] {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestPromptText(t *testing.T) {
	on := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	p := &Prompt{On: &on, Out: &buf}
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Monday, January 1, 2024") {
		t.Fatalf("missing date in output:\n%s", out)
	}
	if !strings.Contains(strings.Join(strings.Fields(out), " "), insights.Prompts[1]) {
		t.Fatalf("missing prompt in output:\n%s", out)
	}
}
