// Package session runs an interactive, line oriented journaling session.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"tableflip.dev/willow/pkg/entry"
	"tableflip.dev/willow/pkg/insights"
	"tableflip.dev/willow/pkg/journal"
	"tableflip.dev/willow/pkg/mood"
	"tableflip.dev/willow/pkg/printers"
)

const (
	msgSaved      = "Your reflection has been saved with love 💚"
	msgDraftSaved = "Draft saved quietly 💚"
	msgEmpty      = "Please write something before saving your reflection."
	msgCleared    = "Draft cleared."
)

const helpText = `Write freely; every line is added to today's reflection.

  :mood <name>       how are you feeling? (:moods lists them)
  :intensity <n>     how strongly, for example 1 to 5
  :save              save the reflection
  :reset             start over
  :draft             show the reflection so far
  :entries           list saved reflections
  :show <n>          read the n-th reflection from :entries
  :delete <n>        delete the n-th reflection from :entries
  :insights          totals, moods and some encouragement
  :prompt            today's prompt
  :moods             the moods you can choose from
  :help              this text
  :quit              leave`

// Session wires a journal to a line reader and a printer.
type Session struct {
	Journal  *journal.Journal
	Insights *insights.Aggregator
	Printer  *printers.PrettyPrint
	Reader   LineReader

	// Autosave is the draft notification period, zero disables it.
	Autosave time.Duration
	// Notify is called on each autosave tick with a copy of the draft. It
	// must not block. The default prints a quiet notice.
	Notify func(entry.Draft)

	Now func() time.Time
	Log *slog.Logger

	printMu sync.Mutex
}

type readResult struct {
	line string
	err  error
}

// Do runs the session until the input ends, the user quits or ctx is done.
func (s *Session) Do(ctx context.Context) error {
	if s.Journal == nil || s.Reader == nil || s.Printer == nil {
		return errors.New("session: journal, reader and printer are required")
	}
	if s.Insights == nil {
		s.Insights = insights.New(s.Journal)
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Log == nil {
		s.Log = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.print(func(pp *printers.PrettyPrint) {
		pp.Title(s.Now().Format("Monday, January 2, 2006"))
		pp.Prompt(s.Insights.DailyPrompt(s.Now()))
		pp.NewLine()
	})

	if s.Autosave > 0 {
		go s.autosave(ctx)
	}

	lines := make(chan readResult)
	go func() {
		for {
			line, err := s.Reader.Readline()
			select {
			case lines <- readResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !errors.Is(err, ErrInterrupt) {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-lines:
			switch {
			case errors.Is(r.err, io.EOF), errors.Is(r.err, ErrInterrupt):
				s.Log.Debug("session ended", slog.Int("entries", s.Journal.Len()))
				return nil
			case r.err != nil:
				return fmt.Errorf("session: read input: %w", r.err)
			}
			if quit := s.Handle(r.line); quit {
				return nil
			}
		}
	}
}

func (s *Session) autosave(ctx context.Context) {
	ticker := time.NewTicker(s.Autosave)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d := s.Journal.Draft()
			if d.Blank() {
				continue
			}
			if s.Notify != nil {
				s.Notify(d)
				continue
			}
			s.print(func(pp *printers.PrettyPrint) {
				pp.Message(msgDraftSaved)
			})
		}
	}
}

func (s *Session) print(fn func(pp *printers.PrettyPrint)) {
	s.printMu.Lock()
	defer s.printMu.Unlock()
	fn(s.Printer)
}

// Handle processes one line of input and reports whether the session should
// end.
func (s *Session) Handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		s.write(line)
		return false
	}

	fields := strings.Fields(trimmed)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":mood":
		s.selectMood(args)
	case ":intensity":
		s.selectIntensity(args)
	case ":save":
		s.save()
	case ":reset":
		s.Journal.ResetDraft()
		s.print(func(pp *printers.PrettyPrint) { pp.Message(msgCleared) })
	case ":draft":
		d := s.Journal.Draft()
		s.print(func(pp *printers.PrettyPrint) { pp.Draft(d) })
	case ":entries":
		all := s.Journal.Entries()
		s.print(func(pp *printers.PrettyPrint) { pp.Entries(all...) })
	case ":show":
		if e, ok := s.nth(args); ok {
			s.print(func(pp *printers.PrettyPrint) { pp.Entry(e) })
		}
	case ":delete":
		if e, ok := s.nth(args); ok {
			s.delete(e)
		}
	case ":insights":
		summary := s.Insights.Summary()
		s.print(func(pp *printers.PrettyPrint) { pp.Insights(summary) })
	case ":prompt":
		prompt := s.Insights.DailyPrompt(s.Now())
		s.print(func(pp *printers.PrettyPrint) { pp.Prompt(prompt) })
	case ":moods":
		s.print(func(pp *printers.PrettyPrint) { pp.Moods(mood.DefaultMoods()) })
	case ":help":
		s.print(func(pp *printers.PrettyPrint) {
			pp.Printf("%s\n", helpText)
		})
	default:
		s.warn(fmt.Sprintf("Unknown command %s, try :help", cmd))
	}
	return false
}

func (s *Session) write(line string) {
	current := s.Journal.Draft().Text
	if current == "" && strings.TrimSpace(line) == "" {
		return
	}
	text := line
	if current != "" {
		text = current + "\n" + line
	}
	n := s.Journal.UpdateText(text)
	s.print(func(pp *printers.PrettyPrint) { pp.WordCount(n) })
}

func (s *Session) selectMood(args []string) {
	if len(args) != 1 {
		s.warn("Usage: :mood <name>, one of " + strings.Join(mood.Names(), ", "))
		return
	}
	m, err := mood.ForName(args[0])
	if err != nil {
		s.warn(fmt.Sprintf("%q is not a mood, choose one of %s", args[0], strings.Join(mood.Names(), ", ")))
		return
	}
	s.Journal.SelectMood(m)
	s.print(func(pp *printers.PrettyPrint) {
		pp.Printf("Feeling %s. How intense is it? (:intensity 1-5)\n", pp.Mood(m))
	})
}

func (s *Session) selectIntensity(args []string) {
	if len(args) != 1 {
		s.warn("Usage: :intensity <n>")
		return
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		s.warn(fmt.Sprintf("%q is not a number", args[0]))
		return
	}
	s.Journal.SelectIntensity(v)
	s.print(func(pp *printers.PrettyPrint) {
		pp.Printf("Intensity %d.\n", v)
	})
}

func (s *Session) save() {
	e, err := s.Journal.SaveEntry()
	if err != nil {
		if errors.Is(err, journal.ErrValidation) {
			s.warn(msgEmpty)
			return
		}
		s.Log.Error("save failed", slog.String("error", err.Error()))
		s.warn(fmt.Sprintf("Could not save: %v", err))
		return
	}
	encouragement := s.Insights.Encouragement()
	prompt := s.Insights.DailyPrompt(s.Now())
	s.print(func(pp *printers.PrettyPrint) {
		pp.Message(msgSaved)
		pp.Printf("%d words on %s.\n", e.WordCount, e.Date)
		pp.Prompt(encouragement)
		pp.NewLine()
		pp.Prompt(prompt)
	})
}

// nth resolves a 1-based position in the history, newest first.
func (s *Session) nth(args []string) (entry.Entry, bool) {
	all := s.Journal.Entries()
	if len(args) != 1 {
		s.warn("Usage: give the reflection number from :entries")
		return entry.Entry{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(all) {
		s.warn(fmt.Sprintf("No reflection %s, see :entries", args[0]))
		return entry.Entry{}, false
	}
	return all[n-1], true
}

func (s *Session) delete(e entry.Entry) {
	if err := s.Journal.Delete(e.ID); err != nil {
		s.warn(fmt.Sprintf("Could not delete: %v", err))
		return
	}
	s.print(func(pp *printers.PrettyPrint) { pp.Message("Reflection deleted.") })
}

func (s *Session) warn(msg string) {
	s.print(func(pp *printers.PrettyPrint) { pp.Warn(msg) })
}
