package session

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// LineReader yields one line of user input per call and io.EOF at the end.
type LineReader interface {
	Readline() (string, error)
}

// ErrInterrupt is returned by a LineReader when the user presses Ctrl-C.
var ErrInterrupt = errors.New("session: interrupted")

// NewReader picks an interactive line editor when in is a terminal and a
// plain line scanner otherwise. The returned close func must be called.
func NewReader(in *os.File, out io.Writer, prompt string) (LineReader, func() error, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return NewScanner(in), func() error { return nil }, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
		Stdin:           readline.NewCancelableStdin(in),
		Stdout:          out,
	})
	if err != nil {
		return nil, nil, err
	}
	return &terminalReader{rl: rl}, rl.Close, nil
}

type terminalReader struct {
	rl *readline.Instance
}

func (t *terminalReader) Readline() (string, error) {
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return line, ErrInterrupt
	}
	return line, err
}

// Scanner reads newline separated input without line editing.
type Scanner struct {
	s *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

func (s *Scanner) Readline() (string, error) {
	if s.s.Scan() {
		return s.s.Text(), nil
	}
	if err := s.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
