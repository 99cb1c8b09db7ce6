package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type TUI struct {
	input  io.Reader
	output io.Writer

	// lines is fed by a goroutine scanning input, started on the first read
	lines chan string
}

func New() *TUI {
	return &TUI{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// SetInput must be called before the first ReadLine.
func (t *TUI) SetInput(input io.Reader) {
	t.input = input
	t.lines = nil
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// ReadLine prints prompt and reads one line of input with surrounding
// whitespace removed. It returns false once the input is exhausted or ctx is
// done, even if no line has arrived yet.
func (t *TUI) ReadLine(ctx context.Context, prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(t.output, prompt)
	}

	if t.lines == nil {
		t.lines = make(chan string)
		go scanLines(t.input, t.lines)
	}

	select {
	case line, ok := <-t.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-ctx.Done():
		return "", false
	}
}

// scanLines sends every line of input to lines and closes it at the end. A
// read blocked on a terminal can't be interrupted, so the goroutine is left
// behind when the reader gives up; the process is about to exit then.
func scanLines(input io.Reader, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		slog.Error("failed to read user input", "error", err)
	}
}

func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}
