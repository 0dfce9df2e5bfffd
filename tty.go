package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// terminal is the handle the picker draws to and reads keys from. Raw mode
// is entered by the program's Run and restored before Run returns, on every
// path out of it.
type terminal struct {
	out  *os.File
	opts []tea.ProgramOption
}

// openTerminal picks the UI stream. When the committed value goes to stdout
// the frames go to stderr, and when stdin is a pipe keys come from the
// controlling TTY instead.
func openTerminal(ctx context.Context, valueOnStdout bool) terminal {
	out := os.Stdout
	if valueOnStdout {
		out = os.Stderr
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInputTTY())
	}

	return terminal{out: out, opts: opts}
}

func (t terminal) run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, t.opts...).Run()
}
