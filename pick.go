package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errCancelled = errors.New("cancelled")

// programRunner drives a model until it quits and returns its final state.
type programRunner func(tea.Model) (tea.Model, error)

type pickEnv struct {
	stdout io.Writer
	stderr io.Writer
	// ui is the stream frames are drawn to; colour support is detected on it.
	ui  io.Writer
	run programRunner
}

func runPick(opts pickOpts, env pickEnv) error {
	items, err := loadItems(opts.Input)
	if err != nil {
		return err
	}
	if opts.Reverse {
		items = reverseItems(items)
	}

	if len(items) == 0 {
		msgOut := env.stdout
		if opts.Output == stdoutSink {
			msgOut = env.stderr
		}
		fmt.Fprintln(msgOut, "No items to pick from.")
		return nil
	}

	restored := restoreSelection(opts.Output, items)

	keys := defaultKeyMap()
	st := newStyles(lipgloss.NewRenderer(env.ui), opts.Highlight, opts.Marker)
	m := newPickerModel(
		items,
		newPager(len(items), opts.PageSize, restored),
		keys,
		newFrameRenderer(opts.View, st, keys),
	)

	result, err := env.run(m)
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return errCancelled
	}
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	final := result.(pickerModel)
	c, ok := final.commitment()
	if !ok {
		return errCancelled
	}

	commitSelection(c, opts.Output, opts.NumberOutput, env.stdout, env.stderr)
	return nil
}
