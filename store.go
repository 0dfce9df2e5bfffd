package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// stdoutSink as the output path sends the committed value to stdout.
const stdoutSink = "-"

// commitment is the final pick. index is 1-based.
type commitment struct {
	value string
	index int
}

// restoreSelection finds the previously saved value in items. A missing,
// unreadable or unmatched save yields -1; none of those are errors.
func restoreSelection(path string, items []string) int {
	if path == "" || path == stdoutSink {
		return -1
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return -1
	}
	return slices.Index(items, trimTrailing(string(data)))
}

func saveSelection(path, value string) error {
	if err := os.WriteFile(path, []byte(trimTrailing(value)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func saveIndex(path string, index int) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(index)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// commitSelection persists c to every configured target. Each target is
// attempted independently and a failure is reported on errOut; none of them
// stop the pick from finishing.
func commitSelection(c commitment, output, numberOutput string, out, errOut io.Writer) {
	if output == stdoutSink {
		if _, err := fmt.Fprintln(out, trimTrailing(c.value)); err != nil {
			fmt.Fprintf(errOut, "failed to save selection: %v\n", err)
		}
	} else if err := saveSelection(output, c.value); err != nil {
		fmt.Fprintf(errOut, "failed to save selection: %v\n", err)
	}

	if numberOutput != "" {
		if err := saveIndex(numberOutput, c.index); err != nil {
			fmt.Fprintf(errOut, "failed to save selection number: %v\n", err)
		}
	}
}
