package main

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"
)

// maxItemLine bounds a single input line; bufio.Scanner's default is 64KiB.
const maxItemLine = 1 << 20

// loadItems reads one item per line, trimming trailing whitespace and
// dropping lines that end up empty.
func loadItems(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	defer f.Close()

	var items []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxItemLine)
	for scanner.Scan() {
		line := trimTrailing(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}

// reverseItems returns a reversed copy; items is left untouched.
func reverseItems(items []string) []string {
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
