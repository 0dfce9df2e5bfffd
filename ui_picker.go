package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickState int

const (
	pickRunning pickState = iota
	pickCommitted
	pickCancelled
)

// pickerModel pages through items and lets the user commit exactly one.
type pickerModel struct {
	items    []string
	pager    pager
	keys     keyMap
	renderer frameRenderer
	state    pickState
}

func newPickerModel(items []string, p pager, keys keyMap, r frameRenderer) pickerModel {
	return pickerModel{
		items:    items,
		pager:    p,
		keys:     keys,
		renderer: r,
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != pickRunning {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.state = pickCancelled
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			m.state = pickCommitted
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.pager = m.pager.up()
		case key.Matches(msg, m.keys.Left):
			m.pager = m.pager.left()
		case key.Matches(msg, m.keys.Down):
			m.pager = m.pager.down()
		case key.Matches(msg, m.keys.PageUp):
			m.pager = m.pager.pageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.pager = m.pager.pageDown()
		}
	}
	return m, nil
}

// View keeps drawing after commit or cancel so the last frame stays on screen.
func (m pickerModel) View() string {
	return m.renderer.render(m.items, m.pager).String()
}

func (m pickerModel) commitment() (commitment, bool) {
	if m.state != pickCommitted {
		return commitment{}, false
	}
	return commitment{
		value: m.items[m.pager.selected],
		index: m.pager.selected + 1,
	}, true
}
