package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

type viewMode int

const (
	viewAll viewMode = iota
	viewMinimal
)

func parseViewMode(s string) viewMode {
	if s == "all" {
		return viewAll
	}
	return viewMinimal
}

// chrome reports whether the header and footer are drawn.
func (v viewMode) chrome() bool {
	return v == viewAll
}

type styles struct {
	selected lipgloss.Style
	item     lipgloss.Style
	help     help.Styles
	marker   string
	blank    string
}

// newStyles binds the row and header styles to r so colour support is
// detected on the writer the picker actually draws to.
func newStyles(r *lipgloss.Renderer, highlight, marker string) styles {
	return styles{
		selected: r.NewStyle().Background(lipgloss.Color(highlight)),
		item:     r.NewStyle(),
		help:     newHelpStyles(r),
		marker:   marker,
		blank:    strings.Repeat(" ", lipgloss.Width(marker)),
	}
}

// newHelpStyles mirrors the bubbles help defaults on r instead of the
// package-level renderer, which always probes stdout.
func newHelpStyles(r *lipgloss.Renderer) help.Styles {
	key := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	desc := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
	sep := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})

	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
}

// frame is one full redraw. Its height depends only on the page size, the
// view mode and the page count, never on which page is shown.
type frame struct {
	lines []string
	// selectedRow is the offset of the highlighted row from the first line.
	selectedRow int
}

func (f frame) height() int {
	return len(f.lines)
}

// String joins the lines and ends with a newline so the final, empty line is
// the one the inline renderer clears on exit.
func (f frame) String() string {
	return strings.Join(f.lines, "\n") + "\n"
}

type frameRenderer struct {
	view   viewMode
	styles styles
	keys   keyMap
	help   help.Model
}

func newFrameRenderer(view viewMode, st styles, keys keyMap) frameRenderer {
	h := help.New()
	h.Styles = st.help
	return frameRenderer{
		view:   view,
		styles: st,
		keys:   keys,
		help:   h,
	}
}

func (r frameRenderer) render(items []string, p pager) frame {
	var f frame
	var lines []string

	if r.view.chrome() {
		lines = append(lines, r.help.ShortHelpView(r.keys.ShortHelp()), "")
	}

	lo, hi := p.window()
	for i := lo; i < hi; i++ {
		if i == p.selected {
			f.selectedRow = len(lines)
			lines = append(lines, r.styles.selected.Render(r.styles.marker+items[i]))
			continue
		}
		lines = append(lines, r.styles.item.Render(r.styles.blank+items[i]))
	}
	for i := hi - lo; i < p.size; i++ {
		lines = append(lines, "")
	}

	if r.view.chrome() && p.pages() > 1 {
		lines = append(lines, "", "Page "+pageCounter(p).View())
	}

	f.lines = lines
	return f
}

func pageCounter(p pager) paginator.Model {
	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.PerPage = p.size
	pg.SetTotalPages(p.total)
	pg.Page = p.page()
	return pg
}
