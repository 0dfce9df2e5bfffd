package main

// pager is the navigation state of the picker: the selected item and the
// first item of the page being shown. start is always a multiple of size
// and start <= selected < start+size.
//
// Transitions are value methods so a state is never mutated in place.
type pager struct {
	total    int
	size     int
	selected int
	start    int
}

// newPager seeds the state. A restored index outside [0, total) is ignored.
func newPager(total, size, restored int) pager {
	p := pager{total: total, size: size}
	if restored >= 0 && restored < total {
		p.selected = restored
		p.start = size * (restored / size)
	}
	return p
}

func (p pager) up() pager {
	if p.selected == 0 {
		return p
	}
	p.selected--
	if p.selected < p.start {
		p.start = max(0, p.start-p.size)
	}
	return p
}

// left is an alternate single step back.
func (p pager) left() pager {
	return p.up()
}

func (p pager) down() pager {
	if p.selected+1 >= p.total {
		return p
	}
	p.selected++
	if p.selected >= p.start+p.size {
		p.start += p.size
	}
	return p
}

func (p pager) pageUp() pager {
	if p.selected-p.size <= 0 {
		p.selected = 0
		p.start = 0
		return p
	}
	p.selected -= p.size
	p.start -= p.size
	return p
}

func (p pager) pageDown() pager {
	last := p.total - 1
	if p.selected+p.size >= last {
		p.selected = last
		p.start = p.size * (last / p.size)
		return p
	}
	p.selected += p.size
	p.start += p.size
	return p
}

// page returns the 0-based index of the current page.
func (p pager) page() int {
	return p.start / p.size
}

func (p pager) pages() int {
	return (p.total + p.size - 1) / p.size
}

// window returns the half-open range of item indices on the current page.
func (p pager) window() (lo, hi int) {
	return p.start, min(p.start+p.size, p.total)
}
