package main

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var pagerCmp = cmp.AllowUnexported(pager{})

func TestNewPager(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		size     int
		restored int
		want     pager
	}{
		{name: "no restore", total: 25, size: 10, restored: -1, want: pager{total: 25, size: 10}},
		{name: "restore first page", total: 25, size: 10, restored: 3, want: pager{total: 25, size: 10, selected: 3}},
		{name: "restore page boundary", total: 25, size: 10, restored: 10, want: pager{total: 25, size: 10, selected: 10, start: 10}},
		{name: "restore last item", total: 25, size: 10, restored: 24, want: pager{total: 25, size: 10, selected: 24, start: 20}},
		{name: "restore out of range", total: 25, size: 10, restored: 25, want: pager{total: 25, size: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newPager(tt.total, tt.size, tt.restored)
			if diff := cmp.Diff(tt.want, got, pagerCmp); diff != "" {
				t.Errorf("pager mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPagerUpDownBoundaries(t *testing.T) {
	p := newPager(5, 2, -1)

	if got := p.up(); got != p {
		t.Fatalf("up at first item should be a no-op, got %+v", got)
	}
	if got := p.left(); got != p {
		t.Fatalf("left at first item should be a no-op, got %+v", got)
	}

	last := newPager(5, 2, 4)
	if got := last.down(); got != last {
		t.Fatalf("down at last item should be a no-op, got %+v", got)
	}
}

func TestPagerDownCrossesPage(t *testing.T) {
	p := newPager(5, 2, -1)

	p = p.down()
	if p.selected != 1 || p.start != 0 {
		t.Fatalf("expected selected=1 start=0, got selected=%d start=%d", p.selected, p.start)
	}
	p = p.down()
	if p.selected != 2 || p.start != 2 {
		t.Fatalf("expected selected=2 start=2, got selected=%d start=%d", p.selected, p.start)
	}
	p = p.down().down()
	if p.selected != 4 || p.start != 4 {
		t.Fatalf("expected selected=4 start=4, got selected=%d start=%d", p.selected, p.start)
	}

	p = p.up()
	if p.selected != 3 || p.start != 2 {
		t.Fatalf("expected selected=3 start=2, got selected=%d start=%d", p.selected, p.start)
	}
	p = p.left().left()
	if p.selected != 1 || p.start != 0 {
		t.Fatalf("expected selected=1 start=0, got selected=%d start=%d", p.selected, p.start)
	}
}

func TestPagerPageDown(t *testing.T) {
	p := newPager(25, 10, 5)

	p = p.pageDown()
	want := pager{total: 25, size: 10, selected: 15, start: 10}
	if diff := cmp.Diff(want, p, pagerCmp); diff != "" {
		t.Fatalf("first page down mismatch (-want +got):\n%s", diff)
	}

	p = p.pageDown()
	want = pager{total: 25, size: 10, selected: 24, start: 20}
	if diff := cmp.Diff(want, p, pagerCmp); diff != "" {
		t.Fatalf("second page down mismatch (-want +got):\n%s", diff)
	}

	if got := p.pageDown(); got != p {
		t.Fatalf("page down at last item should stay put, got %+v", got)
	}
}

func TestPagerPageDownWithinLastPage(t *testing.T) {
	p := newPager(25, 10, 21)
	p = p.pageDown()
	if p.selected != 24 || p.start != 20 {
		t.Fatalf("expected clamp to selected=24 start=20, got selected=%d start=%d", p.selected, p.start)
	}
}

func TestPagerPageUp(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		want     pager
	}{
		{name: "lockstep", selected: 24, want: pager{total: 25, size: 10, selected: 14, start: 10}},
		{name: "lands on zero", selected: 10, want: pager{total: 25, size: 10}},
		{name: "overshoot clamps", selected: 7, want: pager{total: 25, size: 10}},
		{name: "first item", selected: 0, want: pager{total: 25, size: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newPager(25, 10, tt.selected).pageUp()
			if diff := cmp.Diff(tt.want, got, pagerCmp); diff != "" {
				t.Errorf("page up mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPagerSingleItem(t *testing.T) {
	p := newPager(1, 10, -1)
	moves := map[string]func(pager) pager{
		"up":       pager.up,
		"left":     pager.left,
		"down":     pager.down,
		"pageUp":   pager.pageUp,
		"pageDown": pager.pageDown,
	}
	for name, move := range moves {
		if got := move(p); got != p {
			t.Errorf("%s on a single item should be a no-op, got %+v", name, got)
		}
	}
	if p.pages() != 1 {
		t.Fatalf("expected 1 page, got %d", p.pages())
	}
}

func TestPagerPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 3, size: 10, want: 1},
		{total: 10, size: 10, want: 1},
		{total: 11, size: 10, want: 2},
		{total: 25, size: 10, want: 3},
		{total: 7, size: 1, want: 7},
	}
	for _, tt := range tests {
		if got := newPager(tt.total, tt.size, -1).pages(); got != tt.want {
			t.Errorf("pages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestPagerWindow(t *testing.T) {
	lo, hi := newPager(20, 10, 15).window()
	if lo != 10 || hi != 20 {
		t.Fatalf("exact multiple: expected [10,20), got [%d,%d)", lo, hi)
	}

	lo, hi = newPager(25, 10, 22).window()
	if lo != 20 || hi != 25 {
		t.Fatalf("partial last page: expected [20,25), got [%d,%d)", lo, hi)
	}
}

func TestPagerUpDownInverse(t *testing.T) {
	for total := 2; total <= 12; total++ {
		for size := 1; size <= 5; size++ {
			for sel := 1; sel < total; sel++ {
				p := newPager(total, size, sel)
				if got := p.up().down(); got != p {
					t.Fatalf("total=%d size=%d sel=%d: up then down gave %+v, want %+v", total, size, sel, got, p)
				}
			}
			for sel := 0; sel < total-1; sel++ {
				p := newPager(total, size, sel)
				if got := p.down().up(); got != p {
					t.Fatalf("total=%d size=%d sel=%d: down then up gave %+v, want %+v", total, size, sel, got, p)
				}
			}
		}
	}
}

func TestPagerPageDownConverges(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for size := 1; size <= 7; size++ {
			p := newPager(total, size, -1)
			for i := 0; i <= total; i++ {
				p = p.pageDown()
			}
			if p.selected != total-1 {
				t.Fatalf("total=%d size=%d: expected selected=%d, got %d", total, size, total-1, p.selected)
			}
			if again := p.pageDown(); again != p {
				t.Fatalf("total=%d size=%d: page down not idempotent at the end", total, size)
			}
		}
	}
}

func TestPagerInvariants(t *testing.T) {
	moves := []func(pager) pager{pager.up, pager.left, pager.down, pager.pageUp, pager.pageDown}
	rng := rand.New(rand.NewSource(1))

	for total := 1; total <= 30; total++ {
		for size := 1; size <= 12; size++ {
			p := newPager(total, size, rng.Intn(total+2)-1)
			for step := 0; step < 200; step++ {
				p = moves[rng.Intn(len(moves))](p)
				if p.selected < 0 || p.selected >= total {
					t.Fatalf("total=%d size=%d step=%d: selected %d out of range", total, size, step, p.selected)
				}
				if p.start > p.selected || p.selected >= p.start+size {
					t.Fatalf("total=%d size=%d step=%d: selected %d outside page starting at %d", total, size, step, p.selected, p.start)
				}
				if p.start%size != 0 {
					t.Fatalf("total=%d size=%d step=%d: start %d not page aligned", total, size, step, p.start)
				}
			}
		}
	}
}
