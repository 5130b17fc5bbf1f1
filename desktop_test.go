package main

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func names(d *Desktop) []int {
	ids := make([]int, len(d.clients))
	for i, c := range d.clients {
		ids[i] = int(c.win)
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newTestDesktop(n int) (*Desktop, []*Client) {
	d := &Desktop{}
	cs := make([]*Client, n)
	for i := range cs {
		cs[i] = &Client{win: xproto.Window(1 + i)}
		d.attach(cs[i], true)
		d.focusClient(cs[i])
	}
	return d, cs
}

func TestAttach(t *testing.T) {
	t.Run("aside appends", func(t *testing.T) {
		d := &Desktop{}
		for i := 0; i < 3; i++ {
			d.attach(&Client{win: xproto.Window(1 + i)}, true)
		}
		if got := names(d); !equalIDs(got, []int{1, 2, 3}) {
			t.Errorf("clients = %v, want [1 2 3]", got)
		}
	})
	t.Run("head prepends", func(t *testing.T) {
		d := &Desktop{}
		for i := 0; i < 3; i++ {
			d.attach(&Client{win: xproto.Window(1 + i)}, false)
		}
		if got := names(d); !equalIDs(got, []int{3, 2, 1}) {
			t.Errorf("clients = %v, want [3 2 1]", got)
		}
	})
}

func TestDetachClearsFocus(t *testing.T) {
	d, cs := newTestDesktop(3)
	if d.current != cs[2] || d.prevfocus != cs[1] {
		t.Fatalf("current/prevfocus = %v/%v", d.current, d.prevfocus)
	}
	d.detach(cs[2])
	if d.current != nil {
		t.Errorf("current not cleared after detaching it")
	}
	if d.prevfocus != cs[1] {
		t.Errorf("prevfocus clobbered by detaching another client")
	}
	d.detach(cs[1])
	if d.prevfocus != nil {
		t.Errorf("prevfocus not cleared after detaching it")
	}
}

func TestFocusClientSwapsPrevfocus(t *testing.T) {
	d, cs := newTestDesktop(3)

	d.focusClient(cs[0])
	if d.current != cs[0] || d.prevfocus != cs[2] {
		t.Fatalf("after focus(0): current=%v prevfocus=%v", d.current.win, d.prevfocus.win)
	}

	// Focusing prevfocus swaps roles; the new prevfocus comes from the
	// list order.
	d.focusClient(cs[2])
	if d.current != cs[2] {
		t.Errorf("current = %v, want %v", d.current.win, cs[2].win)
	}
	if d.prevfocus != cs[1] {
		t.Errorf("prevfocus = %v, want list predecessor %v", d.prevfocus.win, cs[1].win)
	}

	// Re-focusing current changes nothing.
	d.focusClient(cs[2])
	if d.current != cs[2] || d.prevfocus != cs[1] {
		t.Errorf("re-focus moved current/prevfocus")
	}
}

func TestNextPrevClient(t *testing.T) {
	d, cs := newTestDesktop(3)
	if d.nextClient(cs[2]) != cs[0] {
		t.Errorf("next of tail should wrap to head")
	}
	if d.prevClient(cs[0]) != cs[2] {
		t.Errorf("prev of head should wrap to tail")
	}
	if d.nextClient(cs[0]) != cs[1] || d.prevClient(cs[2]) != cs[1] {
		t.Errorf("inner stepping broken")
	}

	single, _ := newTestDesktop(1)
	if single.nextClient(single.current) != nil || single.prevClient(single.current) != nil {
		t.Errorf("cycling a single client should yield nil")
	}
	if d.nextClient(&Client{win: 99}) != nil {
		t.Errorf("cycling from a foreign client should yield nil")
	}
}

func TestMoveDownUp(t *testing.T) {
	t.Run("adjacent swap", func(t *testing.T) {
		d, cs := newTestDesktop(3)
		d.focusClient(cs[1])
		if !d.moveDown() {
			t.Fatal("moveDown returned false")
		}
		if got := names(d); !equalIDs(got, []int{1, 3, 2}) {
			t.Errorf("after moveDown: %v, want [1 3 2]", got)
		}
		if !d.moveUp() {
			t.Fatal("moveUp returned false")
		}
		if got := names(d); !equalIDs(got, []int{1, 2, 3}) {
			t.Errorf("moveUp did not undo moveDown: %v", got)
		}
	})

	t.Run("tail wraps to head", func(t *testing.T) {
		d, cs := newTestDesktop(3)
		d.focusClient(cs[2])
		d.moveDown()
		if got := names(d); !equalIDs(got, []int{3, 1, 2}) {
			t.Errorf("after tail moveDown: %v, want [3 1 2]", got)
		}
		d.moveUp()
		if got := names(d); !equalIDs(got, []int{1, 2, 3}) {
			t.Errorf("moveUp did not undo the wrap: %v", got)
		}
	})

	t.Run("single client", func(t *testing.T) {
		d, _ := newTestDesktop(1)
		if d.moveDown() || d.moveUp() {
			t.Errorf("single client should not move")
		}
	})
}

func TestSwapMaster(t *testing.T) {
	t.Run("promotes current", func(t *testing.T) {
		d, cs := newTestDesktop(4)
		d.focusClient(cs[2])
		if got := d.swapMaster(); got != cs[2] {
			t.Fatalf("swapMaster returned %v", got)
		}
		if got := names(d); !equalIDs(got, []int{3, 1, 2, 4}) {
			t.Errorf("after swapMaster: %v, want [3 1 2 4]", got)
		}
	})

	t.Run("master swaps with next", func(t *testing.T) {
		d, cs := newTestDesktop(3)
		d.focusClient(cs[0])
		if got := d.swapMaster(); got != cs[1] {
			t.Fatalf("swapMaster on master returned %v", got)
		}
		if got := names(d); !equalIDs(got, []int{2, 1, 3}) {
			t.Errorf("after master swapMaster: %v, want [2 1 3]", got)
		}
	})

	t.Run("no-op cases", func(t *testing.T) {
		d, _ := newTestDesktop(1)
		if d.swapMaster() != nil {
			t.Errorf("single client swapMaster should be nil")
		}
		empty := &Desktop{}
		if empty.swapMaster() != nil {
			t.Errorf("empty desktop swapMaster should be nil")
		}
	})
}

func TestFallbackFocus(t *testing.T) {
	d, cs := newTestDesktop(3)
	if got := d.fallbackFocus(); got != cs[1] {
		t.Errorf("fallbackFocus = %v, want prevfocus (window 2)", got)
	}

	// Previous focus gone: whoever is still current wins.
	d.detach(cs[1])
	if got := d.fallbackFocus(); got != cs[2] {
		t.Errorf("fallbackFocus = %v, want current (window 3)", got)
	}

	// Both refs gone: the list head.
	d.detach(cs[2])
	if got := d.fallbackFocus(); got != cs[0] {
		t.Errorf("fallbackFocus = %v, want head (window 1)", got)
	}

	d.detach(cs[0])
	if got := d.fallbackFocus(); got != nil {
		t.Errorf("fallbackFocus on empty desktop = %v, want nil", got)
	}
}

func TestTileable(t *testing.T) {
	d, cs := newTestDesktop(4)
	cs[1].floating = true
	cs[3].fullscreen = true
	ts := d.tileable()
	if len(ts) != 2 || ts[0] != cs[0] || ts[1] != cs[2] {
		t.Errorf("tileable = %v", ts)
	}
}

func TestHasUrgent(t *testing.T) {
	d, cs := newTestDesktop(2)
	if d.hasUrgent() {
		t.Errorf("fresh desktop should not be urgent")
	}
	cs[1].urgent = true
	if !d.hasUrgent() {
		t.Errorf("urgent client not reported")
	}
}
