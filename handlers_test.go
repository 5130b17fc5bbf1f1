package main

import (
	"io"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func newTestWM(desktops int) *WM {
	cfg := testConfig()
	cfg.Desktops = desktops
	return &WM{
		cfg:      cfg,
		monitors: []*Monitor{newMonitor(cfg, 0, 0, 1280, 800)},
		clients:  make(map[xproto.Window]*Client),
		status:   io.Discard,
	}
}

func manageTestClient(wm *WM, win xproto.Window, desktop int) *Client {
	c := &Client{win: win, monitor: 0}
	d := wm.monitors[0].desktops[desktop]
	d.attach(c, true)
	d.focusClient(c)
	wm.clients[win] = c
	return c
}

// A window that dies while it is a hidden desktop's previous focus must
// not come back as that desktop's current client.
func TestRemoveClientDeadPrevfocus(t *testing.T) {
	wm := newTestWM(2)
	manageTestClient(wm, 1, 1)
	w2 := manageTestClient(wm, 2, 1)
	w3 := manageTestClient(wm, 3, 1)

	d := wm.monitors[0].desktops[1]
	if d.current != w3 || d.prevfocus != w2 {
		t.Fatalf("setup: current=%v prevfocus=%v", d.current, d.prevfocus)
	}

	wm.removeClient(w2)

	if _, ok := wm.clients[2]; ok {
		t.Errorf("removed window still in the client index")
	}
	if d.contains(w2) {
		t.Errorf("removed client still in the desktop list")
	}
	if d.current != w3 {
		t.Errorf("current = %v, want the untouched window 3", d.current)
	}
	if d.prevfocus != nil && !d.contains(d.prevfocus) {
		t.Errorf("prevfocus points outside the client list")
	}
}

func TestRemoveClientCurrentFocusesPrevfocus(t *testing.T) {
	wm := newTestWM(2)
	w1 := manageTestClient(wm, 1, 1)
	w2 := manageTestClient(wm, 2, 1)
	w3 := manageTestClient(wm, 3, 1)

	d := wm.monitors[0].desktops[1]
	wm.removeClient(w3)

	if d.current != w2 {
		t.Errorf("current = %v, want previous focus (window 2)", d.current)
	}
	if d.prevfocus != w1 {
		t.Errorf("prevfocus = %v, want window 1", d.prevfocus)
	}
}

func TestRemoveLastClientEmptiesDesktop(t *testing.T) {
	wm := newTestWM(2)
	c := manageTestClient(wm, 1, 1)
	d := wm.monitors[0].desktops[1]

	wm.removeClient(c)

	if len(d.clients) != 0 || d.current != nil || d.prevfocus != nil {
		t.Errorf("desktop not empty after removing its only client: %+v", d)
	}
}

// Button grabs sit on every managed window, but a press reported for a
// window on a hidden desktop must not steal the visible desktop's
// focus.
func TestButtonPressOnHiddenWindow(t *testing.T) {
	wm := newTestWM(2)
	visible := manageTestClient(wm, 1, 0)
	hidden := manageTestClient(wm, 2, 1)

	ev := xproto.ButtonPressEvent{Detail: xproto.ButtonIndex1, Event: hidden.win}
	if err := wm.handleButtonPress(ev); err != nil {
		t.Fatal(err)
	}

	d := wm.monitor().desktop()
	if d.current != visible {
		t.Errorf("visible desktop current = %v, want window 1 untouched", d.current)
	}
	if d.contains(hidden) {
		t.Errorf("hidden client leaked into the visible desktop's list")
	}
}

// The drag loop feeds destroy notifies through dispatch, so a window
// dying mid-drag is unmanaged like any other.
func TestDispatchDestroyRemovesClient(t *testing.T) {
	wm := newTestWM(2)
	c := manageTestClient(wm, 7, 1)

	if err := wm.dispatch(xproto.DestroyNotifyEvent{Window: c.win}); err != nil {
		t.Fatal(err)
	}
	if _, ok := wm.clients[c.win]; ok {
		t.Errorf("destroyed window still managed")
	}
	if wm.monitors[0].desktops[1].contains(c) {
		t.Errorf("destroyed client still in its desktop list")
	}
}
