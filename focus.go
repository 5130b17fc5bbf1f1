package main

import (
	"github.com/BurntSushi/xgb/xproto"
)

// updateCurrent transfers focus to c on the current monitor's visible
// desktop and repaints every client there. A window has a border in
// any case, except if
//   - the window is the only window on its desktop,
//   - the window is fullscreen,
//   - the mode is MONOCLE and the window is neither floating nor
//     transient.
//
// Floating and transient windows are raised above the tiled ones, the
// current window last. Passing nil clears focus and deletes the
// active-window property.
func (wm *WM) updateCurrent(c *Client) {
	m := wm.monitor()
	d := m.desktop()
	if c == nil {
		xproto.DeleteProperty(wm.xc, wm.xroot.Root, wm.netAtoms[netActive])
		d.current, d.prevfocus = nil, nil
		return
	}
	d.focusClient(c)

	single := len(d.clients) == 1
	for _, o := range d.clients {
		width := wm.cfg.BorderWidth
		if single || o.fullscreen || (d.mode == MONOCLE && !o.floating && !o.transient) {
			width = 0
		}
		wm.painter.setBorder(o.win, width, o == d.current)
		if wm.cfg.ClickToFocus {
			xproto.GrabButton(wm.xc, true, o.win,
				uint16(xproto.EventMaskButtonPress),
				xproto.GrabModeAsync, xproto.GrabModeAsync,
				wm.xroot.Root, xproto.CursorNone,
				xproto.ButtonIndex1, xproto.ButtonMaskAny)
		}
		if o.floating || o.transient {
			continue
		}
		wm.raiseWindow(o.win)
	}
	if d.current.floating || d.current.transient {
		wm.raiseWindow(d.current.win)
	}

	xproto.ChangeProperty(wm.xc, xproto.PropModeReplace, wm.xroot.Root,
		wm.netAtoms[netActive], xproto.AtomWindow, 32, 1,
		u32bytes(uint32(d.current.win)))
	xproto.SetInputFocus(wm.xc, xproto.InputFocusPointerRoot,
		d.current.win, xproto.TimeCurrentTime)
	if wm.cfg.ClickToFocus {
		wm.grabButtons(d.current)
	}
	wm.tile(m)
}

// tile recomputes and applies the visible desktop's layout.
func (wm *WM) tile(m *Monitor) {
	d := m.desktop()
	ts := d.tileable()
	if len(ts) == 0 {
		return
	}
	work := m.workArea(d, wm.cfg)
	rects := arrange(d.mode, work, len(ts), d.masterSize, d.growth, wm.cfg.BorderWidth)
	for i, c := range ts {
		wm.moveResizeWindow(c.win, rects[i])
	}
}

// retile re-tiles the current monitor.
func (wm *WM) retile() {
	wm.tile(wm.monitor())
}

// setFullscreen flips the fullscreen state of a client, mirroring it
// into the window's _NET_WM_STATE property. Entering fullscreen covers
// the whole output including the panel strip; leaving it lets the next
// tile pass restore the window, with its floating flag untouched.
func (wm *WM) setFullscreen(c *Client, full bool) {
	if full != c.fullscreen {
		if full {
			xproto.ChangeProperty(wm.xc, xproto.PropModeReplace, c.win,
				wm.netAtoms[netWMState], xproto.AtomAtom, 32, 1,
				u32bytes(uint32(wm.netAtoms[netFullscreen])))
		} else {
			xproto.ChangeProperty(wm.xc, xproto.PropModeReplace, c.win,
				wm.netAtoms[netWMState], xproto.AtomAtom, 32, 0, nil)
		}
	}
	c.fullscreen = full
	m := wm.monitors[c.monitor]
	if full {
		wm.moveResizeWindow(c.win, m.fullscreenRect(wm.cfg))
	}
	if c.monitor == wm.current && m.desktop().contains(c) {
		wm.updateCurrent(c)
	} else if d := m.desktopOf(c); d != nil {
		d.focusClient(c)
	}
}
