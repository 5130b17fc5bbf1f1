package main

import (
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// handleEvent blocks for the next X event and dispatches it. X errors
// are logged and swallowed; a torn connection surfaces as a sentinel so
// the main loop can shut down.
func (wm *WM) handleEvent() error {
	ev, err := wm.xc.WaitForEvent()
	if ev == nil && err == nil {
		return errorConnection
	}
	if err != nil {
		slog.Debug("x11 error", "error", err)
		return nil
	}
	return wm.dispatch(ev)
}

// dispatch routes one event to its handler. The pointer drag loop
// feeds events through here too, so windows appearing or dying
// mid-drag are not lost. Unknown events are dropped.
func (wm *WM) dispatch(ev xgb.Event) error {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return wm.handleKeyPress(e)
	case xproto.ButtonPressEvent:
		return wm.handleButtonPress(e)
	case xproto.MapRequestEvent:
		return wm.handleMapRequest(e)
	case xproto.UnmapNotifyEvent:
		return wm.handleUnmapNotify(e)
	case xproto.DestroyNotifyEvent:
		return wm.handleDestroyNotify(e)
	case xproto.EnterNotifyEvent:
		return wm.handleEnterNotify(e)
	case xproto.MotionNotifyEvent:
		return wm.handleMotionNotify(e)
	case xproto.PropertyNotifyEvent:
		return wm.handlePropertyNotify(e)
	case xproto.ClientMessageEvent:
		return wm.handleClientMessage(e)
	case xproto.ConfigureRequestEvent:
		return wm.handleConfigureRequest(e)
	}
	return nil
}

func (wm *WM) handleKeyPress(e xproto.KeyPressEvent) error {
	sym := wm.keysym(e.Detail)
	state := wm.cleanMask(e.State)
	for _, g := range wm.grabs {
		if g.sym == sym && g.modifiers == state {
			return g.callback()
		}
	}
	return nil
}

func (wm *WM) handleButtonPress(e xproto.ButtonPressEvent) error {
	c, ok := wm.clients[e.Event]
	if !ok {
		return nil
	}
	// Grabs live on every managed window, but only windows on the
	// visible desktop of their monitor may take the focus.
	if c.monitor != wm.current {
		wm.changeMonitor(c.monitor)
	}
	if !wm.monitors[c.monitor].desktop().contains(c) {
		return nil
	}
	if wm.cfg.ClickToFocus && e.Detail == xproto.ButtonIndex1 &&
		wm.monitor().desktop().current != c {
		wm.updateCurrent(c)
	}
	state := wm.cleanMask(e.State)
	for _, b := range wm.buttons {
		if b.button == e.Detail && b.modifiers == state {
			wm.updateCurrent(c)
			return b.callback()
		}
	}
	return nil
}

// handleMapRequest manages a new top-level window: application rules
// decide its desktop, floating state and whether we follow it there.
func (wm *WM) handleMapRequest(e xproto.MapRequestEvent) error {
	attrs, err := xproto.GetWindowAttributes(wm.xc, e.Window).Reply()
	if err == nil && attrs != nil && attrs.OverrideRedirect {
		return nil
	}
	if _, ok := wm.clients[e.Window]; ok {
		return nil
	}

	m := wm.monitor()
	newdsk := m.currentDesktop
	follow, floating := false, false
	if class, instance, ok := wm.windowClass(e.Window); ok {
		for _, r := range wm.cfg.Rules {
			if r.Class != class && r.Class != instance {
				continue
			}
			if r.Desktop >= 0 && r.Desktop < len(m.desktops) {
				newdsk = r.Desktop
			}
			follow = r.Follow
			floating = r.Floating
			break
		}
	}

	c := &Client{win: e.Window, monitor: wm.current}
	if wm.transientFor(e.Window) != 0 {
		c.transient = true
	}
	c.floating = floating || c.transient
	c.urgent = wm.windowUrgent(e.Window)

	d := m.desktops[newdsk]
	d.attach(c, wm.cfg.AttachAside)
	d.focusClient(c)
	wm.clients[e.Window] = c

	mask := uint32(xproto.EventMaskPropertyChange)
	if wm.cfg.FollowMouse {
		mask |= xproto.EventMaskEnterWindow
	}
	xproto.ChangeWindowAttributes(wm.xc, e.Window, xproto.CwEventMask, []uint32{mask})
	wm.grabButtons(c)

	if wm.wantsFullscreen(e.Window) {
		wm.setFullscreen(c, true)
	}
	if newdsk == m.currentDesktop {
		wm.mapWindow(e.Window)
		wm.updateCurrent(c)
	} else if follow {
		wm.changeDesktop(newdsk)
	}
	wm.desktopinfo()
	return nil
}

func (wm *WM) handleUnmapNotify(e xproto.UnmapNotifyEvent) error {
	c, ok := wm.clients[e.Window]
	if !ok || e.Event == wm.xroot.Root {
		return nil
	}
	wm.removeClient(c)
	return nil
}

func (wm *WM) handleDestroyNotify(e xproto.DestroyNotifyEvent) error {
	c, ok := wm.clients[e.Window]
	if !ok {
		return nil
	}
	wm.removeClient(c)
	return nil
}

// handleConfigureRequest honors the window's geometry wishes unless it
// is fullscreen, then re-tiles, so tiled windows snap straight back.
func (wm *WM) handleConfigureRequest(e xproto.ConfigureRequestEvent) error {
	if c, ok := wm.clients[e.Window]; ok && c.fullscreen {
		wm.setFullscreen(c, true)
		return nil
	}

	d := wm.monitor().desktop()
	var mask uint16
	var vals []uint32
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		mask |= xproto.ConfigWindowX
		vals = append(vals, uint32(e.X))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		mask |= xproto.ConfigWindowY
		y := int(e.Y)
		if d.showPanel && wm.cfg.TopPanel {
			y += wm.cfg.PanelHeight
		}
		vals = append(vals, uint32(y))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		mask |= xproto.ConfigWindowWidth
		vals = append(vals, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		mask |= xproto.ConfigWindowHeight
		vals = append(vals, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		mask |= xproto.ConfigWindowBorderWidth
		vals = append(vals, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		mask |= xproto.ConfigWindowSibling
		vals = append(vals, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		mask |= xproto.ConfigWindowStackMode
		vals = append(vals, uint32(e.StackMode))
	}
	if mask != 0 {
		xproto.ConfigureWindow(wm.xc, e.Window, mask, vals)
	}
	wm.retile()
	return nil
}

// handleClientMessage implements the _NET_WM_STATE fullscreen protocol:
// data[0] is the action (0 remove, 1 add, 2 toggle), data[1] or data[2]
// names the state atom.
func (wm *WM) handleClientMessage(e xproto.ClientMessageEvent) error {
	c, ok := wm.clients[e.Window]
	if !ok || e.Type != wm.netAtoms[netWMState] || e.Format != 32 {
		return nil
	}
	data := e.Data.Data32
	fs := uint32(wm.netAtoms[netFullscreen])
	if data[1] != fs && data[2] != fs {
		return nil
	}
	switch data[0] {
	case 0:
		wm.setFullscreen(c, false)
	case 1:
		wm.setFullscreen(c, true)
	case 2:
		wm.setFullscreen(c, !c.fullscreen)
	}
	return nil
}

func (wm *WM) handlePropertyNotify(e xproto.PropertyNotifyEvent) error {
	c, ok := wm.clients[e.Window]
	if !ok || e.Atom != xproto.AtomWmHints {
		return nil
	}
	c.urgent = wm.windowUrgent(e.Window)
	wm.desktopinfo()
	return nil
}

// handleEnterNotify gives focus to the window under the pointer when
// focus-follows-mouse is on.
func (wm *WM) handleEnterNotify(e xproto.EnterNotifyEvent) error {
	if !wm.cfg.FollowMouse || e.Mode != xproto.NotifyModeNormal ||
		e.Detail == xproto.NotifyDetailInferior {
		return nil
	}
	c, ok := wm.clients[e.Event]
	if !ok {
		return nil
	}
	if c.monitor != wm.current {
		wm.changeMonitor(c.monitor)
	}
	m := wm.monitors[c.monitor]
	if m.desktop().contains(c) {
		wm.updateCurrent(c)
	}
	return nil
}

// handleMotionNotify switches the current monitor to the one under the
// pointer.
func (wm *WM) handleMotionNotify(e xproto.MotionNotifyEvent) error {
	if !wm.cfg.FollowMonitor {
		return nil
	}
	if i := wm.monitorAt(int(e.RootX), int(e.RootY)); i != wm.current {
		wm.changeMonitor(i)
	}
	return nil
}

// removeClient forgets a window. Focus passes to the desktop's
// previous focus; the fallback chain runs after detach, so a window
// that was itself the previous focus can never be re-focused.
func (wm *WM) removeClient(c *Client) {
	m := wm.monitors[c.monitor]
	d := m.desktopOf(c)
	if d == nil {
		delete(wm.clients, c.win)
		return
	}
	d.detach(c)
	delete(wm.clients, c.win)
	pf := d.fallbackFocus()
	if c.monitor == wm.current && d == m.desktop() {
		wm.updateCurrent(pf)
		if pf == nil {
			wm.retile()
		}
	} else {
		d.focusClient(pf)
	}
	wm.desktopinfo()
}
