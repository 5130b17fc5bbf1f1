package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const (
	pointerMove = iota
	pointerResize
)

// mouseMotion drives an interactive move or resize of the current
// window. The pointer is grabbed, the window is floated, and every
// motion event reconfigures it until any key or button event ends the
// drag. Map and configure requests and windows dying mid-drag are
// still served through the regular handlers.
func (wm *WM) mouseMotion(kind int) error {
	c := wm.monitor().desktop().current
	if c == nil {
		return nil
	}
	geom, err := xproto.GetGeometry(wm.xc, xproto.Drawable(c.win)).Reply()
	if err != nil || geom == nil {
		return nil
	}
	ptr, err := xproto.QueryPointer(wm.xc, wm.xroot.Root).Reply()
	if err != nil || ptr == nil {
		return nil
	}

	grab, err := xproto.GrabPointer(wm.xc, false, wm.xroot.Root,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|
			xproto.EventMaskButtonMotion|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, xproto.CursorNone, xproto.TimeCurrentTime).Reply()
	if err != nil || grab == nil || grab.Status != xproto.GrabStatusSuccess {
		return nil
	}
	defer xproto.UngrabPointer(wm.xc, xproto.TimeCurrentTime)

	if c.fullscreen {
		wm.setFullscreen(c, false)
	}
	c.floating = true
	wm.updateCurrent(c)

	winX, winY := int(geom.X), int(geom.Y)
	winW, winH := int(geom.Width), int(geom.Height)
	rootX, rootY := int(ptr.RootX), int(ptr.RootY)

	for {
		ev, waitErr := wm.xc.WaitForEvent()
		if ev == nil && waitErr == nil {
			return errorConnection
		}
		if waitErr != nil {
			continue
		}
		if endsDrag(ev) {
			return nil
		}
		switch e := ev.(type) {
		case xproto.ConfigureRequestEvent, xproto.MapRequestEvent,
			xproto.DestroyNotifyEvent, xproto.UnmapNotifyEvent:
			wm.dispatch(ev)
		case xproto.MotionNotifyEvent:
			dx := int(e.RootX) - rootX
			dy := int(e.RootY) - rootY
			if kind == pointerResize {
				w, h := winW+dx, winH+dy
				if w < wm.cfg.MinWindowSize {
					w = wm.cfg.MinWindowSize
				}
				if h < wm.cfg.MinWindowSize {
					h = wm.cfg.MinWindowSize
				}
				wm.resizeWindow(c.win, w, h)
				continue
			}
			wm.moveWindow(c.win, winX+dx, winY+dy)
			if i := wm.monitorAt(int(e.RootX), int(e.RootY)); i != c.monitor {
				wm.clientToMonitor(i)
				wm.changeMonitor(i)
			}
		}
		// The window can go away mid-drag.
		if wm.clients[c.win] != c {
			return nil
		}
	}
}

// endsDrag reports whether an event seen while the pointer is grabbed
// terminates the drag: any key or button activity does.
func endsDrag(ev xgb.Event) bool {
	switch ev.(type) {
	case xproto.KeyPressEvent, xproto.KeyReleaseEvent,
		xproto.ButtonPressEvent, xproto.ButtonReleaseEvent:
		return true
	}
	return false
}
