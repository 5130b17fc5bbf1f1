package main

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Client is a managed top-level window plus its window-manager flags.
// transient is kept separate from floating: floating windows can be
// reset to their tiling positions, transients always float.
type Client struct {
	win     xproto.Window
	monitor int

	urgent     bool
	transient  bool
	fullscreen bool
	floating   bool
}

// fft reports whether the client is ignored by the tiling layout
// (fullscreen, floating or transient).
func (c *Client) fft() bool {
	return c.fullscreen || c.floating || c.transient
}

func (wm *WM) moveResizeWindow(w xproto.Window, r Rect) {
	xproto.ConfigureWindow(wm.xc, w,
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(r.X), uint32(r.Y), uint32(r.W), uint32(r.H)})
}

func (wm *WM) moveWindow(w xproto.Window, x, y int) {
	xproto.ConfigureWindow(wm.xc, w,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)})
}

func (wm *WM) resizeWindow(w xproto.Window, width, height int) {
	xproto.ConfigureWindow(wm.xc, w,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)})
}

func (wm *WM) raiseWindow(w xproto.Window) {
	xproto.ConfigureWindow(wm.xc, w,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

func (wm *WM) mapWindow(w xproto.Window) {
	xproto.MapWindow(wm.xc, w)
}

func (wm *WM) unmapWindow(w xproto.Window) {
	xproto.UnmapWindow(wm.xc, w)
}

// deleteWindow asks the window to close itself, per ICCCM 4.2.8.
func (wm *WM) deleteWindow(w xproto.Window) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   wm.wmAtoms[wmProtocols],
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(wm.wmAtoms[wmDeleteWindow]),
			uint32(xproto.TimeCurrentTime),
			0,
			0,
			0,
		}),
	}
	xproto.SendEvent(wm.xc, false, w, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

// hasDeleteProtocol reports whether the window advertises
// WM_DELETE_WINDOW in its WM_PROTOCOLS property.
func (wm *WM) hasDeleteProtocol(w xproto.Window) bool {
	prop, err := xproto.GetProperty(wm.xc, false, w, wm.wmAtoms[wmProtocols],
		xproto.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil || prop == nil {
		return false
	}
	for v := prop.Value; len(v) >= 4; v = v[4:] {
		if decodeAtom(v) == wm.wmAtoms[wmDeleteWindow] {
			return true
		}
	}
	return false
}

// windowClass reads WM_CLASS; the property carries the instance and
// the class string back to back, each NUL terminated.
func (wm *WM) windowClass(w xproto.Window) (class, instance string, ok bool) {
	prop, err := xproto.GetProperty(wm.xc, false, w, xproto.AtomWmClass,
		xproto.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil || prop == nil || len(prop.Value) == 0 {
		return "", "", false
	}
	v := prop.Value
	i := 0
	for i < len(v) && v[i] != 0 {
		i++
	}
	instance = string(v[:i])
	if i+1 < len(v) {
		j := i + 1
		for j < len(v) && v[j] != 0 {
			j++
		}
		class = string(v[i+1 : j])
	}
	return class, instance, true
}

// transientFor reads WM_TRANSIENT_FOR and returns the window this one
// is a dialog of, or zero.
func (wm *WM) transientFor(w xproto.Window) xproto.Window {
	prop, err := xproto.GetProperty(wm.xc, false, w, xproto.AtomWmTransientFor,
		xproto.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil || prop == nil || len(prop.Value) < 4 {
		return 0
	}
	return xproto.Window(decodeAtom(prop.Value))
}

// wantsFullscreen reports whether the window's _NET_WM_STATE property
// already names _NET_WM_STATE_FULLSCREEN when it asks to be mapped.
func (wm *WM) wantsFullscreen(w xproto.Window) bool {
	prop, err := xproto.GetProperty(wm.xc, false, w, wm.netAtoms[netWMState],
		xproto.AtomAtom, 0, 1).Reply()
	if err != nil || prop == nil || prop.Format != 32 || len(prop.Value) < 4 {
		return false
	}
	return decodeAtom(prop.Value) == wm.netAtoms[netFullscreen]
}

// wmHintUrgency is the XUrgencyHint bit of the WM_HINTS flags word.
const wmHintUrgency = 1 << 8

// windowUrgent reads the urgency bit out of WM_HINTS.
func (wm *WM) windowUrgent(w xproto.Window) bool {
	prop, err := xproto.GetProperty(wm.xc, false, w, xproto.AtomWmHints,
		xproto.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil || prop == nil || prop.Format != 32 || len(prop.Value) < 4 {
		return false
	}
	flags := uint32(prop.Value[0]) | uint32(prop.Value[1])<<8 |
		uint32(prop.Value[2])<<16 | uint32(prop.Value[3])<<24
	return flags&wmHintUrgency != 0
}
