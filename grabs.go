package main

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

const (
	mod1 = xproto.ModMask1
	mod4 = xproto.ModMask4
)

// Grab represents a key grab and its callback.
type Grab struct {
	sym       xproto.Keysym
	modifiers uint16
	codes     []xproto.Keycode
	callback  func() error
}

// ButtonGrab represents a pointer button grab on client windows and
// its callback.
type ButtonGrab struct {
	button    xproto.Button
	modifiers uint16
	callback  func() error
}

func (wm *WM) getGrabs() []*Grab {
	grabs := []*Grab{
		{
			sym:       'q',
			modifiers: mod1 | xproto.ModMaskControl,
			callback:  func() error { return errorQuit },
		},
		{
			sym:       xkReturn,
			modifiers: mod4,
			callback:  func() error { return wm.spawn(wm.cfg.Terminal) },
		},
		{
			sym:       'v',
			modifiers: mod4,
			callback:  func() error { return wm.spawn(wm.cfg.Menu) },
		},
		{
			sym:       'q',
			modifiers: mod1,
			callback:  wm.killClient,
		},
		{
			sym:       'b',
			modifiers: mod1,
			callback:  wm.togglePanel,
		},
		{
			sym:       xkBackSpace,
			modifiers: mod1,
			callback:  wm.focusUrgent,
		},
		{
			sym:       'j',
			modifiers: mod1,
			callback:  wm.nextWin,
		},
		{
			sym:       'k',
			modifiers: mod1,
			callback:  wm.prevWin,
		},
		{
			sym:       'j',
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  wm.moveDown,
		},
		{
			sym:       'k',
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  wm.moveUp,
		},
		{
			sym:       xkReturn,
			modifiers: mod1,
			callback:  wm.swapMaster,
		},
		{
			sym:       'h',
			modifiers: mod1,
			callback:  func() error { return wm.resizeMaster(-10) },
		},
		{
			sym:       'l',
			modifiers: mod1,
			callback:  func() error { return wm.resizeMaster(+10) },
		},
		{
			sym:       'o',
			modifiers: mod1,
			callback:  func() error { return wm.resizeStack(-10) },
		},
		{
			sym:       'p',
			modifiers: mod1,
			callback:  func() error { return wm.resizeStack(+10) },
		},
		{
			sym:       't',
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  func() error { return wm.switchMode(TILE) },
		},
		{
			sym:       'm',
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  func() error { return wm.switchMode(MONOCLE) },
		},
		{
			sym:       'b',
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  func() error { return wm.switchMode(BSTACK) },
		},
		{
			sym:       'g',
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  func() error { return wm.switchMode(GRID) },
		},
		{
			sym:       xkTab,
			modifiers: mod1,
			callback:  wm.lastDesktop,
		},
		{
			sym:       xkLeft,
			modifiers: mod1,
			callback:  func() error { return wm.rotate(-1) },
		},
		{
			sym:       xkRight,
			modifiers: mod1,
			callback:  func() error { return wm.rotate(+1) },
		},
		{
			sym:       xkLeft,
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  func() error { return wm.rotateFilled(-1) },
		},
		{
			sym:       xkRight,
			modifiers: mod1 | xproto.ModMaskShift,
			callback:  func() error { return wm.rotateFilled(+1) },
		},
		{
			sym:       xkTab,
			modifiers: mod4,
			callback:  wm.lastMonitor,
		},
		{
			sym:       xkLeft,
			modifiers: mod4,
			callback:  func() error { return wm.rotateMonitor(-1) },
		},
		{
			sym:       xkRight,
			modifiers: mod4,
			callback:  func() error { return wm.rotateMonitor(+1) },
		},
	}

	// Out-of-range desktop and monitor indices no-op, so nine grabs
	// each cover any configuration.
	for i := 0; i < 9 && i < wm.cfg.Desktops; i++ {
		i := i
		grabs = append(grabs,
			&Grab{
				sym:       xproto.Keysym('1' + i),
				modifiers: mod1,
				callback:  func() error { return wm.changeDesktop(i) },
			},
			&Grab{
				sym:       xproto.Keysym('1' + i),
				modifiers: mod1 | xproto.ModMaskShift,
				callback:  func() error { return wm.clientToDesktop(i) },
			})
	}
	for i := 0; i < 9; i++ {
		i := i
		grabs = append(grabs,
			&Grab{
				sym:       xproto.Keysym('1' + i),
				modifiers: mod4,
				callback:  func() error { return wm.changeMonitor(i) },
			},
			&Grab{
				sym:       xproto.Keysym('1' + i),
				modifiers: mod4 | xproto.ModMaskShift,
				callback:  func() error { return wm.clientToMonitor(i) },
			})
	}
	return grabs
}

func (wm *WM) getButtons() []*ButtonGrab {
	return []*ButtonGrab{
		{
			button:    xproto.ButtonIndex1,
			modifiers: mod1,
			callback:  func() error { return wm.mouseMotion(pointerMove) },
		},
		{
			button:    xproto.ButtonIndex3,
			modifiers: mod1,
			callback:  func() error { return wm.mouseMotion(pointerResize) },
		},
	}
}

// cleanMask strips num-lock and caps-lock out of a modifier state.
func (wm *WM) cleanMask(mask uint16) uint16 {
	return mask &^ (wm.numlockMask | xproto.ModMaskLock)
}

// modifierVariants are the extra masks a grab has to cover so that the
// binding fires regardless of the num-lock and caps-lock state.
func (wm *WM) modifierVariants() [4]uint16 {
	return [4]uint16{0, xproto.ModMaskLock, wm.numlockMask, wm.numlockMask | xproto.ModMaskLock}
}

// setupKeyboard loads the keycode to keysym table and discovers which
// modifier bit num-lock is mapped to.
func (wm *WM) setupKeyboard() error {
	const (
		loKey = 8
		hiKey = 255
	)
	reply, err := xproto.GetKeyboardMapping(wm.xc, loKey, hiKey-loKey+1).Reply()
	if err != nil {
		return fmt.Errorf("keyboard mapping: %w", err)
	}
	if reply == nil || reply.KeysymsPerKeycode == 0 {
		return fmt.Errorf("keyboard mapping: empty reply")
	}
	per := int(reply.KeysymsPerKeycode)
	for i := 0; i < hiKey-loKey+1; i++ {
		wm.keymap[loKey+i] = reply.Keysyms[i*per : (i+1)*per]
	}

	modmap, err := xproto.GetModifierMapping(wm.xc).Reply()
	if err != nil {
		return fmt.Errorf("modifier mapping: %w", err)
	}
	per = int(modmap.KeycodesPerModifier)
	for mod := 0; mod < 8; mod++ {
		for j := 0; j < per; j++ {
			code := modmap.Keycodes[mod*per+j]
			if code == 0 {
				continue
			}
			for _, sym := range wm.keymap[code] {
				if sym == xkNumLock {
					wm.numlockMask = 1 << uint(mod)
				}
			}
		}
	}
	return nil
}

// keysym resolves a keycode to its unshifted keysym.
func (wm *WM) keysym(code xproto.Keycode) xproto.Keysym {
	syms := wm.keymap[code]
	if len(syms) == 0 {
		return 0
	}
	return syms[0]
}

// grabKeys resolves every binding's keysym to its keycodes and grabs
// them on the root window, in every lock-modifier variant.
func (wm *WM) grabKeys() {
	xproto.UngrabKey(wm.xc, xproto.Keycode(xproto.GrabAny), wm.xroot.Root, xproto.ModMaskAny)
	wm.grabs = wm.getGrabs()
	for _, g := range wm.grabs {
		g.codes = nil
		for code, syms := range wm.keymap {
			for _, sym := range syms {
				if sym == g.sym {
					g.codes = append(g.codes, xproto.Keycode(code))
					break
				}
			}
		}
		for _, code := range g.codes {
			for _, extra := range wm.modifierVariants() {
				xproto.GrabKey(wm.xc, true, wm.xroot.Root,
					g.modifiers|extra, code,
					xproto.GrabModeAsync, xproto.GrabModeAsync)
			}
		}
	}
}

// grabButtons installs the pointer bindings on one client window.
func (wm *WM) grabButtons(c *Client) {
	for _, b := range wm.buttons {
		for _, extra := range wm.modifierVariants() {
			xproto.GrabButton(wm.xc, true, c.win,
				uint16(xproto.EventMaskButtonPress),
				xproto.GrabModeAsync, xproto.GrabModeAsync,
				wm.xroot.Root, xproto.CursorNone,
				byte(b.button), b.modifiers|extra)
		}
	}
}
