package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// WM holds the complete window manager state: the X connection, the
// monitor list with their desktops and clients, the grab tables, and
// the resolved atoms.
type WM struct {
	xc    *xgb.Conn
	xroot *xproto.ScreenInfo
	cfg   *Config

	monitors []*Monitor
	current  int
	previous int

	// clients indexes every managed window; each Client knows its
	// monitor, the desktop is found by searching that monitor.
	clients map[xproto.Window]*Client

	wmAtoms  [wmCount]xproto.Atom
	netAtoms [netCount]xproto.Atom

	painter     *Painter
	keymap      [256][]xproto.Keysym
	numlockMask uint16
	grabs       []*Grab
	buttons     []*ButtonGrab

	status io.Writer
}

// NewWM allocates a new WM on the given connection. The status line
// goes to standard output.
func NewWM(xc *xgb.Conn, cfg *Config) *WM {
	return &WM{
		xc:      xc,
		cfg:     cfg,
		clients: make(map[xproto.Window]*Client),
		painter: NewPainter(xc),
		status:  os.Stdout,
	}
}

// monitor returns the current monitor.
func (wm *WM) monitor() *Monitor {
	return wm.monitors[wm.current]
}

// Init claims window management on the default screen and brings up
// monitors, atoms, colors and grabs.
func (wm *WM) Init() error {
	wm.xroot = xproto.Setup(wm.xc).DefaultScreen(wm.xc)

	if err := wm.becomeWM(); err != nil {
		return err
	}
	if err := wm.initAtoms(); err != nil {
		return err
	}
	if err := wm.initMonitors(); err != nil {
		return err
	}
	if err := wm.painter.Init(wm.xroot, wm.cfg); err != nil {
		return fmt.Errorf("painter: %w", err)
	}
	if err := wm.setupKeyboard(); err != nil {
		return err
	}
	wm.buttons = wm.getButtons()
	wm.grabKeys()

	supported := make([]uint32, netCount)
	for i, a := range wm.netAtoms {
		supported[i] = uint32(a)
	}
	xproto.ChangeProperty(wm.xc, xproto.PropModeReplace, wm.xroot.Root,
		wm.netAtoms[netSupported], xproto.AtomAtom, 32,
		uint32(netCount), u32bytes(supported...))

	wm.changeMonitor(wm.cfg.DefaultMonitor)
	wm.changeDesktop(wm.cfg.DefaultDesktop)
	wm.desktopinfo()
	return nil
}

// becomeWM registers for substructure redirection on the root window.
// Only one client may do that at a time, so an access error means
// another window manager is running.
func (wm *WM) becomeWM() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskPropertyChange |
		xproto.EventMaskButtonPress)
	if wm.cfg.FollowMonitor {
		mask |= xproto.EventMaskPointerMotion
	}
	err := xproto.ChangeWindowAttributesChecked(wm.xc, wm.xroot.Root,
		xproto.CwEventMask, []uint32{mask}).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return errorAnotherWM
		}
		return err
	}
	return nil
}

// initMonitors discovers the outputs via Xinerama, falling back to one
// monitor spanning the root window. A visible panel strip is taken off
// every monitor's height up front.
func (wm *WM) initMonitors() error {
	panel := 0
	if wm.cfg.ShowPanel {
		panel = wm.cfg.PanelHeight
	}

	if err := xinerama.Init(wm.xc); err == nil {
		reply, err := xinerama.QueryScreens(wm.xc).Reply()
		if err != nil {
			return fmt.Errorf("xinerama: %w", err)
		}
		for _, s := range reply.ScreenInfo {
			wm.monitors = append(wm.monitors, newMonitor(wm.cfg,
				int(s.XOrg), int(s.YOrg), int(s.Width), int(s.Height)-panel))
		}
	}
	if len(wm.monitors) == 0 {
		wm.monitors = append(wm.monitors, newMonitor(wm.cfg, 0, 0,
			int(wm.xroot.WidthInPixels), int(wm.xroot.HeightInPixels)-panel))
	}
	if wm.cfg.DefaultMonitor >= len(wm.monitors) {
		wm.cfg.DefaultMonitor = 0
	}
	return nil
}

// Deinit releases the grabs, asks every remaining window to close and
// drops input focus back to the root.
func (wm *WM) Deinit() {
	xproto.UngrabKey(wm.xc, xproto.Keycode(xproto.GrabAny),
		wm.xroot.Root, xproto.ModMaskAny)
	if tree, err := xproto.QueryTree(wm.xc, wm.xroot.Root).Reply(); err == nil && tree != nil {
		for _, w := range tree.Children {
			wm.deleteWindow(w)
		}
	}
	xproto.SetInputFocus(wm.xc, xproto.InputFocusPointerRoot,
		wm.xroot.Root, xproto.TimeCurrentTime)
}
