package main

import "math"

// Monitor is one physical output. Its rectangle is the work area:
// the panel strip is already subtracted from h at discovery time.
// A monitor owns a fixed set of desktops created at startup; the
// desktops themselves hold all per-desktop state, the monitor only
// remembers which one is showing.
type Monitor struct {
	x, y, w, h int

	desktops        []*Desktop
	currentDesktop  int
	previousDesktop int
}

func newMonitor(cfg *Config, x, y, w, h int) *Monitor {
	m := &Monitor{
		x: x, y: y, w: w, h: h,
		desktops:       make([]*Desktop, cfg.Desktops),
		currentDesktop: cfg.DefaultDesktop,
	}
	for i := range m.desktops {
		m.desktops[i] = &Desktop{
			mode:       cfg.Mode(),
			masterSize: initialMasterSize(cfg.Mode(), w, h, cfg.MasterSize),
			showPanel:  cfg.ShowPanel,
		}
	}
	return m
}

// initialMasterSize is the master area in pixels along the split axis
// of the given mode.
func initialMasterSize(mode Mode, w, h int, frac float64) int {
	axis := w
	if mode == BSTACK {
		axis = h
	}
	return int(math.Round(float64(axis) * frac))
}

// desktop returns the currently visible desktop.
func (m *Monitor) desktop() *Desktop {
	return m.desktops[m.currentDesktop]
}

// desktopOf finds the desktop holding c, or nil.
func (m *Monitor) desktopOf(c *Client) *Desktop {
	for _, d := range m.desktops {
		if d.contains(c) {
			return d
		}
	}
	return nil
}

// contains reports whether the point lies strictly inside the monitor
// rectangle.
func (m *Monitor) contains(x, y int) bool {
	return m.x < x && x < m.x+m.w && m.y < y && y < m.y+m.h
}

// workArea is the rectangle the layout engine may use for the given
// desktop: the panel strip is reclaimed while the panel is hidden, and
// a visible top panel pushes the origin down.
func (m *Monitor) workArea(d *Desktop, cfg *Config) Rect {
	r := Rect{X: m.x, Y: m.y, W: m.w, H: m.h}
	if !d.showPanel {
		r.H += cfg.PanelHeight
	} else if cfg.TopPanel {
		r.Y += cfg.PanelHeight
	}
	return r
}

// fullscreenRect covers the whole output including the panel strip.
func (m *Monitor) fullscreenRect(cfg *Config) Rect {
	return Rect{X: m.x, Y: m.y, W: m.w, H: m.h + cfg.PanelHeight}
}

// monitorAt returns the index of the monitor whose rectangle contains
// the point, falling back to the current monitor.
func (wm *WM) monitorAt(x, y int) int {
	for i, m := range wm.monitors {
		if m.contains(x, y) {
			return i
		}
	}
	return wm.current
}
