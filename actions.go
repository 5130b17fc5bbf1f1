package main

import (
	"log/slog"
	"os/exec"
	"syscall"

	"github.com/BurntSushi/xgb/xproto"
)

// changeDesktop shows desktop i on the current monitor. To avoid
// flicker the incoming windows are mapped before the outgoing ones are
// unmapped, the focused window first on the way in and last on the way
// out.
func (wm *WM) changeDesktop(i int) error {
	m := wm.monitor()
	if i < 0 || i >= len(m.desktops) || i == m.currentDesktop {
		return nil
	}
	old := m.desktop()
	m.previousDesktop = m.currentDesktop
	m.currentDesktop = i
	d := m.desktop()

	if d.current != nil {
		wm.mapWindow(d.current.win)
	}
	for _, c := range d.clients {
		wm.mapWindow(c.win)
	}
	wm.updateCurrent(d.current)
	for _, c := range old.clients {
		if c != old.current {
			wm.unmapWindow(c.win)
		}
	}
	if old.current != nil {
		wm.unmapWindow(old.current.win)
	}
	wm.desktopinfo()
	return nil
}

// lastDesktop focuses the previously focused desktop.
func (wm *WM) lastDesktop() error {
	return wm.changeDesktop(wm.monitor().previousDesktop)
}

// rotate jumps to the next or previous desktop.
func (wm *WM) rotate(dir int) error {
	m := wm.monitor()
	n := len(m.desktops)
	return wm.changeDesktop(((m.currentDesktop+dir)%n + n) % n)
}

// rotateFilled jumps to the next or previous desktop that has clients.
func (wm *WM) rotateFilled(dir int) error {
	m := wm.monitor()
	n := len(m.desktops)
	for step := 1; step < n; step++ {
		i := ((m.currentDesktop+dir*step)%n + n) % n
		if len(m.desktops[i].clients) > 0 {
			return wm.changeDesktop(i)
		}
	}
	return nil
}

// changeMonitor makes monitor i current.
func (wm *WM) changeMonitor(i int) error {
	if i < 0 || i >= len(wm.monitors) || i == wm.current {
		return nil
	}
	wm.previous = wm.current
	wm.current = i
	wm.updateCurrent(wm.monitor().desktop().current)
	wm.desktopinfo()
	return nil
}

// lastMonitor focuses the previously focused monitor.
func (wm *WM) lastMonitor() error {
	return wm.changeMonitor(wm.previous)
}

// rotateMonitor focuses the next or previous monitor.
func (wm *WM) rotateMonitor(dir int) error {
	n := len(wm.monitors)
	return wm.changeMonitor(((wm.current+dir)%n + n) % n)
}

// clientToDesktop moves the current client to the tail of desktop i's
// list on the same monitor. Moving to the desktop it is already on is
// a no-op.
func (wm *WM) clientToDesktop(i int) error {
	m := wm.monitor()
	d := m.desktop()
	c := d.current
	if c == nil || i < 0 || i >= len(m.desktops) || i == m.currentDesktop {
		return nil
	}
	d.detach(c)
	target := m.desktops[i]
	target.attach(c, true)
	target.focusClient(c)

	wm.unmapWindow(c.win)
	wm.updateCurrent(d.fallbackFocus())
	if wm.cfg.FollowWindow {
		wm.changeDesktop(i)
	}
	wm.desktopinfo()
	return nil
}

// clientToMonitor carries the current client over to monitor i's
// visible desktop, flags intact.
func (wm *WM) clientToMonitor(i int) error {
	m := wm.monitor()
	d := m.desktop()
	c := d.current
	if c == nil || i < 0 || i >= len(wm.monitors) || i == c.monitor {
		return nil
	}
	wm.unmapWindow(c.win)
	d.detach(c)

	dst := wm.monitors[i]
	dd := dst.desktop()
	dd.attach(c, wm.cfg.AttachAside)
	dd.focusClient(c)
	c.monitor = i

	wm.tile(dst)
	wm.mapWindow(c.win)
	wm.tile(m)
	wm.updateCurrent(d.fallbackFocus())
	if wm.cfg.FollowWindow {
		wm.changeMonitor(i)
	}
	wm.desktopinfo()
	return nil
}

// nextWin cyclically focuses the next window of the current desktop.
func (wm *WM) nextWin() error {
	d := wm.monitor().desktop()
	if c := d.nextClient(d.current); c != nil {
		wm.updateCurrent(c)
	}
	return nil
}

// prevWin cyclically focuses the previous window.
func (wm *WM) prevWin() error {
	d := wm.monitor().desktop()
	if c := d.prevClient(d.current); c != nil {
		wm.updateCurrent(c)
	}
	return nil
}

// moveDown swaps the current client with its successor in the tiling
// order.
func (wm *WM) moveDown() error {
	d := wm.monitor().desktop()
	if d.moveDown() {
		wm.retile()
	}
	return nil
}

// moveUp swaps the current client with its predecessor.
func (wm *WM) moveUp() error {
	d := wm.monitor().desktop()
	if d.moveUp() {
		wm.retile()
	}
	return nil
}

// swapMaster promotes the current client to the master position, or
// demotes it below the next client if it already is the master.
func (wm *WM) swapMaster() error {
	d := wm.monitor().desktop()
	if c := d.swapMaster(); c != nil {
		wm.updateCurrent(d.clients[0])
	}
	return nil
}

// resizeMaster grows or shrinks the master area, keeping both the
// master and the stack at least the minimum window size.
func (wm *WM) resizeMaster(delta int) error {
	m := wm.monitor()
	d := m.desktop()
	axis := m.w
	if d.mode == BSTACK {
		axis = m.h
	}
	msz := d.masterSize + delta
	if msz <= wm.cfg.MinWindowSize || axis-msz <= wm.cfg.MinWindowSize {
		return nil
	}
	d.masterSize = msz
	wm.retile()
	return nil
}

// resizeStack adjusts the first stack window's growth. No boundary
// checks.
func (wm *WM) resizeStack(delta int) error {
	wm.monitor().desktop().growth += delta
	wm.retile()
	return nil
}

// switchMode sets the current desktop's tiling mode, resets every
// floating window back to its tiling slot and recomputes the master
// size for the new split axis.
func (wm *WM) switchMode(mode Mode) error {
	m := wm.monitor()
	d := m.desktop()
	for _, c := range d.clients {
		if !c.transient {
			c.floating = false
		}
	}
	d.mode = mode
	d.masterSize = initialMasterSize(mode, m.w, m.h, wm.cfg.MasterSize)
	wm.updateCurrent(d.current)
	wm.desktopinfo()
	return nil
}

// togglePanel flips the panel reservation of the current desktop.
func (wm *WM) togglePanel() error {
	d := wm.monitor().desktop()
	d.showPanel = !d.showPanel
	wm.retile()
	return nil
}

// killClient closes the focused window, politely via WM_DELETE_WINDOW
// when the window supports it.
func (wm *WM) killClient() error {
	c := wm.monitor().desktop().current
	if c == nil {
		return nil
	}
	if wm.hasDeleteProtocol(c.win) {
		wm.deleteWindow(c.win)
	} else {
		xproto.KillClient(wm.xc, uint32(c.win))
	}
	wm.removeClient(c)
	return nil
}

// focusUrgent focuses the first client anywhere that has received an
// urgency hint.
func (wm *WM) focusUrgent() error {
	for mi, m := range wm.monitors {
		for di, d := range m.desktops {
			for _, c := range d.clients {
				if !c.urgent {
					continue
				}
				wm.changeMonitor(mi)
				wm.changeDesktop(di)
				wm.updateCurrent(c)
				return nil
			}
		}
	}
	return nil
}

// spawn starts a user command in its own session so it survives the
// manager and inherits nothing from it. The child is reaped when it
// exits.
func (wm *WM) spawn(cmd []string) error {
	if len(cmd) == 0 {
		return nil
	}
	c := exec.Command(cmd[0], cmd[1:]...)
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := c.Start(); err != nil {
		slog.Error("spawn failed", "cmd", cmd[0], "error", err)
		return nil
	}
	go c.Wait()
	return nil
}
