package main

import (
	"fmt"
	"io"
	"strings"
)

// desktopinfo writes the panel status line after every state change.
func (wm *WM) desktopinfo() {
	writeDesktopInfo(wm.status, wm.monitors, wm.current)
}

// writeDesktopInfo emits one line of ':'-separated records, one record
// per (monitor, desktop) pair, separated by single spaces:
//
//	monitor : current-monitor? : desktop : client count : mode : current-desktop? : urgent?
//
// The line is terminated by a newline. Collecting the info only reads
// the monitor and desktop state, so it never disturbs the current
// selection.
func writeDesktopInfo(w io.Writer, monitors []*Monitor, current int) {
	var b strings.Builder
	for mi, m := range monitors {
		for di, d := range m.desktops {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d:%d:%d:%d:%d:%d:%d",
				mi,
				boolint(mi == current),
				di,
				len(d.clients),
				d.mode,
				boolint(di == m.currentDesktop),
				boolint(d.hasUrgent()))
		}
	}
	b.WriteByte('\n')
	io.WriteString(w, b.String())
}

func boolint(b bool) int {
	if b {
		return 1
	}
	return 0
}
