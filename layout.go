package main

// Rect is a screen rectangle. W and H are the interior size of a
// window, not counting its border.
type Rect struct {
	X, Y, W, H int
}

// arrange computes the geometry for every tileable client of a
// desktop. work is the desktop's work area (panel strip already
// excluded, Y already offset for a visible top panel), n the number of
// tileable clients, masterSize the master area size in pixels along
// the mode's split axis, growth the pixel adjustment of the first
// stack window and border the configured border width. The returned
// rectangles are in client-list order.
//
// Floating, transient and fullscreen clients are not arrange's
// business; fullscreen geometry is computed by Monitor.fullscreenRect.
func arrange(mode Mode, work Rect, n, masterSize, growth, border int) []Rect {
	if n <= 0 {
		return nil
	}
	// A lone tileable window fills the work area. Its border collapses
	// to zero (see updateCurrent), so no border is subtracted here.
	if n == 1 {
		return []Rect{work}
	}
	switch mode {
	case MONOCLE:
		return monocle(work, n)
	case BSTACK:
		return bstack(work, n, masterSize, growth, border)
	case GRID:
		return grid(work, n, border)
	default:
		return tile(work, n, masterSize, growth, border)
	}
}

// monocle gives every window the whole work area. Monocle windows are
// drawn borderless unless floating or transient.
func monocle(work Rect, n int) []Rect {
	rs := make([]Rect, n)
	for i := range rs {
		rs[i] = work
	}
	return rs
}

// tile is the vertical master-stack: the first window takes a left
// column of masterSize pixels, the rest stack vertically on the right.
// The stack splits the height evenly; the division remainder plus
// growth go to the first stack window so no gap is left at the bottom.
func tile(work Rect, n, masterSize, growth, border int) []Rect {
	rs := make([]Rect, 0, n)
	rs = append(rs, Rect{work.X, work.Y, masterSize - border, work.H - 2*border})

	s := n - 1
	z := (work.H - growth) / s
	d := (work.H-growth)%s + growth
	sx := work.X + masterSize
	sw := work.W - masterSize - 2*border

	rs = append(rs, Rect{sx, work.Y, sw, z - 2*border + d})
	y := work.Y + z - border + d
	for i := 2; i < n; i++ {
		rs = append(rs, Rect{sx, y, sw, z - 2*border})
		y += z
	}
	return rs
}

// bstack is tile rotated a quarter turn: master on top, stack arrayed
// left to right below it.
func bstack(work Rect, n, masterSize, growth, border int) []Rect {
	rs := make([]Rect, 0, n)
	rs = append(rs, Rect{work.X, work.Y, work.W - 2*border, masterSize - border})

	s := n - 1
	z := (work.W - growth) / s
	d := (work.W-growth)%s + growth
	sy := work.Y + masterSize
	sh := work.H - masterSize - 2*border

	rs = append(rs, Rect{work.X, sy, z - 2*border + d, sh})
	x := work.X + z - border + d
	for i := 2; i < n; i++ {
		rs = append(rs, Rect{x, sy, z - 2*border, sh})
		x += z
	}
	return rs
}

// grid arranges windows column-major in the smallest square grid that
// fits them, five windows being the 3+2 two-column special case. The
// first n%cols columns carry the extra row, so shorter columns fill
// last.
func grid(work Rect, n, border int) []Rect {
	cols := 1
	for cols*cols < n {
		cols++
	}
	if n == 5 {
		cols = 2
	}
	cw := work.W / cols

	rs := make([]Rect, 0, n)
	for cn := 0; cn < cols; cn++ {
		rows := n / cols
		if cn < n%cols {
			rows++
		}
		ch := work.H / rows
		for rn := 0; rn < rows; rn++ {
			rs = append(rs, Rect{
				X: work.X + cn*cw,
				Y: work.Y + rn*ch,
				W: cw - 2*border,
				H: ch - 2*border,
			})
		}
	}
	return rs
}
