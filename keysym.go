package main

// Keysym constants from /usr/include/X11/keysymdef.h. Latin-1 keysyms
// are their ASCII values, so letter and digit keys are written as
// character literals where they are used.
const (
	xkBackSpace = 0xff08
	xkTab       = 0xff09
	xkReturn    = 0xff0d
	xkEscape    = 0xff1b
	xkLeft      = 0xff51
	xkUp        = 0xff52
	xkRight     = 0xff53
	xkDown      = 0xff54
	xkNumLock   = 0xff7f
)
