package main

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// ICCCM atoms interned at startup.
const (
	wmProtocols = iota
	wmDeleteWindow
	wmCount
)

// EWMH atoms interned at startup and announced via _NET_SUPPORTED.
const (
	netSupported = iota
	netFullscreen
	netWMState
	netActive
	netCount
)

var wmAtomNames = [wmCount]string{"WM_PROTOCOLS", "WM_DELETE_WINDOW"}

var netAtomNames = [netCount]string{
	"_NET_SUPPORTED",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE",
	"_NET_ACTIVE_WINDOW",
}

func (wm *WM) initAtoms() error {
	for i, name := range wmAtomNames {
		a, err := getAtom(wm.xc, name)
		if err != nil {
			return err
		}
		wm.wmAtoms[i] = a
	}
	for i, name := range netAtomNames {
		a, err := getAtom(wm.xc, name)
		if err != nil {
			return err
		}
		wm.netAtoms[i] = a
	}
	return nil
}

func getAtom(xc *xgb.Conn, name string) (xproto.Atom, error) {
	rply, err := xproto.InternAtom(xc, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	if rply == nil {
		return 0, fmt.Errorf("intern %s: no reply", name)
	}
	return rply.Atom, nil
}

// decodeAtom decodes an xproto.Atom from a property value (expressed
// as bytes). Note that v has to be at least 4 bytes long.
func decodeAtom(v []byte) xproto.Atom {
	return xproto.Atom(uint32(v[0]) | uint32(v[1])<<8 |
		uint32(v[2])<<16 | uint32(v[3])<<24)
}

// u32bytes encodes 32-bit values the way ChangeProperty with format 32
// expects them on the wire.
func u32bytes(vs ...uint32) []byte {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		b[4*i] = byte(v)
		b[4*i+1] = byte(v >> 8)
		b[4*i+2] = byte(v >> 16)
		b[4*i+3] = byte(v >> 24)
	}
	return b
}

// parseColor turns a "#rrggbb" string into its 24-bit RGB value.
func parseColor(hex string) (uint32, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, fmt.Errorf("bad color %q: want #rrggbb", hex)
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", hex, err)
	}
	return uint32(rgb), nil
}
