package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Painter wraps the low-level drawing state the manager needs: the
// root cursor and the two allocated border pixels.
type Painter struct {
	xc      *xgb.Conn
	focus   uint32
	unfocus uint32
}

// NewPainter allocates a new Painter.
func NewPainter(xc *xgb.Conn) *Painter {
	return &Painter{xc: xc}
}

// Init sets a normal left-pointer cursor on the root window and
// allocates the focus and unfocus border colors.
func (p *Painter) Init(root *xproto.ScreenInfo, cfg *Config) error {
	cFont, err := xproto.NewFontId(p.xc)
	if err != nil {
		return err
	}
	cursor, err := xproto.NewCursorId(p.xc)
	if err != nil {
		return err
	}
	if err := xproto.OpenFontChecked(p.xc, cFont, uint16(len("cursor")), "cursor").Check(); err != nil {
		return err
	}
	const xcLeftPtr = 68 // XC_left_ptr from cursorfont.h.
	if err := xproto.CreateGlyphCursorChecked(
		p.xc, cursor, cFont, cFont, xcLeftPtr, xcLeftPtr+1,
		0xffff, 0xffff, 0xffff, 0, 0, 0).Check(); err != nil {
		return err
	}
	if err := xproto.CloseFontChecked(p.xc, cFont).Check(); err != nil {
		return err
	}
	if err := xproto.ChangeWindowAttributesChecked(
		p.xc, root.Root, xproto.CwCursor, []uint32{uint32(cursor)}).Check(); err != nil {
		return err
	}

	if p.focus, err = p.allocColor(root.DefaultColormap, cfg.FocusColor); err != nil {
		return err
	}
	p.unfocus, err = p.allocColor(root.DefaultColormap, cfg.UnfocusColor)
	return err
}

// allocColor turns a "#rrggbb" string into a pixel of the colormap.
func (p *Painter) allocColor(cmap xproto.Colormap, hex string) (uint32, error) {
	rgb, err := parseColor(hex)
	if err != nil {
		return 0, err
	}
	r := uint16(rgb >> 16 & 0xff)
	g := uint16(rgb >> 8 & 0xff)
	b := uint16(rgb & 0xff)
	reply, err := xproto.AllocColor(p.xc, cmap, r*257, g*257, b*257).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Pixel, nil
}

// setBorder paints one window's border: width in pixels and the focus
// or unfocus color.
func (p *Painter) setBorder(w xproto.Window, width int, focused bool) {
	xproto.ConfigureWindow(p.xc, w,
		xproto.ConfigWindowBorderWidth, []uint32{uint32(width)})
	pixel := p.unfocus
	if focused {
		pixel = p.focus
	}
	xproto.ChangeWindowAttributes(p.xc, w, xproto.CwBorderPixel, []uint32{pixel})
}
