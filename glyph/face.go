package glyph

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterizes every code of the layout through face. The baseline is
// placed at the face ascent and anything outside the Width×Height cell is
// clipped. Pixels with at least half coverage are lit.
func FromFace(face font.Face, opts *Opts) (*Table, error) {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return nil, err
	}

	cell := image.NewAlpha(image.Rect(0, 0, o.Width, o.Height))
	d := &font.Drawer{
		Dst:  cell,
		Src:  image.Opaque,
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()

	data := make([]byte, o.Size())
	for c := o.Start; c < o.End; c++ {
		clear(cell.Pix)
		d.Dot = fixed.P(0, ascent)
		d.DrawString(string(rune(c)))

		base := int(c-o.Start) * o.Height
		for row := 0; row < o.Height; row++ {
			var mask byte
			for col := 0; col < o.Width; col++ {
				if cell.AlphaAt(col, row).A >= 0x80 {
					mask |= 0x80 >> col
				}
			}
			data[base+row] = mask
		}
	}
	return New(data, &o)
}

// Basic returns a table rendered from basicfont.Face7x13. It needs no font
// file, which makes it the fallback when none is configured.
func Basic() *Table {
	t, err := FromFace(basicfont.Face7x13, &Opts{
		Start:  DefaultStart,
		End:    DefaultEnd,
		Width:  DefaultWidth,
		Height: 13,
	})
	if err != nil {
		panic(err)
	}
	return t
}
