package glyph

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// canvas is a monochrome drivers.Displayer used to capture tinyfont output.
type canvas struct {
	w, h int16
	lit  []bool
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: int16(w), h: int16(h), lit: make([]bool, w*h)}
}

func (c *canvas) Size() (x, y int16) {
	return c.w, c.h
}

func (c *canvas) SetPixel(x, y int16, _ color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.lit[int(y)*int(c.w)+int(x)] = true
}

func (c *canvas) Display() error {
	return nil
}

func (c *canvas) reset() {
	clear(c.lit)
}

// FromTinyfont rasterizes every code of the layout with a tinyfont font.
// Glyphs are drawn on a shared baseline; the topmost lit row across the
// whole range becomes row 0 of the table.
func FromTinyfont(f tinyfont.Fonter, opts *Opts) (*Table, error) {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return nil, err
	}

	// Draw into a tall scratch cell so glyphs with large ascents or
	// descents are not clipped before the common top row is known.
	scratchH := 3 * o.Height
	baseline := int16(2 * o.Height)
	c := newCanvas(o.Width, scratchH)

	n := int(o.End - o.Start)
	glyphs := make([][]bool, n)
	top := scratchH
	for i := 0; i < n; i++ {
		c.reset()
		tinyfont.DrawChar(c, f, 0, baseline, rune(o.Start)+rune(i), color.RGBA{A: 0xFF})
		glyphs[i] = append([]bool(nil), c.lit...)
		for y := 0; y < scratchH && y < top; y++ {
			if rowLit(c.lit[y*o.Width : (y+1)*o.Width]) {
				top = y
				break
			}
		}
	}
	if top == scratchH {
		top = int(baseline) - o.Height
	}

	data := make([]byte, o.Size())
	for i, lit := range glyphs {
		for row := 0; row < o.Height; row++ {
			y := top + row
			if y >= scratchH {
				break
			}
			var mask byte
			for col := 0; col < o.Width; col++ {
				if lit[y*o.Width+col] {
					mask |= 0x80 >> col
				}
			}
			data[i*o.Height+row] = mask
		}
	}
	return New(data, &o)
}

func rowLit(row []bool) bool {
	for _, v := range row {
		if v {
			return true
		}
	}
	return false
}
