package st7789

import (
	"periph.io/x/devices/v3/st7789/glyph"
	"periph.io/x/devices/v3/st7789/rgb565"
)

// lineGap is the number of unscaled pixel rows between two text lines.
const lineGap = 2

// DrawCircle draws the outline of a circle centered on (cx, cy) with the
// midpoint algorithm. A zero radius draws a single pixel.
func (f *Framebuffer) DrawCircle(cx, cy, r int, c rgb565.Color) {
	if r < 0 {
		return
	}
	x, y, e := r, 0, 0
	for x >= y {
		f.SetPixel(cx+x, cy+y, c)
		f.SetPixel(cx+y, cy+x, c)
		f.SetPixel(cx-y, cy+x, c)
		f.SetPixel(cx-x, cy+y, c)
		f.SetPixel(cx-x, cy-y, c)
		f.SetPixel(cx-y, cy-x, c)
		f.SetPixel(cx+y, cy-x, c)
		f.SetPixel(cx+x, cy-y, c)

		if e <= 0 {
			y++
			e += 2*y + 1
		}
		if e > 0 {
			x--
			e -= 2*x + 1
		}
	}
}

// DrawGlyph draws ch with its top-left corner at (x, y). Every lit bit of
// the glyph becomes a scale x scale block. Characters the table does not
// hold and non-positive scales draw nothing.
func (f *Framebuffer) DrawGlyph(x, y int, ch byte, c rgb565.Color, scale int, t *glyph.Table) {
	if t == nil || scale <= 0 || !t.Contains(ch) {
		return
	}
	for row := 0; row < t.Height; row++ {
		mask, _ := t.Row(ch, row)
		if mask == 0 {
			continue
		}
		for col := 0; col < t.Width; col++ {
			if mask&(0x80>>col) == 0 {
				continue
			}
			f.block(x+col*scale, y+row*scale, scale, c)
		}
	}
}

// block sets a size x size square. Unlike FillRect it drops the pixels that
// fall outside instead of clamping them onto the edge.
func (f *Framebuffer) block(x, y, size int, c rgb565.Color) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			f.SetPixel(x+dx, y+dy, c)
		}
	}
}

// DrawText draws s one byte per glyph, left to right. A '\n' moves the
// cursor back to x and down one line. There is no wrapping.
func (f *Framebuffer) DrawText(x, y int, s string, c rgb565.Color, scale int, t *glyph.Table) {
	if t == nil || scale <= 0 {
		return
	}
	cx, cy := x, y
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			cx = x
			cy += (t.Height + lineGap) * scale
			continue
		}
		f.DrawGlyph(cx, cy, s[i], c, scale, t)
		cx += t.Width * scale
	}
}
