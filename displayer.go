package st7789

import (
	"image/color"

	"periph.io/x/devices/v3/st7789/rgb565"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// displayer exposes a Framebuffer as a TinyGo display so the TinyGo font and
// drawing packages can render into it.
type displayer struct {
	fb *Framebuffer
}

// Displayer returns a drivers.Displayer backed by f. SetPixel writes to
// memory only; Display flushes.
func (f *Framebuffer) Displayer() drivers.Displayer {
	return displayer{fb: f}
}

func (d displayer) Size() (x, y int16) {
	r := d.fb.Bounds()
	return int16(r.Dx()), int16(r.Dy())
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), rgb565.FromRGBA(c))
}

func (d displayer) Display() error {
	return d.fb.Flush()
}

// DrawFont draws s with a TinyGo font. y is the baseline, not the top of the
// text as in DrawText.
func (f *Framebuffer) DrawFont(x, y int, s string, font tinyfont.Fonter, c rgb565.Color) {
	r, g, b, _ := c.RGBA()
	rgba := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF}
	tinyfont.WriteLine(f.Displayer(), font, int16(x), int16(y), s, rgba)
}
