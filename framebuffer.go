package st7789

import (
	"errors"
	"image"

	"periph.io/x/devices/v3/st7789/rgb565"
)

var errDetached = errors.New("st7789: frame buffer is not attached to a device")

// Framebuffer is an in-memory copy of the panel. Drawing calls only mutate
// memory; Flush sends the whole buffer to the panel.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	img *rgb565.Image
	dev *Dev
}

// NewFramebuffer returns a detached w x h frame buffer. Flush fails on a
// detached buffer; use Dev.Framebuffer to get one bound to a panel.
func NewFramebuffer(w, h int) *Framebuffer {
	return newFramebuffer(image.Rect(0, 0, w, h), nil)
}

func newFramebuffer(r image.Rectangle, d *Dev) *Framebuffer {
	return &Framebuffer{img: rgb565.NewImage(r), dev: d}
}

// Bounds returns the frame buffer size.
func (f *Framebuffer) Bounds() image.Rectangle {
	return f.img.Rect
}

// Image returns the backing image. Pixels are stored row-major at y*W+x.
func (f *Framebuffer) Image() *rgb565.Image {
	return f.img
}

// Clear sets every pixel to c.
func (f *Framebuffer) Clear(c rgb565.Color) {
	f.img.Fill(c)
}

// SetPixel sets the pixel at (x, y). Out of bounds coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int, c rgb565.Color) {
	f.img.SetRGB565(x, y, c)
}

// Pixel returns the pixel at (x, y), or 0 when out of bounds.
func (f *Framebuffer) Pixel(x, y int) rgb565.Color {
	return f.img.RGB565At(x, y)
}

// FillRect fills the closed rectangle with corners (x1, y1) and (x2, y2).
// Reversed corners are swapped. Both corners are clamped into the buffer,
// so a rectangle entirely outside collapses onto the nearest edge.
func (f *Framebuffer) FillRect(x1, y1, x2, y2 int, c rgb565.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	w, h := f.img.Rect.Dx(), f.img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	x1, x2 = clamp(x1, w), clamp(x2, w)
	y1, y2 = clamp(y1, h), clamp(y2, h)
	f.img.FillRect(image.Rect(x1, y1, x2+1, y2+1), c)
}

// Flush sends the whole buffer to the panel: a full-panel window, a memory
// write, then every pixel in row-major order. It blocks until the last
// transfer completes.
func (f *Framebuffer) Flush() error {
	if f.dev == nil {
		return errDetached
	}
	return f.dev.writeFrame(f.img.Pix)
}
