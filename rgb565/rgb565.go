package rgb565

import (
	"image"
	"image/color"
)

// Color is a packed 16-bit RGB565 color.
type Color uint16

// Common colors.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Yellow  Color = 0xFFE0
	Magenta Color = 0xF81F
	Cyan    Color = 0x07FF
)

// Pack truncates 8-bit channels into a packed Color.
func Pack(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA implements color.Color. Each channel is widened by bit replication,
// so Pack(c.RGBA()>>8) returns c for every Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F

	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// BigEndian returns the wire bytes of c, high byte first.
func (c Color) BigEndian() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}

func toRGB565(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color. Alpha is ignored.
var Model = color.ModelFunc(toRGB565)

// FromRGBA packs a color.RGBA, ignoring alpha.
func FromRGBA(c color.RGBA) Color {
	return Pack(c.R, c.G, c.B)
}

// Image is an in-memory image of packed colors. Pixel (x, y) lives at
// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
type Image struct {
	Pix    []Color         // Pixel data, row-major
	Stride int             // Colors per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates an Image with the given bounds, filled with Black.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]Color, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns Model.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the packed color at (x, y), or Black outside the bounds.
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = Model.Convert(c).(Color)
}

// SetRGB565 sets the pixel at (x, y). Points outside the bounds are ignored.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// PixOffset returns the index in Pix of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// Fill sets every pixel to c.
func (p *Image) Fill(c Color) {
	for i := range p.Pix {
		p.Pix[i] = c
	}
}

// FillRect sets every pixel of r that lies inside the image to c.
func (p *Image) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.Pix[p.PixOffset(r.Min.X, y):p.PixOffset(r.Max.X, y)]
		for i := range row {
			row[i] = c
		}
	}
}
