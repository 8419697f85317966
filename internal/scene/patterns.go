package scene

import (
	"math"
	"math/rand/v2"
	"time"

	"periph.io/x/devices/v3/st7789"
	"periph.io/x/devices/v3/st7789/glyph"
	"periph.io/x/devices/v3/st7789/rgb565"
)

// Chessboard draws alternating squares and holds them for Hold frames.
type Chessboard struct {
	Size int
	A, B rgb565.Color
	Hold int
}

func (c *Chessboard) Interval() time.Duration { return 50 * time.Millisecond }

func (c *Chessboard) Step(fb *st7789.Framebuffer, n int) bool {
	if n >= max(c.Hold, 1) {
		return false
	}
	if n > 0 || c.Size <= 0 {
		return true
	}
	r := fb.Bounds()
	for y := 0; y < r.Dy(); y += c.Size {
		for x := 0; x < r.Dx(); x += c.Size {
			col := c.B
			if (x/c.Size)%2 == (y/c.Size)%2 {
				col = c.A
			}
			fb.FillRect(x, y, x+c.Size-1, y+c.Size-1, col)
		}
	}
	return true
}

// Ball bounces a circle off the panel edges.
type Ball struct {
	Radius int
	Color  rgb565.Color
	Frames int

	x, y, vx, vy int
}

func (b *Ball) Interval() time.Duration { return 33 * time.Millisecond }

func (b *Ball) Step(fb *st7789.Framebuffer, n int) bool {
	if n >= b.Frames {
		return false
	}
	r := fb.Bounds()
	if n == 0 {
		b.x, b.y, b.vx, b.vy = r.Dx()/2, r.Dy()/2, 2, 2
	}
	fb.Clear(rgb565.Black)
	b.x += b.vx
	b.y += b.vy
	if b.x-b.Radius < 0 || b.x+b.Radius > r.Dx() {
		b.vx = -b.vx
	}
	if b.y-b.Radius < 0 || b.y+b.Radius > r.Dy() {
		b.vy = -b.vy
	}
	fb.DrawCircle(b.x, b.y, b.Radius, b.Color)
	return true
}

// Position returns the current ball center.
func (b *Ball) Position() (x, y int) {
	return b.x, b.y
}

const rainCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Rain drops random characters down one glyph-wide column each.
type Rain struct {
	Font   *glyph.Table
	Color  rgb565.Color
	Rand   *rand.Rand
	Frames int

	drops []int
}

func (r *Rain) Interval() time.Duration { return 100 * time.Millisecond }

func (r *Rain) Step(fb *st7789.Framebuffer, n int) bool {
	if n >= r.Frames || r.Font == nil || r.Font.Width <= 0 {
		return false
	}
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	b := fb.Bounds()
	if n == 0 {
		r.drops = make([]int, b.Dx()/r.Font.Width)
		for i := range r.drops {
			r.drops[i] = r.Rand.IntN(b.Dy())
		}
	}
	fb.Clear(rgb565.Black)
	for i := range r.drops {
		ch := rainCharset[r.Rand.IntN(len(rainCharset))]
		fb.DrawGlyph(i*r.Font.Width, r.drops[i], ch, r.Color, 1, r.Font)
		r.drops[i]++
		// Drops restart once they pass a glyph-width fraction of the height.
		if r.drops[i]*r.Font.Width >= b.Dy() {
			r.drops[i] = 0
		}
	}
	return true
}

// Dots orbits small circles around the center.
type Dots struct {
	Count  int
	Orbit  float64
	Frames int
}

func (d *Dots) Interval() time.Duration { return 50 * time.Millisecond }

func (d *Dots) Step(fb *st7789.Framebuffer, n int) bool {
	if n >= d.Frames {
		return false
	}
	b := fb.Bounds()
	fb.Clear(rgb565.Black)
	for i := 0; i < d.Count; i++ {
		a := float64(n)*0.1 + float64(i)
		x := int(math.Sin(a)*d.Orbit) + b.Dx()/2
		y := int(math.Cos(a)*d.Orbit) + b.Dy()/2
		fb.DrawCircle(x, y, 2, rgb565.White)
	}
	return true
}

// Stripes scrolls one-pixel columns colored by their distance to a moving
// phase.
type Stripes struct {
	Width  int
	Frames int
}

func (s *Stripes) Interval() time.Duration { return 16 * time.Millisecond }

func (s *Stripes) Step(fb *st7789.Framebuffer, n int) bool {
	if n >= s.Frames || s.Width <= 0 {
		return false
	}
	b := fb.Bounds()
	phase := (n * 3) % b.Dx()
	for x := 0; x < b.Dx(); x++ {
		d := x - phase
		if d < 0 {
			d = -d
		}
		fb.FillRect(x, 0, x, b.Dy()-1, Palette[(d/s.Width)%len(Palette)])
	}
	return true
}
