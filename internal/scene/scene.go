// Package scene holds the demo animations drawn by the example programs.
//
// A scene only mutates a frame buffer; Play flushes each frame and paces
// them.
package scene

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"periph.io/x/devices/v3/st7789"
	"periph.io/x/devices/v3/st7789/glyph"
	"periph.io/x/devices/v3/st7789/rgb565"
)

// Scene is an animation made of numbered frames.
type Scene interface {
	// Step draws frame n into fb. It returns false once the scene is over;
	// that frame is not shown.
	Step(fb *st7789.Framebuffer, n int) bool
	// Interval is the delay between two frames.
	Interval() time.Duration
}

// Palette is the set of colors the animations cycle through.
var Palette = []rgb565.Color{
	rgb565.Black, rgb565.White, rgb565.Red, rgb565.Green, rgb565.Blue,
	rgb565.Yellow, rgb565.Magenta, rgb565.Cyan, 0xAAAA, 0x5555,
}

// Env is what scenes may need besides the frame buffer.
type Env struct {
	Font *glyph.Table
	Rand *rand.Rand
}

var registry = map[string]func(Env) Scene{
	"chessboard": func(Env) Scene { return &Chessboard{Size: 20, A: rgb565.Black, B: rgb565.White, Hold: 40} },
	"ball":       func(Env) Scene { return &Ball{Radius: 10, Color: rgb565.Red, Frames: 450} },
	"rain":       func(e Env) Scene { return &Rain{Font: e.Font, Color: rgb565.Green, Rand: e.Rand, Frames: 100} },
	"dots":       func(Env) Scene { return &Dots{Count: 20, Orbit: 40, Frames: 100} },
	"stripes":    func(Env) Scene { return &Stripes{Width: 20, Frames: 120} },
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName returns a new instance of the named scene.
func ByName(name string, env Env) (Scene, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", name)
	}
	if env.Rand == nil {
		env.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if env.Font == nil {
		env.Font = glyph.Basic()
	}
	return f(env), nil
}

// Play runs s until it ends or ctx is canceled, flushing every frame.
func Play(ctx context.Context, fb *st7789.Framebuffer, s Scene) error {
	t := time.NewTicker(s.Interval())
	defer t.Stop()
	for n := 0; s.Step(fb, n); n++ {
		if err := fb.Flush(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}
