package scene

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"periph.io/x/devices/v3/st7789"
	"periph.io/x/devices/v3/st7789/internal/log"
	"periph.io/x/devices/v3/st7789/rgb565"
)

// SlideshowScene is the entry of Loop.Scenes that shows the slideshow.
const SlideshowScene = "slideshow"

// Loop runs the configured scenes in order, forever or once.
type Loop struct {
	Dev    *st7789.Dev
	Scenes []string
	Env    Env

	// Slides is shown, one image per Schedule tick, for SlideFor whenever
	// SlideshowScene comes up.
	Slides   *Slideshow
	Schedule string
	SlideFor time.Duration

	// Once stops after a single pass.
	Once bool

	// Lock, when set, is held while a scene draws and flushes.
	Lock sync.Locker
}

// Run plays the loop until it ends or ctx is canceled. Cancellation is not an
// error.
func (l *Loop) Run(ctx context.Context) error {
	if len(l.Scenes) == 0 {
		return errors.New("scene: nothing to play")
	}
	if err := l.splash(); err != nil {
		return err
	}
	for pass := 0; ; pass++ {
		for _, name := range l.Scenes {
			start := time.Now()
			var err error
			if name == SlideshowScene {
				err = l.slideshow(ctx)
			} else {
				err = l.play(ctx, name)
			}
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return fmt.Errorf("scene %s: %w", name, err)
			}
			log.Debug("scene done", "scene", name, "pass", pass, "took", time.Since(start).Round(time.Millisecond))
		}
		if l.Once {
			return nil
		}
	}
}

func (l *Loop) lock() func() {
	if l.Lock == nil {
		return func() {}
	}
	l.Lock.Lock()
	return l.Lock.Unlock
}

// splash draws the title screen.
func (l *Loop) splash() error {
	defer l.lock()()
	fb := l.Dev.Framebuffer()
	r := fb.Bounds()
	fb.Clear(rgb565.Black)
	fb.DrawCircle(r.Dx()/2, r.Dy()/2, min(r.Dx(), r.Dy())/2-4, rgb565.Pack(210, 135, 220))
	if l.Env.Font != nil {
		fb.DrawText(4, 4, "ST7789\nRGB565", rgb565.White, 2, l.Env.Font)
	}
	return fb.Flush()
}

func (l *Loop) play(ctx context.Context, name string) error {
	s, err := ByName(name, l.Env)
	if err != nil {
		return err
	}
	log.Info("scene start", "scene", name)
	defer l.lock()()
	return Play(ctx, l.Dev.Framebuffer(), s)
}

// slideshow advances the slides on the cron schedule for SlideFor.
func (l *Loop) slideshow(ctx context.Context) error {
	if l.Slides == nil || l.Slides.Len() == 0 {
		log.Warn("slideshow skipped, no images")
		return nil
	}
	c := cron.New()
	errc := make(chan error, 1)
	next := func() {
		if err := l.Slides.Next(); err != nil {
			select {
			case errc <- err:
			default:
			}
		}
	}
	if _, err := c.AddFunc(l.Schedule, next); err != nil {
		return fmt.Errorf("schedule %q: %w", l.Schedule, err)
	}
	log.Info("slideshow start", "images", l.Slides.Len(), "schedule", l.Schedule)

	next()
	c.Start()
	defer func() { <-c.Stop().Done() }()

	t := time.NewTimer(l.SlideFor)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errc:
		return err
	case <-t.C:
		return nil
	}
}
