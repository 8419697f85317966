package scene

import (
	"sync"

	"periph.io/x/devices/v3/st7789/rgb565"
)

// Blitter writes a full-panel column-major image. *st7789.Dev implements it.
type Blitter interface {
	BlitImage(pix []rgb565.Color) error
}

// Slideshow shows a list of images in turn. Next is safe to call from a
// scheduler goroutine; lock, when set, is held around every blit so other
// users of the same panel can be serialized with it.
type Slideshow struct {
	mu     sync.Mutex
	lock   sync.Locker
	dst    Blitter
	images [][]rgb565.Color
	next   int
}

// NewSlideshow returns a slideshow over images. lock may be nil.
func NewSlideshow(dst Blitter, images [][]rgb565.Color, lock sync.Locker) *Slideshow {
	return &Slideshow{dst: dst, images: images, lock: lock}
}

// Len returns the number of images.
func (s *Slideshow) Len() int {
	return len(s.images)
}

// Next shows the next image, wrapping around. It is a no-op without images.
func (s *Slideshow) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.images) == 0 {
		return nil
	}
	img := s.images[s.next]
	s.next = (s.next + 1) % len(s.images)

	if s.lock != nil {
		s.lock.Lock()
		defer s.lock.Unlock()
	}
	return s.dst.BlitImage(img)
}
