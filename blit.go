package st7789

import (
	"fmt"

	"periph.io/x/devices/v3/st7789/rgb565"
)

// BlitImage writes a full-panel image straight to the controller, bypassing
// the frame buffer. pix holds W*H colors in column-major order: the pixel at
// (x, y) is pix[x*H+y]. Each column is sent through its own one-pixel-wide
// window.
//
// The frame buffer is not updated; the next Flush overwrites the image.
func (d *Dev) BlitImage(pix []rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	w, h := d.rect.Dx(), d.rect.Dy()
	if len(pix) != w*h {
		return fmt.Errorf("st7789: image has %d pixels, want %d", len(pix), w*h)
	}
	for x := 0; x < w; x++ {
		if err := d.setWindow(x, x, 0, h-1); err != nil {
			return err
		}
		if err := d.t.command(cmdRAMWR); err != nil {
			return err
		}
		if err := d.enc.stream(&d.t, pix[x*h:(x+1)*h]); err != nil {
			return err
		}
	}
	return nil
}
