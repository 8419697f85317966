package st7789

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/st7789/rgb565"
)

// Opts is the configuration for the ST7789 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 135, at most 240)
	H int // Height (default: 240, at most 320)

	// Position of the visible area inside the 240x320 controller RAM.
	XOffset int
	YOffset int

	// Orientation is the MADCTL byte written during Init.
	Orientation byte

	// SPI clock (default: 40MHz)
	Hz physic.Frequency

	// Optional pins
	RST       gpio.PinOut // Reset pin (nil if not used)
	Backlight gpio.PinOut // Backlight pin driven with PWM (nil if not used)

	// BacklightDuty is the backlight duty cycle out of 255 set at the end of
	// Init. Zero selects 128.
	BacklightDuty uint8
}

// DefaultOpts matches the 1.14" 135x240 module.
var DefaultOpts = Opts{
	W:       135,
	H:       240,
	XOffset: 52,
	YOffset: 40,
	Hz:      40 * physic.MegaHertz,
}

const (
	defaultBacklightDuty = 128
	backlightFrequency   = 5 * physic.KiloHertz
)

var errHalted = errors.New("st7789: halted")

// Dev is the device handle for the ST7789 display.
//
// Dev is not safe for concurrent use. Callers drawing from more than one
// goroutine must serialize their calls.
type Dev struct {
	// Communication
	t   transport
	rst gpio.PinOut // Reset pin (optional)
	bl  gpio.PinOut // Backlight pin (optional)

	// Display geometry
	rect             image.Rectangle
	xOffset, yOffset int
	orientation      byte
	duty             uint8

	enc encoder
	fb  *Framebuffer
	win [4]byte

	// State
	state  State
	halted bool
	sleep  func(time.Duration)
}

// NewSPI connects to an ST7789 over SPI and initializes it.
//
// The SPI port is configured for opts.Hz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	hz := opts.Hz
	if hz == 0 {
		hz = DefaultOpts.Hz
	}
	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7789: failed to connect SPI: %w", err)
	}
	d, err := New(c, dc, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// New returns a Dev using an already connected bus. It performs no I/O; call
// Init before drawing.
func New(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("st7789: a D/C pin is required")
	}
	o := *opts
	if o.W == 0 && o.H == 0 {
		o.W, o.H = DefaultOpts.W, DefaultOpts.H
	}
	if o.W <= 0 || o.W > ramWidth {
		return nil, fmt.Errorf("st7789: width must be between 1 and %d", ramWidth)
	}
	if o.H <= 0 || o.H > ramHeight {
		return nil, fmt.Errorf("st7789: height must be between 1 and %d", ramHeight)
	}
	if o.XOffset < 0 || o.XOffset+o.W > ramWidth || o.YOffset < 0 || o.YOffset+o.H > ramHeight {
		return nil, errors.New("st7789: offset moves the panel outside controller RAM")
	}
	if o.BacklightDuty == 0 {
		o.BacklightDuty = defaultBacklightDuty
	}

	d := &Dev{
		t:           transport{c: c, dc: dc},
		rst:         o.RST,
		bl:          o.Backlight,
		rect:        image.Rect(0, 0, o.W, o.H),
		xOffset:     o.XOffset,
		yOffset:     o.YOffset,
		orientation: o.Orientation,
		duty:        o.BacklightDuty,
		state:       StateUnpowered,
		sleep:       time.Sleep,
	}
	d.enc = newEncoder(d.t.maxColors(ChunkColors))
	d.fb = newFramebuffer(d.rect, d)
	return d, nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Framebuffer returns the frame buffer owned by d.
func (d *Dev) Framebuffer() *Framebuffer {
	return d.fb
}

// State returns the last known controller state.
func (d *Dev) State() State {
	return d.state
}

// Draw draws src into the frame buffer and flushes the whole frame.
// It implements display.Drawer.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.fb.img, dst, src, sp, draw.Src)
	return d.fb.Flush()
}

// Write sends a full frame of big-endian RGB565 bytes, bypassing the frame
// buffer. The data must be exactly W*H*2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != 2*d.rect.Dx()*d.rect.Dy() {
		return 0, errors.New("st7789: invalid buffer size")
	}
	if err := d.beginFrame(); err != nil {
		return 0, err
	}
	if err := d.enc.streamBytes(&d.t, pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// writeFrame sends pix, row-major W*H colors, to the whole panel.
func (d *Dev) writeFrame(pix []rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	if err := d.beginFrame(); err != nil {
		return err
	}
	return d.enc.stream(&d.t, pix)
}

func (d *Dev) beginFrame() error {
	if err := d.setWindow(0, d.rect.Dx()-1, 0, d.rect.Dy()-1); err != nil {
		return err
	}
	return d.t.command(cmdRAMWR)
}

// Invert turns display inversion on or off. Init enables inversion, which
// most ST7789 IPS panels need to show true colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(cmdINVOFF)
	if invert {
		mode = cmdINVON
	}
	return d.t.command(mode)
}

// Halt turns the display off and puts the controller to sleep.
// After calling Halt the display does not respond to drawing calls until
// Init is called again.
func (d *Dev) Halt() error {
	d.halted = true
	d.state = StateUnpowered
	if err := d.t.command(cmdDISPOFF); err != nil {
		return err
	}
	if err := d.t.command(cmdSLPIN); err != nil {
		return err
	}
	// SLPIN needs 5ms before the next command.
	d.sleep(5 * time.Millisecond)
	if d.bl != nil {
		if err := d.bl.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to switch backlight off: %w", err)
		}
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
