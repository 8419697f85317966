// Package panelsim emulates an ST7789 controller behind an SPI port.
//
// A Panel decodes the command stream it receives into its own 240x320 RAM and
// exposes the visible area as an image. It is used by the desktop preview and
// by tests that need to check what a real panel would show.
package panelsim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/st7789/internal/log"
	"periph.io/x/devices/v3/st7789/rgb565"
)

var errReadUnsupported = errors.New("panelsim: reads are not supported")

const (
	ramWidth  = 240
	ramHeight = 320
)

// Opts describes the visible area of the emulated panel.
type Opts struct {
	W, H             int
	XOffset, YOffset int
	// MaxTxSize, when positive, is reported through conn.Limits.
	MaxTxSize int
}

// Panel is an emulated ST7789. It implements spi.Port and spi.Conn.
type Panel struct {
	mu   sync.Mutex
	opts Opts
	dc   *gpiotest.Pin

	ram [ramWidth * ramHeight]rgb565.Color

	hz   physic.Frequency
	mode spi.Mode
	bits int

	// Command decoder
	cmd     byte
	params  []byte
	pending []byte // odd byte left over from a RAMWR transfer
	win     image.Rectangle
	cx, cy  int

	sleeping  bool
	displayOn bool
	inverted  bool
	colmod    byte
	madctl    byte
	writes    int
	history   []byte
}

// New returns a panel in its power-on state.
func New(opts Opts) *Panel {
	p := &Panel{
		opts: opts,
		dc:   &gpiotest.Pin{N: "DC", Num: -1},
	}
	p.resetLocked()
	return p
}

// DC returns the Data/Command pin to hand to the driver.
func (p *Panel) DC() gpio.PinIO {
	return p.dc
}

func (p *Panel) String() string {
	return fmt.Sprintf("panelsim.Panel{%dx%d}", p.opts.W, p.opts.H)
}

// Connect implements spi.Port.
func (p *Panel) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if bits != 8 {
		return nil, fmt.Errorf("panelsim: %d bits per word not supported", bits)
	}
	if mode&^spi.NoCS != spi.Mode0 {
		return nil, fmt.Errorf("panelsim: %s not supported", mode)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hz, p.mode, p.bits = f, mode, bits
	log.Debug("panelsim: connect", "hz", f, "mode", mode)
	return p, nil
}

// LimitSpeed implements spi.Port.
func (p *Panel) LimitSpeed(f physic.Frequency) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hz == 0 || f < p.hz {
		p.hz = f
	}
	return nil
}

// Close implements spi.PortCloser.
func (p *Panel) Close() error {
	return nil
}

// Duplex implements conn.Conn.
func (p *Panel) Duplex() conn.Duplex {
	return conn.Half
}

// MaxTxSize implements conn.Limits.
func (p *Panel) MaxTxSize() int {
	return p.opts.MaxTxSize
}

// TxPackets implements spi.Conn.
func (p *Panel) TxPackets(pkts []spi.Packet) error {
	for _, pk := range pkts {
		if err := p.Tx(pk.W, pk.R); err != nil {
			return err
		}
	}
	return nil
}

// Tx implements conn.Conn. Bytes sent with D/C low are commands, bytes sent
// with D/C high are parameters or pixel data.
func (p *Panel) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errReadUnsupported
	}
	if p.opts.MaxTxSize > 0 && len(w) > p.opts.MaxTxSize {
		return fmt.Errorf("panelsim: transfer of %d bytes exceeds %d", len(w), p.opts.MaxTxSize)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dc.Read() == gpio.Low {
		for _, b := range w {
			p.commandLocked(b)
		}
		return nil
	}
	p.dataLocked(w)
	return nil
}

func (p *Panel) commandLocked(b byte) {
	p.cmd = b
	p.params = p.params[:0]
	p.pending = p.pending[:0]
	p.history = append(p.history, b)
	log.Debug("panelsim: command", "op", opName(b))

	switch b {
	case opSWRESET:
		p.resetLocked()
		p.cmd = b
	case opSLPIN:
		p.sleeping = true
	case opSLPOUT:
		p.sleeping = false
	case opINVOFF:
		p.inverted = false
	case opINVON:
		p.inverted = true
	case opDISPOFF:
		p.displayOn = false
	case opDISPON:
		p.displayOn = true
	case opRAMWR:
		p.cx, p.cy = p.win.Min.X, p.win.Min.Y
		p.writes++
	}
}

func (p *Panel) dataLocked(w []byte) {
	if p.cmd == opRAMWR {
		if len(p.pending) == 1 && len(w) > 0 {
			p.putLocked(rgb565.Color(p.pending[0])<<8 | rgb565.Color(w[0]))
			p.pending = p.pending[:0]
			w = w[1:]
		}
		for ; len(w) >= 2; w = w[2:] {
			p.putLocked(rgb565.Color(w[0])<<8 | rgb565.Color(w[1]))
		}
		p.pending = append(p.pending, w...)
		return
	}

	p.params = append(p.params, w...)
	if len(p.params) == 0 {
		return
	}
	switch p.cmd {
	case opCASET:
		if len(p.params) >= 4 {
			x0, x1 := word(p.params[0:]), word(p.params[2:])
			p.win.Min.X, p.win.Max.X = x0, x1
		}
	case opRASET:
		if len(p.params) >= 4 {
			y0, y1 := word(p.params[0:]), word(p.params[2:])
			p.win.Min.Y, p.win.Max.Y = y0, y1
		}
	case opCOLMOD:
		p.colmod = p.params[0]
	case opMADCTL:
		p.madctl = p.params[0]
	}
}

// putLocked stores one pixel at the cursor and advances it row by row inside
// the window. Max is inclusive here, as on the wire.
func (p *Panel) putLocked(c rgb565.Color) {
	if p.cx >= 0 && p.cx < ramWidth && p.cy >= 0 && p.cy < ramHeight {
		p.ram[p.cy*ramWidth+p.cx] = c
	}
	p.cx++
	if p.cx > p.win.Max.X {
		p.cx = p.win.Min.X
		p.cy++
		if p.cy > p.win.Max.Y {
			p.cy = p.win.Min.Y
		}
	}
}

func (p *Panel) resetLocked() {
	p.sleeping = true
	p.displayOn = false
	p.inverted = false
	p.colmod = 0x66
	p.madctl = 0
	p.win = image.Rect(0, 0, ramWidth-1, ramHeight-1)
	p.cmd = 0
	p.params = p.params[:0]
	p.pending = p.pending[:0]
}

func word(b []byte) int {
	return int(b[0])<<8 | int(b[1])
}

// Pixel returns the RAM content behind visible pixel (x, y).
func (p *Panel) Pixel(x, y int) rgb565.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ram[(y+p.opts.YOffset)*ramWidth+x+p.opts.XOffset]
}

// Snapshot renders the visible area as the panel would show it. A panel that
// is asleep or off shows black.
func (p *Panel) Snapshot() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image.NewRGBA(image.Rect(0, 0, p.opts.W, p.opts.H))
	if p.sleeping || !p.displayOn {
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xFF
		}
		return img
	}
	for y := 0; y < p.opts.H; y++ {
		for x := 0; x < p.opts.W; x++ {
			c := p.ram[(y+p.opts.YOffset)*ramWidth+x+p.opts.XOffset]
			img.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
		}
	}
	return img
}

// State is a summary of the controller registers.
type State struct {
	Sleeping  bool
	DisplayOn bool
	Inverted  bool
	ColorMode byte
	MADCTL    byte
	// Window is the last address window, with inclusive Max.
	Window image.Rectangle
	// Writes counts memory write commands.
	Writes int
	Hz     physic.Frequency
}

// State returns the current register summary.
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{
		Sleeping:  p.sleeping,
		DisplayOn: p.displayOn,
		Inverted:  p.inverted,
		ColorMode: p.colmod,
		MADCTL:    p.madctl,
		Window:    p.win,
		Writes:    p.writes,
		Hz:        p.hz,
	}
}

// Commands returns every command byte received so far.
func (p *Panel) Commands() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.history...)
}

var (
	_ spi.PortCloser = &Panel{}
	_ spi.Conn       = &Panel{}
	_ conn.Limits    = &Panel{}
)
