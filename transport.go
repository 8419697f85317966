package st7789

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// ErrBus is wrapped by every error caused by a failed transfer or a failed
// D/C line change. The panel state is unknown after such an error and the
// device should be re-initialized.
var ErrBus = errors.New("st7789: bus fault")

// transport owns the SPI connection and the D/C line. A transfer and the D/C
// change that precedes it are never interleaved with another transfer.
type transport struct {
	mu  sync.Mutex
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	cmd [1]byte
}

func busError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrBus, op, err)
}

// command sends a single command byte with D/C low.
func (t *transport) command(b byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.commandLocked(b)
}

func (t *transport) commandLocked(b byte) error {
	if err := t.dc.Out(gpio.Low); err != nil {
		return busError("select command mode", err)
	}
	t.cmd[0] = b
	if err := t.c.Tx(t.cmd[:], nil); err != nil {
		return busError(fmt.Sprintf("command 0x%02X", b), err)
	}
	return nil
}

// data sends p with D/C high.
func (t *transport) data(p []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dataLocked(p)
}

func (t *transport) dataLocked(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := t.dc.Out(gpio.High); err != nil {
		return busError("select data mode", err)
	}
	if err := t.c.Tx(p, nil); err != nil {
		return busError(fmt.Sprintf("data (%d bytes)", len(p)), err)
	}
	return nil
}

// commandData sends a command followed by its parameters.
func (t *transport) commandData(cmd byte, params ...byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.commandLocked(cmd); err != nil {
		return err
	}
	return t.dataLocked(params)
}

// maxColors caps want to what the connection accepts in one transfer.
func (t *transport) maxColors(want int) int {
	if l, ok := t.c.(conn.Limits); ok {
		if m := l.MaxTxSize() / 2; m > 0 && m < want {
			return m
		}
	}
	return want
}
