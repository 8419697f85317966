package st7789

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// State is the controller state as driven by this package.
type State uint8

// Controller states, in Init order.
const (
	StateUnpowered State = iota
	StateReset
	StateSleepOut
	StateConfigured
	StateActive
)

func (s State) String() string {
	switch s {
	case StateUnpowered:
		return "Unpowered"
	case StateReset:
		return "Reset"
	case StateSleepOut:
		return "SleepOut"
	case StateConfigured:
		return "Configured"
	case StateActive:
		return "Active"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Init resets the controller and sends the initialization sequence, then
// sets the backlight. It blocks for about half a second: every delay is a
// minimum required by the controller.
func (d *Dev) Init() error {
	if err := d.reset(); err != nil {
		return err
	}

	if err := d.t.command(cmdSLPOUT); err != nil {
		return err
	}
	d.sleep(120 * time.Millisecond)
	d.state = StateSleepOut

	steps := []struct {
		cmd    byte
		params []byte
	}{
		{cmdCOLMOD, []byte{colorMode65K}},
		{cmdMADCTL, []byte{d.orientation}},
		{cmdPORCTRL, porchTiming[:]},
		{cmdGCTRL, []byte{gateControl}},
		{cmdVCOMS, []byte{vcomSetting}},
	}
	for _, s := range steps {
		if err := d.t.commandData(s.cmd, s.params...); err != nil {
			return err
		}
	}
	d.state = StateConfigured
	d.sleep(10 * time.Millisecond)

	for _, cmd := range []byte{cmdINVON, cmdNORON, cmdDISPON} {
		if err := d.t.command(cmd); err != nil {
			return err
		}
	}
	d.sleep(150 * time.Millisecond)
	d.state = StateActive
	d.halted = false

	return d.SetBacklight(d.duty)
}

// reset pulses the reset pin, if any, then issues a software reset.
func (d *Dev) reset() error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to pull RST low: %w", err)
		}
		d.sleep(20 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to pull RST high: %w", err)
		}
	}
	if err := d.t.command(cmdSWRESET); err != nil {
		return err
	}
	d.sleep(150 * time.Millisecond)
	d.state = StateReset
	return nil
}

// SetBacklight sets the backlight duty cycle out of 255. It is a no-op when
// no backlight pin was configured.
func (d *Dev) SetBacklight(duty uint8) error {
	if d.bl == nil {
		return nil
	}
	dc := gpio.Duty(uint64(gpio.DutyMax) * uint64(duty) / 255)
	if err := d.bl.PWM(dc, backlightFrequency); err != nil {
		return fmt.Errorf("st7789: failed to set backlight: %w", err)
	}
	return nil
}

// SetWindow selects the rectangle filled by the next memory write. The
// bounds are inclusive. Coordinates are clamped to the panel, never
// rejected.
func (d *Dev) SetWindow(x0, x1, y0, y1 int) error {
	if d.halted {
		return errHalted
	}
	return d.setWindow(x0, x1, y0, y1)
}

func (d *Dev) setWindow(x0, x1, y0, y1 int) error {
	w, h := d.rect.Dx(), d.rect.Dy()
	xs, xe := clamp(x0, w)+d.xOffset, clamp(x1, w)+d.xOffset
	ys, ye := clamp(y0, h)+d.yOffset, clamp(y1, h)+d.yOffset

	d.win = [4]byte{byte(xs >> 8), byte(xs), byte(xe >> 8), byte(xe)}
	if err := d.t.commandData(cmdCASET, d.win[:]...); err != nil {
		return err
	}
	d.win = [4]byte{byte(ys >> 8), byte(ys), byte(ye >> 8), byte(ye)}
	return d.t.commandData(cmdRASET, d.win[:]...)
}

// BeginWrite issues the memory write command. Data sent afterwards fills the
// current window in row-major order.
func (d *Dev) BeginWrite() error {
	if d.halted {
		return errHalted
	}
	return d.t.command(cmdRAMWR)
}

// clamp limits v to [0, bound-1].
func clamp(v, bound int) int {
	if v >= bound {
		return bound - 1
	}
	if v < 0 {
		return 0
	}
	return v
}
