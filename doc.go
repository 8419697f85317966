// Package st7789 controls an ST7789 TFT display via SPI.
//
// The ST7789 is a 262K color TFT controller with 240×320 pixels of internal
// RAM. This driver runs it in 16-bit RGB565 mode and implements the
// display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - RGB565 color (5 bits red, 6 bits green, 5 bits blue)
// - 240×320 internal RAM; smaller panels are mapped through offsets
// - Display inversion
// - PWM backlight on a separate GPIO
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → Optional: GPIO for hardware reset
//	BLK         → Optional: PWM capable GPIO for the backlight
//
// # Basic Usage
//
//	host.Init()
//	port, _ := spireg.Open("")
//	dev, _ := st7789.NewSPI(port, gpioreg.ByName("GPIO16"), &st7789.Opts{
//		W: 135, H: 240, XOffset: 52, YOffset: 40,
//		RST:       gpioreg.ByName("GPIO23"),
//		Backlight: gpioreg.ByName("GPIO4"),
//	})
//	defer dev.Halt()
//
//	fb := dev.Framebuffer()
//	fb.Clear(rgb565.Black)
//	fb.FillRect(10, 20, 100, 100, rgb565.White)
//	fb.DrawText(4, 4, "hello", rgb565.Red, 2, glyph.Basic())
//	fb.Flush()
//
// # Drawing Paths
//
// There are three ways to get pixels on the panel:
//
// The Framebuffer holds a copy of the panel in memory. Drawing calls mutate
// memory only; Flush sends the whole buffer, row-major, in transfers of at
// most ChunkColors colors.
//
// BlitImage streams a pre-packed column-major image straight to the panel,
// one single-column window per x.
//
// Draw and Write implement the periph.io display interfaces: Draw converts
// any image.Image into the frame buffer and flushes, Write sends raw
// big-endian RGB565 bytes.
//
// # Errors
//
// Every failed transfer or D/C change returns an error wrapping ErrBus. The
// controller state is unknown afterwards; call Init again.
//
// # Datasheet
//
// https://www.rhydolabz.com/documents/33/ST7789.pdf
package st7789
