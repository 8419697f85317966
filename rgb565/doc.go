// Package rgb565 provides the 16-bit packed color format used by the ST7789
// display controller.
//
// A Color holds 5 bits of red, 6 bits of green and 5 bits of blue:
//
//	bit  15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//	     R4 R3 R2 R1 R0 G5 G4 G3 G2 G1 G0 B4 B3 B2 B1 B0
//
// On the wire the controller expects the high byte first. Raw image files
// produced by the conversion tools store colors in host byte order instead,
// see Decode.
//
// This package provides:
//
// - Color: a packed color implementing color.Color
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image / draw.Image backed by a []Color in row-major order
//
// Example usage:
//
//	img := rgb565.NewImage(image.Rect(0, 0, 135, 240))
//	img.SetRGB565(10, 20, rgb565.Pack(255, 0, 0))
//	buf := make([]byte, 2*len(img.Pix))
//	rgb565.PutBigEndian(buf, img.Pix)
package rgb565
