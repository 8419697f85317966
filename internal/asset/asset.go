// Package asset loads fonts and images for the programs from the filesystem.
package asset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"periph.io/x/devices/v3/st7789/glyph"
	"periph.io/x/devices/v3/st7789/rgb565"
)

// ErrUnavailable is wrapped by every error caused by a missing, unreadable or
// truncated asset.
var ErrUnavailable = errors.New("asset: unavailable")

// Raw images are stored in the byte order of the machine that wrote them.
var rawOrder binary.ByteOrder = binary.NativeEndian

// LoadFont reads a glyph table file. An empty path returns the built-in font.
func LoadFont(path string, opts *glyph.Opts) (*glyph.Table, error) {
	if path == "" {
		return glyph.Basic(), nil
	}
	t, err := glyph.LoadFile(path, opts)
	if err != nil {
		if errors.Is(err, glyph.ErrUnavailable) {
			return nil, fmt.Errorf("%w: font %s: %w", ErrUnavailable, path, err)
		}
		return nil, err
	}
	return t, nil
}

// LoadImage returns a w x h panel image in column-major order, ready for
// BlitImage. Files ending in .raw or .bin hold raw RGB565; anything else is
// decoded as a picture and resized.
func LoadImage(path string, w, h int) ([]rgb565.Color, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".raw", ".bin":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		defer f.Close()
		return ReadRaw(f, w, h)
	default:
		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return Picture(img, w, h, imaging.Lanczos), nil
	}
}

// ReadRaw reads exactly w*h raw colors from r.
func ReadRaw(r io.Reader, w, h int) ([]rgb565.Color, error) {
	b := make([]byte, 2*w*h)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: raw image: %w", ErrUnavailable, err)
	}
	return rgb565.Decode(b, rawOrder), nil
}

// WriteRaw writes pix in the raw image format.
func WriteRaw(w io.Writer, pix []rgb565.Color) error {
	_, err := w.Write(rgb565.Encode(pix, rawOrder))
	return err
}

// Picture scales img to h x w, landscape, and returns it in the raw image
// layout: landscape pixel (col, row) lands on panel pixel (row, col), at index
// row*h+col.
func Picture(img image.Image, w, h int, filter imaging.ResampleFilter) []rgb565.Color {
	src := imaging.Resize(img, h, w, filter)
	pix := make([]rgb565.Color, 0, w*h)
	for row := 0; row < w; row++ {
		line := src.Pix[row*src.Stride : row*src.Stride+4*h]
		for i := 0; i < len(line); i += 4 {
			pix = append(pix, rgb565.Pack(line[i], line[i+1], line[i+2]))
		}
	}
	return pix
}
