// Command imgconv converts a picture into a raw RGB565 panel image.
//
// The picture is resized to the panel rotated by a quarter turn (240x135 for
// the default 135x240 panel) and written row by row, two bytes per pixel.
// That layout is what BlitImage expects, one panel column per picture row.
//
//	imgconv -o photo.raw photo.jpg
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"periph.io/x/devices/v3/st7789/internal/asset"
	"periph.io/x/devices/v3/st7789/internal/log"
	"periph.io/x/devices/v3/st7789/rgb565"
)

var (
	out    = flag.String("o", "", "Output file (default: input name with .raw)")
	width  = flag.Int("w", 135, "Panel width")
	height = flag.Int("h", 240, "Panel height")
	filter = flag.String("filter", "lanczos", "Resampling filter: nearest, linear, catmullrom, lanczos")
	order  = flag.String("order", "little", "Byte order of the output: little, big")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: imgconv [flags] picture")
		flag.PrintDefaults()
		os.Exit(2)
	}
	in := flag.Arg(0)
	dst := *out
	if dst == "" {
		dst = strings.TrimSuffix(in, filepath.Ext(in)) + ".raw"
	}
	if err := convert(in, dst, *width, *height, *filter, *order); err != nil {
		log.Error("imgconv failed", err, "in", in)
		os.Exit(1)
	}
}

func convert(in, dst string, w, h int, filterName, orderName string) error {
	f, err := resampleFilter(filterName)
	if err != nil {
		return err
	}
	bo, err := byteOrder(orderName)
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return errors.New("panel size must be positive")
	}
	img, err := imaging.Open(in, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}
	pix := asset.Picture(img, w, h, f)
	if err := os.WriteFile(dst, rgb565.Encode(pix, bo), 0o644); err != nil {
		return err
	}
	log.Info("image written", "out", dst, "panel", fmt.Sprintf("%dx%d", w, h), "bytes", 2*len(pix))
	return nil
}

func resampleFilter(name string) (imaging.ResampleFilter, error) {
	switch name {
	case "nearest":
		return imaging.NearestNeighbor, nil
	case "linear":
		return imaging.Linear, nil
	case "catmullrom":
		return imaging.CatmullRom, nil
	case "lanczos":
		return imaging.Lanczos, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("unknown filter %q", name)
}

func byteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q", name)
}
