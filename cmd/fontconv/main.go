// Command fontconv builds glyph table files and prints their content.
//
// Build a table from a TrueType font, the built-in 7x13 font, or a TinyGo
// font:
//
//	fontconv -ttf font.ttf -size 12 -o font.bin
//	fontconv -builtin basic -height 13 -o basic.bin
//	fontconv -builtin proggy -o proggy.bin
//
// Print glyphs of an existing table as text art:
//
//	fontconv -dump ABC123 font.bin
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"periph.io/x/devices/v3/st7789/glyph"
	"periph.io/x/devices/v3/st7789/internal/log"
)

var (
	ttfPath = flag.String("ttf", "", "TrueType font to rasterize")
	builtin = flag.String("builtin", "", "Built-in font to rasterize: basic, proggy, picopixel")
	size    = flag.Float64("size", 12, "Font size in points, for -ttf")
	dpi     = flag.Float64("dpi", 72, "Resolution, for -ttf")
	width   = flag.Int("width", glyph.DefaultWidth, "Glyph width in pixels (1-8)")
	height  = flag.Int("height", glyph.DefaultHeight, "Glyph height in rows")
	out     = flag.String("o", "font.bin", "Output file")
	dump    = flag.String("dump", "", "Print these characters of the table given as argument instead of building one")
)

func main() {
	flag.Parse()
	opts := &glyph.Opts{Width: *width, Height: *height}

	var err error
	if *dump != "" {
		if flag.NArg() != 1 {
			err = errors.New("-dump needs exactly one table file")
		} else {
			err = dumpFile(os.Stdout, flag.Arg(0), *dump, opts)
		}
	} else {
		err = build(*out, opts)
	}
	if err != nil {
		log.Error("fontconv failed", err)
		os.Exit(1)
	}
}

func build(path string, opts *glyph.Opts) error {
	var t *glyph.Table
	var err error
	switch {
	case *ttfPath != "":
		t, err = fromTrueType(*ttfPath, *size, *dpi, opts)
	case *builtin != "":
		t, err = fromBuiltin(*builtin, opts)
	default:
		return errors.New("one of -ttf or -builtin is required")
	}
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	n, err := t.WriteTo(f)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("table written", "path", path, "bytes", n, "glyphs", int(t.End-t.Start), "cell", fmt.Sprintf("%dx%d", t.Width, t.Height))
	return nil
}

func fromTrueType(path string, size, dpi float64, opts *glyph.Opts) (*glyph.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return glyph.FromFace(face, opts)
}

func fromBuiltin(name string, opts *glyph.Opts) (*glyph.Table, error) {
	switch name {
	case "basic":
		return glyph.FromFace(basicfont.Face7x13, opts)
	case "proggy":
		return glyph.FromTinyfont(&proggy.TinySZ8pt7b, opts)
	case "picopixel":
		return glyph.FromTinyfont(&tinyfont.Picopixel, opts)
	}
	return nil, fmt.Errorf("unknown built-in font %q", name)
}

func dumpFile(w io.Writer, path, chars string, opts *glyph.Opts) error {
	t, err := glyph.LoadFile(path, opts)
	if err != nil {
		return err
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if !t.Contains(c) {
			fmt.Fprintf(w, "%q: not in table\n\n", c)
			continue
		}
		fmt.Fprintf(w, "%q:\n", c)
		if err := t.Dump(w, c, '#', ' '); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
