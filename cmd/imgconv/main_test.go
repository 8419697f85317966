package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert(t *testing.T) {
	// 3x2 landscape picture for a 2x3 panel, red on the top row.
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: 0xFF, A: 0xFF})
		img.SetNRGBA(x, 1, color.NRGBA{B: 0xFF, A: 0xFF})
	}
	in := writePNG(t, img)

	tests := []struct {
		order string
		want  []byte
	}{
		{"little", []byte{0x00, 0xF8, 0x00, 0xF8, 0x00, 0xF8, 0x1F, 0x00, 0x1F, 0x00, 0x1F, 0x00}},
		{"big", []byte{0xF8, 0x00, 0xF8, 0x00, 0xF8, 0x00, 0x00, 0x1F, 0x00, 0x1F, 0x00, 0x1F}},
	}
	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			dst := filepath.Join(t.TempDir(), "out.raw")
			if err := convert(in, dst, 2, 3, "nearest", tt.order); err != nil {
				t.Fatalf("convert() error = %v", err)
			}
			got, err := os.ReadFile(dst)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("output = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	in := writePNG(t, image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	dst := filepath.Join(t.TempDir(), "out.raw")
	tests := []struct {
		name          string
		in            string
		w, h          int
		filter, order string
	}{
		{"missing input", filepath.Join(t.TempDir(), "none.png"), 2, 2, "nearest", "little"},
		{"bad filter", in, 2, 2, "bicubic", "little"},
		{"bad order", in, 2, 2, "nearest", "middle"},
		{"bad size", in, 0, 2, "nearest", "little"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := convert(tt.in, dst, tt.w, tt.h, tt.filter, tt.order); err == nil {
				t.Error("convert() should fail")
			}
		})
	}
}
