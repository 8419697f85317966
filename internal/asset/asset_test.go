package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"periph.io/x/devices/v3/st7789/glyph"
	"periph.io/x/devices/v3/st7789/rgb565"
)

func TestRawRoundTrip(t *testing.T) {
	pix := []rgb565.Color{0x0001, 0xF800, 0x07E0, 0x001F, 0xFFFF, 0x1234}
	var buf bytes.Buffer
	if err := WriteRaw(&buf, pix); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRaw(&buf, 2, 3)
	if err != nil {
		t.Fatalf("ReadRaw() error = %v", err)
	}
	for i := range pix {
		if got[i] != pix[i] {
			t.Errorf("pixel %d = %#04x, want %#04x", i, got[i], pix[i])
		}
	}
}

func TestReadRawShort(t *testing.T) {
	_, err := ReadRaw(bytes.NewReader(make([]byte, 11)), 2, 3)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("ReadRaw() error = %v, want ErrUnavailable", err)
	}
}

func TestLoadImageMissing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"missing.raw", "missing.png"} {
		_, err := LoadImage(filepath.Join(dir, name), 2, 2)
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("LoadImage(%s) error = %v, want ErrUnavailable", name, err)
		}
	}
}

func TestLoadImageRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.raw")
	var buf bytes.Buffer
	if err := WriteRaw(&buf, []rgb565.Color{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	pix, err := LoadImage(path, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pix) != 4 || pix[3] != 4 {
		t.Errorf("LoadImage() = %v", pix)
	}
}

func TestLoadImagePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	path := filepath.Join(t.TempDir(), "white.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pix, err := LoadImage(path, 3, 5)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if len(pix) != 15 {
		t.Fatalf("got %d pixels, want 15", len(pix))
	}
	for i, c := range pix {
		if c != rgb565.White {
			t.Errorf("pixel %d = %#04x, want white", i, c)
		}
	}
}

func TestPictureLayout(t *testing.T) {
	// A 3x2 landscape picture for a 2x3 panel: no scaling happens.
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	colors := []color.NRGBA{
		{R: 0xFF, A: 0xFF}, {G: 0xFF, A: 0xFF}, {B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xFF, A: 0xFF}, {A: 0xFF}, {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	for i, c := range colors {
		img.SetNRGBA(i%3, i/3, c)
	}

	got := Picture(img, 2, 3, imaging.NearestNeighbor)
	want := []rgb565.Color{
		rgb565.Red, rgb565.Green, rgb565.Blue,
		rgb565.Yellow, rgb565.Black, rgb565.White,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %#04x, want %#04x", i, got[i], want[i])
		}
	}
}

func TestLoadFont(t *testing.T) {
	tbl, err := LoadFont("", nil)
	if err != nil || tbl == nil {
		t.Fatalf("LoadFont(\"\") = %v, %v", tbl, err)
	}

	_, err = LoadFont(filepath.Join(t.TempDir(), "none.bin"), nil)
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, glyph.ErrUnavailable) {
		t.Errorf("LoadFont(missing) error = %v, want ErrUnavailable", err)
	}

	path := filepath.Join(t.TempDir(), "font.bin")
	if err := os.WriteFile(path, make([]byte, 95*12), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err = LoadFont(path, nil)
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	if tbl.Height != 12 || !tbl.Contains('~') {
		t.Errorf("LoadFont() = %+v", tbl.Opts())
	}
}
