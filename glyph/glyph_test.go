package glyph

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tinygo.org/x/tinyfont/proggy"
)

func TestNewValidation(t *testing.T) {
	full := make([]byte, (DefaultEnd-DefaultStart)*DefaultHeight)

	tests := []struct {
		name    string
		data    []byte
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", full, nil, false},
		{"short table", full[:10], nil, true},
		{"width zero uses default", full, &Opts{Height: DefaultHeight}, false},
		{"width 9", full, &Opts{Width: 9}, true},
		{"start after end", full, &Opts{Start: 0x40, End: 0x30}, true},
		{"single glyph", []byte{0xFF}, &Opts{Start: 'A', End: 'B', Width: 8, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRow(t *testing.T) {
	data := []byte{
		0x80, 0x40, // 'A'
		0x01, 0x02, // 'B'
	}
	tbl, err := New(data, &Opts{Start: 'A', End: 'C', Width: 8, Height: 2})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		c      byte
		row    int
		want   byte
		wantOK bool
	}{
		{'A', 0, 0x80, true},
		{'A', 1, 0x40, true},
		{'B', 1, 0x02, true},
		{'B', 2, 0, false},
		{'B', -1, 0, false},
		{'@', 0, 0, false},
		{'C', 0, 0, false}, // end of range has no bitmap
		{'D', 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := tbl.Row(tt.c, tt.row)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Row(%q, %d) = (0x%02X, %v), want (0x%02X, %v)", tt.c, tt.row, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoadFullTable(t *testing.T) {
	size := (DefaultEnd - DefaultStart) * DefaultHeight
	src := bytes.Repeat([]byte{0xAA}, size+5)

	tbl, err := Load(bytes.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Data) != size {
		t.Errorf("len(Data) = %d, want %d", len(tbl.Data), size)
	}
	last, ok := tbl.Row(DefaultEnd-1, DefaultHeight-1)
	if !ok || last != 0xAA {
		t.Errorf("last row = (0x%02X, %v), want (0xAA, true)", last, ok)
	}
}

func TestLoadShortRead(t *testing.T) {
	_, err := Load(bytes.NewReader(make([]byte, 8)), nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Load() error = %v, want ErrUnavailable", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir()+"/missing.bin", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("LoadFile() error = %v, want ErrUnavailable", err)
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	tbl := Basic()
	var buf bytes.Buffer
	if _, err := tbl.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	opts := tbl.Opts()
	back, err := Load(&buf, &opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back.Data, tbl.Data) {
		t.Error("table changed after WriteTo/Load")
	}
}

func TestBasic(t *testing.T) {
	tbl := Basic()
	if tbl.Width != 8 || tbl.Height != 13 {
		t.Fatalf("Basic() layout = %dx%d, want 8x13", tbl.Width, tbl.Height)
	}
	if !hasInk(tbl, 'A') {
		t.Error("glyph 'A' is blank")
	}
	if hasInk(tbl, ' ') {
		t.Error("glyph ' ' has ink")
	}
}

func TestDump(t *testing.T) {
	tbl, err := New([]byte{0xF0, 0x81}, &Opts{Start: 'x', End: 'y', Width: 8, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := tbl.Dump(&b, 'x', '#', '.'); err != nil {
		t.Fatal(err)
	}
	want := "####....\n#......#\n"
	if b.String() != want {
		t.Errorf("Dump() = %q, want %q", b.String(), want)
	}
	if err := tbl.Dump(&b, 'z', '#', '.'); err == nil {
		t.Error("Dump() of missing glyph should fail")
	}
}

func TestFromTinyfont(t *testing.T) {
	tbl, err := FromTinyfont(&proggy.TinySZ8pt7b, &Opts{Height: 12})
	if err != nil {
		t.Fatal(err)
	}
	if !hasInk(tbl, 'A') {
		t.Error("glyph 'A' is blank")
	}
	if hasInk(tbl, ' ') {
		t.Error("glyph ' ' has ink")
	}
}

func hasInk(tbl *Table, c byte) bool {
	for row := 0; row < tbl.Height; row++ {
		if m, _ := tbl.Row(c, row); m != 0 {
			return true
		}
	}
	return false
}
