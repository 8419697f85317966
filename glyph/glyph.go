// Package glyph holds fixed-size 1-bit font tables for the st7789 text
// rasterizer.
//
// A table is a flat byte slice holding, for every character code in
// [Start, End), Height row bytes. Bit 7 of a row byte is the leftmost
// column, so glyphs are at most 8 pixels wide:
//
//	Data[(c-Start)*Height + row]
//
// This is the layout written by cmd/fontconv.
package glyph

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Default table layout: printable ASCII in 8x12 cells.
const (
	DefaultStart  = 0x20
	DefaultEnd    = 0x7F
	DefaultWidth  = 8
	DefaultHeight = 12
)

// ErrUnavailable is returned when a table cannot be read in full.
var ErrUnavailable = errors.New("glyph: table unavailable")

// Opts describes a table layout. A nil *Opts means the default layout.
type Opts struct {
	Start  byte // First character code
	End    byte // Character code range end; End itself has no bitmap
	Width  int  // Glyph width in pixels (1-8)
	Height int  // Glyph height in rows
}

func (o *Opts) withDefaults() Opts {
	if o == nil {
		return Opts{Start: DefaultStart, End: DefaultEnd, Width: DefaultWidth, Height: DefaultHeight}
	}
	out := *o
	if out.Start == 0 && out.End == 0 {
		out.Start, out.End = DefaultStart, DefaultEnd
	}
	if out.Width == 0 {
		out.Width = DefaultWidth
	}
	if out.Height == 0 {
		out.Height = DefaultHeight
	}
	return out
}

func (o Opts) validate() error {
	if o.Width < 1 || o.Width > 8 {
		return errors.New("glyph: width must be between 1 and 8")
	}
	if o.Height < 1 {
		return errors.New("glyph: height must be positive")
	}
	if o.Start > o.End {
		return errors.New("glyph: start must not exceed end")
	}
	return nil
}

// Size returns the number of bytes a table with this layout occupies.
func (o Opts) Size() int {
	return int(o.End-o.Start) * o.Height
}

// Table is a read-only glyph bitmap table. It is borrowed by drawing calls
// and never modified by them.
type Table struct {
	Data   []byte
	Start  byte
	End    byte
	Width  int
	Height int
}

// New wraps data as a table. data must hold at least (End-Start)*Height
// bytes.
func New(data []byte, opts *Opts) (*Table, error) {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(data) < o.Size() {
		return nil, fmt.Errorf("glyph: table has %d bytes, want %d", len(data), o.Size())
	}
	return &Table{
		Data:   data,
		Start:  o.Start,
		End:    o.End,
		Width:  o.Width,
		Height: o.Height,
	}, nil
}

// Opts returns the layout of t.
func (t *Table) Opts() Opts {
	return Opts{Start: t.Start, End: t.End, Width: t.Width, Height: t.Height}
}

// Contains reports whether c has a bitmap in t.
func (t *Table) Contains(c byte) bool {
	if c < t.Start || c > t.End {
		return false
	}
	return (int(c-t.Start)+1)*t.Height <= len(t.Data)
}

// Row returns the bitmask of row for character c. ok is false when c has no
// bitmap or row is outside the glyph.
func (t *Table) Row(c byte, row int) (mask byte, ok bool) {
	if !t.Contains(c) || row < 0 || row >= t.Height {
		return 0, false
	}
	return t.Data[int(c-t.Start)*t.Height+row], true
}

// Load reads a complete table from r.
func Load(r io.Reader, opts *Opts) (*Table, error) {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return nil, err
	}
	data := make([]byte, o.Size())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return New(data, &o)
}

// LoadFile reads a complete table from the file at path.
func LoadFile(path string, opts *Opts) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()
	return Load(f, opts)
}

// WriteTo writes the table bytes to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Data[:t.Opts().Size()])
	return int64(n), err
}

// Dump writes c as text art, one line per row.
func (t *Table) Dump(w io.Writer, c byte, on, off rune) error {
	var b strings.Builder
	for row := 0; row < t.Height; row++ {
		mask, ok := t.Row(c, row)
		if !ok {
			return fmt.Errorf("glyph: no bitmap for 0x%02X", c)
		}
		for col := 0; col < t.Width; col++ {
			if mask&(0x80>>col) != 0 {
				b.WriteRune(on)
			} else {
				b.WriteRune(off)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
