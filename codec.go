package st7789

import "periph.io/x/devices/v3/st7789/rgb565"

// ChunkColors is the largest number of colors sent in one transfer. 1024
// bytes stays below the maximum transfer size of common SPI DMA engines.
const ChunkColors = 512

// encoder serializes colors into an owned scratch buffer, one chunk at a
// time. It is single-writer: only the Dev that owns it may use it.
type encoder struct {
	buf   []byte
	chunk int
}

func newEncoder(chunk int) encoder {
	if chunk < 1 {
		chunk = 1
	}
	return encoder{buf: make([]byte, 2*chunk), chunk: chunk}
}

// stream sends colors high byte first, one data transfer per chunk.
func (e *encoder) stream(t *transport, colors []rgb565.Color) error {
	for len(colors) > 0 {
		n := min(len(colors), e.chunk)
		rgb565.PutBigEndian(e.buf, colors[:n])
		if err := t.data(e.buf[:2*n]); err != nil {
			return err
		}
		colors = colors[n:]
	}
	return nil
}

// streamBytes sends pre-serialized pixel bytes in chunks of the same size.
func (e *encoder) streamBytes(t *transport, p []byte) error {
	for len(p) > 0 {
		n := min(len(p), len(e.buf))
		if err := t.data(p[:n]); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
