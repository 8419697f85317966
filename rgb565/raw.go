package rgb565

import "encoding/binary"

// PutBigEndian writes src into dst high byte first and returns the number of
// bytes written. dst must hold at least 2*len(src) bytes.
func PutBigEndian(dst []byte, src []Color) int {
	if len(src) == 0 {
		return 0
	}
	_ = dst[2*len(src)-1]
	for i, c := range src {
		dst[2*i] = byte(c >> 8)
		dst[2*i+1] = byte(c)
	}
	return 2 * len(src)
}

// AppendBigEndian appends the wire bytes of src to dst.
func AppendBigEndian(dst []byte, src []Color) []byte {
	for _, c := range src {
		dst = append(dst, byte(c>>8), byte(c))
	}
	return dst
}

// Decode converts raw 16-bit values in the given byte order into colors.
// A trailing odd byte is ignored.
func Decode(b []byte, order binary.ByteOrder) []Color {
	out := make([]Color, len(b)/2)
	for i := range out {
		out[i] = Color(order.Uint16(b[2*i:]))
	}
	return out
}

// Encode is the inverse of Decode.
func Encode(src []Color, order binary.ByteOrder) []byte {
	out := make([]byte, 2*len(src))
	for i, c := range src {
		order.PutUint16(out[2*i:], uint16(c))
	}
	return out
}
