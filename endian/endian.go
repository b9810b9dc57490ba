// Package endian implements the big-endian integer layer that the rest
// of the codec is built on: fixed-width conversions between 16/32/64-bit
// unsigned integers and their most-significant-byte-first encodings.
//
// All functions operate on caller-provided buffers and never allocate.
// Results are unsigned; signed values are carried on the wire by
// bit-reinterpreting the unsigned forms (two's complement), which the
// bytebuffer package takes care of.
package endian

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Byte widths of the encoded integer forms.
const (
	Width16 = 2
	Width32 = 4
	Width64 = 8
)

// ErrBufferTooShort is returned when the passed buffer cannot hold the
// requested integer width.
var ErrBufferTooShort = errors.New("buffer too short")

// Encode64 writes val into the first 8 bytes of buf, most significant
// byte first.
func Encode64(val uint64, buf []byte) error {
	if len(buf) < Width64 {
		return errors.Wrapf(ErrBufferTooShort, "encoding 8 bytes into %d", len(buf))
	}

	binary.BigEndian.PutUint64(buf, val)
	return nil
}

// Decode64 reconstructs a 64-bit unsigned integer from the first 8
// bytes of buf.
func Decode64(buf []byte) (uint64, error) {
	if len(buf) < Width64 {
		return 0, errors.Wrapf(ErrBufferTooShort, "decoding 8 bytes from %d", len(buf))
	}

	return binary.BigEndian.Uint64(buf), nil
}

// Encode32 writes val into the first 4 bytes of buf, most significant
// byte first.
func Encode32(val uint32, buf []byte) error {
	if len(buf) < Width32 {
		return errors.Wrapf(ErrBufferTooShort, "encoding 4 bytes into %d", len(buf))
	}

	binary.BigEndian.PutUint32(buf, val)
	return nil
}

// Decode32 reconstructs a 32-bit unsigned integer from the first 4
// bytes of buf.
func Decode32(buf []byte) (uint32, error) {
	if len(buf) < Width32 {
		return 0, errors.Wrapf(ErrBufferTooShort, "decoding 4 bytes from %d", len(buf))
	}

	return binary.BigEndian.Uint32(buf), nil
}

// Encode16 writes val into the first 2 bytes of buf, most significant
// byte first.
func Encode16(val uint16, buf []byte) error {
	if len(buf) < Width16 {
		return errors.Wrapf(ErrBufferTooShort, "encoding 2 bytes into %d", len(buf))
	}

	binary.BigEndian.PutUint16(buf, val)
	return nil
}

// Decode16 reconstructs a 16-bit unsigned integer from the first 2
// bytes of buf.
func Decode16(buf []byte) (uint16, error) {
	if len(buf) < Width16 {
		return 0, errors.Wrapf(ErrBufferTooShort, "decoding 2 bytes from %d", len(buf))
	}

	return binary.BigEndian.Uint16(buf), nil
}
