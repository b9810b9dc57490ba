package bytebuffer

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/wirecc/wirecc/endian"
)

// ByteBuffer is an append-growing byte sequence with a single
// read/write cursor. The zero value is an empty buffer ready for use.
type ByteBuffer struct {
	pos int
	buf []byte
}

// New creates an empty ByteBuffer with the cursor at 0.
func New() *ByteBuffer {
	return &ByteBuffer{}
}

// NewFromBytes creates a ByteBuffer holding a copy of data, with the
// cursor at 0, ready for reading.
func NewFromBytes(data []byte) *ByteBuffer {
	b := New()
	b.Load(data)
	return b
}

// Pos returns the current cursor position.
func (b *ByteBuffer) Pos() int { return b.pos }

// SetPos moves the cursor to position. Positions from 0 through Size()
// inclusive are valid; anything else fails with ErrInvalidPosition and
// leaves the cursor unchanged. Setting the position past Size() is
// rejected rather than clamped so that a caller protocol bug surfaces
// here instead of as a later underrun.
func (b *ByteBuffer) SetPos(position int) error {
	if position < 0 || position > len(b.buf) {
		return errors.Wrapf(ErrInvalidPosition, "position %d in a buffer of %d bytes", position, len(b.buf))
	}

	b.pos = position
	return nil
}

// MustSetPos will try to set the position inside the buffer and panic
// on error.
func (b *ByteBuffer) MustSetPos(position int) {
	if err := b.SetPos(position); err != nil {
		panic(err)
	}
}

// Size returns the total number of stored bytes, regardless of the
// cursor.
func (b *ByteBuffer) Size() int { return len(b.buf) }

// Data returns the backing bytes. The slice is owned by the buffer and
// must not be modified by the caller.
func (b *ByteBuffer) Data() []byte { return b.buf }

// Clear resets the buffer to the empty state with the cursor at 0.
func (b *ByteBuffer) Clear() {
	b.buf = b.buf[:0]
	b.pos = 0
}

// Load replaces all content with a copy of data and resets the cursor
// to 0.
func (b *ByteBuffer) Load(data []byte) {
	b.buf = append(b.buf[:0], data...)
	b.pos = 0
}

// Concat appends a copy of data to the current content and advances
// the cursor by the appended length.
func (b *ByteBuffer) Concat(data []byte) {
	b.buf = append(b.buf, data...)
	b.pos += len(data)
}

// Write implements io.Writer with Concat semantics. It never fails.
func (b *ByteBuffer) Write(data []byte) (int, error) {
	b.Concat(data)
	return len(data), nil
}

// remaining is the number of unread bytes between the cursor and the
// end of storage.
func (b *ByteBuffer) remaining() int { return len(b.buf) - b.pos }

func (b *ByteBuffer) require(n int) error {
	if b.remaining() < n {
		return errors.Wrapf(ErrBufferUnderrun, "need %d bytes at position %d, have %d", n, b.pos, b.remaining())
	}
	return nil
}

// grow extends storage by n zero bytes and returns the extension.
func (b *ByteBuffer) grow(n int) []byte {
	b.buf = append(b.buf, make([]byte, n)...)
	return b.buf[len(b.buf)-n:]
}

// peekCount decodes the 4-byte count prefix at the cursor and verifies
// that the full field, prefix plus count*elemWidth payload bytes, is
// present. The cursor does not move, so a failed read stays atomic.
func (b *ByteBuffer) peekCount(elemWidth int) (int, error) {
	if err := b.require(endian.Width32); err != nil {
		return 0, err
	}

	prefix, _ := endian.Decode32(b.buf[b.pos:])
	// compare before narrowing to int so a 4-billion prefix cannot wrap
	// negative on 32-bit platforms
	if uint64(prefix) > uint64(MaxFieldLength/elemWidth) {
		return 0, errors.Wrapf(ErrIntegerOverflow, "prefix %d at position %d claims over %d payload bytes", prefix, b.pos, MaxFieldLength)
	}
	count := int(prefix)

	if err := b.require(endian.Width32 + count*elemWidth); err != nil {
		return 0, err
	}
	return count, nil
}

// WriteUint64 appends val as 8 big-endian bytes.
func (b *ByteBuffer) WriteUint64(val uint64) {
	_ = endian.Encode64(val, b.grow(endian.Width64))
	b.pos += endian.Width64
}

// ReadUint64 decodes 8 big-endian bytes at the cursor.
func (b *ByteBuffer) ReadUint64() (uint64, error) {
	if err := b.require(endian.Width64); err != nil {
		return 0, err
	}

	val, _ := endian.Decode64(b.buf[b.pos:])
	b.pos += endian.Width64
	return val, nil
}

// WriteUint32 appends val as 4 big-endian bytes. This is also the
// universal length-prefix width.
func (b *ByteBuffer) WriteUint32(val uint32) {
	_ = endian.Encode32(val, b.grow(endian.Width32))
	b.pos += endian.Width32
}

// ReadUint32 decodes 4 big-endian bytes at the cursor.
func (b *ByteBuffer) ReadUint32() (uint32, error) {
	if err := b.require(endian.Width32); err != nil {
		return 0, err
	}

	val, _ := endian.Decode32(b.buf[b.pos:])
	b.pos += endian.Width32
	return val, nil
}

// WriteInt32 appends val as 4 big-endian bytes, bit-reinterpreted as
// unsigned (two's complement).
func (b *ByteBuffer) WriteInt32(val int32) {
	b.WriteUint32(uint32(val))
}

// ReadInt32 decodes 4 big-endian bytes at the cursor as a signed
// two's-complement integer.
func (b *ByteBuffer) ReadInt32() (int32, error) {
	val, err := b.ReadUint32()
	return int32(val), err
}

// WriteBool appends a single byte, 0x01 for true and 0x00 for false.
func (b *ByteBuffer) WriteBool(val bool) {
	var encoded byte
	if val {
		encoded = 1
	}

	b.buf = append(b.buf, encoded)
	b.pos++
}

// ReadBool decodes a single byte at the cursor. Any nonzero byte is
// true: producers outside this package may emit true values other than
// 0x01, and those must decode as true.
func (b *ByteBuffer) ReadBool() (bool, error) {
	if err := b.require(1); err != nil {
		return false, err
	}

	val := b.buf[b.pos] != 0
	b.pos++
	return val, nil
}

// WriteString appends a 4-byte length prefix followed by the raw bytes
// of val. No terminator is written and no text encoding is assumed; an
// empty string is a zero prefix with no payload.
func (b *ByteBuffer) WriteString(val string) {
	b.WriteUint32(uint32(len(val)))
	b.buf = append(b.buf, val...)
	b.pos += len(val)
}

// ReadString decodes a length-prefixed byte run at the cursor.
func (b *ByteBuffer) ReadString() (string, error) {
	n, err := b.peekCount(1)
	if err != nil {
		return "", errors.Wrap(err, "read string")
	}

	start := b.pos + endian.Width32
	val := string(b.buf[start : start+n])
	b.pos = start + n
	return val, nil
}

// WriteCString writes the bytes of val up to but not including the
// first NUL, in the same wire shape as WriteString. Without a NUL the
// whole slice is written. The read side is ReadString.
func (b *ByteBuffer) WriteCString(val []byte) {
	if i := bytes.IndexByte(val, 0); i >= 0 {
		val = val[:i]
	}
	b.WriteString(string(val))
}

// WriteBuffer appends inner as a length-prefixed byte run, enabling
// composite message structures.
func (b *ByteBuffer) WriteBuffer(inner *ByteBuffer) {
	b.WriteUint32(uint32(inner.Size()))
	b.buf = append(b.buf, inner.buf...)
	b.pos += inner.Size()
}

// ReadBuffer decodes a length-prefixed byte run at the cursor into an
// independent ByteBuffer with its cursor at 0.
func (b *ByteBuffer) ReadBuffer() (*ByteBuffer, error) {
	n, err := b.peekCount(1)
	if err != nil {
		return nil, errors.Wrap(err, "read buffer")
	}

	start := b.pos + endian.Width32
	inner := NewFromBytes(b.buf[start : start+n])
	b.pos = start + n
	return inner, nil
}
