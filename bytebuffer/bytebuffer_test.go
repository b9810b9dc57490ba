package bytebuffer

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteUint64(t *testing.T) {
	b := New()
	b.WriteUint64(0x123456789ABCDEF0)

	if b.Size() != 8 {
		t.Errorf("expected size 8 after WriteUint64, got %v", b.Size())
	}
	if b.Pos() != 8 {
		t.Errorf("expected position 8 after WriteUint64, got %v", b.Pos())
	}

	e := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	if !bytes.Equal(b.Data(), e) {
		t.Errorf("expected %x, got %x", e, b.Data())
	}

	b.MustSetPos(0)
	val, err := b.ReadUint64()
	if err != nil {
		t.Error(err)
		return
	}
	if val != 0x123456789ABCDEF0 {
		t.Errorf("roundtrip mismatch, expected %#x, got %#x", uint64(0x123456789ABCDEF0), val)
	}
	if b.Pos() != 8 {
		t.Errorf("expected position 8 after ReadUint64, got %v", b.Pos())
	}
}

func TestWriteUint32(t *testing.T) {
	cases := []uint32{0, 10, 1000, 0x12345678, 4294967295}

	for _, val := range cases {
		b := New()
		b.WriteUint32(val)

		if b.Pos() != 4 {
			t.Errorf("expected position 4 after WriteUint32, got %v", b.Pos())
			continue
		}

		e := []byte{
			byte(val >> 24),
			byte((val >> 16) & 0xFF),
			byte((val >> 8) & 0xFF),
			byte(val & 0xFF),
		}
		if !bytes.Equal(b.Data(), e) {
			t.Errorf("val: %v, expected %x, got %x", val, e, b.Data())
		}

		b.MustSetPos(0)
		decoded, err := b.ReadUint32()
		if err != nil {
			t.Error(err)
			continue
		}
		if decoded != val {
			t.Errorf("roundtrip mismatch, expected %v, got %v", val, decoded)
		}
	}
}

func TestWriteInt32(t *testing.T) {
	cases := []int32{0, 1, -1, -12345, 2147483647, -2147483648}

	for _, val := range cases {
		b := New()
		b.WriteInt32(val)

		b.MustSetPos(0)
		decoded, err := b.ReadInt32()
		if err != nil {
			t.Error(err)
			continue
		}
		if decoded != val {
			t.Errorf("roundtrip mismatch, expected %v, got %v", val, decoded)
		}
	}

	// -1 is all ones in two's complement
	b := New()
	b.WriteInt32(-1)
	if !bytes.Equal(b.Data(), []byte{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("expected ff ff ff ff for -1, got %x", b.Data())
	}
}

func TestWriteBool(t *testing.T) {
	b := New()
	b.WriteBool(true)
	b.WriteBool(false)

	if !bytes.Equal(b.Data(), []byte{0x01, 0x00}) {
		t.Errorf("expected 01 00, got %x", b.Data())
	}
	if b.Pos() != 2 {
		t.Errorf("expected position 2 after two bool writes, got %v", b.Pos())
	}
}

func TestReadBoolNonzeroIsTrue(t *testing.T) {
	// producers outside this package may emit true values other than 0x01
	b := NewFromBytes([]byte{0x00, 0x01, 0x2A, 0xFF})

	expected := []bool{false, true, true, true}
	for i, e := range expected {
		val, err := b.ReadBool()
		if err != nil {
			t.Error(err)
			return
		}
		if val != e {
			t.Errorf("byte %v, expected %v, got %v", i, e, val)
		}
	}
}

func TestWriteString(t *testing.T) {
	b := New()
	b.WriteString("abc")

	e := []byte{0x00, 0x00, 0x00, 0x03, 'a', 'b', 'c'}
	if !bytes.Equal(b.Data(), e) {
		t.Errorf("expected %x, got %x", e, b.Data())
	}
	if b.Pos() != 7 {
		t.Errorf("expected position 4+3 after WriteString, got %v", b.Pos())
	}
}

func TestStringRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"mmv",
		"Hello, wire!",
		"with\x00embedded\x00nuls",
		"\xff\xfe\x01\x02 arbitrary bytes",
	}

	for _, val := range cases {
		b := New()
		b.WriteString(val)

		if b.Pos() != 4+len(val) {
			t.Errorf("expected position %v after WriteString, got %v", 4+len(val), b.Pos())
			continue
		}

		b.MustSetPos(0)
		decoded, err := b.ReadString()
		if err != nil {
			t.Error(err)
			continue
		}
		if decoded != val {
			t.Errorf("roundtrip mismatch, expected %q, got %q", val, decoded)
		}
		if b.Pos() != b.Size() {
			t.Errorf("expected cursor at end after ReadString, got %v of %v", b.Pos(), b.Size())
		}
	}
}

func TestWriteCString(t *testing.T) {
	cases := []struct {
		val      []byte
		expected string
	}{
		{[]byte("plain\x00"), "plain"},
		{[]byte("trail\x00ignored"), "trail"},
		{[]byte("no terminator"), "no terminator"},
		{[]byte("\x00"), ""},
	}

	for _, c := range cases {
		b := New()
		b.WriteCString(c.val)

		b.MustSetPos(0)
		decoded, err := b.ReadString()
		if err != nil {
			t.Error(err)
			continue
		}
		if decoded != c.expected {
			t.Errorf("input %q, expected %q, got %q", c.val, c.expected, decoded)
		}
	}
}

func TestNestedBufferRoundTrip(t *testing.T) {
	inner := New()
	inner.WriteUint32(42)
	inner.WriteString("nested")
	inner.WriteBool(true)

	outer := New()
	outer.WriteUint64(7)
	outer.WriteBuffer(inner)
	outer.WriteString("after")

	if outer.Pos() != 8+4+inner.Size()+4+5 {
		t.Errorf("unexpected outer position %v", outer.Pos())
	}

	outer.MustSetPos(0)

	if _, err := outer.ReadUint64(); err != nil {
		t.Error(err)
		return
	}

	decoded, err := outer.ReadBuffer()
	if err != nil {
		t.Error(err)
		return
	}

	if !bytes.Equal(decoded.Data(), inner.Data()) {
		t.Errorf("nested buffer mismatch, expected %x, got %x", inner.Data(), decoded.Data())
	}
	if decoded.Pos() != 0 {
		t.Errorf("expected decoded buffer cursor at 0, got %v", decoded.Pos())
	}

	after, err := outer.ReadString()
	if err != nil {
		t.Error(err)
		return
	}
	if after != "after" {
		t.Errorf("expected %q after nested buffer, got %q", "after", after)
	}
}

func TestEmptyNestedBuffer(t *testing.T) {
	outer := New()
	outer.WriteBuffer(New())

	if !bytes.Equal(outer.Data(), []byte{0, 0, 0, 0}) {
		t.Errorf("expected a bare zero prefix, got %x", outer.Data())
	}

	outer.MustSetPos(0)
	decoded, err := outer.ReadBuffer()
	if err != nil {
		t.Error(err)
		return
	}
	if decoded.Size() != 0 {
		t.Errorf("expected empty decoded buffer, got %v bytes", decoded.Size())
	}
}

func TestLoad(t *testing.T) {
	b := New()
	b.WriteUint64(1)

	data := []byte{0x00, 0x00, 0x00, 0x05}
	b.Load(data)

	if b.Pos() != 0 {
		t.Errorf("expected position 0 after Load, got %v", b.Pos())
	}
	if b.Size() != 4 {
		t.Errorf("expected prior content replaced, size 4, got %v", b.Size())
	}

	// the buffer owns its storage, mutating the source must not leak in
	data[3] = 0xFF
	val, err := b.ReadUint32()
	if err != nil {
		t.Error(err)
		return
	}
	if val != 5 {
		t.Errorf("expected 5, got %v", val)
	}
}

func TestConcat(t *testing.T) {
	b := New()
	b.WriteUint32(1)

	b.Concat([]byte{0xAA, 0xBB})

	if b.Size() != 6 {
		t.Errorf("expected size 6 after Concat, got %v", b.Size())
	}
	if b.Pos() != 6 {
		t.Errorf("expected position advanced by appended length, got %v", b.Pos())
	}
}

func TestWriterInterface(t *testing.T) {
	b := New()
	n, err := b.Write([]byte{1, 2, 3})
	if err != nil {
		t.Error(err)
		return
	}
	if n != 3 {
		t.Errorf("expected 3 bytes written, got %v", n)
	}
	if b.Size() != 3 || b.Pos() != 3 {
		t.Errorf("expected size and position 3, got %v and %v", b.Size(), b.Pos())
	}
}

func TestClear(t *testing.T) {
	b := New()
	b.WriteString("something")
	b.Clear()

	if b.Size() != 0 || b.Pos() != 0 {
		t.Errorf("expected empty buffer after Clear, got size %v, position %v", b.Size(), b.Pos())
	}
}

func TestSetPos(t *testing.T) {
	b := NewFromBytes([]byte{1, 2, 3, 4})

	if err := b.SetPos(5); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition past the end, got %v", err)
	}
	if err := b.SetPos(-1); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition for a negative offset, got %v", err)
	}
	if b.Pos() != 0 {
		t.Errorf("position changing despite SetPos failure, got %v", b.Pos())
	}

	// one past the last byte is the end-of-message state, not an error
	if err := b.SetPos(4); err != nil {
		t.Errorf("expected SetPos(Size()) to succeed, got %v", err)
	}
}

func TestReadUnderrunOnEmptyBuffer(t *testing.T) {
	b := New()

	if _, err := b.ReadUint64(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("ReadUint64, expected ErrBufferUnderrun, got %v", err)
	}
	if _, err := b.ReadUint32(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("ReadUint32, expected ErrBufferUnderrun, got %v", err)
	}
	if _, err := b.ReadInt32(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("ReadInt32, expected ErrBufferUnderrun, got %v", err)
	}
	if _, err := b.ReadBool(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("ReadBool, expected ErrBufferUnderrun, got %v", err)
	}
	if _, err := b.ReadString(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("ReadString, expected ErrBufferUnderrun, got %v", err)
	}
	if _, err := b.ReadBuffer(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("ReadBuffer, expected ErrBufferUnderrun, got %v", err)
	}

	if b.Pos() != 0 {
		t.Errorf("position changing despite read failures, got %v", b.Pos())
	}
}

func TestFailedReadIsAtomic(t *testing.T) {
	// prefix claims 10 payload bytes, only 2 are present
	b := NewFromBytes([]byte{0x00, 0x00, 0x00, 0x0A, 'h', 'i'})

	if _, err := b.ReadString(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("expected ErrBufferUnderrun for truncated payload, got %v", err)
	}
	if b.Pos() != 0 {
		t.Errorf("expected cursor unchanged after failed read, got %v", b.Pos())
	}

	// partial fixed-width field
	b = NewFromBytes([]byte{1, 2, 3})
	if _, err := b.ReadUint32(); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("expected ErrBufferUnderrun for partial uint32, got %v", err)
	}
	if b.Pos() != 0 {
		t.Errorf("expected cursor unchanged after failed read, got %v", b.Pos())
	}
}

func TestAbsurdLengthPrefix(t *testing.T) {
	b := NewFromBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	if _, err := b.ReadString(); !errors.Is(err, ErrIntegerOverflow) {
		t.Errorf("expected ErrIntegerOverflow for a 4 GiB prefix, got %v", err)
	}
	if _, err := b.ReadBuffer(); !errors.Is(err, ErrIntegerOverflow) {
		t.Errorf("expected ErrIntegerOverflow for a 4 GiB prefix, got %v", err)
	}
	if b.Pos() != 0 {
		t.Errorf("expected cursor unchanged after rejected prefix, got %v", b.Pos())
	}
}

func TestMixedFieldSequence(t *testing.T) {
	b := New()
	b.WriteUint64(0xDEADBEEFCAFEF00D)
	b.WriteBool(true)
	b.WriteInt32(-7)
	b.WriteString("field")
	b.WriteUint32(99)

	b.MustSetPos(0)

	u, err := b.ReadUint64()
	if err != nil || u != 0xDEADBEEFCAFEF00D {
		t.Errorf("ReadUint64: %v, %#x", err, u)
	}
	flag, err := b.ReadBool()
	if err != nil || !flag {
		t.Errorf("ReadBool: %v, %v", err, flag)
	}
	i, err := b.ReadInt32()
	if err != nil || i != -7 {
		t.Errorf("ReadInt32: %v, %v", err, i)
	}
	s, err := b.ReadString()
	if err != nil || s != "field" {
		t.Errorf("ReadString: %v, %q", err, s)
	}
	n, err := b.ReadUint32()
	if err != nil || n != 99 {
		t.Errorf("ReadUint32: %v, %v", err, n)
	}

	if b.Pos() != b.Size() {
		t.Errorf("expected cursor at end after full decode, got %v of %v", b.Pos(), b.Size())
	}
}
