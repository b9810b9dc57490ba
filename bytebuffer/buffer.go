// Package bytebuffer implements the cursor-based byte buffer at the
// heart of the wirecc codec.
//
// initially tried to build on bytes.Buffer but its read side consumes
// the underlying storage, which makes it impossible to rewind a
// just-written message for reading or to re-decode from an arbitrary
// offset
//
// another attempt threaded an explicit position through free functions,
// which resulted in calls like
//
//	pos = readString(buf, pos, &s)
//
// and became unmaintainable after a while
//
// this (tries) to implement a minimal buffer that owns its storage and
// a single read/write cursor: writes always append at the logical end
// and advance the cursor past the written bytes, reads decode at the
// cursor and advance it by the decoded width. A producer writes a
// complete message, the consumer loads the same bytes and reads the
// fields back in the identical order; the buffer enforces no schema of
// its own.
//
// Mixing reads and writes arbitrarily on one buffer is unsupported:
// write a full message then SetPos(0) to read it, or keep the buffer
// write-only/read-only for its lifetime.
package bytebuffer

import "io"

// Buffer defines the operations of a cursor-based wire-format buffer.
// All multi-byte integers are big-endian; strings, nested buffers and
// counted sequences carry a 4-byte unsigned length prefix.
type Buffer interface {
	io.Writer
	Data() []byte
	Size() int
	Pos() int
	SetPos(int) error
	Clear()
	Load([]byte)
	Concat([]byte)
	WriteUint64(uint64)
	WriteUint32(uint32)
	WriteInt32(int32)
	WriteBool(bool)
	WriteString(string)
	WriteCString([]byte)
	WriteBuffer(*ByteBuffer)
	ReadUint64() (uint64, error)
	ReadUint32() (uint32, error)
	ReadInt32() (int32, error)
	ReadBool() (bool, error)
	ReadString() (string, error)
	ReadBuffer() (*ByteBuffer, error)
}
