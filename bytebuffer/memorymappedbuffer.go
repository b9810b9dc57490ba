package bytebuffer

import (
	"os"
	"path"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedBuffer is a fixed-size file-backed region that encoded
// buffers can be flushed to and loaded from, for handing messages to a
// consumer over shared memory instead of a byte-stream transport.
type MemoryMappedBuffer struct {
	mapping mmap.MMap
	loc     string // location of the memory mapped file
	size    int    // size in bytes
}

// NewMemoryMappedBuffer will create and return a new instance of a
// MemoryMappedBuffer. Any stale file at loc is removed first and the
// backing file is created zero-filled at the requested size.
func NewMemoryMappedBuffer(loc string, size int) (*MemoryMappedBuffer, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, err
		}
	}

	// ensure destination directory exists
	if err := os.MkdirAll(path.Dir(loc), 0700); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := f.Write(make([]byte, size))
	if err != nil {
		return nil, err
	}
	if l < size {
		return nil, errors.Errorf("could not initialize %d bytes at %v", size, loc)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(err, "map backing file")
	}

	return &MemoryMappedBuffer{
		mapping: m,
		loc:     loc,
		size:    size,
	}, nil
}

// Size returns the fixed size of the mapped region in bytes.
func (m *MemoryMappedBuffer) Size() int { return m.size }

// Location returns the path of the backing file.
func (m *MemoryMappedBuffer) Location() string { return m.loc }

// WriteBuffer copies b's encoded bytes into the mapped region, zeroes
// the remainder, and flushes the mapping to the backing file.
func (m *MemoryMappedBuffer) WriteBuffer(b *ByteBuffer) error {
	if b.Size() > m.size {
		return errors.Errorf("buffer of %d bytes exceeds mapped region of %d bytes", b.Size(), m.size)
	}

	copy(m.mapping, b.Data())
	clear(m.mapping[b.Size():])

	return errors.Wrap(m.mapping.Flush(), "flush mapping")
}

// ReadBuffer loads the full mapped region into a fresh ByteBuffer with
// its cursor at 0. The region is fixed-size, so the result includes
// any zero padding after the encoded message; the caller's field order
// determines how much of it is meaningful.
func (m *MemoryMappedBuffer) ReadBuffer() *ByteBuffer {
	return NewFromBytes(m.mapping)
}

// Unmap will manually delete the memory mapping of a mapped buffer
func (m *MemoryMappedBuffer) Unmap(removefile bool) error {
	if err := m.mapping.Unmap(); err != nil {
		return err
	}

	if removefile {
		return os.Remove(m.loc)
	}

	return nil
}
