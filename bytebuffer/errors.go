package bytebuffer

import "github.com/pkg/errors"

// MaxFieldLength caps the payload byte size a single length or count
// prefix may claim. Decoding rejects larger prefixes instead of
// attempting an unbounded allocation.
const MaxFieldLength = 1 << 30

// Error kinds returned by buffer operations. They carry positional
// context when returned; match them with errors.Is.
var (
	// ErrBufferUnderrun means a read needed more bytes than remain
	// between the cursor and the end of storage.
	ErrBufferUnderrun = errors.New("buffer underrun")

	// ErrInvalidPosition means SetPos was given an offset outside the
	// stored bytes.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrIntegerOverflow means a length or count prefix claimed a
	// payload larger than MaxFieldLength.
	ErrIntegerOverflow = errors.New("integer overflow")
)
