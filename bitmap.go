package wirecc

import "github.com/pkg/errors"

// Error kinds returned by Bitmap operations; match them with errors.Is.
var (
	// ErrBitWidthOutOfRange means NewBitmap was given a width outside
	// 1 through 64.
	ErrBitWidthOutOfRange = errors.New("bitmap width out of range")

	// ErrBitIndexOutOfRange means Set or Unset was given a bit index at
	// or above the configured width.
	ErrBitIndexOutOfRange = errors.New("bit index out of range")
)

// Bitmap is a fixed-width flag set over a single 64-bit word. The
// width is fixed at construction; bits at or above it are never set
// and never observed as set. A higher protocol layer uses it to track
// feature and attribute flags compactly.
type Bitmap struct {
	flags, mask uint64
	width       uint8
}

// NewBitmap creates a Bitmap of the given width, between 1 and 64
// bits. All flags start unset.
func NewBitmap(width uint8) (*Bitmap, error) {
	if width < 1 || width > 64 {
		return nil, errors.Wrapf(ErrBitWidthOutOfRange, "width %d, supported widths are 1 through 64", width)
	}

	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}

	return &Bitmap{mask: mask, width: width}, nil
}

// Width returns the configured bit width.
func (b *Bitmap) Width() uint8 { return b.width }

// Set turns on the flag at the given bit index.
func (b *Bitmap) Set(bit uint) error {
	if bit >= uint(b.width) {
		return errors.Wrapf(ErrBitIndexOutOfRange, "bit %d in a bitmap of width %d", bit, b.width)
	}

	b.flags |= uint64(1) << bit
	return nil
}

// Unset turns off the flag at the given bit index.
func (b *Bitmap) Unset(bit uint) error {
	if bit >= uint(b.width) {
		return errors.Wrapf(ErrBitIndexOutOfRange, "bit %d in a bitmap of width %d", bit, b.width)
	}

	b.flags &= b.mask ^ (uint64(1) << bit)
	return nil
}

// Clear turns off all flags.
func (b *Bitmap) Clear() { b.flags = 0 }

// IsSet reports whether the flag at the given bit index is on. Indexes
// at or above the width report false.
func (b *Bitmap) IsSet(bit uint) bool {
	if bit >= uint(b.width) {
		return false
	}
	return b.flags&(uint64(1)<<bit) != 0
}

// IsEmpty reports whether no flag is on.
func (b *Bitmap) IsEmpty() bool { return b.flags == 0 }

// IsFull reports whether every flag within the width is on.
func (b *Bitmap) IsFull() bool { return b.flags == b.mask }

// Flags returns the raw 64-bit flag word.
func (b *Bitmap) Flags() uint64 { return b.flags }
