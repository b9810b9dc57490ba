package wirecc

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wirecc/wirecc/bytebuffer"
	"github.com/wirecc/wirecc/endian"
)

// maxResourceSetCount bounds the element count a resource-set prefix
// may claim, so that count times element width never exceeds
// bytebuffer.MaxFieldLength.
const maxResourceSetCount = bytebuffer.MaxFieldLength / endian.Width32

// WriteResourceSet appends s to b as a 4-byte count prefix followed by
// the member ids as 4-byte signed integers in ascending order. Any
// member order decodes to the same set; ascending order makes the
// encoded bytes deterministic for a given set.
func WriteResourceSet(b *bytebuffer.ByteBuffer, s ResourceSet) {
	b.WriteUint32(uint32(s.Len()))
	for _, id := range s.IDs() {
		b.WriteInt32(int32(id))
	}
}

// ReadResourceSet decodes a count-prefixed run of 4-byte signed ids at
// b's cursor. On any failure the cursor is restored to where it was,
// so a partial decode is never observable. Duplicate ids in the
// encoded run collapse into the set.
func ReadResourceSet(b *bytebuffer.ByteBuffer) (ResourceSet, error) {
	start := b.Pos()

	count, err := b.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "read resource set count")
	}

	if count > maxResourceSetCount {
		_ = b.SetPos(start)
		return nil, errors.Wrapf(bytebuffer.ErrIntegerOverflow, "resource set count %d exceeds limit %d", count, maxResourceSetCount)
	}

	set := make(ResourceSet, count)
	for i := uint32(0); i < count; i++ {
		id, err := b.ReadInt32()
		if err != nil {
			_ = b.SetPos(start)
			return nil, errors.Wrap(err, "read resource set element")
		}

		if set.Contains(ResourceID(id)) && logging {
			logger.Warn("duplicate resource id in encoded set",
				zap.String("module", "resourcecodec"),
				zap.Int32("id", id),
			)
		}
		set.Add(ResourceID(id))
	}

	return set, nil
}
