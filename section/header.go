// Package section implements the fixed-size container header that precedes
// every RLE payload.
//
// The header is 5 bytes on the wire:
//
//	offset 0    : method tag (format.MethodA or format.MethodB)
//	offset 1..4 : big-endian uint32 creation timestamp, seconds since epoch
//
// The timestamp is informational only; decoding never depends on it.
package section

import (
	"fmt"
	"io"
	"time"

	"github.com/rlepack/rlepack/endian"
	"github.com/rlepack/rlepack/errs"
	"github.com/rlepack/rlepack/format"
)

// HeaderSize is the fixed size of the container header in bytes.
const HeaderSize = 5

// The header timestamp is big-endian regardless of host byte order.
var engine = endian.GetBigEndianEngine()

// Header represents the container header at the start of an encoded stream.
type Header struct {
	// Method is the tag of the codec that produced the payload.
	Method format.Method
	// CreatedAt is the encode time as seconds since the Unix epoch.
	CreatedAt uint32
}

// NewHeader creates a Header for the given method, stamped with createdAt.
//
// The caller captures createdAt at encode-call time; the header never caches
// a timestamp across calls.
func NewHeader(method format.Method, createdAt time.Time) Header {
	return Header{
		Method:    method,
		CreatedAt: uint32(createdAt.Unix()),
	}
}

// Bytes serializes the header into a freshly allocated 5-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, byte(h.Method))

	return engine.AppendUint32(b, h.CreatedAt)
}

// Parse parses the header from the start of data.
//
// The method tag is validated before the length, so a recognizable but short
// container reports errs.ErrTruncatedInput while a wrong first byte reports
// errs.ErrUnknownFormat.
func (h *Header) Parse(data []byte) error {
	if len(data) == 0 {
		return errs.ErrTruncatedInput
	}

	method := format.Method(data[0])
	if !method.Valid() {
		return fmt.Errorf("%w: method tag 0x%02x", errs.ErrUnknownFormat, data[0])
	}
	if len(data) < HeaderSize {
		return errs.ErrTruncatedInput
	}

	h.Method = method
	h.CreatedAt = engine.Uint32(data[1:HeaderSize])

	return nil
}

// CreatedAtTime returns the creation timestamp as a time.Time.
func (h Header) CreatedAtTime() time.Time {
	return time.Unix(int64(h.CreatedAt), 0)
}

// Write writes the serialized header to w.
func (h Header) Write(w io.Writer) error {
	if _, err := w.Write(h.Bytes()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	return nil
}

// ReadHeader reads and parses a header from r.
//
// The tag byte is read and validated before the timestamp, so nothing beyond
// the first byte is consumed from an unrecognized stream.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte

	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errs.ErrTruncatedInput
		}

		return Header{}, fmt.Errorf("read header: %w", err)
	}

	method := format.Method(buf[0])
	if !method.Valid() {
		return Header{}, fmt.Errorf("%w: method tag 0x%02x", errs.ErrUnknownFormat, buf[0])
	}

	if _, err := io.ReadFull(r, buf[1:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errs.ErrTruncatedInput
		}

		return Header{}, fmt.Errorf("read header: %w", err)
	}

	return Header{
		Method:    method,
		CreatedAt: engine.Uint32(buf[1:]),
	}, nil
}
