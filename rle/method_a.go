package rle

import (
	"io"

	"github.com/rlepack/rlepack/errs"
)

// MethodACodec implements unconditional run encoding: every maximal run of
// the input, singletons included, becomes a (count, byte) pair in the
// output. There is no raw passthrough mode.
type MethodACodec struct{}

var _ Codec = (*MethodACodec)(nil)

// Encode writes one (count, byte) pair per run chunk. Runs longer than 255
// are split into (255, byte) pairs with a final pair of the remainder.
func (MethodACodec) Encode(dst io.Writer, src io.Reader) error {
	r := source(src)
	w, flush := sink(dst)

	err := scanRuns(r, func(b byte, count int) error {
		for count > maxRunLength {
			if err := writePair(w, maxRunLength, b); err != nil {
				return err
			}
			count -= maxRunLength
		}

		return writePair(w, byte(count), b)
	})
	if err != nil {
		return err
	}

	return flush()
}

// Decode reads (count, byte) pairs and expands each one. A dangling count
// byte with no literal is reported as errs.ErrTruncatedInput.
func (MethodACodec) Decode(dst io.Writer, src io.Reader) error {
	r := source(src)
	w, flush := sink(dst)

	for {
		count, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		lit, err := r.ReadByte()
		if err == io.EOF {
			return errs.ErrTruncatedInput
		}
		if err != nil {
			return err
		}

		if err := writeRepeat(w, lit, int(count)); err != nil {
			return err
		}
	}

	return flush()
}

func writePair(w io.ByteWriter, count, b byte) error {
	if err := w.WriteByte(count); err != nil {
		return err
	}

	return w.WriteByte(b)
}
