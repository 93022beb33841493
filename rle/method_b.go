package rle

import (
	"io"

	"github.com/rlepack/rlepack/errs"
)

// MethodBCodec implements conditional run encoding: non-repeating bytes pass
// through unchanged, and a repeat (two or more consecutive occurrences) is
// escaped by doubling the byte and appending a count byte.
//
// The doubled byte, not the count value, is what tells the decoder a count
// follows. Every chunk of a split repeat therefore keeps the doubled form,
// including a remainder chunk of length 1, which is written as the doubled
// byte plus count=1.
type MethodBCodec struct{}

var _ Codec = (*MethodBCodec)(nil)

// Encode writes singleton runs as bare literals and repeats as doubled byte
// plus count, splitting counts above 255 into multiple escaped chunks.
func (MethodBCodec) Encode(dst io.Writer, src io.Reader) error {
	r := source(src)
	w, flush := sink(dst)

	err := scanRuns(r, func(b byte, count int) error {
		if count == 1 {
			return w.WriteByte(b)
		}

		for count > 0 {
			chunk := count
			if chunk > maxRunLength {
				chunk = maxRunLength
			}
			if err := writeEscaped(w, b, byte(chunk)); err != nil {
				return err
			}
			count -= chunk
		}

		return nil
	})
	if err != nil {
		return err
	}

	return flush()
}

// Decode reads up to two bytes at a time. A doubled byte announces a count;
// anything else is a literal, and the speculatively read second byte is
// pushed back so the next iteration reinterprets it as a fresh first byte.
func (MethodBCodec) Decode(dst io.Writer, src io.Reader) error {
	r := source(src)
	w, flush := sink(dst)

	for {
		b1, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		b2, err := r.ReadByte()
		if err == io.EOF {
			// Lone trailing byte: a literal, same as Method A's singleton.
			if err := w.WriteByte(b1); err != nil {
				return err
			}
			break
		}
		if err != nil {
			return err
		}

		if b1 == b2 {
			count, err := r.ReadByte()
			if err == io.EOF {
				return errs.ErrTruncatedInput
			}
			if err != nil {
				return err
			}
			if err := writeRepeat(w, b1, int(count)); err != nil {
				return err
			}
			continue
		}

		if err := w.WriteByte(b1); err != nil {
			return err
		}
		if err := r.UnreadByte(); err != nil {
			return err
		}
	}

	return flush()
}

func writeEscaped(w io.ByteWriter, b, count byte) error {
	if err := w.WriteByte(b); err != nil {
		return err
	}
	if err := w.WriteByte(b); err != nil {
		return err
	}

	return w.WriteByte(count)
}
