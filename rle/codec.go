// Package rle implements the two run-length encoding methods carried by the
// container format.
//
// Method A replaces every maximal run of identical bytes with a
// (count, byte) pair, singletons included. Method B passes non-repeating
// bytes through unchanged and escapes a repeat by doubling the byte and
// appending a count. Both methods cap the count at 255 and split longer runs
// into multiple emissions.
//
// Codecs operate on byte streams so the file-level operations never buffer a
// whole file; in-memory callers pass bytes.Reader / ByteBuffer sinks, which
// already satisfy the byte-oriented interfaces and avoid extra wrapping.
package rle

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rlepack/rlepack/errs"
	"github.com/rlepack/rlepack/format"
)

// maxRunLength is the largest run a single count byte can carry. Logical
// runs longer than this are split before emission.
const maxRunLength = 255

// Codec transforms a payload between its raw and run-length encoded forms.
//
// Implementations are stateless; all run-accumulation state lives on the
// stack of a single call, so one Codec value is safe for concurrent use on
// distinct streams.
type Codec interface {
	// Encode reads raw bytes from src until EOF and writes the encoded
	// payload to dst. It does not write the container header.
	Encode(dst io.Writer, src io.Reader) error

	// Decode reads an encoded payload from src until EOF and writes the
	// original bytes to dst. It fails with errs.ErrTruncatedInput when the
	// payload ends inside an encoded structure.
	Decode(dst io.Writer, src io.Reader) error
}

var builtinCodecs = map[format.Method]Codec{
	format.MethodA: MethodACodec{},
	format.MethodB: MethodBCodec{},
}

// GetCodec returns the built-in Codec for the specified method.
func GetCodec(method format.Method) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedMethod, byte(method))
}

// payloadWriter is the byte-oriented sink the codecs write into.
// bufio.Writer, bytes.Buffer and pool.ByteBuffer all satisfy it.
type payloadWriter interface {
	io.Writer
	io.ByteWriter
}

// sink adapts dst into a payloadWriter, returning the flush function the
// codec must call on success. The flush is a no-op unless a bufio.Writer was
// introduced here; callers that pass their own buffered writer keep control
// of flushing.
func sink(dst io.Writer) (payloadWriter, func() error) {
	if w, ok := dst.(payloadWriter); ok {
		return w, func() error { return nil }
	}

	w := bufio.NewWriter(dst)

	return w, w.Flush
}

// source adapts src into a byte scanner. The one-byte pushback of
// io.ByteScanner is what the Method B decoder uses to reinterpret a
// speculatively read byte.
func source(src io.Reader) io.ByteScanner {
	if r, ok := src.(io.ByteScanner); ok {
		return r
	}

	return bufio.NewReader(src)
}

// writeRepeat writes b to w count times. A count of zero writes nothing.
func writeRepeat(w io.ByteWriter, b byte, count int) error {
	for ; count > 0; count-- {
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}

	return nil
}
