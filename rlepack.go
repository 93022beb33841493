// Package rlepack implements a self-describing run-length-encoding container.
//
// An encoded stream starts with a fixed 5-byte header (1-byte method tag plus
// a 4-byte big-endian creation timestamp) followed by the payload of one of
// two codecs:
//
//   - Method A: every run of identical bytes becomes a (count, byte) pair,
//     singletons included.
//   - Method B: non-repeating bytes pass through unchanged; a repeat is
//     escaped by doubling the byte and appending a count byte.
//
// # Basic Usage
//
// Encoding and decoding in memory:
//
//	compressed, err := rlepack.Encode(format.MethodB, data)
//	if err != nil {
//	    return err
//	}
//
//	result, err := rlepack.Decode(compressed)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("method=%s created=%s\n", result.Method, result.CreatedAt)
//
// Whole files:
//
//	err := rlepack.EncodeFile(format.MethodA, "report.txt", "report.txt.rle")
//	method, createdAt, err := rlepack.DecodeFile("report.txt.rle", "report.txt")
//
// Every call is independent and synchronous; concurrent calls on distinct
// inputs need no locking.
package rlepack

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/rlepack/rlepack/format"
	"github.com/rlepack/rlepack/internal/pool"
	"github.com/rlepack/rlepack/rle"
	"github.com/rlepack/rlepack/section"
)

// Result holds the outcome of decoding a container.
type Result struct {
	// Method is the codec tag recovered from the header.
	Method format.Method
	// CreatedAt is the encode time stamped into the header.
	CreatedAt time.Time
	// Data is the decompressed payload.
	Data []byte
}

// Encode compresses data with the given method and returns the full
// container: header plus payload. The creation timestamp is captured fresh
// at each call.
//
// On failure nothing is returned; the output is all-or-nothing.
func Encode(method format.Method, data []byte) ([]byte, error) {
	return EncodeAt(method, data, time.Now())
}

// EncodeAt is Encode with an explicit creation timestamp, for callers that
// need reproducible output.
func EncodeAt(method format.Method, data []byte, createdAt time.Time) ([]byte, error) {
	codec, err := rle.GetCodec(method)
	if err != nil {
		return nil, err
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	header := section.NewHeader(method, createdAt)
	if err := header.Write(buf); err != nil {
		return nil, err
	}

	if err := codec.Encode(buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decode decompresses a container produced by Encode. The method is
// determined from the header; no method argument is accepted.
func Decode(data []byte) (Result, error) {
	var header section.Header
	if err := header.Parse(data); err != nil {
		return Result{}, err
	}

	codec, err := rle.GetCodec(header.Method)
	if err != nil {
		return Result{}, err
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := codec.Decode(buf, bytes.NewReader(data[section.HeaderSize:])); err != nil {
		return Result{}, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return Result{
		Method:    header.Method,
		CreatedAt: header.CreatedAtTime(),
		Data:      out,
	}, nil
}

// EncodeFile compresses srcPath into dstPath with the given method,
// streaming the bytes through without buffering the whole file.
//
// Both handles are closed on every exit path. A partially written dstPath is
// removed on failure so callers never observe a half-built container.
func EncodeFile(method format.Method, srcPath, dstPath string) (err error) {
	codec, err := rle.GetCodec(method)
	if err != nil {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close destination: %w", cerr)
		}
		if err != nil {
			os.Remove(dstPath)
		}
	}()

	w := bufio.NewWriter(dst)

	header := section.NewHeader(method, time.Now())
	if err = header.Write(w); err != nil {
		return err
	}

	if err = codec.Encode(w, bufio.NewReader(src)); err != nil {
		return err
	}

	return w.Flush()
}

// DecodeFile decompresses the container at srcPath into dstPath and reports
// the method and creation time recovered from the header.
//
// The header is validated before dstPath is created, so a malformed source
// produces no output file at all; a failure after that removes the partial
// output.
func DecodeFile(srcPath, dstPath string) (method format.Method, createdAt time.Time, err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	r := bufio.NewReader(src)

	header, err := section.ReadHeader(r)
	if err != nil {
		return 0, time.Time{}, err
	}

	codec, err := rle.GetCodec(header.Method)
	if err != nil {
		return 0, time.Time{}, err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close destination: %w", cerr)
		}
		if err != nil {
			os.Remove(dstPath)
		}
	}()

	w := bufio.NewWriter(dst)

	if err = codec.Decode(w, r); err != nil {
		return 0, time.Time{}, err
	}

	if err = w.Flush(); err != nil {
		return 0, time.Time{}, err
	}

	return header.Method, header.CreatedAtTime(), nil
}
