package rle

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/rlepack/rlepack/format"
)

// generateBenchmarkData creates payloads with different run profiles. RLE
// lives or dies by run structure, so the classes span the extremes.
func generateBenchmarkData(size int, profile string) []byte {
	data := make([]byte, size)

	switch profile {
	case "long_runs":
		// All zeros - maximum compression for RLE.
		// data already initialized to zeros
	case "short_runs":
		// Runs of 4 identical bytes.
		for i := range data {
			data[i] = byte((i / 4) % 256)
		}
	case "mixed":
		// Alternating stretches of runs and non-repeating bytes.
		for i := range data {
			if i%64 < 32 {
				data[i] = byte(i / 64)
			} else {
				data[i] = byte((i*31 + 17) % 256)
			}
		}
	default:
		// No repeats at all - worst case, Method A doubles the size.
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + 1) % 251)
		}
	}

	return data
}

func benchmarkEncode(b *testing.B, method format.Method) {
	codec, err := GetCodec(method)
	if err != nil {
		b.Fatal(err)
	}

	profiles := []string{"long_runs", "short_runs", "mixed", "no_runs"}
	const size = 64 * 1024

	for _, profile := range profiles {
		data := generateBenchmarkData(size, profile)

		b.Run(profile, func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				if err := codec.Encode(io.Discard, bytes.NewReader(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMethodA_Encode(b *testing.B) {
	benchmarkEncode(b, format.MethodA)
}

func BenchmarkMethodB_Encode(b *testing.B) {
	benchmarkEncode(b, format.MethodB)
}

// BenchmarkGeneralPurposeBaselines measures the general-purpose compressors
// on the same payloads, to keep the RLE numbers honest.
func BenchmarkGeneralPurposeBaselines(b *testing.B) {
	const size = 64 * 1024

	zstdEncoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		b.Fatal(err)
	}
	defer zstdEncoder.Close()

	baselines := map[string]func([]byte) ([]byte, error){
		"s2": func(data []byte) ([]byte, error) {
			return s2.Encode(nil, data), nil
		},
		"zstd": func(data []byte) ([]byte, error) {
			return zstdEncoder.EncodeAll(data, nil), nil
		},
		"lz4": func(data []byte) ([]byte, error) {
			var c lz4.Compressor
			dst := make([]byte, lz4.CompressBlockBound(len(data)))
			n, err := c.CompressBlock(data, dst)
			if err != nil {
				return nil, err
			}
			return dst[:n], nil
		},
	}

	for _, profile := range []string{"long_runs", "short_runs", "mixed", "no_runs"} {
		data := generateBenchmarkData(size, profile)

		for name, compress := range baselines {
			b.Run(fmt.Sprintf("%s/%s", name, profile), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ResetTimer()

				for b.Loop() {
					if _, err := compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// TestCompressionRatioBaselines records how the two RLE methods compare to
// the general-purpose codecs on run-heavy input. Not a correctness check of
// the baselines, only that RLE actually shrinks run-heavy data.
func TestCompressionRatioBaselines(t *testing.T) {
	data := generateBenchmarkData(64*1024, "long_runs")

	for _, method := range []format.Method{format.MethodA, format.MethodB} {
		codec, err := GetCodec(method)
		if err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := codec.Encode(&buf, bytes.NewReader(data)); err != nil {
			t.Fatal(err)
		}

		if buf.Len() >= len(data) {
			t.Fatalf("method %s did not compress run-heavy data: %d >= %d",
				method, buf.Len(), len(data))
		}
	}

	s2Size := len(s2.Encode(nil, data))
	t.Logf("s2 baseline on the same data: %d bytes", s2Size)
}
