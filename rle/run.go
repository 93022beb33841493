package rle

import "io"

// scanRuns reads src to completion and calls emit once per maximal run of
// identical consecutive bytes. count carries the full logical run length,
// which may exceed what a single count byte can hold; splitting runs into
// emittable chunks is the caller's concern.
//
// The accumulation state is O(1): the current byte and its count.
func scanRuns(src io.ByteReader, emit func(b byte, count int) error) error {
	cur, err := src.ReadByte()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	count := 1
	for {
		next, err := src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if next == cur {
			count++
			continue
		}

		if err := emit(cur, count); err != nil {
			return err
		}
		cur, count = next, 1
	}

	return emit(cur, count)
}
