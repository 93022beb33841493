package format

// Method identifies which RLE codec produced a payload. It is stored as the
// first byte of the container header, so the format is self-describing and
// decoders never need the method supplied out of band.
type Method uint8

const (
	MethodA Method = 0x21 // MethodA encodes every run as a (count, byte) pair, singletons included.
	MethodB Method = 0x8a // MethodB passes literals through and escapes repeats by doubling the byte.
)

func (m Method) String() string {
	switch m {
	case MethodA:
		return "A"
	case MethodB:
		return "B"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined method tags.
func (m Method) Valid() bool {
	return m == MethodA || m == MethodB
}
