package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMethod_String(t *testing.T) {
	require.Equal(t, "A", MethodA.String())
	require.Equal(t, "B", MethodB.String())
	require.Equal(t, "Unknown", Method(0x00).String())
}

func TestMethod_Valid(t *testing.T) {
	require.True(t, MethodA.Valid())
	require.True(t, MethodB.Valid())
	require.False(t, Method(0x00).Valid())
	require.False(t, Method(0x22).Valid())
}

func TestMethod_TagValues(t *testing.T) {
	// The on-disk tag values are fixed by the container format.
	require.Equal(t, uint8(0x21), uint8(MethodA))
	require.Equal(t, uint8(0x8a), uint8(MethodB))
}
