package crypt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	data := []byte("\x21\x01\x02\x03\x04\x04L\x01A\x02R\x01B")

	sealed, err := Encrypt(data, "hunter2")
	require.NoError(t, err)
	require.NotEqual(t, data, sealed)

	plain, err := Decrypt(sealed, "hunter2")
	require.NoError(t, err)
	require.Equal(t, data, plain)
}

func TestEncrypt_FreshSaltAndNonce(t *testing.T) {
	data := []byte("same input")

	a, err := Encrypt(data, "pw")
	require.NoError(t, err)
	b, err := Encrypt(data, "pw")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestDecrypt_WrongPassword(t *testing.T) {
	sealed, err := Encrypt([]byte("secret"), "right")
	require.NoError(t, err)

	_, err = Decrypt(sealed, "wrong")
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestDecrypt_Corrupted(t *testing.T) {
	sealed, err := Encrypt([]byte("secret"), "pw")
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = Decrypt(sealed, "pw")
	require.ErrorIs(t, err, ErrDecrypt)

	_, err = Decrypt([]byte("short"), "pw")
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestEncryptFile_DecryptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.rle")
	original := []byte("compressed container bytes")

	require.NoError(t, os.WriteFile(path, original, 0o644))

	require.NoError(t, EncryptFile(path, "pw"))
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEqual(t, original, onDisk)

	require.NoError(t, DecryptFile(path, "pw"))
	onDisk, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, onDisk)
}
