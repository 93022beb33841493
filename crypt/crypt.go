// Package crypt provides the optional password layer applied to finished
// containers: encrypt after compress, decrypt before decompress.
//
// The codec itself never sees ciphertext; this package operates strictly on
// the complete compressed byte sequence. The output layout is
// salt (16 bytes) | nonce (12 bytes) | AES-256-GCM ciphertext, with the key
// derived from the password via scrypt.
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 16
	keySize  = 32

	// scrypt cost parameters, interactive-use strength.
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// ErrDecrypt is returned when a ciphertext cannot be authenticated, which
// covers both a wrong password and a corrupted file; the two are
// indistinguishable by design of the AEAD.
var ErrDecrypt = errors.New("cannot decrypt: wrong password or corrupted data")

// Encrypt seals data with a key derived from password. Each call draws a
// fresh random salt and nonce, so encrypting the same input twice yields
// different ciphertexts.
func Encrypt(data []byte, password string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(data)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)

	return gcm.Seal(out, nonce, data, nil), nil
}

// Decrypt reverses Encrypt. It fails with ErrDecrypt when the password is
// wrong or the data has been tampered with.
func Decrypt(data []byte, password string) ([]byte, error) {
	if len(data) < saltSize {
		return nil, ErrDecrypt
	}

	salt, rest := data[:saltSize], data[saltSize:]

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	if len(rest) < gcm.NonceSize() {
		return nil, ErrDecrypt
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}

	return plain, nil
}

// EncryptFile encrypts the file at path in place.
func EncryptFile(path, password string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	sealed, err := Encrypt(data, password)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, sealed, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// DecryptFile decrypts the file at path in place.
func DecryptFile(path, password string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	plain, err := Decrypt(data, password)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, plain, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return gcm, nil
}
