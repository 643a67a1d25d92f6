// Package vault implements the encryption utility behind the
// credential store: a process-local AES-256-GCM key persisted beside
// the data it protects, and a string envelope format for encrypted
// documents.
//
// The envelope is three hex fields joined by colons, in fixed order:
//
//	hex(nonce):hex(tag):hex(ciphertext)
//
// Decryption fails closed: a malformed envelope or a tag that does not
// verify yields ErrDecode, never plaintext.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	keySize   = 32 // AES-256
	nonceSize = 12
)

// ErrDecode is returned when an envelope is malformed or its
// authentication tag does not verify.
var ErrDecode = errors.New("vault: envelope decode failed")

// Cipher encrypts and decrypts string payloads with a fixed key.
type Cipher struct {
	aead cipher.AEAD
}

// LoadOrCreate loads the key file at path, generating and persisting a
// fresh random key on first use. Parent directories are created as
// needed; the key file is written 0600.
func LoadOrCreate(path string) (*Cipher, error) {
	key, err := readKeyFile(path)
	if errors.Is(err, os.ErrNotExist) {
		key, err = generateKeyFile(path)
	}
	if err != nil {
		return nil, err
	}
	return New(key)
}

// New creates a Cipher from a raw 32-byte key.
func New(key []byte) (*Cipher, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("vault: key must be %d bytes, got %d", keySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns the
// envelope string.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("vault: nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)

	// Seal appends the tag to the ciphertext; the envelope keeps them
	// as separate fields.
	split := len(sealed) - c.aead.Overhead()
	ct, tag := sealed[:split], sealed[split:]

	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ct), nil
}

// Decrypt opens an envelope produced by Encrypt.
func (c *Cipher) Decrypt(envelope string) (string, error) {
	parts := strings.Split(envelope, ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: expected 3 fields, got %d", ErrDecode, len(parts))
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceSize {
		return "", fmt.Errorf("%w: bad nonce", ErrDecode)
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != c.aead.Overhead() {
		return "", fmt.Errorf("%w: bad tag", ErrDecode)
	}
	ct, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext", ErrDecode)
	}

	plaintext, err := c.aead.Open(nil, nonce, append(ct, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", ErrDecode)
	}
	return string(plaintext), nil
}

func readKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("vault: corrupt key file %s: %w", path, err)
	}
	if len(key) != keySize {
		return nil, fmt.Errorf("vault: key file %s holds %d bytes, want %d", path, len(key), keySize)
	}
	return key, nil
}

func generateKeyFile(path string) ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("vault: keygen: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("vault: write key file: %w", err)
	}
	return key, nil
}
