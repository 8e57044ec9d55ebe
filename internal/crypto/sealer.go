// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const sealedPrefix = "v1:"

// Argon2id parameters, OWASP's low-memory profile. The derivation runs once
// per process so the cost is paid at startup only.
const (
	argonTime    = 2
	argonMemory  = 19 * 1024 // KiB
	argonThreads = 1
	keyLen       = 32
)

// keySalt domain-separates the sealing key from other uses of the same
// secret (the token signer uses it raw).
var keySalt = []byte("market-pulse/sealer/v1")

type aesSealer struct {
	aead cipher.AEAD

	// random is crypto/rand.Reader outside tests.
	random io.Reader
}

// NewSealer derives an AES-256-GCM key from secret and returns a [Sealer]
// using it.
func NewSealer(secret string) (Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return newAESSealer(DeriveKey(secret, keySalt), rand.Reader)
}

func newAESSealer(key []byte, random io.Reader) (*aesSealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &aesSealer{aead: gcm, random: random}, nil
}

// DeriveKey stretches secret into a 256-bit key with Argon2id.
func DeriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, keyLen)
}

func (s *aesSealer) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(s.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// blob = nonce ‖ ciphertext
	blob := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

func (s *aesSealer) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}

	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", ErrNotSealed
	}
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedSeal, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize+s.aead.Overhead() {
		return "", fmt.Errorf("%w: too short", ErrMalformedSeal)
	}

	plaintext, err := s.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		// Wrong secret or tampered ciphertext.
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return string(plaintext), nil
}
