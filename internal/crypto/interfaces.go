// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals secrets the server has to read back later, such as
// API keys, before they are written to storage.
//
// Sealed values are self-describing strings:
//
//	v1:<base64(nonce ‖ AES-256-GCM ciphertext)>
//
// The AES key is derived from a server secret with Argon2id, so a storage
// dump alone does not reveal any key.
package crypto

// Sealer encrypts and decrypts short string secrets.
type Sealer interface {
	// Seal encrypts plaintext. An empty plaintext seals to "".
	Seal(plaintext string) (string, error)

	// Open reverses Seal. An empty sealed value opens to "".
	Open(sealed string) (string, error)
}
