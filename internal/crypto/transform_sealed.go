// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	sealedSaltSize  = 16
	sealedNonceSize = 12
)

// SealedTransform is a [Transform] that wraps values in AES-256-GCM before
// they are XORed. The AES key is derived from the transform key with
// Argon2id, using a per-value random salt carried in the blob:
//
//	blob = salt(16) ‖ nonce(12) ‖ ciphertext
type SealedTransform struct {
	key []byte

	// Argon2id tuning parameters. Lighter than interactive-login settings
	// since Reveal runs on every secret retrieval.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSealedTransform constructs a [SealedTransform] for key with the OWASP
// minimum Argon2id settings:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
func NewSealedTransform(key string) (*SealedTransform, error) {
	if key == "" {
		return nil, ErrEmptyTransformKey
	}
	return &SealedTransform{
		key:          []byte(key),
		argonTime:    2,
		argonMemory:  19 * 1024, // 19 MiB
		argonThreads: 1,
		argonKeyLen:  32, // 256 bits
	}, nil
}

// Conceal implements [Transform]. Every call draws a fresh salt and nonce, so
// the same input yields different blobs.
func (s *SealedTransform) Conceal(plain []byte) ([]byte, error) {
	header := make([]byte, sealedSaltSize+sealedNonceSize)
	if _, err := io.ReadFull(rand.Reader, header); err != nil {
		return nil, fmt.Errorf("generate salt and nonce: %w", err)
	}
	salt, nonce := header[:sealedSaltSize], header[sealedSaltSize:]

	gcm, err := s.gcm(salt)
	if err != nil {
		return nil, err
	}

	return append(header, gcm.Seal(nil, nonce, plain, nil)...), nil
}

// Reveal implements [Transform]. Returns [ErrSealedBlobTooShort] for a
// truncated blob, or an error if authentication fails.
func (s *SealedTransform) Reveal(decoded []byte) ([]byte, error) {
	if len(decoded) < sealedSaltSize+sealedNonceSize {
		return nil, ErrSealedBlobTooShort
	}
	salt := decoded[:sealedSaltSize]
	nonce := decoded[sealedSaltSize : sealedSaltSize+sealedNonceSize]
	ciphertext := decoded[sealedSaltSize+sealedNonceSize:]

	gcm, err := s.gcm(salt)
	if err != nil {
		return nil, err
	}

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed value: %w", err)
	}
	return plain, nil
}

func (s *SealedTransform) gcm(salt []byte) (cipher.AEAD, error) {
	aesKey := argon2.IDKey(s.key, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
