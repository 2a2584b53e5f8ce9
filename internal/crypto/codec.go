// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
)

// xorCodec is the private implementation of [Codec]. The keystream is
// derived once at construction and never mutated.
type xorCodec struct {
	keystream []byte
	transform Transform
}

// NewCodec constructs a [Codec] for passphrase. A nil transform falls back to
// [IdentityTransform].
func NewCodec(passphrase []byte, transform Transform) Codec {
	if transform == nil {
		transform = IdentityTransform{}
	}
	return &xorCodec{
		keystream: DeriveKeystream(passphrase),
		transform: transform,
	}
}

// Decode implements [Codec].
func (c *xorCodec) Decode(obfuscated []byte, length int) ([]byte, error) {
	if length < 0 || length > len(obfuscated) {
		return nil, fmt.Errorf("%w: %d of %d bytes", ErrInvalidLength, length, len(obfuscated))
	}

	decoded := make([]byte, length)
	xorKeystream(decoded, obfuscated[:length], c.keystream)

	revealed, err := c.transform.Reveal(decoded)
	if err != nil {
		wipe(decoded)
		return nil, fmt.Errorf("reveal decoded value: %w", err)
	}

	return revealed, nil
}

// Encode implements [Codec].
func (c *xorCodec) Encode(plain []byte) ([]byte, error) {
	concealed, err := c.transform.Conceal(plain)
	if err != nil {
		return nil, fmt.Errorf("conceal value: %w", err)
	}

	encoded := make([]byte, len(concealed))
	xorKeystream(encoded, concealed, c.keystream)
	return encoded, nil
}

// Keystream implements [Codec].
func (c *xorCodec) Keystream() []byte {
	return append([]byte(nil), c.keystream...)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
