// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeystreamSize is the length of every keystream: the hex text of a SHA-256
// digest.
const KeystreamSize = 2 * sha256.Size

// DeriveKeystream returns the lowercase hex text of sha256(passphrase) as raw
// ASCII bytes. The XOR step uses these hex characters, not the digest bytes,
// so data embedded by existing builds keeps decoding.
func DeriveKeystream(passphrase []byte) []byte {
	sum := sha256.Sum256(passphrase)
	ks := make([]byte, KeystreamSize)
	hex.Encode(ks, sum[:])
	return ks
}

// xorKeystream writes src[i] ^ ks[i % len(ks)] into dst for every index of src.
// dst must be at least len(src) long.
func xorKeystream(dst, src, ks []byte) {
	for i := range src {
		dst[i] = src[i] ^ ks[i%len(ks)]
	}
}
