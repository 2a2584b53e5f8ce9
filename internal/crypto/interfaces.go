// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the keystream obfuscation scheme used to embed
// secrets into compiled binaries.
//
// The scheme is a reversible XOR against a keystream derived from a fixed
// passphrase. It hides literals from casual static inspection and is not
// meant to resist a capable reverse engineer.
//
// Schema:
//
//	keystream  = hex(sha256(passphrase))            (64 ASCII bytes)
//	obfuscated = Conceal(plain) XOR keystream        (build time)
//	plain      = Reveal(obfuscated XOR keystream)    (run time)
package crypto

// Codec obfuscates and deobfuscates byte sequences against a keystream.
type Codec interface {
	// Decode XORs the first length bytes of obfuscated against the keystream
	// and passes the result to the configured [Transform]. Returns
	// [ErrInvalidLength] if length is negative or exceeds len(obfuscated).
	Decode(obfuscated []byte, length int) ([]byte, error)

	// Encode is the build-time inverse of Decode: Transform.Conceal first,
	// then XOR.
	Encode(plain []byte) ([]byte, error)

	// Keystream returns a copy of the keystream bytes.
	Keystream() []byte
}

// Transform is the second-stage decoding hook applied after the XOR step.
// Reveal must undo Conceal. Implementations must be safe for concurrent use.
type Transform interface {
	// Conceal runs at build time before the value is XORed and embedded.
	Conceal(plain []byte) ([]byte, error)

	// Reveal runs at run time on the XOR-decoded bytes.
	Reveal(decoded []byte) ([]byte, error)
}
