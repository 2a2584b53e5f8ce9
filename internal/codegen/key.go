// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codegen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// ObfuscationKeyLength is the length of a generated obfuscation key.
const ObfuscationKeyLength = 32

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateObfuscationKey returns a random alphanumeric passphrase of
// [ObfuscationKeyLength] characters, drawn uniformly from crypto/rand.
func GenerateObfuscationKey() (string, error) {
	alphabetSize := big.NewInt(int64(len(keyAlphabet)))

	key := make([]byte, ObfuscationKeyLength)
	for i := range key {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("error generating obfuscation key: %w", err)
		}
		key[i] = keyAlphabet[n.Int64()]
	}

	return string(key), nil
}
