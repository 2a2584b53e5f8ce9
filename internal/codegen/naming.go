// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codegen

import (
	"encoding/hex"
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-secrets-vault/models"
)

// FileName is the name of the generated file inside each flavor directory.
const FileName = "secrets_vault_gen.go"

const (
	mainTypeName    = "MainSecrets"
	flavorTypeName  = "Secrets"
	getterPrefix    = "Get"
	fingerprintSize = 32
)

// NormalizeSignature turns a colon-separated or plain certificate
// fingerprint into 32 uppercase hex characters.
func NormalizeSignature(s string) (string, error) {
	normalized := strings.Map(func(r rune) rune {
		if r == ':' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)

	if len(normalized) != fingerprintSize {
		return "", fmt.Errorf("%w: %q", ErrInvalidSignature, s)
	}
	if _, err := hex.DecodeString(normalized); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSignature, s)
	}

	return normalized, nil
}

// NormalizeSignatures applies [NormalizeSignature] to every entry.
func NormalizeSignatures(signatures []string) ([]string, error) {
	normalized := make([]string, 0, len(signatures))
	for _, s := range signatures {
		n, err := NormalizeSignature(s)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}
	return normalized, nil
}

// TypeName returns the generated type for flavor: MainSecrets for the
// default flavor, Secrets otherwise.
func TypeName(flavor string) string {
	if flavor == "" || flavor == models.DefaultFlavor {
		return mainTypeName
	}
	return flavorTypeName
}

// GetterName returns the method name generated for key.
func GetterName(key string) string {
	return getterPrefix + capitalize(key)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func validGetter(name string) error {
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return fmt.Errorf("%w: %q", ErrInvalidGetter, name)
	}
	return nil
}
