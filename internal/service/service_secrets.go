// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-secrets-vault/internal/crypto"
	"github.com/MKhiriev/go-secrets-vault/internal/identity"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
)

// secretService is the default [SecretService]: verify first, decode second.
type secretService struct {
	verifier SignatureVerifier
	codec    crypto.Codec
	logger   *logger.Logger
}

// NewSecretService constructs a [SecretService]. codec decodes the secrets
// and carries the second-stage transform, if any.
func NewSecretService(verifier SignatureVerifier, codec crypto.Codec, log *logger.Logger) SecretService {
	if log == nil {
		log = logger.Nop()
	}
	return &secretService{
		verifier: verifier,
		codec:    codec,
		logger:   log,
	}
}

// GetOriginalKey implements [SecretService].
func (s *secretService) GetOriginalKey(host identity.Host, obfuscated []byte, length int) string {
	if s.verifier.Verify(host) != Authorized {
		return ""
	}

	decoded, err := s.codec.Decode(obfuscated, length)
	if err != nil {
		s.logger.Debug().Err(err).Msg("error decoding secret")
		return ""
	}

	return string(decoded)
}
