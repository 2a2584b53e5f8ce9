// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-secrets-vault/internal/crypto"
	"github.com/MKhiriev/go-secrets-vault/internal/identity"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
)

// ProviderFactory builds the [identity.Provider] used for a single
// verification.
type ProviderFactory func(identity.Host) identity.Provider

// signatureVerifier is the default [SignatureVerifier]. It compares the
// caller's certificate fingerprint against an allow-list of obfuscated
// fingerprints.
type signatureVerifier struct {
	codec       crypto.Codec
	signatures  [][]byte
	newProvider ProviderFactory
	logger      *logger.Logger
}

// NewSignatureVerifier constructs a [SignatureVerifier]. Each entry of
// signatures is an obfuscated uppercase hex fingerprint, decoded with codec.
// codec must not carry a second-stage transform: fingerprints are embedded
// with the XOR step only.
func NewSignatureVerifier(codec crypto.Codec, signatures [][]byte, log *logger.Logger) SignatureVerifier {
	return newSignatureVerifier(codec, signatures, identity.NewProvider, log)
}

func newSignatureVerifier(codec crypto.Codec, signatures [][]byte, newProvider ProviderFactory, log *logger.Logger) *signatureVerifier {
	if log == nil {
		log = logger.Nop()
	}
	return &signatureVerifier{
		codec:       codec,
		signatures:  signatures,
		newProvider: newProvider,
		logger:      log,
	}
}

// Verify implements [SignatureVerifier].
//
// A missing certificate or an unreachable host is an explicit early Denied:
// no allow-list entry is decoded in that case. Otherwise entries are
// scanned in order and the first exact, case-sensitive match authorizes.
func (v *signatureVerifier) Verify(host identity.Host) Outcome {
	cert, err := v.newProvider(host).SigningCertificate()
	if err != nil {
		v.logger.Debug().Err(err).Str("kind", errorKind(err)).Msg("caller identity not resolved")
		return Denied
	}

	actual := identity.Fingerprint(cert)
	for i, signature := range v.signatures {
		expected, err := v.codec.Decode(signature, len(signature))
		if err != nil {
			v.logger.Debug().Err(err).Int("entry", i).Msg("skipping undecodable allow-list entry")
			continue
		}
		if string(expected) == actual {
			return Authorized
		}
	}

	return Denied
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, identity.ErrNoSignature):
		return "no_signature"
	case errors.Is(err, identity.ErrIdentityUnavailable):
		return "identity_unavailable"
	default:
		return "unknown"
	}
}

// skippedSignatureVerifier authorizes every caller. It backs vaults built
// without an allow-list.
type skippedSignatureVerifier struct{}

// NewSkippedSignatureVerifier returns a [SignatureVerifier] that authorizes
// every caller without consulting the host.
func NewSkippedSignatureVerifier() SignatureVerifier {
	return skippedSignatureVerifier{}
}

// Verify implements [SignatureVerifier].
func (skippedSignatureVerifier) Verify(identity.Host) Outcome {
	return Authorized
}
