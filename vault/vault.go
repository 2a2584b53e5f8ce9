// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-secrets-vault/internal/crypto"
	"github.com/MKhiriev/go-secrets-vault/internal/identity"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
	"github.com/MKhiriev/go-secrets-vault/internal/service"
)

type (
	// Host is the runtime environment handle passed to every getter.
	Host = identity.Host
	// PackageInfoFlag selects the signing fields a [Host] populates.
	PackageInfoFlag = identity.PackageInfoFlag
	// Transform is the optional second decoding stage.
	Transform = crypto.Transform
	// FileHost is a [Host] backed by a certificate file.
	FileHost = identity.FileHost
)

const (
	GetSignatures          = identity.GetSignatures
	GetSigningCertificates = identity.GetSigningCertificates
	SigningInfoMinSDK      = identity.SigningInfoMinSDK
)

var (
	ErrNoPassphrase        = service.ErrNoPassphrase
	ErrSkipWithAllowList   = errors.New("signature check cannot be skipped when an allow-list is set")
	ErrEmptyTransformKey   = crypto.ErrEmptyTransformKey
	ErrNoCertificateInFile = identity.ErrNoCertificateInFile
	ErrIdentityUnavailable = identity.ErrIdentityUnavailable
	ErrNoSignature         = identity.ErrNoSignature
)

// Options configures a [Vault].
type Options struct {
	// Passphrase is the obfuscation key the keystream is derived from.
	Passphrase string

	// Signatures are the obfuscated fingerprints of the certificates allowed
	// to read secrets. An empty list denies every caller.
	Signatures [][]byte

	// SkipSignatureCheck releases secrets to every caller. Generated code
	// sets it when the build had no app signatures configured.
	SkipSignatureCheck bool

	// Transform is applied after the XOR step. Nil means no transform.
	Transform Transform

	// CacheVerification memoizes the first verification outcome for the
	// lifetime of the Vault.
	CacheVerification bool

	// Logger receives diagnostics. Nil discards them.
	Logger *zerolog.Logger
}

// Vault releases embedded secrets to authorized callers. It is safe for
// concurrent use.
type Vault struct {
	secrets service.SecretService
}

// New builds a [Vault] from opts.
func New(opts Options) (*Vault, error) {
	if opts.Passphrase == "" {
		return nil, ErrNoPassphrase
	}
	if opts.SkipSignatureCheck && len(opts.Signatures) > 0 {
		return nil, ErrSkipWithAllowList
	}

	log := logger.Nop()
	if opts.Logger != nil {
		log = &logger.Logger{Logger: *opts.Logger}
	}

	passphrase := []byte(opts.Passphrase)

	var verifier service.SignatureVerifier
	if opts.SkipSignatureCheck {
		verifier = service.NewSkippedSignatureVerifier()
	} else {
		verifier = service.NewSignatureVerifier(crypto.NewCodec(passphrase, nil), opts.Signatures, log)
		verifier = service.NewLoggedSignatureVerifier(log).Wrap(verifier)
	}
	if opts.CacheVerification {
		verifier = service.NewCachedSignatureVerifier().Wrap(verifier)
	}

	return &Vault{
		secrets: service.NewSecretService(verifier, crypto.NewCodec(passphrase, opts.Transform), log),
	}, nil
}

// MustNew is [New] that panics on error. Generated code uses it to build
// package-level vaults.
func MustNew(opts Options) *Vault {
	v, err := New(opts)
	if err != nil {
		panic(fmt.Sprintf("vault: %v", err))
	}
	return v
}

// GetOriginalKey returns the plaintext behind obfuscated, or "" when the
// caller behind host is not authorized or decoding fails.
func (v *Vault) GetOriginalKey(host Host, obfuscated []byte) string {
	return v.secrets.GetOriginalKey(host, obfuscated, len(obfuscated))
}

// NewSealedTransform returns the AES-GCM [Transform] keyed by key.
func NewSealedTransform(key string) (Transform, error) {
	t, err := crypto.NewSealedTransform(key)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MustSealedTransform is [NewSealedTransform] that panics on error.
func MustSealedTransform(key string) Transform {
	t, err := NewSealedTransform(key)
	if err != nil {
		panic(fmt.Sprintf("vault: %v", err))
	}
	return t
}

// NewFileHost returns a [Host] that presents the certificates in path as the
// signers of packageName.
func NewFileHost(packageName, path string) (*FileHost, error) {
	return identity.NewFileHost(packageName, path)
}

// Fingerprint returns the uppercase hex MD5 of a DER certificate, the form
// allow-list entries are written in.
func Fingerprint(cert []byte) string {
	return identity.Fingerprint(cert)
}

// Obfuscate encodes plain the way generated code embeds values. transform
// may be nil.
func Obfuscate(passphrase string, plain []byte, transform Transform) ([]byte, error) {
	return crypto.NewCodec([]byte(passphrase), transform).Encode(plain)
}
