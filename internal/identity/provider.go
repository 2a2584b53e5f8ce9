// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"fmt"

	"github.com/MKhiriev/go-secrets-vault/models"
)

// NewProvider probes host once and returns the [Provider] variant for its
// SDK level:
//   - SDK >= [SigningInfoMinSDK]: signing info, first APK contents signer;
//   - otherwise: the legacy signature list, first entry.
//
// A nil host yields a provider that always fails with
// [ErrIdentityUnavailable].
func NewProvider(host Host) Provider {
	if host == nil {
		return unavailableProvider{}
	}
	if host.SDKVersion() >= SigningInfoMinSDK {
		return &signingInfoProvider{host: host}
	}
	return &legacySignaturesProvider{host: host}
}

// signingInfoProvider reads PackageInfo.SigningInfo.ApkContentsSigners.
type signingInfoProvider struct {
	host Host
}

// SigningCertificate implements [Provider].
func (p *signingInfoProvider) SigningCertificate() ([]byte, error) {
	info, err := packageInfo(p.host, GetSigningCertificates)
	if err != nil {
		return nil, err
	}
	if info.SigningInfo == nil {
		return nil, ErrNoSignature
	}
	return firstSignature(info.SigningInfo.ApkContentsSigners)
}

// legacySignaturesProvider reads PackageInfo.Signatures.
type legacySignaturesProvider struct {
	host Host
}

// SigningCertificate implements [Provider].
func (p *legacySignaturesProvider) SigningCertificate() ([]byte, error) {
	info, err := packageInfo(p.host, GetSignatures)
	if err != nil {
		return nil, err
	}
	return firstSignature(info.Signatures)
}

type unavailableProvider struct{}

// SigningCertificate implements [Provider].
func (unavailableProvider) SigningCertificate() ([]byte, error) {
	return nil, fmt.Errorf("%w: no host", ErrIdentityUnavailable)
}

func packageInfo(host Host, flags PackageInfoFlag) (*models.PackageInfo, error) {
	name, err := host.PackageName()
	if err != nil {
		return nil, fmt.Errorf("%w: get package name: %w", ErrIdentityUnavailable, err)
	}

	info, err := host.PackageInfo(name, flags)
	if err != nil {
		return nil, fmt.Errorf("%w: get package info: %w", ErrIdentityUnavailable, err)
	}
	if info == nil {
		return nil, fmt.Errorf("%w: empty package info", ErrIdentityUnavailable)
	}
	return info, nil
}

func firstSignature(signatures []models.Signature) ([]byte, error) {
	if len(signatures) == 0 || len(signatures[0]) == 0 {
		return nil, ErrNoSignature
	}
	return signatures[0], nil
}
