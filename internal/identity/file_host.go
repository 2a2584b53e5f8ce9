// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/MKhiriev/go-secrets-vault/models"
)

const pemCertificateType = "CERTIFICATE"

// FileHost is a [Host] backed by a certificate file on disk. Desktop and
// server embedders use it in place of a package manager, with the binary's
// signing certificate shipped next to it.
//
// FileHost reports the current SDK level, so [NewProvider] selects the
// signing-info variant.
type FileHost struct {
	packageName  string
	certificates []models.Signature
}

// NewFileHost loads the certificates in path. The file may hold one or more
// PEM "CERTIFICATE" blocks or a single DER certificate. Every certificate is
// parsed with crypto/x509 to reject corrupt input early.
func NewFileHost(packageName, path string) (*FileHost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading certificate file: %w", err)
	}

	certs, err := ParseCertificates(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing certificate file %s: %w", path, err)
	}

	return &FileHost{packageName: packageName, certificates: certs}, nil
}

// ParseCertificates extracts DER certificates from PEM or raw DER data.
func ParseCertificates(data []byte) ([]models.Signature, error) {
	var certs []models.Signature

	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != pemCertificateType {
			continue
		}
		if _, err := x509.ParseCertificate(block.Bytes); err != nil {
			return nil, fmt.Errorf("parse PEM certificate: %w", err)
		}
		certs = append(certs, models.Signature(block.Bytes))
	}

	if len(certs) > 0 {
		return certs, nil
	}

	if _, err := x509.ParseCertificate(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCertificateInFile, err)
	}
	return []models.Signature{models.Signature(data)}, nil
}

// SDKVersion implements [Host].
func (h *FileHost) SDKVersion() int {
	return SigningInfoMinSDK
}

// PackageName implements [Host].
func (h *FileHost) PackageName() (string, error) {
	return h.packageName, nil
}

// PackageInfo implements [Host]. Both the signing-info and the legacy
// fields are served from the loaded certificates.
func (h *FileHost) PackageInfo(packageName string, flags PackageInfoFlag) (*models.PackageInfo, error) {
	if packageName != h.packageName {
		return nil, fmt.Errorf("package %q not found", packageName)
	}

	info := &models.PackageInfo{PackageName: h.packageName}
	if flags&GetSigningCertificates != 0 {
		info.SigningInfo = &models.SigningInfo{ApkContentsSigners: h.certificates}
	}
	if flags&GetSignatures != 0 {
		info.Signatures = h.certificates
	}
	return info, nil
}

// Certificates returns the loaded DER certificates.
func (h *FileHost) Certificates() []models.Signature {
	return h.certificates
}
