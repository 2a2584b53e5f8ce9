// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity resolves the signing certificate of the running
// application and turns it into a fingerprint.
//
// The host runtime is reached only through [Host], which mirrors the package
// manager calls of a mobile runtime: read the SDK level, resolve the package
// name, then query package metadata with the flag that matches the SDK
// level. [NewProvider] performs the SDK probe once and returns the matching
// [Provider] variant.
package identity

import "github.com/MKhiriev/go-secrets-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_mock.go -package=mock

// Host is the runtime environment handle passed along with every secret
// request. All methods are read-only queries against host state.
type Host interface {
	// SDKVersion reports the host runtime API level.
	SDKVersion() int

	// PackageName returns the name of the running application package.
	PackageName() (string, error)

	// PackageInfo returns package metadata. flags selects which signing
	// fields are populated.
	PackageInfo(packageName string, flags PackageInfoFlag) (*models.PackageInfo, error)
}

// Provider returns the raw bytes of the first signing certificate of the
// running application, or [ErrNoSignature] when the package carries none.
type Provider interface {
	SigningCertificate() ([]byte, error)
}
