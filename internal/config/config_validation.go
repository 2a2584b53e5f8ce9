// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"go/token"

	"github.com/MKhiriev/go-secrets-vault/internal/codegen"
)

// validate checks that the final merged [StructuredConfig] is usable and
// normalizes the app signatures to plain uppercase hex in place.
//
// Returns nil if the configuration is valid, or an error matching one of
// the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if !token.IsIdentifier(cfg.App.PackageName) {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, cfg.App.PackageName)
	}

	switch cfg.App.Transform {
	case codegen.TransformNone:
	case codegen.TransformSealed:
		if cfg.App.TransformKey == "" {
			return ErrMissingTransformKey
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTransform, cfg.App.Transform)
	}

	signatures, err := codegen.NormalizeSignatures(cfg.Identity.AppSignatures)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppSignature, err)
	}
	cfg.Identity.AppSignatures = signatures

	return nil
}
