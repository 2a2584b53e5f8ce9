// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, FILES_*, IDENTITY_* and CONFIG.
// Blank entries in IDENTITY_APP_SIGNATURES (e.g. a trailing comma) are
// dropped so they do not reach signature validation.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}

	signatures := cfg.Identity.AppSignatures[:0]
	for _, s := range cfg.Identity.AppSignatures {
		if s = strings.TrimSpace(s); s != "" {
			signatures = append(signatures, s)
		}
	}
	if len(signatures) == 0 {
		signatures = nil
	}
	cfg.Identity.AppSignatures = signatures

	return nil
}
