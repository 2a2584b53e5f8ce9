// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"go/token"
	"unicode"

	"github.com/MKhiriev/go-secrets-vault/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldKey targets the secret key, which becomes part of a Go method name.
	FieldKey = "key"

	// FieldValue targets the plaintext secret value.
	FieldValue = "value"

	// FieldFlavor targets the flavor, which becomes a directory name.
	FieldFlavor = "flavor"
)

// SecretValidator implements the Validator interface for secrets file
// entries: models.Secret and []models.Secret, in value or pointer form.
type SecretValidator struct {
}

// NewSecretValidator constructs a new SecretValidator and returns it as the
// Validator interface.
func NewSecretValidator() Validator {
	return &SecretValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// key, value and flavor are validated.
func (v *SecretValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Secret:
		return v.validateSecret(ctx, value, fields...)
	case *models.Secret:
		return v.validateSecret(ctx, *value, fields...)

	case []models.Secret:
		return v.validateSecrets(ctx, value, fields...)
	case *[]models.Secret:
		return v.validateSecrets(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SecretValidator) validateSecret(_ context.Context, secret models.Secret, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldValue, FieldFlavor}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if secret.Key == "" {
				return ErrEmptyKey
			}
			if !isIdentifierTail(secret.Key) {
				return fmt.Errorf("%w: %q", ErrInvalidKey, secret.Key)
			}
		case FieldValue:
			if secret.Value == "" {
				return ErrEmptyValue
			}
		case FieldFlavor:
			if secret.Flavor != "" && !isFlavorName(secret.Flavor) {
				return fmt.Errorf("%w: %q", ErrInvalidFlavor, secret.Flavor)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSecrets validates every entry and reports the index of the first
// invalid one.
func (v *SecretValidator) validateSecrets(ctx context.Context, secrets []models.Secret, fields ...string) error {
	if len(secrets) == 0 {
		return ErrEmptySecrets
	}

	for i, s := range secrets {
		if err := v.validateSecret(ctx, s, fields...); err != nil {
			return fmt.Errorf("secret #%d: %w", i, err)
		}
	}

	return nil
}

// isIdentifierTail reports whether "Get"+key is a valid Go identifier.
func isIdentifierTail(key string) bool {
	return token.IsIdentifier("Get" + key)
}

func isFlavorName(flavor string) bool {
	for _, r := range flavor {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
