// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-secrets-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSecret() models.Secret {
	return models.Secret{Key: "apiKey1", Value: "API_VALUE_1", Flavor: "dev"}
}

// ---------------------------------------------------------------------------
// TestNewSecretValidator
// ---------------------------------------------------------------------------

func TestNewSecretValidator_ReturnsValidator(t *testing.T) {
	v := NewSecretValidator()
	require.NotNil(t, v)
	_, ok := v.(*SecretValidator)
	assert.True(t, ok)
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestSecretValidator_Validate_UnsupportedType(t *testing.T) {
	err := NewSecretValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSecretValidator_Validate_ValueAndPointer(t *testing.T) {
	v := NewSecretValidator()
	s := validSecret()

	assert.NoError(t, v.Validate(context.Background(), s))
	assert.NoError(t, v.Validate(context.Background(), &s))

	list := []models.Secret{s}
	assert.NoError(t, v.Validate(context.Background(), list))
	assert.NoError(t, v.Validate(context.Background(), &list))
}

// ---------------------------------------------------------------------------
// Secret fields
// ---------------------------------------------------------------------------

func TestSecretValidator_Secret(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Secret)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Secret) {}},
		{name: "default flavor", mutate: func(s *models.Secret) { s.Flavor = "" }},
		{name: "unicode key", mutate: func(s *models.Secret) { s.Key = "ключ" }},
		{name: "empty key", mutate: func(s *models.Secret) { s.Key = "" }, wantErr: ErrEmptyKey},
		{name: "dash in key", mutate: func(s *models.Secret) { s.Key = "api-key" }, wantErr: ErrInvalidKey},
		{name: "space in key", mutate: func(s *models.Secret) { s.Key = "api key" }, wantErr: ErrInvalidKey},
		{name: "empty value", mutate: func(s *models.Secret) { s.Value = "" }, wantErr: ErrEmptyValue},
		{name: "path flavor", mutate: func(s *models.Secret) { s.Flavor = "../prod" }, wantErr: ErrInvalidFlavor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSecret()
			tt.mutate(&s)

			err := NewSecretValidator().Validate(context.Background(), s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSecretValidator_Secret_FieldScoping(t *testing.T) {
	s := validSecret()
	s.Value = ""

	assert.NoError(t, NewSecretValidator().Validate(context.Background(), s, FieldKey, FieldFlavor))
	assert.ErrorIs(t, NewSecretValidator().Validate(context.Background(), s, FieldValue), ErrEmptyValue)
	assert.ErrorIs(t, NewSecretValidator().Validate(context.Background(), s, "unknown"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Secret lists
// ---------------------------------------------------------------------------

func TestSecretValidator_Secrets_Empty(t *testing.T) {
	err := NewSecretValidator().Validate(context.Background(), []models.Secret{})
	assert.ErrorIs(t, err, ErrEmptySecrets)
}

func TestSecretValidator_Secrets_ReportsIndex(t *testing.T) {
	bad := validSecret()
	bad.Key = ""

	err := NewSecretValidator().Validate(context.Background(), []models.Secret{validSecret(), bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.Contains(t, err.Error(), "secret #1")
}
