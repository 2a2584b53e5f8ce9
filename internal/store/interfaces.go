package store

import (
	"context"

	"github.com/MKhiriev/go-secrets-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretsStorage loads the build-time secrets definition.
type SecretsStorage interface {
	// LoadSecrets reads and decodes the secrets file at path.
	LoadSecrets(ctx context.Context, path string) ([]models.Secret, error)
}

// SourceStorage persists generated source files.
type SourceStorage interface {
	// WriteSource writes content to dir/name, creating dir when missing, and
	// returns the written path.
	WriteSource(ctx context.Context, dir, name string, content []byte) (string, error)
}
