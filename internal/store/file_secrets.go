package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-secrets-vault/models"
)

// secretsFileStorage is the default implementation of [SecretsStorage]. It
// reads a JSON array of {"key", "value", "flavor"} objects from the local
// filesystem.
type secretsFileStorage struct {
}

// NewSecretsFileStorage constructs a new [SecretsStorage] instance.
func NewSecretsFileStorage() SecretsStorage {
	return &secretsFileStorage{}
}

// LoadSecrets reads the secrets file at path.
//
// Returns ErrSecretsFileNotFound if the file does not exist, ErrReadingSecrets
// if it cannot be read and ErrParsingSecrets if its content is not a JSON
// array of secrets. Entries without a flavor are returned as-is; callers
// resolve the default with [models.Secret.FlavorOrDefault].
func (s *secretsFileStorage) LoadSecrets(ctx context.Context, path string) ([]models.Secret, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSecretsFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSecrets, err)
	}

	var secrets []models.Secret
	if err = json.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingSecrets, err)
	}

	return secrets, nil
}
