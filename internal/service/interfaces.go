package service

import (
	"context"

	"github.com/MKhiriev/go-secrets-vault/internal/identity"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SignatureVerifier decides whether the application behind host is
// authorized to receive decoded secrets. It never fails: every fault
// resolves to [Denied].
type SignatureVerifier interface {
	Verify(host identity.Host) Outcome
}

// SecretService releases embedded secrets to authorized callers.
type SecretService interface {
	// GetOriginalKey returns the plaintext of the first length bytes of
	// obfuscated, or "" when the caller is denied or decoding fails. The two
	// cases are indistinguishable to the caller.
	GetOriginalKey(host identity.Host, obfuscated []byte, length int) string
}

// KeepSecretsService turns a secrets file into generated Go sources.
type KeepSecretsService interface {
	Keep(ctx context.Context, req KeepRequest) (KeepResult, error)
}

// SignatureVerifierWrapper defines middleware composition for
// SignatureVerifier, for example caching or logging.
type SignatureVerifierWrapper interface {
	Wrap(SignatureVerifier) SignatureVerifier
}
