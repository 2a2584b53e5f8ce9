package service

import (
	"sync"

	"github.com/MKhiriev/go-secrets-vault/internal/identity"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
)

// CachedSignatureVerifier memoizes the first terminal outcome of the wrapped
// verifier for the lifetime of the process. A process runs as exactly one
// application package, so the host passed on later calls is ignored.
type CachedSignatureVerifier struct {
	inner   SignatureVerifier
	once    sync.Once
	outcome Outcome
}

// NewCachedSignatureVerifier returns a [SignatureVerifierWrapper] that
// produces a [CachedSignatureVerifier].
func NewCachedSignatureVerifier() SignatureVerifierWrapper {
	return &CachedSignatureVerifier{}
}

// Wrap implements [SignatureVerifierWrapper].
func (c *CachedSignatureVerifier) Wrap(inner SignatureVerifier) SignatureVerifier {
	return &CachedSignatureVerifier{inner: inner}
}

// Verify implements [SignatureVerifier]. A verifier that wraps nothing
// denies every caller.
func (c *CachedSignatureVerifier) Verify(host identity.Host) Outcome {
	if c.inner == nil {
		return Denied
	}
	c.once.Do(func() {
		c.outcome = c.inner.Verify(host)
	})
	return c.outcome
}

// LoggedSignatureVerifier records every outcome of the wrapped verifier.
type LoggedSignatureVerifier struct {
	inner  SignatureVerifier
	logger *logger.Logger
}

// NewLoggedSignatureVerifier returns a [SignatureVerifierWrapper] that
// produces a [LoggedSignatureVerifier].
func NewLoggedSignatureVerifier(log *logger.Logger) SignatureVerifierWrapper {
	return &LoggedSignatureVerifier{logger: log}
}

// Wrap implements [SignatureVerifierWrapper].
func (l *LoggedSignatureVerifier) Wrap(inner SignatureVerifier) SignatureVerifier {
	return &LoggedSignatureVerifier{inner: inner, logger: l.logger}
}

// Verify implements [SignatureVerifier]. A verifier that wraps nothing
// denies every caller.
func (l *LoggedSignatureVerifier) Verify(host identity.Host) Outcome {
	outcome := Denied
	if l.inner != nil {
		outcome = l.inner.Verify(host)
	}
	if outcome == Authorized {
		l.logger.Debug().Stringer("outcome", outcome).Msg("caller verified")
	} else {
		l.logger.Warn().Stringer("outcome", outcome).Msg("caller rejected")
	}
	return outcome
}
