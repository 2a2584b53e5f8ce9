package identity

import "errors"

var (
	// ErrNoSignature reports that the host returned no signing certificate.
	ErrNoSignature = errors.New("no signature")

	// ErrIdentityUnavailable reports that the host could not be queried.
	ErrIdentityUnavailable = errors.New("identity unavailable")

	ErrNoCertificateInFile = errors.New("no certificate found in file")
)
