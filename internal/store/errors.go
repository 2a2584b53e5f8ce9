package store

import "errors"

// Sentinel errors returned by file storages. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrSecretsFileNotFound is returned when the secrets file does not exist.
	ErrSecretsFileNotFound = errors.New("secrets file not found")

	// ErrReadingSecrets is returned when the secrets file exists but cannot
	// be read.
	ErrReadingSecrets = errors.New("error reading secrets file")

	// ErrParsingSecrets is returned when the secrets file is not a JSON
	// array of secret entries.
	ErrParsingSecrets = errors.New("error parsing secrets file")

	// ErrWritingSource is returned when a generated file cannot be written.
	ErrWritingSource = errors.New("error writing generated source")
)
