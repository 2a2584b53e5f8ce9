package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot drive a generation run.
var (
	// ErrInvalidPackageName indicates a generated package name that is not
	// a Go identifier.
	ErrInvalidPackageName = errors.New("invalid package name")
	// ErrInvalidTransform indicates a transform other than none or sealed.
	ErrInvalidTransform = errors.New("invalid transform")
	// ErrMissingTransformKey indicates a sealed transform without a key.
	ErrMissingTransformKey = errors.New("sealed transform requires a transform key")
	// ErrInvalidAppSignature indicates an allow-list entry that is not a
	// 32-character hex fingerprint.
	ErrInvalidAppSignature = errors.New("invalid app signature")
)
