package crypto

import "errors"

var (
	// ErrInvalidLength is returned by [Codec.Decode] when the requested length
	// is negative or larger than the obfuscated buffer.
	ErrInvalidLength = errors.New("invalid obfuscated length")

	// ErrSealedBlobTooShort is returned when a sealed value is shorter than its
	// salt and nonce header.
	ErrSealedBlobTooShort = errors.New("sealed value too short")

	ErrEmptyTransformKey = errors.New("empty transform key")
)
