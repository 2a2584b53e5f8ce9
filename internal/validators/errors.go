package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey      = errors.New("secret key is required")
	ErrInvalidKey    = errors.New("secret key must be a valid identifier")
	ErrEmptyValue    = errors.New("secret value is required")
	ErrInvalidFlavor = errors.New("flavor must contain only letters, digits and underscores")
	ErrEmptySecrets  = errors.New("secrets list cannot be empty")
)
