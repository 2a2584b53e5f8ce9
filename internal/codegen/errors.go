package codegen

import "errors"

var (
	ErrInvalidSignature = errors.New("app signature must be 32 hex characters")
	ErrEmptyPackageName = errors.New("package name is required")
	ErrInvalidGetter    = errors.New("getter name is not a valid identifier")
	ErrDuplicateGetter  = errors.New("getter name is already used")
	ErrUnknownTransform = errors.New("unknown transform")
)
