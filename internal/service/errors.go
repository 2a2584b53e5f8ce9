package service

import "errors"

var (
	ErrNoSecrets    = errors.New("no secrets provided")
	ErrNoPassphrase = errors.New("no obfuscation key provided")

	ErrInvalidSignature = errors.New("invalid app signature")
)
