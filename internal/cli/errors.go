package cli

import "errors"

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrNoCertificate      = errors.New("no certificate given")
	ErrNoObfuscatedValue  = errors.New("no obfuscated value given")
	ErrNoObfuscationKey   = errors.New("reveal requires the obfuscation key")
	ErrInvalidHex         = errors.New("obfuscated value must be hex encoded")
	ErrSecretNotReleased  = errors.New("secret not released")
	ErrCopyingToClipboard = errors.New("error copying to clipboard")
)
