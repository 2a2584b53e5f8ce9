package models

// Signature is the byte encoding of one signing certificate, as returned by
// the host package manager (DER for X.509 certificates).
type Signature []byte

// SigningInfo is the signing metadata exposed by hosts that support
// certificate rotation.
type SigningInfo struct {
	// ApkContentsSigners lists the certificates that signed the current
	// package contents. The first entry is the identity that is checked.
	ApkContentsSigners []Signature
}

// PackageInfo is the subset of the host's package metadata needed to
// identify the signer of the running application.
type PackageInfo struct {
	PackageName string

	// SigningInfo is populated on hosts at or above the signing-info SDK
	// level when requested. Nil otherwise.
	SigningInfo *SigningInfo

	// Signatures is the legacy signature list. Nil when the host did not
	// report any.
	Signatures []Signature
}
