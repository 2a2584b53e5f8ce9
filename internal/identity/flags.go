package identity

// PackageInfoFlag selects optional package metadata returned by
// [Host.PackageInfo].
type PackageInfoFlag int

const (
	// GetSignatures requests the legacy signature list.
	GetSignatures PackageInfoFlag = 0x00000040

	// GetSigningCertificates requests signing info with rotation support.
	GetSigningCertificates PackageInfoFlag = 0x08000000
)

// SigningInfoMinSDK is the first SDK level that exposes signing info.
// Older hosts only report the legacy signature list.
const SigningInfoMinSDK = 28
