package service_test

import (
	"testing"

	"github.com/MKhiriev/go-secrets-vault/internal/crypto"
	"github.com/MKhiriev/go-secrets-vault/internal/identity"
	"github.com/MKhiriev/go-secrets-vault/internal/mock"
	"github.com/MKhiriev/go-secrets-vault/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testPassphrase  = "chEYKrGb5PJx0I09oa1mlEuXE5FxPjX2"
	testPackage     = "com.example.app"
	testCertificate = "test-certificate"

	// otherFingerprint is the MD5 of otherCertificate. No allow-list in the
	// tests carries the fingerprint of unlistedCertificate.
	otherCertificate    = "other-certificate"
	unlistedCertificate = "unlisted-certificate"

	// MD5 of testCertificate.
	testFingerprint  = "19C40CB9CB7BEA36CCB9973AA3F4C216"
	otherFingerprint = "34AD1D84ED2C512BC96D20289A13F2DE"
)

var (
	generalValue1 = []byte{0x5e, 0x07, 0x0b, 0x01, 0x4b, 0x02, 0x54, 0x63, 0x51, 0x55, 0x17, 0x03, 0x01}
	commonDev     = []byte{0x5a, 0xd, 0x8, 0x9, 0x56, 0xd, 0x7e, 0x59, 0x51, 0x4f, 0xd, 0x14, 0x66, 0x7, 0xf, 0x16, 0x3, 0x0, 0x73, 0x0, 0x44}
)

// hostWithSigners returns a modern host whose package is signed by signers.
func hostWithSigners(ctrl *gomock.Controller, signers ...models.Signature) *mock.MockHost {
	host := mock.NewMockHost(ctrl)
	host.EXPECT().SDKVersion().Return(identity.SigningInfoMinSDK).AnyTimes()
	host.EXPECT().PackageName().Return(testPackage, nil).AnyTimes()
	host.EXPECT().PackageInfo(testPackage, identity.GetSigningCertificates).Return(&models.PackageInfo{
		PackageName: testPackage,
		SigningInfo: &models.SigningInfo{ApkContentsSigners: signers},
	}, nil).AnyTimes()
	return host
}

// obfuscateAll encodes fingerprints the way generated code embeds them.
func obfuscateAll(t *testing.T, fingerprints ...string) [][]byte {
	t.Helper()
	codec := crypto.NewCodec([]byte(testPassphrase), nil)

	out := make([][]byte, 0, len(fingerprints))
	for _, f := range fingerprints {
		encoded, err := codec.Encode([]byte(f))
		require.NoError(t, err)
		out = append(out, encoded)
	}
	return out
}
