package identity

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// FingerprintLength is the length of a fingerprint: the hex text of an MD5
// digest.
const FingerprintLength = 2 * md5.Size

// Fingerprint returns the uppercase hex MD5 digest of cert, the form stored
// in the allow-list.
func Fingerprint(cert []byte) string {
	sum := md5.Sum(cert)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
