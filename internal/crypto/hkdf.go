package crypto

import (
	"fmt"

	"github.com/an-ttt/matrix-org-olm/internal/securemem"
)

// maxHKDFOutputLength is 255*32 bytes, the RFC 5869 expand limit: requesting
// more is a programmer error, not a recoverable data-driven condition.
const maxHKDFOutputLength = 255 * 32

// HKDFExtract implements the RFC 5869 extract step: PRK = HMAC(salt, IKM).
// A nil salt is treated as a 32-byte all-zero salt. Zero-length IKM is
// permitted.
func HKDFExtract(salt, ikm []byte) [32]byte {
	if salt == nil {
		salt = make([]byte, 32)
	}
	return HMACSHA256(salt, ikm)
}

// HKDFExpand implements the RFC 5869 expand step: it produces length bytes
// from prk and info by iterating T_i = HMAC(PRK, T_{i-1} || info || i). It
// panics if length exceeds 255*32 bytes; that is a programmer error, not a
// recoverable condition.
func HKDFExpand(prk, info []byte, length int) []byte {
	if length > maxHKDFOutputLength {
		panic(fmt.Sprintf("crypto: HKDF output length %d exceeds maximum %d", length, maxHKDFOutputLength))
	}
	out := make([]byte, 0, length+32)
	var t []byte
	var counter byte = 1
	for len(out) < length {
		msg := make([]byte, 0, len(t)+len(info)+1)
		msg = append(msg, t...)
		securemem.Scrub(t)
		msg = append(msg, info...)
		msg = append(msg, counter)
		sum := HMACSHA256(prk, msg)
		securemem.Scrub(msg)
		t = sum[:]
		out = append(out, t...)
		counter++
	}
	securemem.Scrub(t)
	securemem.Scrub(out[length:])
	return out[:length]
}

// HKDF is the combined extract-then-expand convenience wrapper most
// callers want: HKDF(salt, ikm, info, length) == HKDFExpand(HKDFExtract(salt,
// ikm), info, length). A nil salt behaves as the all-zero default salt;
// salt with length 0 and a non-nil backing slice is accepted identically.
func HKDF(salt, ikm, info []byte, length int) []byte {
	prk := HKDFExtract(salt, ikm)
	defer securemem.Scrub(prk[:])
	return HKDFExpand(prk[:], info, length)
}
