package crypto

import (
	"crypto/sha256"

	"github.com/an-ttt/matrix-org-olm/internal/securemem"
)

const sha256BlockLength = 64

// HMACSHA256 computes HMAC-SHA-256 over message with key, per RFC 2104.
// Unlike a call straight through to crypto/hmac, the key folding and the
// inner/outer pad are built by hand here so that the working key, ipad and
// opad can be scrubbed on every exit path; the standard library's own
// internal buffers aren't reachable to satisfy that.
func HMACSHA256(key, message []byte) [32]byte {
	return defaultBackend.HMACSHA256(key, message)
}

func hmacSHA256(key, message []byte) [32]byte {
	hmacKey := hmacKeyFold(key)
	defer securemem.Scrub(hmacKey[:])

	var iPad, oPad [sha256BlockLength]byte
	for i := 0; i < sha256BlockLength; i++ {
		iPad[i] = hmacKey[i] ^ 0x36
		oPad[i] = hmacKey[i] ^ 0x5C
	}
	defer securemem.Scrub(iPad[:])
	defer securemem.Scrub(oPad[:])

	inner := sha256.New()
	inner.Write(iPad[:])
	inner.Write(message)
	var innerSum [32]byte
	inner.Sum(innerSum[:0])
	defer securemem.Scrub(innerSum[:])

	outer := sha256.New()
	outer.Write(oPad[:])
	outer.Write(innerSum[:])
	var out [32]byte
	outer.Sum(out[:0])
	return out
}

// hmacKeyFold implements RFC 2104's key preparation: keys longer than the
// block size are hashed down to 32 bytes first, then every key is
// zero-padded up to the 64-byte SHA-256 block size.
func hmacKeyFold(key []byte) [sha256BlockLength]byte {
	var folded [sha256BlockLength]byte
	if len(key) > sha256BlockLength {
		h := sha256.Sum256(key)
		copy(folded[:], h[:])
		securemem.Scrub(h[:])
	} else {
		copy(folded[:], key)
	}
	return folded
}
