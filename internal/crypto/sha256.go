package crypto

import "crypto/sha256"

// SHA256 returns the SHA-256 digest of input. It matches FIPS 180-4 test
// vectors bit-for-bit by construction: the computation is delegated to Go's
// standard library implementation.
func SHA256(input []byte) [32]byte {
	return defaultBackend.SHA256(input)
}

func sha256Sum(input []byte) [32]byte {
	return sha256.Sum256(input)
}
