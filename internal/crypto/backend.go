package crypto

import "github.com/an-ttt/matrix-org-olm/internal/types"

// Backend is the capability interface behind the hash, MAC, cipher, key
// agreement and signature functions of this package: a single surface that
// can be satisfied by either the bundled portable implementation or a
// platform cryptographic library, with both observationally
// indistinguishable to callers. SHA256, HMACSHA256, EncryptCBC, DecryptCBC,
// GenerateX25519, SharedSecretX25519, GenerateEd25519, SignEd25519 and
// VerifyEd25519 delegate to defaultBackend, and the HKDF functions reach it
// through HMACSHA256; the Base64 codec, CBCCiphertextLength and Fingerprint
// do not go through it. Selecting a different Backend is a single
// assignment, not conditional compilation sprinkled through call sites.
type Backend interface {
	SHA256(input []byte) [32]byte
	HMACSHA256(key, message []byte) [32]byte
	EncryptCBC(key types.AESKey, iv types.AESIV, plaintext []byte) []byte
	DecryptCBC(key types.AESKey, iv types.AESIV, ciphertext []byte) ([]byte, error)
	GenerateX25519(random [32]byte) (types.X25519Private, types.X25519Public)
	SharedSecretX25519(priv types.X25519Private, pub types.X25519Public) ([32]byte, error)
	GenerateEd25519(seed [32]byte) (types.Ed25519Private, types.Ed25519Public)
	SignEd25519(priv types.Ed25519Private, pub types.Ed25519Public, message []byte) types.Ed25519Signature
	VerifyEd25519(pub types.Ed25519Public, message []byte, sig types.Ed25519Signature) bool
}

// goBackend implements Backend on top of Go's standard library and
// golang.org/x/crypto/curve25519, the Go ecosystem's vetted, maintained
// primitive implementations.
type goBackend struct{}

var defaultBackend Backend = goBackend{}

func (goBackend) SHA256(input []byte) [32]byte { return sha256Sum(input) }

func (goBackend) HMACSHA256(key, message []byte) [32]byte { return hmacSHA256(key, message) }

func (goBackend) EncryptCBC(key types.AESKey, iv types.AESIV, plaintext []byte) []byte {
	return encryptCBC(key, iv, plaintext)
}

func (goBackend) DecryptCBC(key types.AESKey, iv types.AESIV, ciphertext []byte) ([]byte, error) {
	return decryptCBC(key, iv, ciphertext)
}

func (goBackend) GenerateX25519(random [32]byte) (types.X25519Private, types.X25519Public) {
	return generateX25519(random)
}

func (goBackend) SharedSecretX25519(priv types.X25519Private, pub types.X25519Public) ([32]byte, error) {
	return sharedSecretX25519(priv, pub)
}

func (goBackend) GenerateEd25519(seed [32]byte) (types.Ed25519Private, types.Ed25519Public) {
	return generateEd25519(seed)
}

func (goBackend) SignEd25519(priv types.Ed25519Private, pub types.Ed25519Public, message []byte) types.Ed25519Signature {
	return signEd25519(priv, pub, message)
}

func (goBackend) VerifyEd25519(pub types.Ed25519Public, message []byte, sig types.Ed25519Signature) bool {
	return verifyEd25519(pub, message, sig)
}
