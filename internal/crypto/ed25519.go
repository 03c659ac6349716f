package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/an-ttt/matrix-org-olm/internal/securemem"
	"github.com/an-ttt/matrix-org-olm/internal/types"
)

// GenerateEd25519 deterministically expands a 32-byte seed into a 64-byte
// signing key and its matching 32-byte verification key, per RFC 8032
// §5.1.5. Use GenerateEd25519Random to draw the seed from crypto/rand.
func GenerateEd25519(seed [32]byte) (types.Ed25519Private, types.Ed25519Public) {
	return defaultBackend.GenerateEd25519(seed)
}

// GenerateEd25519Random draws a fresh 32-byte seed from crypto/rand and
// expands it into an Ed25519 key pair.
func GenerateEd25519Random() (types.Ed25519Private, types.Ed25519Public, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return types.Ed25519Private{}, types.Ed25519Public{}, err
	}
	defer securemem.Scrub(seed[:])
	priv, pub := GenerateEd25519(seed)
	return priv, pub, nil
}

// SignEd25519 deterministically signs message with priv and returns the
// detached 64-byte signature.
func SignEd25519(priv types.Ed25519Private, pub types.Ed25519Public, message []byte) types.Ed25519Signature {
	return defaultBackend.SignEd25519(priv, pub, message)
}

// VerifyEd25519 reports whether sig is a valid Ed25519 signature over
// message under pub. It rejects non-canonical encodings of R and S per
// RFC 8032 §5.1.7, as Go's crypto/ed25519 does internally.
func VerifyEd25519(pub types.Ed25519Public, message []byte, sig types.Ed25519Signature) bool {
	return defaultBackend.VerifyEd25519(pub, message, sig)
}

func generateEd25519(seed [32]byte) (types.Ed25519Private, types.Ed25519Public) {
	defer securemem.Scrub(seed[:])

	sk := ed25519.NewKeyFromSeed(seed[:])
	defer securemem.Scrub(sk)
	pk := sk.Public().(ed25519.PublicKey)

	var priv types.Ed25519Private
	var pub types.Ed25519Public
	copy(priv[:], sk)
	copy(pub[:], pk)
	return priv, pub
}

func signEd25519(priv types.Ed25519Private, _ types.Ed25519Public, message []byte) types.Ed25519Signature {
	raw := ed25519.Sign(ed25519.PrivateKey(priv[:]), message)
	var sig types.Ed25519Signature
	copy(sig[:], raw)
	return sig
}

func verifyEd25519(pub types.Ed25519Public, message []byte, sig types.Ed25519Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig[:])
}
