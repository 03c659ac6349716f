package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/curve25519"

	"github.com/an-ttt/matrix-org-olm/internal/securemem"
	"github.com/an-ttt/matrix-org-olm/internal/types"
)

// GenerateX25519 treats random as the private scalar, clamps it per
// RFC 7748, and derives the matching public key as scalar·basepoint(9).
// Callers must supply 32 bytes of uniformly random entropy; use
// GenerateX25519Random to do that with crypto/rand in one call.
func GenerateX25519(random [32]byte) (types.X25519Private, types.X25519Public) {
	return defaultBackend.GenerateX25519(random)
}

// GenerateX25519Random draws 32 bytes from crypto/rand and generates a
// fresh Curve25519 key pair from them.
func GenerateX25519Random() (types.X25519Private, types.X25519Public, error) {
	var random [32]byte
	if _, err := rand.Read(random[:]); err != nil {
		return types.X25519Private{}, types.X25519Public{}, err
	}
	defer securemem.Scrub(random[:])
	priv, pub := GenerateX25519(random)
	return priv, pub, nil
}

// SharedSecretX25519 computes X25519(ourPriv, theirPub). The result must
// never be used directly as a key; pass it through HKDF first.
func SharedSecretX25519(ourPriv types.X25519Private, theirPub types.X25519Public) ([32]byte, error) {
	return defaultBackend.SharedSecretX25519(ourPriv, theirPub)
}

// Fingerprint returns a short hex fingerprint of a public key, suitable for
// display/logging by the (excluded) session layer; it is never applied to
// secret material.
func Fingerprint(pub []byte) string {
	sum := sha256Sum(pub)
	return hex.EncodeToString(sum[:10])
}

func generateX25519(random [32]byte) (types.X25519Private, types.X25519Public) {
	defer securemem.Scrub(random[:])

	var priv types.X25519Private
	copy(priv[:], random[:])
	clampX25519(&priv)

	pubBytes, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		// X25519 only fails for a low-order public input; the fixed
		// basepoint is never low-order, so this is an unrecoverable
		// invariant violation, not a data-driven error.
		panic(err)
	}
	var pub types.X25519Public
	copy(pub[:], pubBytes)
	return priv, pub
}

func sharedSecretX25519(ourPriv types.X25519Private, theirPub types.X25519Public) ([32]byte, error) {
	secret, err := curve25519.X25519(ourPriv.Slice(), theirPub.Slice())
	var out [32]byte
	if err != nil {
		// theirPub may be attacker-controlled and low-order; this is the
		// one recoverable error curve25519.X25519 can return.
		return out, err
	}
	copy(out[:], secret)
	securemem.Scrub(secret)
	return out, nil
}

// clampX25519 applies the RFC 7748 clamping rule to a private scalar.
func clampX25519(k *types.X25519Private) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
