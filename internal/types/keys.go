// Package types defines the fixed-size byte entities shared across the
// primitive layer: Curve25519 and Ed25519 key material, AES-256 keys and
// IVs, and hash/MAC outputs. They are plain arrays so that callers and
// implementations alike avoid accidental heap growth proportional to a
// count of keys.
package types

// X25519PrivateSize is the size in bytes of a Curve25519 private scalar.
const X25519PrivateSize = 32

// X25519PublicSize is the size in bytes of a Curve25519 public key.
const X25519PublicSize = 32

// Ed25519PrivateSize is the size in bytes of an expanded Ed25519 signing key.
const Ed25519PrivateSize = 64

// Ed25519PublicSize is the size in bytes of an Ed25519 verification key.
const Ed25519PublicSize = 32

// Ed25519SignatureSize is the size in bytes of a detached Ed25519 signature.
const Ed25519SignatureSize = 64

// AESKeySize is the size in bytes of an AES-256 key.
const AESKeySize = 32

// AESIVSize is the size in bytes of an AES-CBC initialization vector.
const AESIVSize = 16

// DigestSize is the size in bytes of a SHA-256 digest or HMAC-SHA-256 tag.
const DigestSize = 32

// X25519Private is a Curve25519 scalar used for X25519 key agreement.
// Callers supply 32 bytes of uniformly random entropy; clamping is applied
// by the key-generation routine, not by this type.
type X25519Private [X25519PrivateSize]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// X25519Public is a Curve25519 u-coordinate, equal to scalar·basepoint(9).
type X25519Public [X25519PublicSize]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// Ed25519Private is the 64-byte expanded Ed25519 signing key derived
// deterministically from a 32-byte seed (RFC 8032 §5.1.5).
type Ed25519Private [Ed25519PrivateSize]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 verification key.
type Ed25519Public [Ed25519PublicSize]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Signature is a detached, non-malleable Ed25519 signature.
type Ed25519Signature [Ed25519SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Ed25519Signature) Slice() []byte { return s[:] }

// AESKey is a symmetric AES-256 key. Secret.
type AESKey [AESKeySize]byte

// Slice returns the key as a []byte.
func (k AESKey) Slice() []byte { return k[:] }

// AESIV is an AES-CBC initialization vector. Must be unique per key.
type AESIV [AESIVSize]byte

// Slice returns the IV as a []byte.
func (iv AESIV) Slice() []byte { return iv[:] }

// Digest is a SHA-256 hash output or HMAC-SHA-256 tag.
type Digest [DigestSize]byte

// Slice returns the digest as a []byte.
func (d Digest) Slice() []byte { return d[:] }
