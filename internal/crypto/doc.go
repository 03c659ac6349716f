// Package crypto is the Olm/Megolm primitive layer: Curve25519 key
// agreement, Ed25519 signing and verification, AES-256-CBC with PKCS#7
// padding, SHA-256, HMAC-SHA-256, HKDF-SHA-256, and the canonical unpadded
// Base64 codec used for Matrix public keys and signatures.
//
// Contents
//
//   - Base64: EncodedLength, DecodedLength, Encode, Decode
//   - Hash & MAC: SHA256, HMACSHA256, HKDFExtract, HKDFExpand, HKDF
//   - Symmetric cipher: CBCCiphertextLength, EncryptCBC, DecryptCBC
//   - Asymmetric: GenerateX25519, SharedSecretX25519, Fingerprint,
//     GenerateEd25519, SignEd25519, VerifyEd25519
//
// # Notes
//
// The package is stateless and re-entrant: every function is safe to call
// concurrently provided no two calls alias their input or output buffers.
// Nothing here performs I/O, retains state between calls, or logs; errors
// are returned, never logged (higher layers choose how to report them).
//
// Functions that allocate scratch space holding secret bytes scrub it with
// securemem.Scrub on every exit path, including error returns.
package crypto
