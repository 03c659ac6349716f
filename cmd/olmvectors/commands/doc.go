// Package commands defines the olmvectors CLI: a developer tool that
// exercises the primitive layer in internal/crypto without implementing
// any session, pickling, or transport semantics.
//
// Commands
//
//   - selfcheck      Run the concrete RFC/FIPS test vectors
//   - genkey         Generate an X25519 or Ed25519 key pair
//   - b64 encode     Encode stdin to canonical unpadded Base64
//   - b64 decode     Decode canonical unpadded Base64 from stdin
package commands
