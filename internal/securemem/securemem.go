// Package securemem provides the two low-level contracts every other
// package in this module relies on when it touches key material: scrubbing
// a buffer on every exit path, and comparing secrets in constant time.
package securemem

import (
	"crypto/subtle"
	"runtime"
)

// Scrub overwrites buf with zeros so that the write cannot be removed as a
// dead store by the compiler. Call it on any buffer that held key material,
// intermediate MAC state, padding scratch, or Curve25519/Ed25519 scalars,
// on every exit path including error returns.
//
//go:noinline
func Scrub(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// ConstantTimeEqual reports whether the first n bytes of a and b are equal,
// in time depending only on n. Both slices must have length >= n.
func ConstantTimeEqual(a, b []byte, n int) bool {
	if len(a) < n || len(b) < n {
		return false
	}
	return subtle.ConstantTimeCompare(a[:n], b[:n]) == 1
}
