package crypto

import "encoding/base64"

// olmEncoding is the canonical Olm Base64 form: the standard RFC 4648
// alphabet with no '=' padding. Public keys produced with it must be
// byte-identical to those produced by other Matrix implementations.
var olmEncoding = base64.RawStdEncoding

// EncodedLength returns the length in bytes of the unpadded Base64
// encoding of an input of n bytes: ⌈4n/3⌉.
func EncodedLength(n int) int {
	return olmEncoding.EncodedLen(n)
}

// DecodedLength returns the length in bytes that Decode would produce for
// an encoded input of n bytes: ⌊3n/4⌋. It does not itself validate n; call
// Decode to find out whether n is actually a valid encoded length.
func DecodedLength(n int) int {
	return (3 * n) / 4
}

// Encode fills dst with the canonical unpadded Base64 encoding of src.
// len(dst) must be at least EncodedLength(len(src)).
func Encode(dst, src []byte) {
	olmEncoding.Encode(dst, src)
}

// EncodeToString returns the canonical unpadded Base64 encoding of src.
func EncodeToString(src []byte) string {
	return olmEncoding.EncodeToString(src)
}

// Decode decodes src into dst and returns the number of bytes written.
// len(dst) must be at least DecodedLength(len(src)). Decode accepts only
// the canonical unpadded form: input lengths congruent to 0, 2 or 3 mod 4
// are valid, a length congruent to 1 mod 4 is always malformed, and any
// byte outside the standard alphabet causes ErrBase64Malformed. The
// decoder is variable-time: Base64 is applied only to public values
// (public keys and signatures), never to secrets.
func Decode(dst, src []byte) (int, error) {
	if len(src)%4 == 1 {
		return 0, ErrBase64Malformed
	}
	n, err := olmEncoding.Decode(dst, src)
	if err != nil {
		return 0, ErrBase64Malformed
	}
	return n, nil
}

// DecodeString decodes the canonical unpadded Base64 string s.
func DecodeString(s string) ([]byte, error) {
	if len(s)%4 == 1 {
		return nil, ErrBase64Malformed
	}
	out, err := olmEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrBase64Malformed
	}
	return out, nil
}
