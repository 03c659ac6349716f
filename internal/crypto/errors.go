package crypto

import "errors"

var (
	// ErrBase64Malformed is returned when Decode is given input whose
	// length is 1 mod 4, or that contains a byte outside the canonical
	// unpadded Base64 alphabet.
	ErrBase64Malformed = errors.New("crypto: malformed base64 input")

	// ErrCiphertextLength is returned by DecryptCBC when the ciphertext
	// length is not a positive multiple of the AES block size.
	ErrCiphertextLength = errors.New("crypto: ciphertext length is not a positive multiple of the block size")

	// ErrPadding is returned by DecryptCBC when the trailing PKCS#7
	// padding byte is zero or exceeds the block size.
	ErrPadding = errors.New("crypto: invalid pkcs#7 padding")
)
