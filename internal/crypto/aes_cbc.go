package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/an-ttt/matrix-org-olm/internal/securemem"
	"github.com/an-ttt/matrix-org-olm/internal/types"
)

const aesBlockLength = 16

// CBCCiphertextLength returns the ciphertext length for a plaintext of n
// bytes: a full block of PKCS#7 padding is always appended, even when n is
// already block-aligned, so the result is n + 16 - (n mod 16).
func CBCCiphertextLength(n int) int {
	return n + aesBlockLength - n%aesBlockLength
}

// EncryptCBC encrypts plaintext with AES-256 in CBC mode under key and iv,
// applying PKCS#7 padding. The output is always CBCCiphertextLength(len(plaintext))
// bytes. Authentication is intentionally not provided: callers pair this
// with an HMAC over (iv || ciphertext) and verify it in constant time
// before ever calling DecryptCBC.
func EncryptCBC(key types.AESKey, iv types.AESIV, plaintext []byte) []byte {
	return defaultBackend.EncryptCBC(key, iv, plaintext)
}

// DecryptCBC decrypts ciphertext with AES-256 in CBC mode under key and iv
// and strips PKCS#7 padding. It returns ErrCiphertextLength if len(ciphertext)
// is not a positive multiple of 16, and ErrPadding if the trailing padding
// byte is zero or greater than 16. Only the trailing length byte is
// validated, not every padding byte; valid padding verifies identically
// either way, and the stricter check buys nothing this layer's callers need.
func DecryptCBC(key types.AESKey, iv types.AESIV, ciphertext []byte) ([]byte, error) {
	return defaultBackend.DecryptCBC(key, iv, ciphertext)
}

func encryptCBC(key types.AESKey, iv types.AESIV, plaintext []byte) []byte {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		// AES-256 keys are always exactly 32 bytes here; a failure means a
		// broken standard library, an unrecoverable invariant violation.
		panic(err)
	}
	defer securemem.Scrub(key[:])

	padded := pkcs7Pad(plaintext, aesBlockLength)
	defer securemem.Scrub(padded)

	out := make([]byte, len(padded))
	chain := iv.Slice()
	mode := cipher.NewCBCEncrypter(block, chain)
	mode.CryptBlocks(out, padded)
	return out
}

func decryptCBC(key types.AESKey, iv types.AESIV, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aesBlockLength != 0 {
		return nil, ErrCiphertextLength
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	defer securemem.Scrub(key[:])

	out := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv.Slice())
	mode.CryptBlocks(out, ciphertext)

	padding := int(out[len(out)-1])
	if padding == 0 || padding > aesBlockLength {
		securemem.Scrub(out)
		return nil, ErrPadding
	}
	plain := out[:len(out)-padding]
	result := make([]byte, len(plain))
	copy(result, plain)
	securemem.Scrub(out)
	return result, nil
}

// pkcs7Pad appends a full padding block if input is already block-aligned.
func pkcs7Pad(input []byte, blockSize int) []byte {
	padLen := blockSize - len(input)%blockSize
	out := make([]byte, len(input)+padLen)
	copy(out, input)
	for i := len(input); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}
