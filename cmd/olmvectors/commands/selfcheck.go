package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/an-ttt/matrix-org-olm/internal/crypto"
	"github.com/an-ttt/matrix-org-olm/internal/types"
)

type vector struct {
	name string
	run  func() error
}

func selfCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Run the concrete RFC/FIPS test vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := 0
			for _, v := range vectors() {
				if err := v.run(); err != nil {
					fmt.Printf("FAIL %-28s %v\n", v.name, err)
					failures++
					continue
				}
				fmt.Printf("ok   %-28s\n", v.name)
			}
			if failures > 0 {
				return fmt.Errorf("%d vector(s) failed", failures)
			}
			return nil
		},
	}
}

func vectors() []vector {
	return []vector{
		{"sha256-empty", checkSHA256Empty},
		{"hmac-rfc4231-case1", checkHMACRFC4231},
		{"hkdf-rfc5869-case1", checkHKDFRFC5869},
		{"x25519-rfc7748", checkX25519RFC7748},
		{"ed25519-rfc8032-test1", checkEd25519RFC8032},
		{"base64-unpadded", checkBase64Unpadded},
		{"aes256-cbc-empty", checkAESCBCEmpty},
	}
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func checkSHA256Empty() error {
	want := decodeHex("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	got := crypto.SHA256(nil)
	return requireEqual(got[:], want)
}

func checkHMACRFC4231() error {
	key := bytes.Repeat([]byte{0x0b}, 20)
	want := decodeHex("b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7")
	got := crypto.HMACSHA256(key, []byte("Hi There"))
	return requireEqual(got[:], want)
}

func checkHKDFRFC5869() error {
	ikm := decodeHex("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt := decodeHex("000102030405060708090a0b0c")
	info := decodeHex("f0f1f2f3f4f5f6f7f8f9")
	want := decodeHex("3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")
	got := crypto.HKDF(salt, ikm, info, 42)
	return requireEqual(got, want)
}

func checkX25519RFC7748() error {
	scalar := decodeHex("a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	u := decodeHex("e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")
	want := decodeHex("c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")

	var priv, pub [32]byte
	copy(priv[:], scalar)
	copy(pub[:], u)
	got, err := crypto.SharedSecretX25519(priv, pub)
	if err != nil {
		return err
	}
	return requireEqual(got[:], want)
}

func checkEd25519RFC8032() error {
	seedBytes := decodeHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	wantPub := decodeHex("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	wantSig := decodeHex("e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b")

	var seed [32]byte
	copy(seed[:], seedBytes)
	priv, pub := crypto.GenerateEd25519(seed)
	if err := requireEqual(pub[:], wantPub); err != nil {
		return err
	}
	sig := crypto.SignEd25519(priv, pub, nil)
	return requireEqual(sig[:], wantSig)
}

func checkBase64Unpadded() error {
	if got := crypto.EncodeToString([]byte{0x00, 0x01, 0x02}); got != "AAEC" {
		return fmt.Errorf("Encode = %q, want AAEC", got)
	}
	got, err := crypto.DecodeString("AAEC")
	if err != nil {
		return err
	}
	if err := requireEqual(got, []byte{0x00, 0x01, 0x02}); err != nil {
		return err
	}
	if _, err := crypto.DecodeString("A"); err == nil {
		return fmt.Errorf("Decode(\"A\") should have failed")
	}
	return nil
}

func checkAESCBCEmpty() error {
	var key types.AESKey
	var iv types.AESIV
	ct := crypto.EncryptCBC(key, iv, nil)
	if len(ct) != 16 {
		return fmt.Errorf("ciphertext length = %d, want 16", len(ct))
	}
	pt, err := crypto.DecryptCBC(key, iv, ct)
	if err != nil {
		return err
	}
	if len(pt) != 0 {
		return fmt.Errorf("plaintext length = %d, want 0", len(pt))
	}
	return nil
}

func requireEqual(got, want []byte) error {
	if !bytes.Equal(got, want) {
		return fmt.Errorf("got %x, want %x", got, want)
	}
	return nil
}
