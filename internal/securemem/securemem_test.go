package securemem_test

import (
	"testing"

	"github.com/an-ttt/matrix-org-olm/internal/securemem"
)

func TestScrubZeroesBuffer(t *testing.T) {
	buf := []byte("super secret key material......")
	securemem.Scrub(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not scrubbed: %x", i, b)
		}
	}
}

func TestScrubEmpty(t *testing.T) {
	// Must not panic on an empty or nil buffer.
	securemem.Scrub(nil)
	securemem.Scrub([]byte{})
}

func TestConstantTimeEqual(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	c := []byte{1, 2, 3, 5}

	if !securemem.ConstantTimeEqual(a, b, 4) {
		t.Fatal("expected equal buffers to compare equal")
	}
	if securemem.ConstantTimeEqual(a, c, 4) {
		t.Fatal("expected differing buffers to compare unequal")
	}
	if securemem.ConstantTimeEqual(a, b, 5) {
		t.Fatal("expected short buffers to fail length check")
	}
}

func TestConstantTimeEqualPrefix(t *testing.T) {
	a := []byte{1, 2, 3, 4, 9, 9}
	b := []byte{1, 2, 3, 4, 0, 0}
	if !securemem.ConstantTimeEqual(a, b, 4) {
		t.Fatal("expected matching prefix to compare equal")
	}
}
