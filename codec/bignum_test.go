package codec

import (
	"math/big"
	"testing"
)

func TestZEncodingMinus300(t *testing.T) {
	buf, err := ToBytes(Z(), big.NewInt(-300))
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	want := []byte{0xEC, 0x04}
	if len(buf) != len(want) || buf[0] != want[0] || buf[1] != want[1] {
		t.Fatalf("got % x, want % x", buf, want)
	}
}

func TestZRoundtrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, 64, -64, -65, 300, -300, 1 << 20, -(1 << 40)}
	for _, v := range values {
		in := big.NewInt(v)
		buf, err := ToBytes(Z(), in)
		if err != nil {
			t.Fatalf("ToBytes(%d): %v", v, err)
		}
		out, err := OfBytes(Z(), buf)
		if err != nil {
			t.Fatalf("OfBytes(%d): %v", v, err)
		}
		if out.Cmp(in) != 0 {
			t.Errorf("got %s, want %s", out.String(), in.String())
		}
	}
}

func TestNRejectsNegative(t *testing.T) {
	if _, err := ToBytes(N(), big.NewInt(-1)); err == nil {
		t.Error("expected write error for negative N")
	}
}

func TestZKindIsDynamic(t *testing.T) {
	if Z().Kind().Tag != KindDynamic {
		t.Errorf("expected Z to be Dynamic, got %v", Z().Kind())
	}
}

func TestZTrailingZeroRejected(t *testing.T) {
	// Two continuation bytes where the last carries no information: a
	// non-canonical encoding of the same magnitude as a single byte.
	buf := []byte{0xC0, 0x00}
	if _, err := OfBytes(Z(), buf); err == nil {
		t.Error("expected ErrTrailingZero")
	}
}
