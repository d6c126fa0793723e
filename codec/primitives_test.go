package codec

import "testing"

func roundtrip[T any](t *testing.T, d Desc[T], v T) T {
	t.Helper()
	buf, err := ToBytes(d, v)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	got, err := OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}
	return got
}

func TestBoolRoundtrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		if got := roundtrip(t, Bool(), v); got != v {
			t.Errorf("got %v, want %v", got, v)
		}
	}
}

func TestIntRoundtrips(t *testing.T) {
	if got := roundtrip(t, Int8(), int8(-5)); got != -5 {
		t.Errorf("Int8 got %d", got)
	}
	if got := roundtrip(t, Uint8(), uint8(250)); got != 250 {
		t.Errorf("Uint8 got %d", got)
	}
	if got := roundtrip(t, Int16(), int16(-1000)); got != -1000 {
		t.Errorf("Int16 got %d", got)
	}
	if got := roundtrip(t, Uint16(), uint16(60000)); got != 60000 {
		t.Errorf("Uint16 got %d", got)
	}
	if got := roundtrip(t, Int32(), int32(-70000)); got != -70000 {
		t.Errorf("Int32 got %d", got)
	}
	if got := roundtrip(t, Int64(), int64(-1<<40)); got != -1<<40 {
		t.Errorf("Int64 got %d", got)
	}
}

func TestInt31Bounds(t *testing.T) {
	d := Int31()
	if _, err := ToBytes(d, int32(Int31Max+1)); err == nil {
		t.Error("expected write error above Int31Max")
	}
	if _, err := ToBytes(d, int32(Int31Min-1)); err == nil {
		t.Error("expected write error below Int31Min")
	}
	if got := roundtrip(t, d, int32(Int31Max)); got != int32(Int31Max) {
		t.Errorf("got %d, want %d", got, Int31Max)
	}
}

func TestFloatRoundtrip(t *testing.T) {
	if got := roundtrip(t, Float(), 3.14159); got != 3.14159 {
		t.Errorf("got %v", got)
	}
}

func TestNullEmptyZeroSize(t *testing.T) {
	for _, d := range []Desc[Unit]{Null(), Empty()} {
		if n, _ := d.FixedLength(); n != 0 {
			t.Errorf("expected fixed(0), got %d", n)
		}
		buf, err := ToBytes(d, Unit{})
		if err != nil || len(buf) != 0 {
			t.Errorf("expected empty encoding, got %v, %v", buf, err)
		}
	}
}

func TestIgnoreConsumesRemaining(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	consumed, _, err := Read(Ignore(), buf, 0, len(buf))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if consumed != 4 {
		t.Errorf("expected to consume 4 bytes, got %d", consumed)
	}
}

func TestOfBytesExtraBytes(t *testing.T) {
	buf, _ := ToBytes(Uint8(), uint8(1))
	buf = append(buf, 0xFF)
	if _, err := OfBytes(Uint8(), buf); err == nil {
		t.Error("expected ErrExtraBytes")
	}
}
