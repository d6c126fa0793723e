package cursor

import "testing"

func TestPutGetRoundtrip(t *testing.T) {
	buf := New(make([]byte, 32))

	buf.PutUint8(0, 0xAB)
	if got := buf.Uint8(0); got != 0xAB {
		t.Errorf("Uint8: got %x, want ab", got)
	}

	buf.PutInt16(1, -1234)
	if got := buf.Int16(1); got != -1234 {
		t.Errorf("Int16: got %d, want -1234", got)
	}

	buf.PutUint32(4, 0xDEADBEEF)
	if got := buf.Uint32(4); got != 0xDEADBEEF {
		t.Errorf("Uint32: got %x, want deadbeef", got)
	}

	buf.PutFloat64(8, 3.5)
	if got := buf.Float64(8); got != 3.5 {
		t.Errorf("Float64: got %v, want 3.5", got)
	}
}

func TestInBounds(t *testing.T) {
	buf := New(make([]byte, 4))
	if !buf.InBounds(0, 4) {
		t.Error("expected [0,4) in bounds")
	}
	if buf.InBounds(2, 4) {
		t.Error("expected [2,6) out of bounds")
	}
	if buf.InBounds(-1, 1) {
		t.Error("expected negative offset out of bounds")
	}
}

func TestCopyAndSlice(t *testing.T) {
	buf := New(make([]byte, 8))
	buf.Copy(2, []byte{1, 2, 3})
	got := buf.Slice(2, 5)
	want := []byte{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
