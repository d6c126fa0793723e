package codec

import "testing"

func TestArrayRoundtrip(t *testing.T) {
	elem := Uint8()
	d, err := Array(elem)
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	in := []uint8{1, 2, 3, 4, 5}
	buf, err := ToBytes(d, in)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	out, err := OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %v, want %v", out, in)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestArrayRejectsVariableElement(t *testing.T) {
	elem, _ := String(Variable)
	if _, err := Array(elem); err == nil {
		t.Error("expected construction error: Variable-kind sequence element")
	}
}

func TestArrayMaxLenEnforced(t *testing.T) {
	d, err := ArrayMaxLen(Uint8(), 2)
	if err != nil {
		t.Fatalf("ArrayMaxLen: %v", err)
	}
	if _, err := ToBytes(d, []uint8{1, 2, 3}); err == nil {
		t.Error("expected ErrArrayTooLongWrite")
	}
}

func TestDynamicSizeWrapsVariableSequence(t *testing.T) {
	elem, _ := String(Fixed(2))
	seq, err := Array(elem)
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	d := DynamicSize(WidthUint16, seq)
	if d.Kind().Tag != KindDynamic {
		t.Fatalf("expected Dynamic, got %v", d.Kind())
	}
	in := []string{"ab", "cd", "ef"}
	buf, err := ToBytes(d, in)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	out, err := OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}
	if len(out) != 3 || out[0] != "ab" || out[2] != "ef" {
		t.Errorf("got %v", out)
	}
}

func TestEnumRoundtrip(t *testing.T) {
	d, err := Enum("red", "green", "blue")
	if err != nil {
		t.Fatalf("Enum: %v", err)
	}
	buf, err := ToBytes(d, "green")
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if len(buf) != 1 || buf[0] != 1 {
		t.Fatalf("expected single byte index 1, got % x", buf)
	}
	out, err := OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}
	if out != "green" {
		t.Errorf("got %q, want green", out)
	}
}

func TestEnumTooFewCases(t *testing.T) {
	if _, err := Enum("only-one"); err == nil {
		t.Error("expected construction error for single-case enum")
	}
}

func TestEnumWidthCrossesByteBoundary(t *testing.T) {
	values := make([]int, 300)
	for i := range values {
		values[i] = i
	}
	d, err := Enum(values...)
	if err != nil {
		t.Fatalf("Enum: %v", err)
	}
	if n, ok := d.FixedLength(); !ok || n != 2 {
		t.Errorf("expected 2-byte width for 300 cases, got %v", d.Kind())
	}
}
