package codec

import "testing"

type consPair struct {
	head int32
	tail []int32
}

func intListDesc(t *testing.T) Desc[[]int32] {
	t.Helper()
	d, err := Mu[[]int32]("intList", func(self Desc[[]int32]) (Desc[[]int32], error) {
		cons, err := Tup(
			func(vs []any) consPair { return consPair{head: vs[0].(int32), tail: vs[1].([]int32)} },
			TupElem(Int32(), func(c consPair) int32 { return c.head }),
			TupElem(self, func(c consPair) []int32 { return c.tail }),
		)
		if err != nil {
			return Desc[[]int32]{}, err
		}
		return Union[[]int32](1,
			TextOnlyCase(0,
				func(l []int32) bool { return len(l) == 0 },
				func() []int32 { return nil },
			),
			NewCase(1, cons,
				func(l []int32) (consPair, bool) {
					if len(l) == 0 {
						return consPair{}, false
					}
					return consPair{head: l[0], tail: l[1:]}, true
				},
				func(c consPair) []int32 {
					return append([]int32{c.head}, c.tail...)
				},
			),
		)
	})
	if err != nil {
		t.Fatalf("Mu: %v", err)
	}
	return d
}

func TestMuRecursiveListRoundtrip(t *testing.T) {
	d := intListDesc(t)
	if d.Kind().Tag != KindDynamic {
		t.Fatalf("expected recursive list to classify Dynamic, got %v", d.Kind())
	}

	in := []int32{1, 2, 3, 4, 5}
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

func TestMuEmptyList(t *testing.T) {
	d := intListDesc(t)
	buf, err := ToBytes(d, []int32(nil))
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if len(buf) != 1 {
		t.Fatalf("expected single tag byte for nil terminator, got % x", buf)
	}
	out, err := OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty list, got %v", out)
	}
}

func TestDelayedMemoizesBuild(t *testing.T) {
	calls := 0
	d := Delayed(func() Desc[uint8] {
		calls++
		return Uint8()
	})
	if _, err := ToBytes(d, uint8(1)); err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if _, err := ToBytes(d, uint8(2)); err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected build to run once, ran %d times", calls)
	}
}

func TestConvAdaptsPrimitive(t *testing.T) {
	type userID uint16
	d := Conv[userID, uint16](Uint16(),
		func(u userID) (uint16, error) { return uint16(u), nil },
		func(v uint16) (userID, error) { return userID(v), nil },
	)
	out := roundtrip(t, d, userID(42))
	if out != 42 {
		t.Errorf("got %d, want 42", out)
	}
}

func TestPaddedWidensFixed(t *testing.T) {
	d, err := Padded(Uint16(), 4)
	if err != nil {
		t.Fatalf("Padded: %v", err)
	}
	buf, err := ToBytes(d, uint16(7))
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if len(buf) != 4 {
		t.Fatalf("expected 4 padded bytes, got %d", len(buf))
	}
	out := roundtrip(t, d, uint16(7))
	if out != 7 {
		t.Errorf("got %d, want 7", out)
	}
}

func TestCheckSizeRejectsOversized(t *testing.T) {
	elem, _ := String(Fixed(4))
	seq, _ := Array(elem)
	sized := DynamicSize(WidthUint16, seq)
	d := CheckSize(6, sized)
	if _, err := ToBytes(d, []string{"abcd", "efgh"}); err == nil {
		t.Error("expected ErrSizeLimitExceededWrite")
	}
	if _, err := ToBytes(d, []string{"abcd"}); err != nil {
		t.Errorf("expected single element to fit under the limit: %v", err)
	}
}
