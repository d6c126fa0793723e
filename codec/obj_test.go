package codec

import "testing"

type pair struct {
	code    uint16
	message string
}

func pairDesc(t *testing.T) Desc[pair] {
	t.Helper()
	msg, err := String(Variable)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	d, err := Obj(
		func(m map[string]any) pair {
			p := pair{}
			if v, ok := m["code"]; ok {
				p.code = v.(uint16)
			}
			if v, ok := m["message"]; ok {
				p.message = v.(string)
			}
			return p
		},
		Req("code", Uint16(), func(p pair) uint16 { return p.code }),
		Req("message", msg, func(p pair) string { return p.message }),
	)
	if err != nil {
		t.Fatalf("Obj: %v", err)
	}
	return d
}

func TestObj2Roundtrip(t *testing.T) {
	d := pairDesc(t)
	in := pair{code: 404, message: "not found"}
	buf, err := ToBytes(d, in)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	out, err := OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestObjKindIsVariableWithTrailingVariableField(t *testing.T) {
	d := pairDesc(t)
	if d.Kind().Tag != KindVariable {
		t.Errorf("expected Variable kind, got %v", d.Kind())
	}
}

func TestObjRejectsVariableBeforeDynamic(t *testing.T) {
	msg, _ := String(Variable)
	_, err := Obj(
		func(map[string]any) pair { return pair{} },
		Req("message", msg, func(p pair) string { return p.message }),
		Opt("code", Uint16(), func(p pair) (uint16, bool) { return p.code, true }),
	)
	if err == nil {
		t.Error("expected construction error: Variable field followed by a Dynamic field")
	}
}

type withOptional struct {
	id   int32
	nick string
	has  bool
}

func TestObjOptionalDynamicField(t *testing.T) {
	nick, _ := String(Fixed(4))
	d, err := Obj(
		func(m map[string]any) withOptional {
			w := withOptional{}
			if v, ok := m["id"]; ok {
				w.id = v.(int32)
			}
			if v, ok := m["nick"]; ok {
				w.nick = v.(string)
				w.has = true
			}
			return w
		},
		Req("id", Int32(), func(w withOptional) int32 { return w.id }),
		Opt("nick", nick, func(w withOptional) (string, bool) { return w.nick, w.has }),
	)
	if err != nil {
		t.Fatalf("Obj: %v", err)
	}

	present := withOptional{id: 1, nick: "abcd", has: true}
	buf, err := ToBytes(d, present)
	if err != nil {
		t.Fatalf("ToBytes present: %v", err)
	}
	// 4 bytes id + 1 presence byte + 4 bytes nick
	if len(buf) != 9 {
		t.Fatalf("expected 9 bytes, got %d", len(buf))
	}
	out, err := OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes present: %v", err)
	}
	if out != present {
		t.Errorf("got %+v, want %+v", out, present)
	}

	absent := withOptional{id: 2}
	buf, err = ToBytes(d, absent)
	if err != nil {
		t.Fatalf("ToBytes absent: %v", err)
	}
	if len(buf) != 5 {
		t.Fatalf("expected 5 bytes, got %d", len(buf))
	}
	out, err = OfBytes(d, buf)
	if err != nil {
		t.Fatalf("OfBytes absent: %v", err)
	}
	if out.has {
		t.Errorf("expected absent, got %+v", out)
	}
}
