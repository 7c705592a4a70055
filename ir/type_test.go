package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range append(Types(), AliasType) {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s came back as %s", typ, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Object")); err == nil {
		t.Error("expected an error")
	}
	if s := Type(42).String(); s != "<unknown type>" {
		t.Errorf("got %q", s)
	}
}
