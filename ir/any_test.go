package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToFromAny(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: StringSign("b"), Val: FromSlice([]*Node{FromInt(1), FromFloat(1.5), Null(), FromBool(true)})},
		{Key: IntSign(7), Val: FromString("seven")},
	})
	got := ToAny(doc)
	want := map[string]any{
		"b": []any{int64(1), 1.5, nil, true},
		"7": "seven",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToAny (-want +got):\n%s", diff)
	}
	back, err := FromAny(got)
	if err != nil {
		t.Fatal(err)
	}
	// keys come back sorted and as strings
	if back.Fields[0].String != "7" || back.Fields[0].Type != StringType {
		t.Errorf("unexpected first key %v", back.Fields[0])
	}
	if !Equal(back.Lookup(StringSign("b")), doc.Lookup(StringSign("b"))) {
		t.Errorf("sequence did not round trip")
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected error for struct")
	}
}
