package token

import (
	"errors"
	"testing"
)

type scanStep struct {
	kind   Kind
	lit    string
	quoted bool
	hasLit bool
}

func scanAll(t *testing.T, in string) []scanStep {
	t.Helper()
	s := NewScanner([]byte(in))
	var res []scanStep
	for {
		ev, err := s.Next()
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		l := s.Literal()
		res = append(res, scanStep{kind: ev.Kind, lit: l.Text, quoted: l.Quoted, hasLit: s.HasLiteral()})
		s.Reset()
		if ev.Kind == KEOF {
			return res
		}
	}
}

func TestScannerLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want []scanStep
	}{
		{
			in: "{a:1}",
			want: []scanStep{
				{kind: KOpen},
				{kind: KDefiner, lit: "a", hasLit: true},
				{kind: KClose, lit: "1", hasLit: true},
				{kind: KEOF},
			},
		},
		{
			in: "  hello \t\n  world  ,",
			want: []scanStep{
				{kind: KSeparator, lit: "hello world", hasLit: true},
				{kind: KEOF},
			},
		},
		{
			in: `"a  b" c;`,
			want: []scanStep{
				{kind: KSeparator, lit: "a  b c", quoted: true, hasLit: true},
				{kind: KEOF},
			},
		},
		{
			in: `x "y"|`,
			want: []scanStep{
				{kind: KSeparator, lit: "xy", quoted: true, hasLit: true},
				{kind: KEOF},
			},
		},
		{
			in: `a\,b /skip, this/ c:`,
			want: []scanStep{
				{kind: KDefiner, lit: "a,b c", hasLit: true},
				{kind: KEOF},
			},
		},
		{
			in: `a \ b,`,
			want: []scanStep{
				{kind: KSeparator, lit: "a  b", hasLit: true},
				{kind: KEOF},
			},
		},
		{
			in: `'it\'s /not a comment/'(@`,
			want: []scanStep{
				{kind: KAlias, lit: "it's /not a comment/", quoted: true, hasLit: true},
				{kind: KCopy},
				{kind: KEOF},
			},
		},
		{
			in: `"",`,
			want: []scanStep{
				{kind: KSeparator, quoted: true, hasLit: true},
				{kind: KEOF},
			},
		},
		{
			in: "a  b]",
			want: []scanStep{
				{kind: KClose, lit: "a b", hasLit: true},
				{kind: KEOF},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := scanAll(t, tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d: got %+v want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{in: `"abc`, err: ErrUnterminated},
		{in: `/ never closed`, err: ErrUnterminated},
		{in: `abc\`, err: ErrBadEscape},
		{in: "a\xffb", err: ErrBadUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := NewScanner([]byte(tt.in))
			var err error
			for err == nil {
				var ev Event
				ev, err = s.Next()
				if err == nil && ev.Kind == KEOF {
					t.Fatal("expected an error")
				}
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v got %v", tt.err, err)
			}
			var se *ScanErr
			if !errors.As(err, &se) {
				t.Errorf("expected *ScanErr, got %T", err)
			}
		})
	}
}

func TestPosDoc(t *testing.T) {
	d := NewPosDoc([]byte("ab\ncd\n\nef"))
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
		{9, 3, 2},
	}
	for _, tt := range tests {
		l, c := d.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", tt.off, l, c, tt.line, tt.col)
		}
		if got := d.Offset(l, c); got != tt.off {
			t.Errorf("Offset(%d, %d) = %d, want %d", l, c, got, tt.off)
		}
	}
}

func TestSpecial(t *testing.T) {
	for _, name := range SpecialNames() {
		if _, ok := LookupSpecial(name); !ok {
			t.Errorf("%s not found", name)
		}
	}
	if _, ok := LookupSpecial("?True"); ok {
		t.Error("special tokens are case sensitive")
	}
	tests := map[string]string{
		"?inh":  "?inherit",
		"?ture": "?true",
		"?nul":  "?null",
	}
	for in, want := range tests {
		if got := Suggest(in); got != want {
			t.Errorf("Suggest(%q) = %q want %q", in, got, want)
		}
	}
	if got := Suggest("?zzzzzzzzzz"); got != "" {
		t.Errorf("unexpected suggestion %q", got)
	}
}
