package parse

import (
	"errors"
	"testing"

	"github.com/scratchtools/go-ws/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`{}`,
		`[]`,
		`{a:1,b:2}`,
		`{a:1;b:2|c:3}`,
		`[1, 2.5, x y, "q", 'r']`,
		`[?true,?false,?null,?empty,?dict,?iter]`,
		`{a:1,b:(a)}`,
		`{a:(b),b:(a)}`,
		`{a:{x:1, y:(.x)}}`,
		`{y:1, z:{w:{y:?inherit}}}`,
		`{a:1, b:x@(a)y}`,
		`/c/ {a:1 /c/} /c/`,
		`{a:x\,y}`,
		`{a:[1}`,
		`{a:1`,
		`[,]`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		for _, opts := range [][]ParseOption{nil, {Permissive()}} {
			doc, err := ParseString(in, opts...)
			if err != nil {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("%q: error %v does not wrap ErrParse", in, err)
				}
				var pe *Error
				if !errors.As(err, &pe) {
					t.Fatalf("%q: error %T is not a *Error", in, err)
				}
				continue
			}
			if !doc.Type.IsContainer() {
				t.Fatalf("%q: root is %s", in, doc.Type)
			}
			err = doc.Visit(func(y *ir.Node, _ bool) (bool, error) {
				if y.Type == ir.AliasType {
					t.Fatalf("%q: placeholder left in document", in)
				}
				return true, nil
			})
			if err != nil {
				t.Fatal(err)
			}
		}
	})
}
