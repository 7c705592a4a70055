package parse

import (
	"github.com/scratchtools/go-ws/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	b := newBuilder(d, pOpts)
	res, err := b.run()
	if err != nil {
		return nil, err
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}
