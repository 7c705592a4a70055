package eval

import "errors"

var (
	ErrEval         = errors.New("eval error")
	ErrSymbolExists = errors.New("symbol exists")
	ErrReserved     = errors.New("reserved variable")
)
