package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrTargetNil  = errors.New("decode target is nil")
	ErrNonPointer = errors.New("decode target is not a pointer")
	ErrDecode     = errors.New("decode error")
	ErrEncode     = errors.New("encode error")
)

func unsupported(what string) error {
	return fmt.Errorf("%w: unsupported %s", ErrEncode, what)
}
