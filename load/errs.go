package load

import (
	"errors"
	"fmt"
)

var (
	ErrLoadFile    = errors.New("load file error")
	ErrLoadWarning = errors.New("load file warning")
)

// Warning is a recoverable problem met while loading Path.
type Warning struct {
	Path string
	Msg  string
	Err  error
}

func (w Warning) Error() string {
	s := fmt.Sprintf("%s: %s: %s", ErrLoadWarning, w.Path, w.Msg)
	if w.Err != nil {
		s += ": " + w.Err.Error()
	}
	return s
}

func (w Warning) Unwrap() []error {
	if w.Err == nil {
		return []error{ErrLoadWarning}
	}
	return []error{ErrLoadWarning, w.Err}
}
