package ir

import (
	"errors"
	"fmt"
)

var (
	ErrPath      = errors.New("unable to resolve path")
	ErrIndex     = fmt.Errorf("%w: index out of range", ErrPath)
	ErrKey       = fmt.Errorf("%w: key not found", ErrPath)
	ErrType      = fmt.Errorf("%w: unexpected type", ErrPath)
	ErrEmptyPath = errors.New("empty path")
)

// PathError reports the Sign at which resolving a Path failed.
type PathError struct {
	Path *Path
	At   int
	Err  error
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) Error() string {
	in := "$"
	if e.At > 0 {
		in = e.Path.signs[e.At-1].String()
	}
	sign := e.Path.signs[e.At]
	switch {
	case errors.Is(e.Err, ErrIndex):
		return fmt.Sprintf("%s %q, index %s out of range in %s", ErrPath, e.Path, sign, in)
	case errors.Is(e.Err, ErrKey):
		return fmt.Sprintf("%s %q, key %q not found in %s", ErrPath, e.Path, sign, in)
	default:
		return fmt.Sprintf("%s %q, unexpected type in %s", ErrPath, e.Path, in)
	}
}

var ErrUnsupported = errors.New("unsupported go value")
