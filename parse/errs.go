package parse

import (
	"errors"
	"fmt"

	"github.com/scratchtools/go-ws/token"
)

var (
	ErrParse     = errors.New("parse error")
	ErrSyntax    = fmt.Errorf("%w: syntax", ErrParse)
	ErrReference = fmt.Errorf("%w: reference", ErrParse)
	ErrUnclosed  = fmt.Errorf("%w: unclosed input", ErrParse)
)

// Error is the error returned by Parse. Kind is one of ErrSyntax,
// ErrReference or ErrUnclosed.
type Error struct {
	Kind error
	Pos  *token.Pos
	Msg  string
	Err  error
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func (e *Error) Error() string {
	s := e.Kind.Error() + ": " + e.Msg
	if e.Pos != nil {
		s += " at " + e.Pos.String()
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Offset is the byte offset of the error, or -1 when unknown.
func (e *Error) Offset() int {
	if e.Pos == nil {
		return -1
	}
	return e.Pos.I
}

func syntaxErr(pos *token.Pos, f string, args ...any) *Error {
	return &Error{Kind: ErrSyntax, Pos: pos, Msg: fmt.Sprintf(f, args...)}
}

func unclosedErr(pos *token.Pos, f string, args ...any) *Error {
	return &Error{Kind: ErrUnclosed, Pos: pos, Msg: fmt.Sprintf(f, args...)}
}

func refErr(pos *token.Pos, err error, f string, args ...any) *Error {
	return &Error{Kind: ErrReference, Pos: pos, Msg: fmt.Sprintf(f, args...), Err: err}
}

func scanErr(err error) *Error {
	var se *token.ScanErr
	if !errors.As(err, &se) {
		return &Error{Kind: ErrSyntax, Msg: "scan", Err: err}
	}
	kind := ErrSyntax
	if errors.Is(err, token.ErrUnterminated) {
		kind = ErrUnclosed
	}
	return &Error{Kind: kind, Pos: &se.Pos, Msg: se.Err.Error()}
}
