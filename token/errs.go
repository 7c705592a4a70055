package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
)

type ScanErr struct {
	Err error
	Pos Pos
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func NewScanErr(e error, p *Pos) *ScanErr {
	return &ScanErr{Err: e, Pos: *p}
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnterminatedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("%w %s", ErrUnterminated, what), p)
}
