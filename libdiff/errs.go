package libdiff

import (
	"errors"
	"fmt"

	"github.com/scratchtools/go-ws/ir"
)

var (
	ErrPatch    = errors.New("patch error")
	ErrConflict = fmt.Errorf("%w: unexpected value", ErrPatch)
	ErrBadDiff  = fmt.Errorf("%w: malformed diff", ErrPatch)
)

func conflict(p *ir.Path) error {
	return fmt.Errorf("%w at %q", ErrConflict, p.String())
}

func badDiff(p *ir.Path, format string, args ...any) error {
	return fmt.Errorf("%w at %q: %s", ErrBadDiff, p.String(), fmt.Sprintf(format, args...))
}

func conflictErr(p *ir.Path, err error) error {
	return fmt.Errorf("%w at %q: %w", ErrConflict, p.String(), err)
}
