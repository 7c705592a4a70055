package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Kind is the kind of a structural Event.
type Kind int

const (
	KEOF Kind = iota
	KOpen
	KClose
	KSeparator
	KDefiner
	KAlias
	KCopy
)

func (k Kind) String() string {
	return map[Kind]string{
		KEOF:       "KEOF",
		KOpen:      "KOpen",
		KClose:     "KClose",
		KSeparator: "KSeparator",
		KDefiner:   "KDefiner",
		KAlias:     "KAlias",
		KCopy:      "KCopy",
	}[k]
}

type Event struct {
	Kind Kind
	Rune rune
	Pos  *Pos
}

func (e Event) String() string {
	if e.Kind == KEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", e.Rune)
}

// Literal is the text accumulated since the last Reset.
type Literal struct {
	Text string
	// Quoted is set when any part of the literal was quoted.
	Quoted bool
	Pos    *Pos
}

type Scanner struct {
	doc *PosDoc
	src []byte
	off int

	buf     []byte
	active  bool
	quoted  bool
	pending bool
	start   int
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{
		doc: NewPosDoc(d),
		src: d,
	}
}

// Offset is the byte offset of the next unread character.
func (s *Scanner) Offset() int {
	return s.off
}

// ReadRune reads the next character without interpreting it.
func (s *Scanner) ReadRune() (rune, *Pos, error) {
	if s.off >= len(s.src) {
		return 0, s.doc.Pos(s.off), io.EOF
	}
	r, n := utf8.DecodeRune(s.src[s.off:])
	pos := s.doc.Pos(s.off)
	if r == utf8.RuneError && n == 1 {
		return 0, pos, NewScanErr(ErrBadUTF8, pos)
	}
	s.off += n
	return r, pos, nil
}

// Next consumes literal material up to the next structural character and
// returns it. At the end of input it returns a KEOF event.
func (s *Scanner) Next() (Event, error) {
	for {
		r, pos, err := s.ReadRune()
		if err == io.EOF {
			return Event{Kind: KEOF, Pos: pos}, nil
		}
		if err != nil {
			return Event{}, err
		}
		switch Classify(r) {
		case CComment:
			if err := s.comment(pos); err != nil {
				return Event{}, err
			}
		case CEscape:
			e, _, err := s.ReadRune()
			if err == io.EOF {
				return Event{}, NewScanErr(fmt.Errorf("%w: escape at end of input", ErrBadEscape), pos)
			}
			if err != nil {
				return Event{}, err
			}
			s.mark(pos.I)
			s.commitPending()
			s.buf = utf8.AppendRune(s.buf, e)
		case CQuote:
			if err := s.readQuoted(r, pos); err != nil {
				return Event{}, err
			}
		case CWhite:
			if s.active {
				s.pending = true
			}
		case CLiteral:
			s.mark(pos.I)
			s.commitPending()
			s.buf = utf8.AppendRune(s.buf, r)
		case CSeparator:
			return Event{Kind: KSeparator, Rune: r, Pos: pos}, nil
		case CDefiner:
			return Event{Kind: KDefiner, Rune: r, Pos: pos}, nil
		case COpen:
			return Event{Kind: KOpen, Rune: r, Pos: pos}, nil
		case CClose:
			return Event{Kind: KClose, Rune: r, Pos: pos}, nil
		case CAlias:
			return Event{Kind: KAlias, Rune: r, Pos: pos}, nil
		case CCopy:
			return Event{Kind: KCopy, Rune: r, Pos: pos}, nil
		}
	}
}

func (s *Scanner) comment(start *Pos) error {
	for {
		r, _, err := s.ReadRune()
		if err == io.EOF {
			return UnterminatedErr("comment", start)
		}
		if err != nil {
			return err
		}
		if r == '/' {
			return nil
		}
	}
}

func (s *Scanner) readQuoted(q rune, start *Pos) error {
	s.mark(start.I)
	s.quoted = true
	s.pending = false
	for {
		r, pos, err := s.ReadRune()
		if err == io.EOF {
			return UnterminatedErr("string", start)
		}
		if err != nil {
			return err
		}
		switch {
		case r == q:
			return nil
		case r == '\\':
			e, _, err := s.ReadRune()
			if err == io.EOF {
				return NewScanErr(fmt.Errorf("%w: escape at end of input", ErrBadEscape), pos)
			}
			if err != nil {
				return err
			}
			s.buf = utf8.AppendRune(s.buf, e)
		default:
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}
}

func (s *Scanner) mark(off int) {
	if !s.active {
		s.active = true
		s.start = off
	}
}

func (s *Scanner) commitPending() {
	if s.pending {
		s.buf = append(s.buf, ' ')
		s.pending = false
	}
}

func (s *Scanner) HasLiteral() bool {
	return s.active
}

func (s *Scanner) Literal() Literal {
	return Literal{
		Text:   string(s.buf),
		Quoted: s.quoted,
		Pos:    s.doc.Pos(s.start),
	}
}

// AppendLiteral extends the literal with text produced at pos. A pending
// space is dropped.
func (s *Scanner) AppendLiteral(text string, pos *Pos) {
	s.mark(pos.I)
	s.pending = false
	s.buf = append(s.buf, text...)
}

// Reset discards the current literal.
func (s *Scanner) Reset() {
	s.buf = s.buf[:0]
	s.active = false
	s.quoted = false
	s.pending = false
}
