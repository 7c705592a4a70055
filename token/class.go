package token

// Class is the lexical class of a single character.
type Class int

const (
	CLiteral Class = iota
	CWhite
	CQuote
	CEscape
	CComment
	CSeparator
	CDefiner
	COpen
	CClose
	CAlias
	CCopy
)

func (c Class) String() string {
	return map[Class]string{
		CLiteral:   "CLiteral",
		CWhite:     "CWhite",
		CQuote:     "CQuote",
		CEscape:    "CEscape",
		CComment:   "CComment",
		CSeparator: "CSeparator",
		CDefiner:   "CDefiner",
		COpen:      "COpen",
		CClose:     "CClose",
		CAlias:     "CAlias",
		CCopy:      "CCopy",
	}[c]
}

func Classify(r rune) Class {
	switch r {
	case '\t', '\n', '\r', '\v', '\f', ' ', '\u00a0':
		return CWhite
	case '\'', '"':
		return CQuote
	case '\\':
		return CEscape
	case '/':
		return CComment
	case ',', ';', '|':
		return CSeparator
	case ':':
		return CDefiner
	case '{', '[':
		return COpen
	case '}', ']':
		return CClose
	case '(':
		return CAlias
	case '@':
		return CCopy
	}
	return CLiteral
}

// Closer returns the bracket closing open.
func Closer(open rune) rune {
	if open == '[' {
		return ']'
	}
	return '}'
}
