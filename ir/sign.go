package ir

import "strconv"

// Sign is one step of a Path: a sequence index or a mapping key. Mapping
// keys may be integers, which are distinct from their string spelling.
type Sign struct {
	Int   int64
	Str   string
	IsInt bool
}

func IntSign(i int64) Sign {
	return Sign{Int: i, IsInt: true}
}

func StringSign(s string) Sign {
	return Sign{Str: s}
}

// NameSign is an integer Sign when raw parses as a base 10 integer and a
// string Sign otherwise.
func NameSign(raw string) Sign {
	i, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return IntSign(i)
	}
	return StringSign(raw)
}

func (s Sign) String() string {
	if s.IsInt {
		return strconv.FormatInt(s.Int, 10)
	}
	return s.Str
}

// Index returns the integer interpretation of s.
func (s Sign) Index() (int64, bool) {
	if s.IsInt {
		return s.Int, true
	}
	i, err := strconv.ParseInt(s.Str, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Node returns the mapping field node for s.
func (s Sign) Node() *Node {
	if s.IsInt {
		return FromInt(s.Int)
	}
	return FromString(s.Str)
}

// SignOf returns the Sign of a mapping field node.
func SignOf(field *Node) Sign {
	if field.Type == NumberType && field.Int64 != nil {
		return IntSign(*field.Int64)
	}
	return StringSign(field.String)
}
