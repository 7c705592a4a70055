package ir

import (
	"slices"
	"strconv"
	"strings"
)

// Path is a cursor of Signs from a root container. The empty Path
// addresses the root itself.
type Path struct {
	signs []Sign
}

func NewPath(signs ...Sign) *Path {
	return &Path{signs: slices.Clone(signs)}
}

// ParsePath parses dot separated names, each an integer Sign when it
// parses as one. The empty string is the root.
func ParsePath(s string) *Path {
	p := &Path{}
	if s == "" {
		return p
	}
	for _, part := range strings.Split(s, ".") {
		p.Append(NameSign(part))
	}
	return p
}

func (p *Path) Append(s Sign) {
	p.signs = append(p.signs, s)
}

func (p *Path) Pop() (Sign, error) {
	n := len(p.signs)
	if n == 0 {
		return Sign{}, ErrEmptyPath
	}
	s := p.signs[n-1]
	p.signs = p.signs[:n-1]
	return s, nil
}

func (p *Path) Top() (Sign, bool) {
	n := len(p.signs)
	if n == 0 {
		return Sign{}, false
	}
	return p.signs[n-1], true
}

func (p *Path) Len() int {
	return len(p.signs)
}

func (p *Path) IsEmpty() bool {
	return len(p.signs) == 0
}

func (p *Path) Clone() *Path {
	return &Path{signs: slices.Clone(p.signs)}
}

func (p *Path) Equal(o *Path) bool {
	return slices.Equal(p.signs, o.signs)
}

// HasPrefix reports whether o is a prefix of p.
func (p *Path) HasPrefix(o *Path) bool {
	if len(o.signs) > len(p.signs) {
		return false
	}
	return slices.Equal(p.signs[:len(o.signs)], o.signs)
}

func (p *Path) String() string {
	parts := make([]string, len(p.signs))
	for i, s := range p.signs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Resolve walks p from root. In a sequence each Sign must be an index in
// range; in a mapping an integer Sign that is absent is retried as its
// decimal string.
func (p *Path) Resolve(root *Node) (*Node, error) {
	cur := root
	for i, s := range p.signs {
		switch cur.Type {
		case SequenceType:
			if !s.IsInt {
				return nil, &PathError{Path: p, At: i, Err: ErrType}
			}
			if s.Int < 0 || s.Int >= int64(len(cur.Values)) {
				return nil, &PathError{Path: p, At: i, Err: ErrIndex}
			}
			cur = cur.Values[s.Int]
		case MappingType:
			v := cur.Lookup(s)
			if v == nil && s.IsInt {
				v = cur.Lookup(StringSign(strconv.FormatInt(s.Int, 10)))
			}
			if v == nil {
				return nil, &PathError{Path: p, At: i, Err: ErrKey}
			}
			cur = v
		default:
			return nil, &PathError{Path: p, At: i, Err: ErrType}
		}
	}
	return cur, nil
}
