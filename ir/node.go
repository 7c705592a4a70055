package ir

import "slices"

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64

	// Source is the reference an AliasType node stands for.
	Source *Path
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewMapping() *Node {
	return &Node{Type: MappingType}
}

func NewSequence() *Node {
	return &Node{Type: SequenceType}
}

// NewAlias returns a placeholder standing for the value at src.
func NewAlias(src *Path) *Node {
	return &Node{Type: AliasType, Source: src}
}

type KeyVal struct {
	Key Sign
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewMapping()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	return &Node{
		Type:   SequenceType,
		Values: slices.Clone(vs),
	}
}

// IsInt reports whether y is an integer number.
func (y *Node) IsInt() bool {
	return y.Type == NumberType && y.Int64 != nil
}

// Len returns the number of entries of a container, 0 otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case MappingType, SequenceType:
		return len(y.Values)
	}
	return 0
}

// Index returns the position of key s in mapping y, or -1. Integer and
// string keys never match each other.
func (y *Node) Index(s Sign) int {
	for i, f := range y.Fields {
		if SignOf(f) == s {
			return i
		}
	}
	return -1
}

// Lookup returns the value under key s in mapping y, or nil.
func (y *Node) Lookup(s Sign) *Node {
	if i := y.Index(s); i >= 0 {
		return y.Values[i]
	}
	return nil
}

// Set stores v under s. For a mapping an existing key keeps its position;
// for a sequence s must index an existing element or its end.
func (y *Node) Set(s Sign, v *Node) bool {
	switch y.Type {
	case MappingType:
		if i := y.Index(s); i >= 0 {
			y.Values[i] = v
			return true
		}
		y.Fields = append(y.Fields, s.Node())
		y.Values = append(y.Values, v)
		return true
	case SequenceType:
		i, ok := s.Index()
		if !ok || i < 0 || i > int64(len(y.Values)) {
			return false
		}
		if i == int64(len(y.Values)) {
			y.Values = append(y.Values, v)
			return true
		}
		y.Values[i] = v
		return true
	}
	return false
}

func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// Get resolves p relative to y.
func (y *Node) Get(p *Path) (*Node, error) {
	return p.Resolve(y)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Source != nil {
		dst.Source = y.Source.Clone()
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Contains reports whether x is reachable from y, y included.
func (y *Node) Contains(x *Node) bool {
	if y == x {
		return true
	}
	for _, v := range y.Values {
		if v.Contains(x) {
			return true
		}
	}
	return false
}
