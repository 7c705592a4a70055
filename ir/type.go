package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	MappingType
	SequenceType

	// AliasType marks a slot whose value is a deferred alias. It only
	// exists while a document is being parsed.
	AliasType
)

var typeNames = [...]string{
	NullType:     "Null",
	NumberType:   "Number",
	StringType:   "String",
	BoolType:     "Bool",
	MappingType:  "Mapping",
	SequenceType: "Sequence",
	AliasType:    "Alias",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i, name := range typeNames {
		if name == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// Types lists the types a parsed document can hold.
func Types() []Type {
	return []Type{NullType, NumberType, StringType, BoolType, MappingType, SequenceType}
}

// IsLeaf reports whether t is neither a Mapping nor a Sequence.
func (t Type) IsLeaf() bool {
	return !t.IsContainer()
}

// IsContainer reports whether t is a Mapping or a Sequence.
func (t Type) IsContainer() bool {
	return t == MappingType || t == SequenceType
}
