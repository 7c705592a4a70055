package ir

import "fmt"

// Truth is false for null, false, zero, the empty string and empty
// containers, and true otherwise. It panics on an alias placeholder.
func Truth(node *Node) bool {
	switch node.Type {
	case NullType:
		return false
	case BoolType:
		return node.Bool
	case NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64 != 0
		case node.Float64 != nil:
			return *node.Float64 != 0
		}
		return false
	case StringType:
		return node.String != ""
	case MappingType, SequenceType:
		return len(node.Values) != 0
	}
	panic(fmt.Sprintf("truth of %s", node.Type))
}
