package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Sequence < Mapping
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Sequence", FromString("a"), FromSlice(nil), -1},
		{"Sequence < Mapping", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},

		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty Sequence == Empty Sequence", FromSlice(nil), FromSlice(nil), 0},
		{"Short Sequence < Long Sequence", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},

		{"Empty Mapping == Empty Mapping", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Int Key < String Key",
			FromKeyVals([]KeyVal{{Key: IntSign(1), Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: StringSign("1"), Val: Null()}}),
			-1},
		{"Mapping Value Comparison",
			FromKeyVals([]KeyVal{{Key: StringSign("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: StringSign("a"), Val: FromInt(2)}}),
			-1},
		{"Mapping Order Matters",
			FromKeyVals([]KeyVal{{Key: StringSign("a"), Val: Null()}, {Key: StringSign("b"), Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: StringSign("b"), Val: Null()}, {Key: StringSign("a"), Val: Null()}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare(a, b) = %d, expected %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %d, expected %d", got, -tt.expected)
			}
		})
	}
}
