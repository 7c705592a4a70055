package token

import (
	"maps"
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Special is the meaning of a `?` token.
type Special int

const (
	STrue Special = iota
	SFalse
	SNull
	SEmpty
	SMapping
	SSequence
	SInherit
)

func (s Special) String() string {
	return map[Special]string{
		STrue:     "STrue",
		SFalse:    "SFalse",
		SNull:     "SNull",
		SEmpty:    "SEmpty",
		SMapping:  "SMapping",
		SSequence: "SSequence",
		SInherit:  "SInherit",
	}[s]
}

var specials = map[string]Special{
	"?true":      STrue,
	"?1":         STrue,
	"?false":     SFalse,
	"?0":         SFalse,
	"?null":      SNull,
	"?nil":       SNull,
	"?nilhus":    SNull,
	"?undefined": SNull,
	"?empty":     SEmpty,
	"?void":      SEmpty,
	"?iskey":     SMapping,
	"?isroot":    SMapping,
	"?dict":      SMapping,
	"?iter":      SSequence,
	"?inherit":   SInherit,
}

func LookupSpecial(lit string) (Special, bool) {
	s, ok := specials[lit]
	return s, ok
}

func SpecialNames() []string {
	return slices.Sorted(maps.Keys(specials))
}

// Suggest returns the special token closest to lit, or "" when nothing is
// close enough.
func Suggest(lit string) string {
	names := SpecialNames()
	ranks := fuzzy.RankFindFold(lit, names)
	if len(ranks) != 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestD := "", 3
	for _, name := range names {
		d := fuzzy.LevenshteinDistance(lit, name)
		if d < bestD {
			best, bestD = name, d
		}
	}
	return best
}
