package ws

import (
	"fmt"

	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/ir"
)

type MatchConfig struct {
	NullExact bool
}

type MatchOpt func(*MatchConfig)

// MatchNullExact makes a null in the pattern match only a null. By
// default a null matches anything.
func MatchNullExact(v bool) MatchOpt {
	return func(c *MatchConfig) { c.NullExact = v }
}

// Match reports whether doc matches pattern. Every key of a pattern
// mapping must be present in doc with a matching value, sequences match
// element-wise and scalars must be equal.
func Match(doc, pattern *ir.Node, opts ...MatchOpt) (bool, error) {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return match(doc, pattern, cfg, ir.NewPath())
}

func match(doc, pattern *ir.Node, cfg *MatchConfig, p *ir.Path) (bool, error) {
	if debug.Match() {
		debug.Logf("match type %s at %q\n", pattern.Type, p.String())
	}
	if doc.Type == ir.AliasType || pattern.Type == ir.AliasType {
		return false, fmt.Errorf("%w: alias at %q", ir.ErrUnsupported, p.String())
	}
	if pattern.Type == ir.NullType && !cfg.NullExact {
		return true, nil
	}
	if doc.Type != pattern.Type {
		return false, nil
	}
	switch pattern.Type {
	case ir.MappingType:
		return matchMapping(doc, pattern, cfg, p)
	case ir.SequenceType:
		return matchSequence(doc, pattern, cfg, p)
	default:
		return ir.Equal(doc, pattern), nil
	}
}

func matchMapping(doc, pattern *ir.Node, cfg *MatchConfig, p *ir.Path) (bool, error) {
	for i, f := range pattern.Fields {
		s := ir.SignOf(f)
		dv := doc.Lookup(s)
		if dv == nil {
			return false, nil
		}
		p.Append(s)
		ok, err := match(dv, pattern.Values[i], cfg, p)
		p.Pop()
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchSequence(doc, pattern *ir.Node, cfg *MatchConfig, p *ir.Path) (bool, error) {
	if len(doc.Values) != len(pattern.Values) {
		return false, nil
	}
	for i := range doc.Values {
		p.Append(ir.IntSign(int64(i)))
		ok, err := match(doc.Values[i], pattern.Values[i], cfg, p)
		p.Pop()
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Trim filters doc to the keys and elements present in pattern. Mapping
// keys keep the order of doc; each pattern element keeps the first unused
// doc element it matches.
func Trim(pattern, doc *ir.Node) *ir.Node {
	if doc.Type != pattern.Type {
		return doc.Clone()
	}
	switch pattern.Type {
	case ir.MappingType:
		res := ir.NewMapping()
		for i, f := range doc.Fields {
			s := ir.SignOf(f)
			pv := pattern.Lookup(s)
			if pv == nil {
				continue
			}
			res.Set(s, Trim(pv, doc.Values[i]))
		}
		return res
	case ir.SequenceType:
		res := ir.NewSequence()
		used := make([]bool, len(doc.Values))
		for _, pe := range pattern.Values {
			for i, de := range doc.Values {
				if used[i] {
					continue
				}
				ok, err := Match(de, pe)
				if err != nil || !ok {
					continue
				}
				res.Append(Trim(pe, de))
				used[i] = true
				break
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
