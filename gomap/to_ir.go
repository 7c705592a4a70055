package gomap

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-reflect"

	"github.com/scratchtools/go-ws/ir"
)

type IRToer interface {
	ToIR() (*ir.Node, error)
}

var irToerType = reflect.TypeOf((*IRToer)(nil)).Elem()

// ToIR converts a Go value to a node. Structs become mappings keyed by
// their `ws` tags, maps must have string or integer keys.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	return toIR(reflect.ValueNoEscapeOf(v))
}

func toIR(r reflect.Value) (*ir.Node, error) {
	if r.IsValid() && r.Type().Implements(irToerType) {
		if r.Kind() != reflect.Ptr || !r.IsNil() {
			return r.Interface().(IRToer).ToIR()
		}
	}
	switch r.Kind() {
	case reflect.Invalid:
		return ir.Null(), nil
	case reflect.Ptr, reflect.Interface:
		if r.IsNil() {
			return ir.Null(), nil
		}
		return toIR(r.Elem())
	case reflect.Bool:
		return ir.FromBool(r.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(r.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromAny(r.Uint())
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(r.Float()), nil
	case reflect.String:
		return ir.FromString(r.String()), nil
	case reflect.Slice:
		if r.IsNil() {
			return ir.Null(), nil
		}
		return seqToIR(r)
	case reflect.Array:
		return seqToIR(r)
	case reflect.Map:
		if r.IsNil() {
			return ir.Null(), nil
		}
		return mapToIR(r)
	case reflect.Struct:
		res := ir.NewMapping()
		if err := structToIR(r, res); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, unsupported(r.Type().String())
	}
}

func seqToIR(r reflect.Value) (*ir.Node, error) {
	res := ir.NewSequence()
	for i := range r.Len() {
		n, err := toIR(r.Index(i))
		if err != nil {
			return nil, err
		}
		res.Append(n)
	}
	return res, nil
}

func mapToIR(r reflect.Value) (*ir.Node, error) {
	keys := map[string]ir.Sign{}
	vals := map[string]reflect.Value{}
	for _, k := range r.MapKeys() {
		var s ir.Sign
		switch k.Kind() {
		case reflect.String:
			s = ir.StringSign(k.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			s = ir.IntSign(k.Int())
		default:
			return nil, unsupported(fmt.Sprintf("map key type %s", k.Type()))
		}
		keys[s.String()] = s
		vals[s.String()] = r.MapIndex(k)
	}
	res := ir.NewMapping()
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		n, err := toIR(vals[k])
		if err != nil {
			return nil, err
		}
		res.Set(keys[k], n)
	}
	return res, nil
}

func structToIR(r reflect.Value, res *ir.Node) error {
	ty := r.Type()
	for i := range ty.NumField() {
		f := ty.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := parseTag(f)
		if tag.skip {
			continue
		}
		fv := r.Field(i)
		if tag.squash && fv.Kind() == reflect.Struct {
			if err := structToIR(fv, res); err != nil {
				return err
			}
			continue
		}
		if tag.omitEmpty && fv.IsZero() {
			continue
		}
		n, err := toIR(fv)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		res.Set(ir.StringSign(tag.name), n)
	}
	return nil
}
