package gomap

import (
	"fmt"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"

	"github.com/scratchtools/go-ws/ir"
)

// TagName is the struct tag naming document keys.
const TagName = "ws"

type IRFromer interface {
	FromIR(*ir.Node) error
}

// Decode stores node in the value target points to.
func Decode(node *ir.Node, target any) error {
	if target == nil {
		return ErrTargetNil
	}
	if x, ok := target.(IRFromer); ok {
		return x.FromIR(node)
	}
	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr {
		return ErrNonPointer
	}
	if value.IsNil() {
		return ErrTargetNil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(ir.ToAny(node)); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
