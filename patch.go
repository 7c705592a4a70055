package ws

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/libdiff"
)

var ErrPatch = errors.New("patch error")

// Diff returns the changes turning from into to, or nil.
func Diff(from, to *ir.Node) *ir.Node {
	return libdiff.Diff(from, to)
}

// Patch applies a diff made by Diff.
func Patch(doc, diff *ir.Node) (*ir.Node, error) {
	return libdiff.Patch(doc, diff)
}

// PatchJSON applies an RFC 6902 JSON patch to doc.
func PatchJSON(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return viaJSON(doc, func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	p, err := marshalJSON(patch)
	if err != nil {
		return nil, err
	}
	return viaJSON(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, p)
	})
}

func viaJSON(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json patch on %s\n", doc)
	}
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return FromYAML(out)
}

func marshalJSON(doc *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
