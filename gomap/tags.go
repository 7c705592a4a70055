package gomap

import (
	"strings"

	"github.com/goccy/go-reflect"
)

type fieldTag struct {
	name      string
	omitEmpty bool
	squash    bool
	skip      bool
}

// parseTag reads the `ws` tag of f the way mapstructure does: a name
// followed by options.
func parseTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup(TagName)
	if !ok {
		return fieldTag{name: f.Name, squash: f.Anonymous}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}
	parts := strings.Split(tag, ",")
	res := fieldTag{name: parts[0]}
	if res.name == "" {
		res.name = f.Name
	}
	for _, opt := range parts[1:] {
		switch opt {
		case "omitempty":
			res.omitEmpty = true
		case "squash":
			res.squash = true
		}
	}
	return res
}
