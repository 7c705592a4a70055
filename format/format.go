package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	WSFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

var (
	names = [...]string{
		WSFormat:   "ws",
		JSONFormat: "json",
		YAMLFormat: "yaml",
	}
	aliases = map[string]Format{
		"w":   WSFormat,
		"j":   JSONFormat,
		"y":   YAMLFormat,
		"yml": YAMLFormat,
	}
)

// ParseFormat accepts a format name, its first letter, or "yml".
func ParseFormat(v string) (Format, error) {
	if f, ok := aliases[v]; ok {
		return f, nil
	}
	for i, name := range names {
		if name == v {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(names) {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(names[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsWS() bool { return f == WSFormat }

// Suffix returns the file extension for this format, including the dot.
func (f Format) Suffix() string {
	if f < 0 || int(f) >= len(names) {
		return ""
	}
	return "." + names[f]
}

// FromPath returns the format named by the extension of path.
func FromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension in %q", ErrBadFormat, path)
	}
	return ParseFormat(ext[1:])
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{WSFormat, JSONFormat, YAMLFormat}
}
