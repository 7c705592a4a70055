package load

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts d to UTF-8. name is an encoding name or "" to detect
// one from a byte order mark.
func Decode(path string, d []byte, name string) ([]byte, []Warning) {
	var warns []Warning
	enc, err := pick(d, name)
	if err != nil {
		warns = append(warns, Warning{
			Path: path,
			Msg:  fmt.Sprintf("unknown encoding %q, reading as utf-8", name),
			Err:  err,
		})
		enc = unicode.UTF8
	}
	if enc == unicode.UTF8 && !utf8.Valid(d) {
		warns = append(warns, Warning{
			Path: path,
			Msg:  "invalid utf-8 replaced with U+FFFD",
		})
	}
	res, err := enc.NewDecoder().Bytes(d)
	if err != nil {
		warns = append(warns, Warning{
			Path: path,
			Msg:  "undecodable input, reading as utf-8",
			Err:  err,
		})
		res, _ = unicode.UTF8.NewDecoder().Bytes(d)
	}
	return bytes.TrimPrefix(res, utf8BOM), warns
}

func pick(d []byte, name string) (encoding.Encoding, error) {
	if name != "" {
		return htmlindex.Get(name)
	}
	switch {
	case bytes.HasPrefix(d, utf8BOM):
		return unicode.UTF8, nil
	case bytes.HasPrefix(d, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), nil
	case bytes.HasPrefix(d, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), nil
	}
	return unicode.UTF8, nil
}
