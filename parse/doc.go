// Package parse parses wS text into ir nodes.
//
// # Usage
//
//	node, err := parse.ParseString(`{name: alice, age: 30}`)
//	if err != nil {
//	    return err
//	}
//
//	// a separator right after an opening bracket is tolerated
//	node, err = parse.Parse(data, parse.Permissive())
//
// # Syntax
//
// A document is one mapping `{...}` or sequence `[...]`. Entries are
// separated by any of `,` `;` `|` and keys are bound with `:`. Unquoted
// literals become integers, then floats, then strings; runs of whitespace
// inside them collapse to one space. Quoted literals are never coerced.
// `/.../` is a comment and `\` takes the next character verbatim.
//
// Literals starting with `?` are special tokens: `?true`, `?false`,
// `?null`, `?empty`, `?dict`, `?iter`, their synonyms, and `?inherit`,
// which takes the value of the same key from an enclosing level.
//
// `(a.b)` makes the slot an alias of the value at a.b, resolved once the
// document is complete; the value is shared, not copied. `@(a.b)` splices
// the string form of the scalar at a.b into the current literal. A leading
// `.` makes either reference relative to the enclosing container.
//
// # Errors
//
// Every failure is a *Error whose Kind is ErrSyntax, ErrReference or
// ErrUnclosed, each wrapping ErrParse.
package parse
