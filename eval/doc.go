// Package eval evaluates expr-lang expressions against a parsed document.
//
// The document is bound to the variable doc as plain Go values. Registered
// symbols add functions such as get("a.b.0"), which resolves a reference
// path, and getenv.
package eval
