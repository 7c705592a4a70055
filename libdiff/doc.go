// Package libdiff computes and applies structural diffs between wS
// documents.
//
// # Usage
//
//	diff := libdiff.Diff(oldNode, newNode)
//	patched, err := libdiff.Patch(oldNode, diff)
//
// A diff is itself a document made of operation mappings:
//
//	{"-": old, "+": new}   replace
//	{"+": new}             insert
//	{"-": old}             delete
//	{"{}": {key: op}}      mapping change, with optional "keys" order
//	{"[]": [op, ...]}      sequence edit script, {"=": n} keeps n elements
//	{"~": delta}           string change as a go-diff delta
//
// so it can be encoded, stored and loaded like any other document.
package libdiff
