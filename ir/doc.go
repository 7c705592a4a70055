// Package ir provides the in-memory tree for wS documents.
//
// A document is a single root container. Mappings keep their keys in
// Fields and the corresponding values in Values, in insertion order. A key
// is either a String node or an integer Number node; the two never match
// each other, so the keys 1 and "1" may coexist.
//
// Nodes carry no parent pointers. A value reached through an alias is the
// same *Node as its source, so a parsed document may share subtrees and
// callers that mutate must Clone first.
//
// Paths are sequences of Signs and are resolved with Path.Resolve. When an
// integer Sign is missing from a mapping, its decimal string is tried.
package ir
