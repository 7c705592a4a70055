// Package gomap maps between ir nodes and Go values.
//
// [Decode] fills a Go value from a node using mapstructure and the `ws`
// struct tag. [ToIR] goes the other way. Types may take over either
// direction by implementing [IRFromer] or [IRToer].
package gomap
