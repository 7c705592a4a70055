// Package format names the document formats the ws tools read and write.
//
// wS is read only: there is no wS encoder, so [WSFormat] is accepted
// as an input format and rejected as an output format.
package format
