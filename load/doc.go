// Package load reads wS documents from files.
//
// The file is decoded to UTF-8 first: a byte order mark selects UTF-8 or
// UTF-16, an explicit encoding name is looked up in the WHATWG encoding
// index, and anything else is read as UTF-8. Problems that can be worked
// around, such as an unknown encoding name, are returned as Warnings and
// logged; the document is still loaded.
package load
