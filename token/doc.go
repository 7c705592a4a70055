// Package token provides the character level scanner for wS.
//
// A [Scanner] walks a document one rune at a time. Whitespace, quotes,
// escapes and comments are consumed internally and accumulate into the
// current literal; structural characters are returned as an [Event] for
// the caller to act on. The caller decides what the literal means and
// calls [Scanner.Reset] once it has been consumed.
//
// [LookupSpecial] maps `?` tokens such as `?true` or `?inherit` to their
// [Special] kind.
package token
