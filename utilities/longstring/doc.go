// Package longstring wraps packed text in a PICO-8 long-bracket string.
//
// Long strings ("[[" ... "]]") are supposed to hold anything other than their
// closing bracket verbatim, but PICO-8's lexer has had a few bugs around them:
//
//   - "]]" ends the string even inside "[=[" ... "]=]", so wrapping the text
//     in a higher-level bracket doesn't help.
//     https://www.lexaloffle.com/bbs/?tid=31673
//   - "[[" inside a string confuses the scanner as if a nested string had
//     been opened.
//     https://www.lexaloffle.com/bbs/?tid=32155
//   - A quoted string followed directly by ".." and a long string on the same
//     line also trips up the lexer, hence the newline after each "']]'".
//     https://www.lexaloffle.com/bbs/?tid=32148
//
// Instead of relying on bracket levels, every dangerous sequence is cut out of
// the long string and emitted as a separately quoted fragment, with ".."
// gluing the pieces back together:
//
//	ab]]cd   ->   [[ab]]..']]'
//	              ..[[cd]]
//
// The host also drops a newline immediately following "[[", which is why some
// of the reopened strings start with two of them.
package longstring
