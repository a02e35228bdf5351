/*
File: bogus-go/lexer/lexer_utils.go
*/
package lexer

import "unicode"

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || unicode.IsSpace(rune(c))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c))
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
