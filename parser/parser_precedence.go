/*
File    : bogus-go/parser/parser_precedence.go
*/
package parser

import "github.com/juhofriman/bogus-go/token"

// Right binding powers. Higher binds tighter. The terminators carry 1
// so they end an expression parsed at rbp 0 (and get consumed there by
// their no-op LED) but never interrupt an operand parsed at rbp 1.
// Assignment sits at the same level: it composes only at statement
// position, never inside an operand.
const (
	RBP_NONE       = 0
	RBP_TERMINATOR = 1
	RBP_SUM        = 5
	RBP_PRODUCT    = 10
	RBP_EQUALITY   = 30
	RBP_CALL       = 50
)

// rightBindingPower returns the rbp of a token kind. Kinds outside the
// table only ever begin expressions and bind nothing to their left.
func rightBindingPower(t token.Type) int {
	switch t {
	case token.ASSIGN, token.SEMICOLON, token.RIGHT_PARENS, token.RIGHT_BRACE:
		return RBP_TERMINATOR
	case token.PLUS, token.MINUS:
		return RBP_SUM
	case token.MULTIPLICATION, token.DIVISION:
		return RBP_PRODUCT
	case token.EQUALS, token.NOT_EQUALS:
		return RBP_EQUALITY
	case token.LEFT_PARENS:
		return RBP_CALL
	default:
		return RBP_NONE
	}
}
