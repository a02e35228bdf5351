/*
File    : bogus-go/parser/parser_literals.go
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/token"
)

// parseIntegerLiteral parses an integer token into its node. The lexer
// guarantees the literal is all digits, so a failure here can only be
// 32-bit overflow.
func (par *Parser) parseIntegerLiteral(tok token.Token) (ast.Expression, error) {
	value, err := strconv.ParseInt(tok.Literal, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Can't parse %q as integer", tok.Literal)
	}
	return &ast.IntegerLiteral{Token: tok, Value: int32(value)}, nil
}

// parseFloatLiteral parses a float token into its node.
func (par *Parser) parseFloatLiteral(tok token.Token) (ast.Expression, error) {
	value, err := strconv.ParseFloat(tok.Literal, 32)
	if err != nil {
		return nil, fmt.Errorf("Can't parse %q as float", tok.Literal)
	}
	return &ast.FloatLiteral{Token: tok, Value: float32(value)}, nil
}

func (par *Parser) parseStringLiteral(tok token.Token) (ast.Expression, error) {
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
}

func (par *Parser) parseBooleanLiteral(tok token.Token) (ast.Expression, error) {
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}, nil
}

func (par *Parser) parseNullLiteral(tok token.Token) (ast.Expression, error) {
	return &ast.NullLiteral{Token: tok}, nil
}

func (par *Parser) parseIdentifier(tok token.Token) (ast.Expression, error) {
	return &ast.Identifier{Token: tok, Name: tok.Literal}, nil
}
