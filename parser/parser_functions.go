/*
File    : bogus-go/parser/parser_functions.go
*/
package parser

import (
	"fmt"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/token"
)

// parseFun handles both function forms:
//
//	fun name(a, b) -> body     named definition, binds `name`
//	fun (a, b) -> body         anonymous, evaluates to a function value
//
// The body parses at rbp 0, so a single expression or a brace block
// both work, and a trailing semicolon after a one-expression body is
// absorbed as a terminator.
func (par *Parser) parseFun(tok token.Token) (ast.Expression, error) {
	next, err := par.nextOrErr()
	if err != nil {
		return nil, err
	}

	name := ""
	switch next.Type {
	case token.IDENTIFIER:
		name = next.Literal
		if _, err := par.expectNext(token.LEFT_PARENS); err != nil {
			return nil, err
		}
	case token.LEFT_PARENS:
		// anonymous form
	default:
		return nil, fmt.Errorf("Expecting identifier or ( in fun, but got %s", next.Type)
	}

	params, err := par.parseParameterList()
	if err != nil {
		return nil, err
	}

	if _, err := par.expectNext(token.ARROW); err != nil {
		return nil, err
	}

	body, err := par.parseExpression(RBP_NONE)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return &ast.AnonFun{Token: tok, Params: params, Body: body}, nil
	}
	return &ast.Fun{Token: tok, Name: name, Params: params, Body: body}, nil
}

// parseParameterList reads a comma-separated list of identifiers up to
// and including the closing paren.
func (par *Parser) parseParameterList() ([]string, error) {
	params := make([]string, 0)
	for {
		next, err := par.nextOrErr()
		if err != nil {
			return nil, err
		}
		if next.Type == token.RIGHT_PARENS {
			return params, nil
		}
		if next.Type != token.IDENTIFIER {
			return nil, fmt.Errorf("Expecting identifier in parameter list, but got %s", next.Type)
		}
		params = append(params, next.Literal)
		delim, err := par.peekOrErr()
		if err != nil {
			return nil, err
		}
		if delim.Type == token.COMMA {
			par.next()
		}
	}
}
