/*
File    : bogus-go/parser/parser_statements.go
*/
package parser

import (
	"fmt"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/token"
)

// parseGrouped handles `{` beginning a block. Children parse at
// terminator level, with any semicolons between them consumed here,
// until the closing brace.
func (par *Parser) parseGrouped(tok token.Token) (ast.Expression, error) {
	children := make([]ast.Expression, 0)
	for {
		next, err := par.peekOrErr()
		if err != nil {
			return nil, err
		}
		if next.Type == token.RIGHT_BRACE {
			par.next()
			break
		}
		child, err := par.parseExpression(RBP_TERMINATOR)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		for par.hasNext() && par.peek().Type == token.SEMICOLON {
			par.next()
		}
	}
	return &ast.Grouped{Token: tok, Children: children}, nil
}

// parseLet handles `let <identifier> = <initializer>`.
func (par *Parser) parseLet(tok token.Token) (ast.Expression, error) {
	ident, err := par.nextOrErr()
	if err != nil {
		return nil, err
	}
	if ident.Type != token.IDENTIFIER {
		return nil, fmt.Errorf("Expecting identifier in let, but got %s", ident.Type)
	}
	if _, err := par.expectNext(token.ASSIGN); err != nil {
		return nil, err
	}
	init, err := par.parseExpression(RBP_NONE)
	if err != nil {
		return nil, err
	}
	return &ast.Let{Token: tok, Name: ident.Literal, Init: init}, nil
}

// parseAssignExpression handles `=` after a left operand. Only an
// identifier can be assigned to.
func (par *Parser) parseAssignExpression(tok token.Token, left ast.Expression) (ast.Expression, error) {
	name, ok := ast.IsIdentifier(left)
	if !ok {
		return nil, fmt.Errorf("Expecting identifier on left side of assignment")
	}
	value, err := par.parseExpression(RBP_TERMINATOR)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Token: tok, Name: name, Value: value}, nil
}

// parseReturn handles `return <value>`. The value parses at terminator
// level so the return consumes exactly one expression.
func (par *Parser) parseReturn(tok token.Token) (ast.Expression, error) {
	value, err := par.parseExpression(RBP_TERMINATOR)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Token: tok, Value: value}, nil
}

// parseIf handles `if <condition> <branch>`. There is no else: a falsy
// condition makes the whole construct Void. Both parts parse at
// terminator level, so a brace block or a single expression works as
// the branch.
func (par *Parser) parseIf(tok token.Token) (ast.Expression, error) {
	condition, err := par.parseExpression(RBP_TERMINATOR)
	if err != nil {
		return nil, err
	}
	branch, err := par.parseExpression(RBP_TERMINATOR)
	if err != nil {
		return nil, err
	}
	return &ast.If{Token: tok, Condition: condition, Branch: branch}, nil
}
