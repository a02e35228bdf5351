/*
File    : bogus-go/parser/parser_expressions.go
*/
package parser

import (
	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/token"
)

// parsePrefixPlus handles `+` at the start of an expression. Prefix
// plus is a no-op, so it just parses and returns the operand.
func (par *Parser) parsePrefixPlus(tok token.Token) (ast.Expression, error) {
	return par.parseExpression(RBP_NONE)
}

// parsePrefixMinus handles `-` at the start of an expression. The
// operand is parsed at sum level so that -a + b negates a, not a + b.
func (par *Parser) parsePrefixMinus(tok token.Token) (ast.Expression, error) {
	right, err := par.parseExpression(RBP_SUM)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixMinus{Token: tok, Right: right}, nil
}

// parseBinaryExpression handles the arithmetic infix operators. The
// right operand binds at the operator's own level, giving left
// associativity.
func (par *Parser) parseBinaryExpression(tok token.Token, left ast.Expression) (ast.Expression, error) {
	rbp := RBP_SUM
	if tok.Type == token.MULTIPLICATION || tok.Type == token.DIVISION {
		rbp = RBP_PRODUCT
	}
	right, err := par.parseExpression(rbp)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: tok, Operator: tok.Type, Left: left, Right: right}, nil
}

// parseEqualsExpression handles `==` and `!=`. The right operand is
// parsed at sum level, so it stops before a following `+` or `-`; and
// because `==`/`!=` bind tighter than `+`/`-`, `1 + 2 == 3` groups as
// `1 + (2 == 3)`, not as a comparison of two sums.
func (par *Parser) parseEqualsExpression(tok token.Token, left ast.Expression) (ast.Expression, error) {
	right, err := par.parseExpression(RBP_SUM)
	if err != nil {
		return nil, err
	}
	return &ast.EqualsExpression{
		Token:  tok,
		Left:   left,
		Right:  right,
		Negate: tok.Type == token.NOT_EQUALS,
	}, nil
}

// parseGroupingParens handles `(` beginning an expression. Grouping is
// pure delegation: the inner expression restarts at rbp 0 and the
// closing paren is absorbed by its terminator LED.
func (par *Parser) parseGroupingParens(tok token.Token) (ast.Expression, error) {
	return par.parseExpression(RBP_NONE)
}

// parseCallExpression handles `(` after a left operand: the call
// suffix. Arguments parse at terminator level so commas and the
// closing paren delimit them; because the suffix applies to any left
// expression, an immediately-invoked anonymous function or a call
// returning a function chains naturally, as in a()().
func (par *Parser) parseCallExpression(tok token.Token, left ast.Expression) (ast.Expression, error) {
	args := make([]ast.Expression, 0)
	for {
		next, err := par.peekOrErr()
		if err != nil {
			return nil, err
		}
		if next.Type == token.RIGHT_PARENS {
			par.next()
			break
		}
		arg, err := par.parseExpression(RBP_TERMINATOR)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		next, err = par.peekOrErr()
		if err != nil {
			return nil, err
		}
		if next.Type == token.COMMA {
			par.next()
		}
	}
	return &ast.Call{Token: tok, Target: left, Arguments: args}, nil
}

// parseTerminator is the LED of `;`, `)`, `}`, and `,`: the expression
// before them is complete, so the left operand passes through
// unchanged. The binding power table keeps them from being consumed
// anywhere an operand is still open.
func (par *Parser) parseTerminator(tok token.Token, left ast.Expression) (ast.Expression, error) {
	return left, nil
}
