/*
File    : bogus-go/ast/print_visitor_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juhofriman/bogus-go/token"
)

func TestPrintVisitor(t *testing.T) {
	// let a = 1 + 2
	tree := &Program{
		Statements: []Expression{
			&Let{
				Name: "a",
				Init: &BinaryExpression{
					Operator: token.PLUS,
					Left:     &IntegerLiteral{Value: 1},
					Right:    &IntegerLiteral{Value: 2},
				},
			},
		},
	}

	expected := "Program\n" +
		"    Let(a)\n" +
		"        BinaryExpression(+)\n" +
		"            Integer(1)\n" +
		"            Integer(2)\n"

	visitor := &PrintVisitor{}
	tree.Accept(visitor)
	assert.Equal(t, expected, visitor.String())

	// Visualizing twice produces the same dump on a fresh visitor.
	again := &PrintVisitor{}
	tree.Accept(again)
	assert.Equal(t, visitor.String(), again.String())
}
