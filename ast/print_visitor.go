/*
File    : bogus-go/ast/print_visitor.go
*/
package ast

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4

// PrintVisitor renders a parsed expression tree as an indented text
// dump, used by the `:ast` REPL mode to visualize a program without
// evaluating it.
type PrintVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix.
func (p *PrintVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *PrintVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// nested visits children one indent level deeper.
func (p *PrintVisitor) nested(nodes ...Node) {
	p.Indent += INDENT_SIZE
	for _, n := range nodes {
		n.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

func (p *PrintVisitor) VisitProgram(node *Program) {
	p.line("Program")
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

func (p *PrintVisitor) VisitIntegerLiteral(node *IntegerLiteral) {
	p.line("Integer(%d)", node.Value)
}

func (p *PrintVisitor) VisitFloatLiteral(node *FloatLiteral) {
	p.line("Float(%s)", node.Token.Literal)
}

func (p *PrintVisitor) VisitStringLiteral(node *StringLiteral) {
	p.line("String(%s)", node.Value)
}

func (p *PrintVisitor) VisitBooleanLiteral(node *BooleanLiteral) {
	p.line("Boolean(%t)", node.Value)
}

func (p *PrintVisitor) VisitNullLiteral(node *NullLiteral) {
	p.line("Null")
}

func (p *PrintVisitor) VisitIdentifier(node *Identifier) {
	p.line("Identifier(%s)", node.Name)
}

func (p *PrintVisitor) VisitPrefixMinus(node *PrefixMinus) {
	p.line("PrefixMinus")
	p.nested(node.Right)
}

func (p *PrintVisitor) VisitBinaryExpression(node *BinaryExpression) {
	p.line("BinaryExpression(%s)", node.Operator)
	p.nested(node.Left, node.Right)
}

func (p *PrintVisitor) VisitEqualsExpression(node *EqualsExpression) {
	op := "=="
	if node.Negate {
		op = "!="
	}
	p.line("EqualsExpression(%s)", op)
	p.nested(node.Left, node.Right)
}

func (p *PrintVisitor) VisitCall(node *Call) {
	p.line("Call")
	p.nested(node.Target)
	for _, arg := range node.Arguments {
		p.nested(arg)
	}
}

func (p *PrintVisitor) VisitGrouped(node *Grouped) {
	p.line("Grouped")
	for _, child := range node.Children {
		p.nested(child)
	}
}

func (p *PrintVisitor) VisitLet(node *Let) {
	p.line("Let(%s)", node.Name)
	p.nested(node.Init)
}

func (p *PrintVisitor) VisitAssign(node *Assign) {
	p.line("Assign(%s)", node.Name)
	p.nested(node.Value)
}

func (p *PrintVisitor) VisitFun(node *Fun) {
	p.line("Fun(%s%v)", node.Name, node.Params)
	p.nested(node.Body)
}

func (p *PrintVisitor) VisitAnonFun(node *AnonFun) {
	p.line("AnonFun(%v)", node.Params)
	p.nested(node.Body)
}

func (p *PrintVisitor) VisitReturn(node *Return) {
	p.line("Return")
	p.nested(node.Value)
}

func (p *PrintVisitor) VisitIf(node *If) {
	p.line("If")
	p.nested(node.Condition, node.Branch)
}

// String returns the accumulated dump.
func (p *PrintVisitor) String() string {
	return p.Buf.String()
}
