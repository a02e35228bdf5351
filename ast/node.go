/*
File    : bogus-go/ast/node.go
*/

// Package ast defines the Bogus expression tree: the node types the
// parser produces and the evaluator walks. Every node carries the token
// it was built from, so later diagnostics can point back at a source
// position.
package ast

import "github.com/juhofriman/bogus-go/token"

// Visitor implements the visitor pattern over the expression tree, used
// by the `:ast` REPL mode to print a parsed program without evaluating
// it.
type Visitor interface {
	VisitProgram(node *Program)
	VisitIntegerLiteral(node *IntegerLiteral)
	VisitFloatLiteral(node *FloatLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNullLiteral(node *NullLiteral)
	VisitIdentifier(node *Identifier)
	VisitPrefixMinus(node *PrefixMinus)
	VisitBinaryExpression(node *BinaryExpression)
	VisitEqualsExpression(node *EqualsExpression)
	VisitCall(node *Call)
	VisitGrouped(node *Grouped)
	VisitLet(node *Let)
	VisitAssign(node *Assign)
	VisitFun(node *Fun)
	VisitAnonFun(node *AnonFun)
	VisitReturn(node *Return)
	VisitIf(node *If)
}

// Node is the base interface every expression tree node satisfies.
type Node interface {
	Literal() string
	Accept(v Visitor)
}

// Expression is every node that can appear where a value is expected.
// Bogus is expression-oriented: statements (let, assign, fun) are
// themselves expressions that evaluate to Void, and return evaluates to
// a ReturnValue wrapper.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of a parsed source: an ordered list of top-level
// expressions, each evaluated in turn.
type Program struct {
	Statements []Expression
}

func (p *Program) Literal() string {
	res := ""
	for _, s := range p.Statements {
		res += s.Literal() + ";"
	}
	return res
}
func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// IntegerLiteral is a decimal integer literal, e.g. 42.
type IntegerLiteral struct {
	Token token.Token
	Value int32
}

func (n *IntegerLiteral) Literal() string { return n.Token.Literal }
func (n *IntegerLiteral) Accept(v Visitor) { v.VisitIntegerLiteral(n) }
func (n *IntegerLiteral) expressionNode()  {}

// FloatLiteral is a decimal floating-point literal, e.g. 3.14.
type FloatLiteral struct {
	Token token.Token
	Value float32
}

func (n *FloatLiteral) Literal() string { return n.Token.Literal }
func (n *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(n) }
func (n *FloatLiteral) expressionNode()  {}

// StringLiteral is a double-quoted string literal with `\`-escapes
// already resolved by the lexer.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (n *StringLiteral) Literal() string { return n.Token.Literal }
func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }
func (n *StringLiteral) expressionNode()  {}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (n *BooleanLiteral) Literal() string { return n.Token.Literal }
func (n *BooleanLiteral) Accept(v Visitor) { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) expressionNode()  {}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	Token token.Token
}

func (n *NullLiteral) Literal() string { return n.Token.Literal }
func (n *NullLiteral) Accept(v Visitor) { v.VisitNullLiteral(n) }
func (n *NullLiteral) expressionNode()  {}

// Identifier is a bare name reference, e.g. `x`.
type Identifier struct {
	Token token.Token
	Name  string
}

func (n *Identifier) Literal() string { return n.Name }
func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }
func (n *Identifier) expressionNode()  {}

// PrefixMinus is unary negation, e.g. `-a`.
type PrefixMinus struct {
	Token token.Token
	Right Expression
}

func (n *PrefixMinus) Literal() string { return "-" + n.Right.Literal() }
func (n *PrefixMinus) Accept(v Visitor) { v.VisitPrefixMinus(n) }
func (n *PrefixMinus) expressionNode()  {}

// BinaryExpression covers the arithmetic infix operators: +, -, *, /.
// Operator is the token kind that produced the node (token.PLUS,
// token.MINUS, token.MULTIPLICATION, or token.DIVISION).
type BinaryExpression struct {
	Token    token.Token
	Operator token.Type
	Left     Expression
	Right    Expression
}

func (n *BinaryExpression) Literal() string {
	return n.Left.Literal() + string(n.Operator) + n.Right.Literal()
}
func (n *BinaryExpression) Accept(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) expressionNode()  {}

// EqualsExpression covers `==` and `!=`; Negate distinguishes the two.
type EqualsExpression struct {
	Token  token.Token
	Left   Expression
	Right  Expression
	Negate bool
}

func (n *EqualsExpression) Literal() string {
	op := "=="
	if n.Negate {
		op = "!="
	}
	return n.Left.Literal() + op + n.Right.Literal()
}
func (n *EqualsExpression) Accept(v Visitor) { v.VisitEqualsExpression(n) }
func (n *EqualsExpression) expressionNode()  {}

// Call is a function invocation: a target expression applied to an
// ordered argument list.
type Call struct {
	Token     token.Token
	Target    Expression
	Arguments []Expression
}

func (n *Call) Literal() string { return n.Target.Literal() + "(...)" }
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }
func (n *Call) expressionNode()  {}

// Grouped is a `{ ... }` block: an ordered sequence of expressions
// evaluated in source order.
type Grouped struct {
	Token    token.Token
	Children []Expression
}

func (n *Grouped) Literal() string { return "{...}" }
func (n *Grouped) Accept(v Visitor) { v.VisitGrouped(n) }
func (n *Grouped) expressionNode()  {}

// Let declares a new binding in the innermost scope.
type Let struct {
	Token token.Token
	Name  string
	Init  Expression
}

func (n *Let) Literal() string { return "let " + n.Name }
func (n *Let) Accept(v Visitor) { v.VisitLet(n) }
func (n *Let) expressionNode()  {}

// Assign overwrites an existing binding, found by walking the scope
// chain outward from the current frame.
type Assign struct {
	Token token.Token
	Name  string
	Value Expression
}

func (n *Assign) Literal() string { return n.Name + " = ..." }
func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }
func (n *Assign) expressionNode()  {}

// Fun declares a named function binding.
type Fun struct {
	Token  token.Token
	Name   string
	Params []string
	Body   Expression
}

func (n *Fun) Literal() string { return "fun " + n.Name }
func (n *Fun) Accept(v Visitor) { v.VisitFun(n) }
func (n *Fun) expressionNode()  {}

// AnonFun evaluates to a function value without binding a name.
type AnonFun struct {
	Token  token.Token
	Params []string
	Body   Expression
}

func (n *AnonFun) Literal() string { return "fun(...)" }
func (n *AnonFun) Accept(v Visitor) { v.VisitAnonFun(n) }
func (n *AnonFun) expressionNode()  {}

// Return marks early exit from the enclosing function body.
type Return struct {
	Token token.Token
	Value Expression
}

func (n *Return) Literal() string { return "return " + n.Value.Literal() }
func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }
func (n *Return) expressionNode()  {}

// If has no else branch: the condition gates a single branch
// expression, and the whole construct is Void when the condition is
// falsy.
type If struct {
	Token     token.Token
	Condition Expression
	Branch    Expression
}

func (n *If) Literal() string { return "if " + n.Condition.Literal() }
func (n *If) Accept(v Visitor) { v.VisitIf(n) }
func (n *If) expressionNode()  {}

// IsIdentifier reports whether e is an *Identifier, returning its name.
// Used by the parser to validate the left-hand side of an assignment.
func IsIdentifier(e Expression) (string, bool) {
	id, ok := e.(*Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}
