/*
File    : bogus-go/eval/eval_expressions.go
*/
package eval

import (
	"fmt"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/object"
	"github.com/juhofriman/bogus-go/token"
)

// Eval evaluates one expression tree node in the current scope. Errors
// are never caught here: every evaluation error propagates to the
// driver untouched.
func (e *Evaluator) Eval(node ast.Node) (object.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return e.evalProgram(n)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return &object.Float{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}, nil
	case *ast.BooleanLiteral:
		return &object.Boolean{Value: n.Value}, nil
	case *ast.NullLiteral:
		return &object.Null{}, nil

	case *ast.Identifier:
		return e.Scp.ResolveResult(n.Name)

	case *ast.PrefixMinus:
		return e.evalPrefixMinus(n)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(n)
	case *ast.EqualsExpression:
		return e.evalEqualsExpression(n)
	case *ast.Call:
		return e.evalCall(n)

	case *ast.Grouped:
		return e.evalGrouped(n)
	case *ast.Let:
		return e.evalLet(n)
	case *ast.Assign:
		return e.evalAssign(n)
	case *ast.Fun:
		return e.evalFun(n)
	case *ast.AnonFun:
		return e.evalAnonFun(n)
	case *ast.Return:
		return e.evalReturn(n)
	case *ast.If:
		return e.evalIf(n)

	default:
		return nil, fmt.Errorf("Can't evaluate node %T", node)
	}
}

// evalProgram evaluates top-level expressions in source order and
// yields the last result, or Void for an empty program.
func (e *Evaluator) evalProgram(program *ast.Program) (object.Value, error) {
	var result object.Value = &object.Void{}
	for _, stmt := range program.Statements {
		var err error
		result, err = e.Eval(stmt)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (e *Evaluator) evalPrefixMinus(n *ast.PrefixMinus) (object.Value, error) {
	value, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	return object.ApplyPrefixMinus(value)
}

// evalBinaryExpression evaluates operands left to right and dispatches
// on the operator token kind.
func (e *Evaluator) evalBinaryExpression(n *ast.BinaryExpression) (object.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case token.PLUS:
		return object.ApplyPlus(left, right)
	case token.MINUS:
		return object.ApplyMinus(left, right)
	case token.MULTIPLICATION:
		return object.ApplyMultiplication(left, right)
	case token.DIVISION:
		return object.ApplyDivision(left, right)
	default:
		return nil, fmt.Errorf("Can't evaluate operator %s", n.Operator)
	}
}

func (e *Evaluator) evalEqualsExpression(n *ast.EqualsExpression) (object.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	if n.Negate {
		return object.ApplyNotEquals(left, right)
	}
	return object.ApplyEquals(left, right)
}

// evalCall evaluates the target, then every argument left to right,
// then applies the target value.
func (e *Evaluator) evalCall(n *ast.Call) (object.Value, error) {
	target, err := e.Eval(n.Target)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		value, err := e.Eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	return e.CallFunction(target, args)
}
