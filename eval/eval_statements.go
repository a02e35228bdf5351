/*
File    : bogus-go/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/function"
	"github.com/juhofriman/bogus-go/object"
)

// evalGrouped evaluates block children in source order. A `return`
// child, or a ReturnValue bubbling out of a nested block, stops the
// walk immediately and propagates upward; the call boundary unwraps
// it. A block that runs to the end is Void.
func (e *Evaluator) evalGrouped(n *ast.Grouped) (object.Value, error) {
	for _, child := range n.Children {
		if ret, ok := child.(*ast.Return); ok {
			return e.Eval(ret)
		}
		value, err := e.Eval(child)
		if err != nil {
			return nil, err
		}
		if object.IsReturnValue(value) {
			return value, nil
		}
	}
	return &object.Void{}, nil
}

// evalLet binds in the current frame, shadowing any outer binding of
// the same name.
func (e *Evaluator) evalLet(n *ast.Let) (object.Value, error) {
	value, err := e.Eval(n.Init)
	if err != nil {
		return nil, err
	}
	e.Scp.Store(n.Name, value)
	return &object.Void{}, nil
}

// evalAssign overwrites an existing binding in the frame where it was
// declared. The name must already exist somewhere in the chain.
func (e *Evaluator) evalAssign(n *ast.Assign) (object.Value, error) {
	if _, ok := e.Scp.Resolve(n.Name); !ok {
		return nil, fmt.Errorf("Can't assing to variable `%s`", n.Name)
	}
	value, err := e.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	e.Scp.Reassign(n.Name, value)
	return &object.Void{}, nil
}

// evalFun constructs the function value and binds it under its name in
// the current scope. The value captures the current scope, so calls
// resolve free names lexically.
func (e *Evaluator) evalFun(n *ast.Fun) (object.Value, error) {
	fn := &function.Function{
		Name:   n.Name,
		Params: n.Params,
		Body:   n.Body,
		Scp:    e.Scp,
	}
	e.Scp.Store(n.Name, fn)
	return &object.Void{}, nil
}

// evalAnonFun constructs and returns the function value without
// binding a name.
func (e *Evaluator) evalAnonFun(n *ast.AnonFun) (object.Value, error) {
	return &function.Function{
		Params: n.Params,
		Body:   n.Body,
		Scp:    e.Scp,
	}, nil
}

// evalReturn wraps the child's value so enclosing blocks stop and
// propagate it to the call boundary.
func (e *Evaluator) evalReturn(n *ast.Return) (object.Value, error) {
	value, err := e.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	return &object.ReturnValue{Inner: value}, nil
}

// evalIf evaluates the branch only when the condition is truthy;
// otherwise the construct is Void.
func (e *Evaluator) evalIf(n *ast.If) (object.Value, error) {
	condition, err := e.Eval(n.Condition)
	if err != nil {
		return nil, err
	}
	if object.IsTruthy(condition) {
		return e.Eval(n.Branch)
	}
	return &object.Void{}, nil
}
