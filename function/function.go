/*
File    : bogus-go/function/function.go
*/

// Package function defines the user-defined function value. It lives
// outside the object package because a function owns its body
// expression, and object must stay free of an ast dependency.
package function

import (
	"fmt"
	"strings"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/object"
	"github.com/juhofriman/bogus-go/scope"
)

// Function is a callable value: a parameter list, a body expression,
// and the scope the function was defined in. The captured scope is what
// gives calls lexical closure semantics; the call-time scope is created
// as a child of Scp, not of the caller's scope.
type Function struct {
	Name   string       // empty for anonymous functions
	Params []string     // parameter names, bound positionally on call
	Body   ast.Expression
	Scp    *scope.Scope // definition-time scope, shared with the chain
}

func (f *Function) GetType() object.Type {
	return object.FunctionType
}

func (f *Function) ToString() string {
	return fmt.Sprintf("<fun[%s(%s)]>", f.Name, strings.Join(f.Params, ", "))
}

func (f *Function) ToObject() string {
	return f.ToString()
}
