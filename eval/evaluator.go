/*
File    : bogus-go/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator: it walks the
// expression tree the parser produced, resolving names through the
// scope chain and applying operators over runtime values.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/juhofriman/bogus-go/function"
	"github.com/juhofriman/bogus-go/object"
	"github.com/juhofriman/bogus-go/scope"
	"github.com/juhofriman/bogus-go/stdlib"
)

// Evaluator holds the state for evaluating Bogus expression trees: the
// current scope and the output writer builtin functions print to.
type Evaluator struct {
	Scp    *scope.Scope // current scope; starts as the top-level scope
	Writer io.Writer    // output for builtins (default: os.Stdout)
}

// NewEvaluator creates an evaluator with a fresh top-level scope,
// pre-populated with the standard library builtins.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		Scp:    scope.NewScope(nil),
		Writer: os.Stdout,
	}
	for _, builtin := range stdlib.Builtins {
		e.Scp.Store(builtin.Name, builtin)
	}
	return e
}

// SetWriter redirects builtin output, e.g. to a buffer in tests or to
// the REPL's writer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// CallFunction applies a value to arguments. User-defined functions
// get a fresh scope chained to their definition-time scope (lexical
// closure); builtins get the raw argument values. Anything else is not
// callable. This also implements the stdlib.Runtime interface so
// builtins can call back into Bogus functions.
func (e *Evaluator) CallFunction(fn object.Value, args []object.Value) (object.Value, error) {
	switch fn := fn.(type) {
	case *function.Function:
		if len(args) != len(fn.Params) {
			return nil, fmt.Errorf("Expecting %d arguments for call but %d given", len(fn.Params), len(args))
		}

		// The activation scope chains to the scope the function was
		// defined in, not the caller's, so free names resolve lexically.
		callScope := scope.NewScope(fn.Scp)
		for i, param := range fn.Params {
			callScope.Store(param, args[i])
		}

		oldScope := e.Scp
		e.Scp = callScope
		result, err := e.Eval(fn.Body)
		e.Scp = oldScope
		if err != nil {
			return nil, err
		}

		return object.UnwrapReturnValue(result), nil

	case *stdlib.Builtin:
		if len(args) != len(fn.Params) {
			return nil, fmt.Errorf("Expecting %d arguments for call but %d given", len(fn.Params), len(args))
		}
		return fn.Callback(e, e.Writer, args...)

	default:
		return nil, fmt.Errorf("%s is not callable", fn.GetType())
	}
}
