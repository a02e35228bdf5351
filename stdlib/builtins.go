/*
File    : bogus-go/stdlib/builtins.go
*/

// Package stdlib is the native-function bridge: it lets host Go code
// expose callable values to Bogus programs. Builtins registered here
// are stored into the top-level scope before any evaluation happens.
package stdlib

import (
	"fmt"
	"io"
	"strings"

	"github.com/juhofriman/bogus-go/object"
)

// Runtime is the evaluator surface a builtin can call back into, e.g.
// to invoke a Bogus function value it received as an argument.
type Runtime interface {
	CallFunction(fn object.Value, args []object.Value) (object.Value, error)
}

// CallbackFunc is the host implementation of a builtin. The evaluator
// has already checked arity against Params, so args matches the
// declared parameter list positionally.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...object.Value) (object.Value, error)

// Builtin is a host-implemented function value. It satisfies
// object.Value so it can live in a scope and be called like any
// user-defined function.
type Builtin struct {
	Name     string
	Params   []string
	Callback CallbackFunc
}

func (b *Builtin) GetType() object.Type {
	return object.FunctionType
}

func (b *Builtin) ToString() string {
	return fmt.Sprintf("<builtin[%s(%s)]>", b.Name, strings.Join(b.Params, ", "))
}

func (b *Builtin) ToObject() string {
	return b.ToString()
}

// Builtins holds every registered builtin. Files in this package
// append to it from init, and the evaluator copies it into the
// top-level scope on construction.
var Builtins = make([]*Builtin, 0)
