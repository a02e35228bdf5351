/*
File    : bogus-go/object/object.go
*/

// Package object defines the runtime value taxonomy of the Bogus
// language: the Value interface every runtime value implements, and the
// concrete primitive types (integers, floats, strings, booleans, null,
// void, return-value wrapper). Function values live in the function
// package to keep object free of an ast dependency.
package object

import (
	"fmt"
	"strconv"
)

// Type identifies the kind of a Bogus value as a string constant. The
// spellings are what error messages and diagnostics show, e.g.
// "Can't apply Integer + Null".
type Type string

const (
	// IntegerType represents 32-bit signed integer values
	IntegerType Type = "Integer"
	// FloatType represents 32-bit floating-point values
	FloatType Type = "Float"
	// StringType represents string values
	StringType Type = "String"
	// BooleanType represents true/false values
	BooleanType Type = "Boolean"
	// NullType represents the null value
	NullType Type = "Null"
	// VoidType is the result of statement-like expressions (let, fun,
	// assign, empty block); suppressed from REPL output
	VoidType Type = "Void"
	// FunctionType represents callable function values (defined in the
	// function and stdlib packages)
	FunctionType Type = "Function"
	// ReturnValueType wraps a value bubbling out of a grouped body
	ReturnValueType Type = "ReturnValue"
)

// Value is the core interface every Bogus runtime value implements.
// Values are immutable after construction: operators return new values.
type Value interface {
	// GetType returns the Type of the value, used for type checking and
	// operator error messages
	GetType() Type
	// ToString returns the value's type projection: the primitive datum
	// for integers, floats, strings, and booleans, the type name for null
	// and void, a name-and-parameters signature for functions, and the
	// wrapped value's projection for a ReturnValue. This is what
	// print/println and the REPL show.
	ToString() string
	// ToObject returns a detailed representation including type
	// information, used for debugging and inspection
	ToObject() string
}

// Integer represents a 32-bit signed integer value.
type Integer struct {
	Value int32
}

func (i *Integer) GetType() Type { return IntegerType }

func (i *Integer) ToString() string {
	return fmt.Sprintf("%d", i.Value)
}

func (i *Integer) ToObject() string {
	return fmt.Sprintf("<Integer(%d)>", i.Value)
}

// Float represents a 32-bit floating-point value.
type Float struct {
	Value float32
}

func (f *Float) GetType() Type { return FloatType }

func (f *Float) ToString() string {
	return strconv.FormatFloat(float64(f.Value), 'g', -1, 32)
}

func (f *Float) ToObject() string {
	return fmt.Sprintf("<Float(%s)>", f.ToString())
}

// String represents a string value.
type String struct {
	Value string
}

func (s *String) GetType() Type { return StringType }

func (s *String) ToString() string {
	return s.Value
}

func (s *String) ToObject() string {
	return fmt.Sprintf("<String(%s)>", s.Value)
}

// Boolean represents a true/false value.
type Boolean struct {
	Value bool
}

func (b *Boolean) GetType() Type { return BooleanType }

func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<Boolean(%t)>", b.Value)
}

// Null represents the null value.
type Null struct{}

func (n *Null) GetType() Type { return NullType }

func (n *Null) ToString() string { return string(NullType) }

func (n *Null) ToObject() string { return "<Null>" }

// Void is the result of statement-like expressions. No operator accepts
// it as an operand, and it is suppressed from REPL printout.
type Void struct{}

func (v *Void) GetType() Type { return VoidType }

func (v *Void) ToString() string { return string(VoidType) }

func (v *Void) ToObject() string { return "<Void>" }

// ReturnValue wraps the result of a `return` expression while it
// bubbles up through grouped bodies. Function call boundaries unwrap it.
type ReturnValue struct {
	Inner Value
}

func (r *ReturnValue) GetType() Type { return ReturnValueType }

func (r *ReturnValue) ToString() string {
	return r.Inner.ToString()
}

func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<ReturnValue(%s)>", r.Inner.ToObject())
}

// IsTruthy reports whether v causes an `if` branch to execute. Only
// Boolean(true) is truthy; every other value, including non-zero
// integers and non-empty strings, is falsy.
func IsTruthy(v Value) bool {
	b, ok := v.(*Boolean)
	return ok && b.Value
}

// IsReturnValue reports whether v is a ReturnValue bubbling out of a
// grouped body.
func IsReturnValue(v Value) bool {
	_, ok := v.(*ReturnValue)
	return ok
}

// UnwrapReturnValue strips a ReturnValue wrapper at a function call
// boundary. Any other value passes through unchanged.
func UnwrapReturnValue(v Value) Value {
	if rv, ok := v.(*ReturnValue); ok {
		return rv.Inner
	}
	return v
}
