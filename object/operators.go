/*
File    : bogus-go/object/operators.go
*/
package object

import "fmt"

// Operator application is double dispatch over the pair of operand
// kinds, written as one match per operator so that every unsupported
// combination produces its error in exactly one place.

func operatorNotApplicable(op string, left, right Value) error {
	return fmt.Errorf("Can't apply %s %s %s", left.GetType(), op, right.GetType())
}

// ApplyPrefixMinus negates a numeric value. Everything else errors.
func ApplyPrefixMinus(v Value) (Value, error) {
	switch v := v.(type) {
	case *Integer:
		return &Integer{Value: -v.Value}, nil
	case *Float:
		return &Float{Value: -v.Value}, nil
	default:
		return nil, fmt.Errorf("%s does not support prefix minus", v.GetType())
	}
}

// ApplyPlus adds numbers and concatenates strings. Integer and Null
// operands coerce to their decimal/literal form when the other side is
// a String.
func ApplyPlus(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Integer:
		switch r := right.(type) {
		case *Integer:
			return &Integer{Value: l.Value + r.Value}, nil
		case *String:
			return &String{Value: fmt.Sprintf("%d%s", l.Value, r.Value)}, nil
		}
	case *Float:
		if r, ok := right.(*Float); ok {
			return &Float{Value: l.Value + r.Value}, nil
		}
	case *String:
		switch r := right.(type) {
		case *String:
			return &String{Value: l.Value + r.Value}, nil
		case *Integer:
			return &String{Value: fmt.Sprintf("%s%d", l.Value, r.Value)}, nil
		case *Null:
			return &String{Value: l.Value + "null"}, nil
		}
	case *Null:
		if r, ok := right.(*String); ok {
			return &String{Value: "null" + r.Value}, nil
		}
	}
	return nil, operatorNotApplicable("+", left, right)
}

// ApplyMinus subtracts numeric values.
func ApplyMinus(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Integer:
		if r, ok := right.(*Integer); ok {
			return &Integer{Value: l.Value - r.Value}, nil
		}
	case *Float:
		if r, ok := right.(*Float); ok {
			return &Float{Value: l.Value - r.Value}, nil
		}
	}
	return nil, operatorNotApplicable("-", left, right)
}

// ApplyMultiplication multiplies numeric values.
func ApplyMultiplication(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Integer:
		if r, ok := right.(*Integer); ok {
			return &Integer{Value: l.Value * r.Value}, nil
		}
	case *Float:
		if r, ok := right.(*Float); ok {
			return &Float{Value: l.Value * r.Value}, nil
		}
	}
	return nil, operatorNotApplicable("*", left, right)
}

// ApplyDivision divides numeric values. Division by zero is an
// evaluation error, not a panic.
func ApplyDivision(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Integer:
		if r, ok := right.(*Integer); ok {
			if r.Value == 0 {
				return nil, fmt.Errorf("Division by zero")
			}
			return &Integer{Value: l.Value / r.Value}, nil
		}
	case *Float:
		if r, ok := right.(*Float); ok {
			if r.Value == 0 {
				return nil, fmt.Errorf("Division by zero")
			}
			return &Float{Value: l.Value / r.Value}, nil
		}
	}
	return nil, operatorNotApplicable("/", left, right)
}

// ApplyEquals compares numeric values for equality. Comparing across
// kinds, or kinds without an equality relation, is an error.
func ApplyEquals(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Integer:
		if r, ok := right.(*Integer); ok {
			return &Boolean{Value: l.Value == r.Value}, nil
		}
	case *Float:
		if r, ok := right.(*Float); ok {
			return &Boolean{Value: l.Value == r.Value}, nil
		}
	}
	return nil, operatorNotApplicable("==", left, right)
}

// ApplyNotEquals is the negation of ApplyEquals.
func ApplyNotEquals(left, right Value) (Value, error) {
	result, err := ApplyEquals(left, right)
	if err != nil {
		return nil, operatorNotApplicable("!=", left, right)
	}
	return &Boolean{Value: !result.(*Boolean).Value}, nil
}
