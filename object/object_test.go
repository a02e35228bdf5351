/*
File    : bogus-go/object/object_test.go
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPlus(t *testing.T) {
	tests := []struct {
		name     string
		left     Value
		right    Value
		expected Value
		err      string
	}{
		{name: "integer plus integer", left: &Integer{Value: 1}, right: &Integer{Value: 2}, expected: &Integer{Value: 3}},
		{name: "string plus integer", left: &String{Value: "foo"}, right: &Integer{Value: 1}, expected: &String{Value: "foo1"}},
		{name: "integer plus string", left: &Integer{Value: 1}, right: &String{Value: "foo"}, expected: &String{Value: "1foo"}},
		{name: "string plus string", left: &String{Value: "foo"}, right: &String{Value: "bar"}, expected: &String{Value: "foobar"}},
		{name: "null plus string", left: &Null{}, right: &String{Value: "x"}, expected: &String{Value: "nullx"}},
		{name: "string plus null", left: &String{Value: "x"}, right: &Null{}, expected: &String{Value: "xnull"}},
		{name: "float plus float", left: &Float{Value: 1.5}, right: &Float{Value: 2.5}, expected: &Float{Value: 4}},
		{name: "integer plus null", left: &Integer{Value: 1}, right: &Null{}, err: "Can't apply Integer + Null"},
		{name: "string plus boolean", left: &String{Value: "x"}, right: &Boolean{Value: true}, err: "Can't apply String + Boolean"},
		{name: "boolean plus integer", left: &Boolean{Value: true}, right: &Integer{Value: 1}, err: "Can't apply Boolean + Integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyPlus(tt.left, tt.right)
			if tt.err != "" {
				require.Error(t, err)
				assert.Equal(t, tt.err, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyMinusMultiplicationDivision(t *testing.T) {
	got, err := ApplyMinus(&Integer{Value: 5}, &Integer{Value: 3})
	require.NoError(t, err)
	assert.Equal(t, &Integer{Value: 2}, got)

	got, err = ApplyMultiplication(&Integer{Value: 5}, &Integer{Value: 3})
	require.NoError(t, err)
	assert.Equal(t, &Integer{Value: 15}, got)

	got, err = ApplyDivision(&Integer{Value: 6}, &Integer{Value: 3})
	require.NoError(t, err)
	assert.Equal(t, &Integer{Value: 2}, got)

	_, err = ApplyDivision(&Integer{Value: 6}, &Integer{Value: 0})
	require.Error(t, err)
	assert.Equal(t, "Division by zero", err.Error())

	_, err = ApplyMinus(&String{Value: "foo"}, &Integer{Value: 1})
	require.Error(t, err)
	assert.Equal(t, "Can't apply String - Integer", err.Error())

	_, err = ApplyMultiplication(&Integer{Value: 1}, &Null{})
	require.Error(t, err)
	assert.Equal(t, "Can't apply Integer * Null", err.Error())
}

func TestApplyEquals(t *testing.T) {
	got, err := ApplyEquals(&Integer{Value: 1}, &Integer{Value: 1})
	require.NoError(t, err)
	assert.Equal(t, &Boolean{Value: true}, got)

	got, err = ApplyEquals(&Integer{Value: 1}, &Integer{Value: 2})
	require.NoError(t, err)
	assert.Equal(t, &Boolean{Value: false}, got)

	got, err = ApplyNotEquals(&Integer{Value: 1}, &Integer{Value: 1})
	require.NoError(t, err)
	assert.Equal(t, &Boolean{Value: false}, got)

	_, err = ApplyEquals(&Integer{Value: 1}, &String{Value: "1"})
	require.Error(t, err)
	assert.Equal(t, "Can't apply Integer == String", err.Error())

	_, err = ApplyNotEquals(&Null{}, &Integer{Value: 1})
	require.Error(t, err)
	assert.Equal(t, "Can't apply Null != Integer", err.Error())
}

func TestApplyPrefixMinus(t *testing.T) {
	got, err := ApplyPrefixMinus(&Integer{Value: 42})
	require.NoError(t, err)
	assert.Equal(t, &Integer{Value: -42}, got)

	_, err = ApplyPrefixMinus(&String{Value: "foo"})
	require.Error(t, err)
	assert.Equal(t, "String does not support prefix minus", err.Error())

	_, err = ApplyPrefixMinus(&Null{})
	require.Error(t, err)
	assert.Equal(t, "Null does not support prefix minus", err.Error())
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, IsTruthy(&Boolean{Value: true}))
	assert.False(t, IsTruthy(&Boolean{Value: false}))
	assert.False(t, IsTruthy(&Integer{Value: 1}))
	assert.False(t, IsTruthy(&String{Value: "true"}))
	assert.False(t, IsTruthy(&Null{}))
	assert.False(t, IsTruthy(&Void{}))
}

func TestReturnValue(t *testing.T) {
	rv := &ReturnValue{Inner: &Integer{Value: 1}}
	assert.True(t, IsReturnValue(rv))
	assert.False(t, IsReturnValue(&Integer{Value: 1}))
	assert.Equal(t, &Integer{Value: 1}, UnwrapReturnValue(rv))
	assert.Equal(t, &Null{}, UnwrapReturnValue(&Null{}))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "5", (&Integer{Value: 5}).ToString())
	assert.Equal(t, "1.12", (&Float{Value: 1.12}).ToString())
	assert.Equal(t, "foo", (&String{Value: "foo"}).ToString())
	assert.Equal(t, "true", (&Boolean{Value: true}).ToString())
	assert.Equal(t, "Null", (&Null{}).ToString())
	assert.Equal(t, "Void", (&Void{}).ToString())
}
