/*
File    : bogus-go/stdlib/io_test.go
*/
package stdlib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juhofriman/bogus-go/object"
)

func lookup(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, b := range Builtins {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("builtin %s not registered", name)
	return nil
}

func TestPrintWritesTypeProjection(t *testing.T) {
	print := lookup(t, "print")
	require.Equal(t, []string{"a"}, print.Params)

	var buf bytes.Buffer
	result, err := print.Callback(nil, &buf, &object.Integer{Value: 42})
	require.NoError(t, err)
	assert.Equal(t, &object.Void{}, result)
	assert.Equal(t, "42", buf.String())

	buf.Reset()
	_, err = print.Callback(nil, &buf, &object.Null{})
	require.NoError(t, err)
	assert.Equal(t, "Null", buf.String())
}

func TestPrintlnAppendsNewline(t *testing.T) {
	builtin := lookup(t, "println")
	require.Equal(t, []string{"a"}, builtin.Params)

	var buf bytes.Buffer
	_, err := builtin.Callback(nil, &buf, &object.String{Value: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
}
