/*
File    : bogus-go/stdlib/io.go
*/
package stdlib

import (
	"fmt"
	"io"

	"github.com/juhofriman/bogus-go/object"
)

var ioFunctions = []*Builtin{
	{Name: "print", Params: []string{"a"}, Callback: printFunc},
	{Name: "println", Params: []string{"a"}, Callback: printlnFunc},
}

func init() {
	Builtins = append(Builtins, ioFunctions...)
}

// printFunc writes the argument's type projection to the writer, with
// no trailing newline.
func printFunc(rt Runtime, writer io.Writer, args ...object.Value) (object.Value, error) {
	fmt.Fprint(writer, args[0].ToString())
	return &object.Void{}, nil
}

// printlnFunc writes the argument's type projection to the writer,
// followed by a newline.
func printlnFunc(rt Runtime, writer io.Writer, args ...object.Value) (object.Value, error) {
	fmt.Fprintln(writer, args[0].ToString())
	return &object.Void{}, nil
}
