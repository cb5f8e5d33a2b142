/*
File    : fen/function/function.go
Package : function

Function lives in its own package, not in objects, for the same
reason the teacher's function package does: it needs parser.Stmt (the
body) and scope.Frame (the captured frame), and objects cannot
import either without objects becoming dependent on the whole
pipeline. objects.Value is satisfied structurally, so eval and std can
hold a *Function as an objects.Value without objects importing
function back in a cycle.
*/
package function

import (
	"fmt"
	"strings"

	"github.com/fen-lang/fen/objects"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/scope"
)

// Function is fen's callable value: an ordered parameter list, a
// body statement, and the environment frame that was current when the
// function was declared.
type Function struct {
	Name    string
	Params  []string
	Body    parser.Stmt
	Captured *scope.Frame
}

func (f *Function) Type() objects.ValueType { return objects.FunctionType }

// Inspect renders every function the same way regardless of name or
// arity: just "Func".
func (f *Function) Inspect() string { return "Func" }

// String gives a fuller, named form for debugging (fmt's %v and
// go-spew-style dumps) without changing Inspect's contract.
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

// Bind implements the method-binding rule: it returns a new Function
// sharing f's params and body, but captured in a fresh child frame
// with self bound to owner. The original Function is left untouched,
// so reassigning it elsewhere produces an independently bound copy.
func Bind(f *Function, owner objects.Value) *Function {
	env := scope.NewEnvironmentAt(f.Captured)
	env.Enter()
	env.Declare("self", owner)
	bound := &Function{Name: f.Name, Params: f.Params, Body: f.Body, Captured: env.Current}
	env.Exit()
	return bound
}
