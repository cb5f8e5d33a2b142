/*
File    : fen/std/builtins.go
Package : std

Package std registers fen's four built-ins as ordinary Function values
whose body is a parser.InternalStmt. This mirrors the teacher's
std.Builtin/std.Runtime split in std/builtins.go, narrowed to the
small built-in surface fen's core actually calls for — print, Object,
List, map — instead of the teacher's much larger standard library
(math, json, regex, http, time, crypto, ...), which has no home in
fen's language core and is dropped (see DESIGN.md).
*/
package std

import (
	"fmt"
	"io"

	"github.com/fen-lang/fen/function"
	"github.com/fen-lang/fen/objects"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/scope"
)

// Register declares the four built-ins in env's current frame,
// writing print's output to w. Grounded on the original Rust
// builtin.rs::create_builtins, adapted to fen's Value/StmtResult
// shapes.
func Register(env *scope.Environment, w io.Writer) {
	env.Declare("print", internal("print", []string{"target"}, printFn(w)))
	env.Declare("Object", internal("Object", nil, objectFn))
	env.Declare("List", internal("List", []string{"size"}, listFn))
	env.Declare("map", internal("map", []string{"func", "list"}, mapFn))
}

// internal wraps a host function as a Function value whose body is a
// parser.InternalStmt, so the evaluator can call it exactly like a
// user-defined function.
func internal(name string, params []string, fn parser.InternalFn) *function.Function {
	return &function.Function{
		Name:   name,
		Params: params,
		Body:   &parser.InternalStmt{Fn: fn},
	}
}

func ok(v objects.Value) (objects.StmtResult, *objects.RuntimeError) {
	return objects.Normal(v), nil
}

func fail(err *objects.RuntimeError) (objects.StmtResult, *objects.RuntimeError) {
	return objects.StmtResult{}, err
}

// printFn writes target's display form followed by a newline, and
// returns Unit.
func printFn(w io.Writer) parser.InternalFn {
	return func(rt objects.Runtime, args []objects.Value) (objects.StmtResult, *objects.RuntimeError) {
		target := arg(args, 0)
		fmt.Fprintln(w, target.Inspect())
		return ok(objects.Unit)
	}
}

// objectFn returns a new, empty Object.
func objectFn(rt objects.Runtime, args []objects.Value) (objects.StmtResult, *objects.RuntimeError) {
	return ok(objects.NewObject())
}

// listFn returns a new List of the requested length, filled with None.
func listFn(rt objects.Runtime, args []objects.Value) (objects.StmtResult, *objects.RuntimeError) {
	size, isNum := arg(args, 0).(*objects.Number)
	if !isNum {
		return fail(objects.NewOtherError(arg(args, 0), "List(size) requires a number"))
	}
	n := int(size.Value)
	if n < 0 {
		n = 0
	}
	elements := make([]objects.Value, n)
	for i := range elements {
		elements[i] = objects.None
	}
	return ok(&objects.List{Elements: elements})
}

// mapFn applies func to every element of list, in order, via rt.Call,
// and returns a new list of the results.
func mapFn(rt objects.Runtime, args []objects.Value) (objects.StmtResult, *objects.RuntimeError) {
	fn, isFn := arg(args, 0).(*function.Function)
	if !isFn {
		return fail(objects.NewOtherError(arg(args, 0), "map(func, list) requires a function"))
	}
	list, isList := arg(args, 1).(*objects.List)
	if !isList {
		return fail(objects.NewOtherError(arg(args, 1), "map(func, list) requires a list"))
	}

	mapped := make([]objects.Value, len(list.Elements))
	for i, el := range list.Elements {
		result, err := rt.Call(fn, []objects.Value{el})
		if err != nil {
			return fail(err)
		}
		mapped[i] = result
	}
	return ok(&objects.List{Elements: mapped})
}

func arg(args []objects.Value, i int) objects.Value {
	if i < len(args) {
		return args[i]
	}
	return objects.None
}
