/*
File    : fen/eval/evaluator.go
Package : eval

Package eval walks fen's AST against an Environment, producing values
or *objects.RuntimeError. It dispatches statements and expressions
with a type switch over the flat parser.Stmt/parser.Expr node set,
rather than the teacher's double-dispatch NodeVisitor (see DESIGN.md).
*/
package eval

import (
	"io"
	"os"

	"github.com/fen-lang/fen/function"
	"github.com/fen-lang/fen/objects"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/scope"
	"github.com/fen-lang/fen/std"
)

// Evaluator holds the root environment and the output sink built-ins
// write to. It implements objects.Runtime so std's built-ins can call
// back into user functions (e.g. map) without importing eval.
type Evaluator struct {
	Env    *scope.Environment
	Writer io.Writer
}

// NewEvaluator returns an Evaluator with a fresh root environment and
// the four built-ins registered, writing to os.Stdout.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithWriter(os.Stdout)
}

// NewEvaluatorWithWriter is like NewEvaluator but writes print output
// to w — used by tests and by the REPL/server to capture or redirect
// output.
func NewEvaluatorWithWriter(w io.Writer) *Evaluator {
	env := scope.NewEnvironment()
	std.Register(env, w)
	return &Evaluator{Env: env, Writer: w}
}

// Run evaluates stmts top to bottom at the root environment. It
// returns the value of the last statement executed, mainly so a REPL
// can display it; a file-mode run ignores it. A top-level Return is
// treated like a top-level expression's value — there is no function
// boundary above the program to unwrap it, so the value is taken
// as-is.
func (e *Evaluator) Run(stmts []parser.Stmt) (objects.Value, *objects.RuntimeError) {
	var last objects.Value = objects.Unit
	for _, stmt := range stmts {
		result, err := e.execStmt(stmt, e.Env, nil)
		if err != nil {
			return nil, err
		}
		last = result.Value
	}
	return last, nil
}

// Call implements objects.Runtime: it invokes fn the same way a
// Call expression does, but with the argument expressions already
// reduced to values by the caller (std's map passes list elements
// directly).
func (e *Evaluator) Call(fn objects.Value, args []objects.Value) (objects.Value, *objects.RuntimeError) {
	f, isFn := fn.(*function.Function)
	if !isFn {
		return nil, objects.NewRuntimeError(objects.NotCallable, fn)
	}
	return e.callFunction(f, args)
}

// callFunction implements the callee side of a function call: enter a
// new frame on a handle pointing at the function's captured frame,
// bind parameters positionally, execute the body, unwrap Return, and
// exit.
func (e *Evaluator) callFunction(f *function.Function, args []objects.Value) (objects.Value, *objects.RuntimeError) {
	calleeEnv := scope.NewEnvironmentAt(f.Captured)
	calleeEnv.Enter()

	// Argument/parameter arity is unchecked: extra arguments are
	// discarded, missing ones leave the formal unbound.
	for i, param := range f.Params {
		if i < len(args) {
			calleeEnv.Declare(param, args[i])
		}
	}

	if internal, isInternal := f.Body.(*parser.InternalStmt); isInternal {
		result, err := internal.Fn(e, args)
		calleeEnv.Exit()
		if err != nil {
			return nil, err
		}
		return result.Value, nil
	}

	result, err := e.execStmt(f.Body, calleeEnv, nil)
	calleeEnv.Exit()
	if err != nil {
		return nil, err
	}
	if result.IsReturn() {
		return result.Value, nil
	}
	return result.Value, nil
}
