/*
File    : fen/eval/statements.go
Package : eval
*/
package eval

import (
	"github.com/fen-lang/fen/function"
	"github.com/fen-lang/fen/objects"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/scope"
)

// execStmt evaluates stmt against env by dispatching on its concrete
// node type. args is only consulted when stmt is a *parser.InternalStmt
// (a built-in's body); every other statement type ignores it.
func (e *Evaluator) execStmt(stmt parser.Stmt, env *scope.Environment, args []objects.Value) (objects.StmtResult, *objects.RuntimeError) {
	switch s := stmt.(type) {
	case *parser.VarDeclStmt:
		return e.execVarDecl(s, env)
	case *parser.AssignStmt:
		return e.execAssign(s, env)
	case *parser.IfStmt:
		return e.execIf(s, env)
	case *parser.WhileStmt:
		return e.execWhile(s, env)
	case *parser.FunctionDeclStmt:
		return e.execFunctionDecl(s, env)
	case *parser.ReturnStmt:
		return e.execReturn(s, env)
	case *parser.BlockStmt:
		return e.execBlock(s, env)
	case *parser.ExprStmt:
		return e.execExprStmt(s, env)
	case *parser.InternalStmt:
		return s.Fn(e, args)
	default:
		return objects.StmtResult{}, objects.NewOtherError(nil, "unknown statement type %T", stmt)
	}
}

// execVarDecl implements `VarDecl{ names, initializer }`: evaluate
// initializer (or None), declare each name with the value, result
// Normal(Unit).
func (e *Evaluator) execVarDecl(s *parser.VarDeclStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	var value objects.Value = objects.None
	if s.Initializer != nil {
		v, err := e.evalExpr(s.Initializer, env)
		if err != nil {
			return objects.StmtResult{}, err
		}
		value = v
	}
	for _, name := range s.Names {
		env.Declare(name, value)
	}
	return objects.Normal(objects.Unit), nil
}

// execIf implements `If{ cond, then, else? }`. A condition that is
// not exactly Boolean(true) falls through as not-true; there is no
// truthiness coercion for other value types.
func (e *Evaluator) execIf(s *parser.IfStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	cond, err := e.evalExpr(s.Cond, env)
	if err != nil {
		return objects.StmtResult{}, err
	}
	if isTrue(cond) {
		return e.execStmt(s.Then, env, nil)
	}
	if s.Else != nil {
		return e.execStmt(s.Else, env, nil)
	}
	return objects.Normal(objects.Unit), nil
}

// execWhile implements `While{ cond, body }`: repeatedly execute body
// while cond is Boolean(true). A Return from the body propagates
// immediately without re-checking cond.
func (e *Evaluator) execWhile(s *parser.WhileStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	for {
		cond, err := e.evalExpr(s.Cond, env)
		if err != nil {
			return objects.StmtResult{}, err
		}
		if !isTrue(cond) {
			return objects.Normal(objects.Unit), nil
		}
		result, err := e.execStmt(s.Body, env, nil)
		if err != nil {
			return objects.StmtResult{}, err
		}
		if result.IsReturn() {
			return result, nil
		}
	}
}

// execFunctionDecl implements `FunctionDecl{ name, params, body }`: a
// brief enter/exit guarantees the captured frame is distinct from the
// declaring scope, so recursive calls do not alias parameter
// bindings.
func (e *Evaluator) execFunctionDecl(s *parser.FunctionDeclStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	env.Enter()
	fn := &function.Function{Name: s.Name, Params: s.Params, Body: s.Body, Captured: env.Current}
	env.Exit()
	env.Declare(s.Name, fn)
	return objects.Normal(objects.Unit), nil
}

// execReturn implements `Return{ expr }`.
func (e *Evaluator) execReturn(s *parser.ReturnStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	v, err := e.evalExpr(s.Expr, env)
	if err != nil {
		return objects.StmtResult{}, err
	}
	return objects.Returning(v), nil
}

// execBlock implements `Block{ stmts }`: enter a fresh frame, run
// statements in order, exit on every path (success, error, or an
// in-flight Return) so scope brackets stay balanced.
func (e *Evaluator) execBlock(s *parser.BlockStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	env.Enter()
	for _, stmt := range s.Stmts {
		result, err := e.execStmt(stmt, env, nil)
		if err != nil {
			env.Exit()
			return objects.StmtResult{}, err
		}
		if result.IsReturn() {
			env.Exit()
			return result, nil
		}
	}
	env.Exit()
	return objects.Normal(objects.Unit), nil
}

// execExprStmt implements `ExprStmt{ expr }`.
func (e *Evaluator) execExprStmt(s *parser.ExprStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	v, err := e.evalExpr(s.Expr, env)
	if err != nil {
		return objects.StmtResult{}, err
	}
	return objects.Normal(v), nil
}

// isTrue reports whether v is exactly Boolean(true).
func isTrue(v objects.Value) bool {
	b, ok := v.(*objects.Boolean)
	return ok && b.Value
}
