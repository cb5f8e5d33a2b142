/*
File    : fen/eval/assign.go
Package : eval
*/
package eval

import (
	"github.com/fen-lang/fen/function"
	"github.com/fen-lang/fen/objects"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/scope"
)

// execAssign implements `Assign{ lhs, rhs }`: evaluate rhs once, then
// dispatch on lhs's shape. Assigning a Function into an Object field
// binds it to that object (the method-binding rule) via function.Bind.
func (e *Evaluator) execAssign(s *parser.AssignStmt, env *scope.Environment) (objects.StmtResult, *objects.RuntimeError) {
	value, err := e.evalExpr(s.Rhs, env)
	if err != nil {
		return objects.StmtResult{}, err
	}

	switch lhs := s.Lhs.(type) {
	case *parser.VariableExpr:
		if !env.Assign(lhs.Name, value) {
			return objects.StmtResult{}, &objects.RuntimeError{Kind: objects.UndefinedVariable, Message: lhs.Name}
		}
		return objects.Normal(objects.Unit), nil

	case *parser.AccessExpr:
		targetVal, err := e.evalExpr(lhs.Target, env)
		if err != nil {
			return objects.StmtResult{}, err
		}
		obj, isObj := targetVal.(*objects.Object)
		if !isObj {
			return objects.StmtResult{}, objects.NewRuntimeError(objects.NotObject, targetVal)
		}
		if fn, isFn := value.(*function.Function); isFn {
			value = function.Bind(fn, obj)
		}
		obj.Set(lhs.Field, value)
		return objects.Normal(objects.Unit), nil

	case *parser.IndexExpr:
		targetVal, err := e.evalExpr(lhs.Target, env)
		if err != nil {
			return objects.StmtResult{}, err
		}
		list, isList := targetVal.(*objects.List)
		if !isList {
			return objects.StmtResult{}, objects.NewRuntimeError(objects.NotIndexable, targetVal)
		}
		idxVal, err := e.evalExpr(lhs.Index, env)
		if err != nil {
			return objects.StmtResult{}, err
		}
		idx, isNum := idxVal.(*objects.Number)
		if !isNum {
			return objects.StmtResult{}, objects.NewRuntimeError(objects.InvalidIndex, idxVal)
		}
		i := int(idx.Value)
		if i < 0 || i >= len(list.Elements) {
			return objects.StmtResult{}, objects.NewRuntimeError(objects.InvalidIndex, idxVal)
		}
		list.Elements[i] = value
		return objects.Normal(objects.Unit), nil

	default:
		return objects.StmtResult{}, objects.NewRuntimeError(objects.NotAssignable, nil)
	}
}
