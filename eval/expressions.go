/*
File    : fen/eval/expressions.go
Package : eval
*/
package eval

import (
	"github.com/fen-lang/fen/function"
	"github.com/fen-lang/fen/objects"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/scope"
)

// evalExpr evaluates expr against env by dispatching on its concrete
// node type.
func (e *Evaluator) evalExpr(expr parser.Expr, env *scope.Environment) (objects.Value, *objects.RuntimeError) {
	switch x := expr.(type) {
	case *parser.ValueExpr:
		return x.Value, nil
	case *parser.VariableExpr:
		v, ok := env.Lookup(x.Name)
		if !ok {
			return nil, &objects.RuntimeError{Kind: objects.UndefinedVariable, Message: x.Name}
		}
		return v, nil
	case *parser.MulExpr:
		return e.evalBinary(x.Left, x.Right, x.Op, env)
	case *parser.AddExpr:
		return e.evalBinary(x.Left, x.Right, x.Op, env)
	case *parser.CmpExpr:
		return e.evalBinary(x.Left, x.Right, x.Op, env)
	case *parser.CallExpr:
		return e.evalCall(x, env)
	case *parser.IndexExpr:
		return e.evalIndex(x, env)
	case *parser.AccessExpr:
		return e.evalAccess(x, env)
	default:
		return nil, objects.NewOtherError(nil, "unknown expression type %T", expr)
	}
}

// evalBinary evaluates left then right and dispatches on their
// runtime types: arithmetic and all six comparisons apply to
// Number/Number, == and != also apply to Boolean/Boolean, and any
// other pairing is InvalidOperation. Division by zero yields the host
// float's conventional result (±Inf or NaN), not an error.
func (e *Evaluator) evalBinary(leftExpr, rightExpr parser.Expr, op parser.BinOp, env *scope.Environment) (objects.Value, *objects.RuntimeError) {
	left, err := e.evalExpr(leftExpr, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(rightExpr, env)
	if err != nil {
		return nil, err
	}

	if ln, lok := left.(*objects.Number); lok {
		if rn, rok := right.(*objects.Number); rok {
			return numberOp(ln, rn, op)
		}
	}
	if lb, lok := left.(*objects.Boolean); lok {
		if rb, rok := right.(*objects.Boolean); rok {
			switch op {
			case parser.OpEq:
				return &objects.Boolean{Value: lb.Value == rb.Value}, nil
			case parser.OpNeq:
				return &objects.Boolean{Value: lb.Value != rb.Value}, nil
			}
		}
	}
	return nil, objects.NewInvalidOperationError(nil, "cannot apply %s to %s and %s", op, left.Inspect(), right.Inspect())
}

func numberOp(l, r *objects.Number, op parser.BinOp) (objects.Value, *objects.RuntimeError) {
	switch op {
	case parser.OpAdd:
		return &objects.Number{Value: l.Value + r.Value}, nil
	case parser.OpSub:
		return &objects.Number{Value: l.Value - r.Value}, nil
	case parser.OpMul:
		return &objects.Number{Value: l.Value * r.Value}, nil
	case parser.OpDiv:
		return &objects.Number{Value: l.Value / r.Value}, nil
	case parser.OpEq:
		return &objects.Boolean{Value: l.Value == r.Value}, nil
	case parser.OpNeq:
		return &objects.Boolean{Value: l.Value != r.Value}, nil
	case parser.OpLt:
		return &objects.Boolean{Value: l.Value < r.Value}, nil
	case parser.OpGt:
		return &objects.Boolean{Value: l.Value > r.Value}, nil
	case parser.OpLe:
		return &objects.Boolean{Value: l.Value <= r.Value}, nil
	case parser.OpGe:
		return &objects.Boolean{Value: l.Value >= r.Value}, nil
	default:
		return nil, objects.NewOtherError(nil, "unknown operator %s", op)
	}
}

// evalCall implements Call(callee, args): evaluate the callee and
// every argument in the caller's environment, then delegate to
// callFunction for the callee-side frame bracketing.
func (e *Evaluator) evalCall(x *parser.CallExpr, env *scope.Environment) (objects.Value, *objects.RuntimeError) {
	callee, err := e.evalExpr(x.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, isFn := callee.(*function.Function)
	if !isFn {
		return nil, objects.NewRuntimeError(objects.NotCallable, callee)
	}

	args := make([]objects.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.callFunction(fn, args)
}

// evalIndex implements Target[Index]: Target must be a List, Index a
// Number; a negative or out-of-range index is InvalidIndex rather than
// a panic.
func (e *Evaluator) evalIndex(x *parser.IndexExpr, env *scope.Environment) (objects.Value, *objects.RuntimeError) {
	target, err := e.evalExpr(x.Target, env)
	if err != nil {
		return nil, err
	}
	list, isList := target.(*objects.List)
	if !isList {
		return nil, objects.NewRuntimeError(objects.NotIndexable, target)
	}
	idxVal, err := e.evalExpr(x.Index, env)
	if err != nil {
		return nil, err
	}
	idx, isNum := idxVal.(*objects.Number)
	if !isNum {
		return nil, objects.NewRuntimeError(objects.InvalidIndex, idxVal)
	}
	i := int(idx.Value)
	if i < 0 || i >= len(list.Elements) {
		return nil, objects.NewRuntimeError(objects.InvalidIndex, idxVal)
	}
	return list.Elements[i], nil
}

// evalAccess implements Target.Field: Target must be an Object and
// must already have Field set.
func (e *Evaluator) evalAccess(x *parser.AccessExpr, env *scope.Environment) (objects.Value, *objects.RuntimeError) {
	target, err := e.evalExpr(x.Target, env)
	if err != nil {
		return nil, err
	}
	obj, isObj := target.(*objects.Object)
	if !isObj {
		return nil, objects.NewRuntimeError(objects.NotObject, target)
	}
	v, ok := obj.Get(x.Field)
	if !ok {
		return nil, &objects.RuntimeError{Kind: objects.PropertyNotFound, Target: target, Message: x.Field}
	}
	return v, nil
}
