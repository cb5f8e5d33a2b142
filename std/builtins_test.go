/*
File    : fen/std/builtins_test.go
Package : std
*/
package std

import (
	"bytes"
	"testing"

	"github.com/fen-lang/fen/function"
	"github.com/fen-lang/fen/objects"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime is a minimal objects.Runtime that calls an
// InternalStmt-bodied Function directly, enough to exercise map
// without standing up the full evaluator.
type fakeRuntime struct{}

func (fakeRuntime) Call(fn objects.Value, args []objects.Value) (objects.Value, *objects.RuntimeError) {
	f := fn.(*function.Function)
	internal := f.Body.(*parser.InternalStmt)
	result, err := internal.Fn(fakeRuntime{}, args)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

func invoke(t *testing.T, env *scope.Environment, name string, args []objects.Value) objects.Value {
	t.Helper()
	v, ok := env.Lookup(name)
	require.True(t, ok)
	fn := v.(*function.Function)
	internal := fn.Body.(*parser.InternalStmt)
	result, err := internal.Fn(fakeRuntime{}, args)
	require.Nil(t, err)
	return result.Value
}

func TestRegister_Print(t *testing.T) {
	var buf bytes.Buffer
	env := scope.NewEnvironment()
	Register(env, &buf)

	result := invoke(t, env, "print", []objects.Value{&objects.Number{Value: 7}})
	assert.Equal(t, objects.Unit, result)
	assert.Equal(t, "7\n", buf.String())
}

func TestRegister_Object(t *testing.T) {
	env := scope.NewEnvironment()
	Register(env, &bytes.Buffer{})

	result := invoke(t, env, "Object", nil)
	obj, ok := result.(*objects.Object)
	require.True(t, ok)
	assert.Empty(t, obj.Fields)
}

func TestRegister_ListFillsWithNone(t *testing.T) {
	env := scope.NewEnvironment()
	Register(env, &bytes.Buffer{})

	result := invoke(t, env, "List", []objects.Value{&objects.Number{Value: 3}})
	list, ok := result.(*objects.List)
	require.True(t, ok)
	require.Len(t, list.Elements, 3)
	for _, el := range list.Elements {
		assert.Equal(t, objects.None, el)
	}
}

func TestRegister_ListRejectsNonNumber(t *testing.T) {
	env := scope.NewEnvironment()
	Register(env, &bytes.Buffer{})

	v, _ := env.Lookup("List")
	fn := v.(*function.Function)
	internal := fn.Body.(*parser.InternalStmt)
	_, err := internal.Fn(fakeRuntime{}, []objects.Value{&objects.Boolean{Value: true}})
	require.NotNil(t, err)
}

func TestRegister_MapAppliesFunctionInOrder(t *testing.T) {
	env := scope.NewEnvironment()
	Register(env, &bytes.Buffer{})

	dbl := &function.Function{
		Name: "dbl",
		Body: &parser.InternalStmt{Fn: func(rt objects.Runtime, args []objects.Value) (objects.StmtResult, *objects.RuntimeError) {
			n := args[0].(*objects.Number)
			return objects.Normal(&objects.Number{Value: n.Value * 2}), nil
		}},
	}
	list := &objects.List{Elements: []objects.Value{
		&objects.Number{Value: 1},
		&objects.Number{Value: 2},
		&objects.Number{Value: 3},
	}}

	result := invoke(t, env, "map", []objects.Value{dbl, list})
	mapped, ok := result.(*objects.List)
	require.True(t, ok)
	require.Len(t, mapped.Elements, 3)
	assert.Equal(t, 2.0, mapped.Elements[0].(*objects.Number).Value)
	assert.Equal(t, 4.0, mapped.Elements[1].(*objects.Number).Value)
	assert.Equal(t, 6.0, mapped.Elements[2].(*objects.Number).Value)
}
