/*
File    : fen/scope/scope_test.go
Package : scope
*/
package scope

import (
	"testing"

	"github.com/fen-lang/fen/objects"
	"github.com/stretchr/testify/assert"
)

func num(v float64) *objects.Number { return &objects.Number{Value: v} }

func TestEnvironment_DeclareAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", num(10))

	v, ok := env.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v.(*objects.Number).Value)

	_, ok = env.Lookup("missing")
	assert.False(t, ok)
}

func TestEnvironment_ShadowingIsUndoneByExit(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", num(1))

	env.Enter()
	env.Declare("x", num(2))
	v, _ := env.Lookup("x")
	assert.Equal(t, 2.0, v.(*objects.Number).Value)
	env.Exit()

	v, _ = env.Lookup("x")
	assert.Equal(t, 1.0, v.(*objects.Number).Value)
}

func TestEnvironment_AssignUpdatesDefiningFrame(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", num(1))

	env.Enter()
	ok := env.Assign("x", num(99))
	assert.True(t, ok)
	env.Exit()

	v, _ := env.Lookup("x")
	assert.Equal(t, 99.0, v.(*objects.Number).Value)
}

func TestEnvironment_AssignUndeclaredFails(t *testing.T) {
	env := NewEnvironment()
	env.Enter()
	ok := env.Assign("never-declared", num(1))
	assert.False(t, ok)
}

func TestEnvironment_DeclareShadowsOnlyCurrentFrame(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", num(1))
	env.Enter()
	env.Declare("y", num(2))

	_, ok := env.Lookup("x")
	assert.True(t, ok, "inner frame should still see outer bindings")
}

func TestFrame_CapturedFrameSurvivesExit(t *testing.T) {
	env := NewEnvironment()
	env.Enter()
	captured := env.Current
	captured.declare("n", num(0))
	env.Exit()

	// the captured frame is no longer reachable from env, but a
	// function holding it directly still sees its bindings — this is
	// the mechanism closures rely on.
	v, ok := captured.lookup("n")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v.(*objects.Number).Value)
}
