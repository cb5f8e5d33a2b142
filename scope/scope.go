/*
File    : fen/scope/scope.go
Package : scope

Package scope implements fen's environment model: a parent-chained
list of frames, and a mutable handle (Environment) that walks that
chain as scopes are entered and exited. It is grounded on the
teacher's scope.Scope (github.com/akashmaji946/go-mix) and on the
original interpreter's Environment/Env split
(_examples/original_source/src/environment.rs), which is exactly this
two-level shape: a chain of frames (Env) plus a handle that can enter
and exit (Environment).
*/
package scope

import "github.com/fen-lang/fen/objects"

// Frame is one level of the environment chain: a binding map with an
// optional parent. Frames may be shared by multiple Environment
// handles — a function's captured frame survives the call that
// created it returning.
type Frame struct {
	vars   map[string]objects.Value
	Parent *Frame
}

// NewFrame creates a frame whose parent is the given frame (nil for a
// root frame).
func NewFrame(parent *Frame) *Frame {
	return &Frame{vars: make(map[string]objects.Value), Parent: parent}
}

// declare inserts or overwrites a binding in this frame only.
func (f *Frame) declare(name string, value objects.Value) {
	f.vars[name] = value
}

// lookup walks this frame, then its ancestors, returning the first
// binding found.
func (f *Frame) lookup(name string) (objects.Value, bool) {
	for frame := f; frame != nil; frame = frame.Parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// assign walks this frame, then its ancestors, for the first frame
// that already defines name, and overwrites it there.
func (f *Frame) assign(name string, value objects.Value) bool {
	for frame := f; frame != nil; frame = frame.Parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = value
			return true
		}
	}
	return false
}

// Environment is a handle referencing a current frame in a
// parent-chained list. Enter/Exit move the handle; Declare/Assign/
// Lookup operate relative to the current frame.
type Environment struct {
	Current *Frame
}

// NewEnvironment creates a handle pointing at a fresh root frame.
func NewEnvironment() *Environment {
	return &Environment{Current: NewFrame(nil)}
}

// NewEnvironmentAt creates a handle pointing directly at frame —
// used when a function call resumes evaluation inside the function's
// captured frame.
func NewEnvironmentAt(frame *Frame) *Environment {
	return &Environment{Current: frame}
}

// Enter pushes a fresh frame whose parent is the current frame.
func (e *Environment) Enter() {
	e.Current = NewFrame(e.Current)
}

// Exit moves the handle to the current frame's parent. Calling Exit
// on a root frame is a logic error: every Enter on a path must be
// balanced by exactly one Exit before the handle reaches the root
// again.
func (e *Environment) Exit() {
	if e.Current.Parent == nil {
		panic("scope: exit called with no parent frame")
	}
	e.Current = e.Current.Parent
}

// Declare inserts or overwrites a binding in the current frame only,
// shadowing any outer binding of the same name for the remainder of
// this scope.
func (e *Environment) Declare(name string, value objects.Value) {
	e.Current.declare(name, value)
}

// Assign updates name in the frame that defines it, searching from
// the current frame outward. It reports false if no frame defines
// name.
func (e *Environment) Assign(name string, value objects.Value) bool {
	return e.Current.assign(name, value)
}

// Lookup resolves name by walking frames current→root, returning the
// first binding found.
func (e *Environment) Lookup(name string) (objects.Value, bool) {
	return e.Current.lookup(name)
}
