/*
File    : fen/objects/values.go
Package : objects

Package objects defines fen's runtime value model: the tagged variant
of values a fen program can hold while it runs, and the small set of
cross-cutting types (RuntimeError, StmtResult, Runtime) that let the
evaluator, the built-ins, and the function package talk to each other
without an import cycle.
*/
package objects

import (
	"strconv"
	"strings"
)

// ValueType names a runtime value's variant, used for type checks and
// error messages throughout the evaluator.
type ValueType string

const (
	NumberType   ValueType = "number"
	BooleanType  ValueType = "boolean"
	StringType   ValueType = "string"
	FunctionType ValueType = "function"
	ObjectType   ValueType = "object"
	ListType     ValueType = "list"
	NoneType     ValueType = "none"
	UnitType     ValueType = "unit"
)

// Value is the interface every fen runtime value implements. None and
// Unit are plain singleton values. Number and Boolean are held behind
// a pointer but never changed after construction, so they act as
// plain values; String, Object, List, and function.Function are held
// behind a pointer so that every holder shares the same underlying
// data.
type Value interface {
	Type() ValueType
	Inspect() string
}

// Number is a 64-bit float, fen's only numeric type.
type Number struct {
	Value float64
}

func (n *Number) Type() ValueType { return NumberType }

func (n *Number) Inspect() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Boolean is true or false.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BooleanType }

func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// String is a shared, mutable character sequence. fen's built-in
// surface never mutates one in place, but it is held behind a pointer
// so that a future mutating builtin would be observed by every holder.
type String struct {
	Chars string
}

func (s *String) Type() ValueType { return StringType }

func (s *String) Inspect() string { return s.Chars }

// List is an ordered, fixed-length, mutable-in-place sequence.
type List struct {
	Elements []Value
}

func (l *List) Type() ValueType { return ListType }

func (l *List) Inspect() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.Inspect())
	}
	b.WriteByte(']')
	return b.String()
}

// Object is a mutable mapping from field name to value, shared by
// reference. Field order is not significant to the language, but
// Inspect renders fields in insertion order for stable output.
type Object struct {
	Fields map[string]Value
	order  []string
}

// NewObject returns a new, empty Object.
func NewObject() *Object {
	return &Object{Fields: make(map[string]Value)}
}

func (o *Object) Type() ValueType { return ObjectType }

// Set stores value under name, remembering insertion order the first
// time name is seen.
func (o *Object) Set(name string, value Value) {
	if _, ok := o.Fields[name]; !ok {
		o.order = append(o.order, name)
	}
	o.Fields[name] = value
}

// Get looks up a field by name.
func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.Fields[name]
	return v, ok
}

func (o *Object) Inspect() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, name := range o.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(o.Fields[name].Inspect())
	}
	if len(o.order) > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// none is the absence produced by an uninitialized var. It has a
// single shared instance since it carries no state.
type none struct{}

func (none) Type() ValueType { return NoneType }
func (none) Inspect() string { return "null" }

// None is the singleton absent value.
var None Value = none{}

// unit is the result of statements and side-effectful calls.
type unit struct{}

func (unit) Type() ValueType { return UnitType }
func (unit) Inspect() string { return "()" }

// Unit is the singleton unit value.
var Unit Value = unit{}
