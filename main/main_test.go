/*
File    : fen/main/main_test.go
*/
package main

import (
	"bytes"
	"testing"

	"github.com/fen-lang/fen/eval"
	"github.com/fen-lang/fen/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain_RunsSampleProgram exercises the same lexer/parser/evaluator
// pipeline main() wires together, end to end, against the arithmetic
// and precedence sample from the language's boundary behaviors.
func TestMain_RunsSampleProgram(t *testing.T) {
	p := parser.NewParser("print(1 + 2 * 3)")
	stmts := p.Parse()
	require.Empty(t, p.Errors)

	var buf bytes.Buffer
	e := eval.NewEvaluatorWithWriter(&buf)
	_, err := e.Run(stmts)
	require.Nil(t, err)
	assert.Equal(t, "7\n", buf.String())
}

// TestMain_UndefinedVariableReportsError mirrors the CLI's contract:
// a runtime error is produced, with a kind and message suitable for a
// single human-readable line.
func TestMain_UndefinedVariableReportsError(t *testing.T) {
	p := parser.NewParser("print(y)")
	stmts := p.Parse()
	require.Empty(t, p.Errors)

	e := eval.NewEvaluator()
	_, err := e.Run(stmts)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "y")
}
