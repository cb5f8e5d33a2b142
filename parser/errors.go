/*
File    : fen/parser/errors.go
Package : parser
*/
package parser

import (
	"fmt"

	"github.com/fen-lang/fen/lexer"
)

// ParserErrorKind tags the two parse-failure shapes: the token stream
// running out, or a token of the wrong kind being found.
type ParserErrorKind int

const (
	EOF ParserErrorKind = iota
	Unexpected
)

// ParserError is a structured parse failure: either the token stream
// ran out (EOF), or a token was found where a different kind was
// required (Unexpected).
type ParserError struct {
	Kind     ParserErrorKind
	Token    *lexer.Token // nil when Kind is EOF, and for a lexer error recorded by NewParser
	Expected string       // for a lexer error, the lexer's own message
}

// NewUnexpectedError reports that token was found where expected was required.
func NewUnexpectedError(token lexer.Token, expected string) *ParserError {
	return &ParserError{Kind: Unexpected, Token: &token, Expected: expected}
}

// NewEOFError reports that the token stream was exhausted.
func NewEOFError() *ParserError {
	return &ParserError{Kind: EOF}
}

func (e *ParserError) Error() string {
	switch e.Kind {
	case EOF:
		return "reached end of input while parsing"
	case Unexpected:
		if e.Token != nil {
			return fmt.Sprintf("line %d: expected %s, found %s", e.Token.Line, e.Expected, e.Token.Type)
		}
		return e.Expected
	default:
		return "parse error"
	}
}
