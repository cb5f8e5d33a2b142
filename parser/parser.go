/*
File    : fen/parser/parser.go
Package : parser

Package parser implements a recursive-descent parser for fen. Unlike
the teacher's Pratt parser with per-token-type function tables, fen's
grammar is small and fixed, so precedence is expressed directly as a
chain of mutually recursive methods: comparison → addition →
multiplication → factor → primary, each right-associative at its own
level.
*/
package parser

import (
	"strconv"

	"github.com/fen-lang/fen/lexer"
	"github.com/fen-lang/fen/objects"
)

// Parser holds a single-token lookahead over an indexed token buffer
// produced by the lexer ahead of time.
type Parser struct {
	tokens []lexer.Token
	pos    int

	// Errors accumulates structured parse failures. The grammar stops
	// at the first one, but the field is a slice (not a single value)
	// so a caller embedding fen in a larger tool can grow multi-error
	// recovery later without changing the shape.
	Errors []*ParserError
}

// NewParser tokenizes src and returns a Parser ready to call
// Parse(). A lexer error is reported the same way a parse error is:
// appended to Errors, with nothing left to parse.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	tokens, err := lex.Tokenize()
	par := &Parser{Errors: make([]*ParserError, 0)}
	if err != nil {
		par.Errors = append(par.Errors, &ParserError{Kind: Unexpected, Expected: err.Error()})
		par.tokens = []lexer.Token{{Type: lexer.EOF_TYPE}}
		return par
	}
	par.tokens = append(tokens, lexer.Token{Type: lexer.EOF_TYPE})
	return par
}

// current returns the token at the parser's position.
func (par *Parser) current() lexer.Token {
	return par.tokens[par.pos]
}

// peekNext returns the token one past the current position, or the
// final EOF token if already there.
func (par *Parser) peekNext() lexer.Token {
	if par.pos+1 >= len(par.tokens) {
		return par.tokens[len(par.tokens)-1]
	}
	return par.tokens[par.pos+1]
}

// advance moves the parser forward by one token.
func (par *Parser) advance() {
	if par.pos < len(par.tokens)-1 {
		par.pos++
	}
}

// consume returns the current token and advances past it.
func (par *Parser) consume() lexer.Token {
	tok := par.current()
	par.advance()
	return tok
}

// shouldBe asserts the current token has the given kind, consuming it
// on success. On mismatch it returns a ParserError instead of
// advancing.
func (par *Parser) shouldBe(kind lexer.TokenType, description string) (lexer.Token, *ParserError) {
	tok := par.current()
	if tok.Type == lexer.EOF_TYPE {
		return tok, NewEOFError()
	}
	if tok.Type != kind {
		return tok, NewUnexpectedError(tok, description)
	}
	return par.consume(), nil
}

func (par *Parser) fail(err *ParserError) {
	par.Errors = append(par.Errors, err)
}

// Parse parses the whole token stream into a program: a slice of
// top-level statements. Parsing stops at the first error, which is
// appended to Errors; the returned slice holds whatever statements
// were parsed successfully beforehand.
func (par *Parser) Parse() []Stmt {
	var stmts []Stmt
	for par.current().Type != lexer.EOF_TYPE {
		stmt, err := par.parseStatement()
		if err != nil {
			par.fail(err)
			return stmts
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// parseStatement dispatches on the leading token to the statement form
// it introduces: var declaration, if, while, return, block, function
// declaration, or a bare expression/assignment.
func (par *Parser) parseStatement() (Stmt, *ParserError) {
	switch par.current().Type {
	case lexer.VAR_KEY:
		return par.parseVarDecl()
	case lexer.IF_KEY:
		return par.parseIf()
	case lexer.WHILE_KEY:
		return par.parseWhile()
	case lexer.FUNC_KEY:
		return par.parseFunctionDecl()
	case lexer.RETURN_KEY:
		return par.parseReturn()
	case lexer.LEFT_BRACE:
		return par.parseBlock()
	default:
		return par.parseAssignOrExpr()
	}
}

// parseVarDecl implements `varDecl := 'var' Ident '=' expression`.
func (par *Parser) parseVarDecl() (Stmt, *ParserError) {
	par.advance() // consume 'var'
	nameTok, err := par.shouldBe(lexer.IDENTIFIER_ID, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := par.shouldBe(lexer.ASSIGN_OP, "'='"); err != nil {
		return nil, err
	}
	initializer, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	return &VarDeclStmt{Names: []string{nameTok.Literal}, Initializer: initializer}, nil
}

// parseIf implements `if := 'if' expression statement ('else' statement)?`.
func (par *Parser) parseIf() (Stmt, *ParserError) {
	par.advance() // consume 'if'
	cond, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Cond: cond, Then: then}
	if par.current().Type == lexer.ELSE_KEY {
		par.advance()
		elseStmt, err := par.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseStmt
	}
	return stmt, nil
}

// parseWhile implements `while := 'while' expression statement`.
func (par *Parser) parseWhile() (Stmt, *ParserError) {
	par.advance() // consume 'while'
	cond, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// parseFunctionDecl implements `funcDecl := 'fn' Ident '(' params? ')' statement`.
func (par *Parser) parseFunctionDecl() (Stmt, *ParserError) {
	par.advance() // consume 'fn'
	nameTok, err := par.shouldBe(lexer.IDENTIFIER_ID, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := par.shouldBe(lexer.LEFT_PAREN, "'('"); err != nil {
		return nil, err
	}
	var params []string
	if par.current().Type != lexer.RIGHT_PAREN {
		for {
			paramTok, err := par.shouldBe(lexer.IDENTIFIER_ID, "identifier")
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Literal)
			if par.current().Type != lexer.COMMA_DELIM {
				break
			}
			par.advance()
		}
	}
	if _, err := par.shouldBe(lexer.RIGHT_PAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	return &FunctionDeclStmt{Name: nameTok.Literal, Params: params, Body: body}, nil
}

// parseReturn implements `return := 'return' expression`.
func (par *Parser) parseReturn() (Stmt, *ParserError) {
	par.advance() // consume 'return'
	expr, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{Expr: expr}, nil
}

// parseBlock implements `block := '{' statement* '}'`.
func (par *Parser) parseBlock() (Stmt, *ParserError) {
	par.advance() // consume '{'
	var stmts []Stmt
	for par.current().Type != lexer.RIGHT_BRACE {
		if par.current().Type == lexer.EOF_TYPE {
			return nil, NewEOFError()
		}
		stmt, err := par.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	par.advance() // consume '}'
	return &BlockStmt{Stmts: stmts}, nil
}

// parseAssignOrExpr implements `assignOrExpr := expression ('=' expression)?`.
func (par *Parser) parseAssignOrExpr() (Stmt, *ParserError) {
	first, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if par.current().Type == lexer.ASSIGN_OP {
		par.advance()
		rhs, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Lhs: first, Rhs: rhs}, nil
	}
	return &ExprStmt{Expr: first}, nil
}

// parseExpression implements `expression := comparison`.
func (par *Parser) parseExpression() (Expr, *ParserError) {
	return par.parseComparison()
}

// parseComparison implements the right-associative comparison level.
func (par *Parser) parseComparison() (Expr, *ParserError) {
	left, err := par.parseAddition()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOp(par.current().Type)
	if !ok {
		return left, nil
	}
	par.advance()
	right, err := par.parseComparison()
	if err != nil {
		return nil, err
	}
	return &CmpExpr{Left: left, Right: right, Op: op}, nil
}

// parseAddition implements the right-associative additive level.
func (par *Parser) parseAddition() (Expr, *ParserError) {
	left, err := par.parseMultiplication()
	if err != nil {
		return nil, err
	}
	op, ok := additiveOp(par.current().Type)
	if !ok {
		return left, nil
	}
	par.advance()
	right, err := par.parseAddition()
	if err != nil {
		return nil, err
	}
	return &AddExpr{Left: left, Right: right, Op: op}, nil
}

// parseMultiplication implements the right-associative multiplicative level.
func (par *Parser) parseMultiplication() (Expr, *ParserError) {
	left, err := par.parseFactor()
	if err != nil {
		return nil, err
	}
	op, ok := multiplicativeOp(par.current().Type)
	if !ok {
		return left, nil
	}
	par.advance()
	right, err := par.parseMultiplication()
	if err != nil {
		return nil, err
	}
	return &MulExpr{Left: left, Right: right, Op: op}, nil
}

// parseFactor implements `factor := primary suffix*`: a primary
// expression followed by any number of call/index/access suffixes,
// chained left to right.
func (par *Parser) parseFactor() (Expr, *ParserError) {
	expr, err := par.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch par.current().Type {
		case lexer.LEFT_PAREN:
			par.advance()
			var args []Expr
			if par.current().Type != lexer.RIGHT_PAREN {
				for {
					arg, err := par.parseExpression()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if par.current().Type != lexer.COMMA_DELIM {
						break
					}
					par.advance()
				}
			}
			if _, err := par.shouldBe(lexer.RIGHT_PAREN, "')'"); err != nil {
				return nil, err
			}
			expr = &CallExpr{Callee: expr, Args: args}
		case lexer.LEFT_BRACKET:
			par.advance()
			idx, err := par.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := par.shouldBe(lexer.RIGHT_BRACKET, "']'"); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Target: expr, Index: idx}
		case lexer.DOT_OP:
			par.advance()
			fieldTok, err := par.shouldBe(lexer.IDENTIFIER_ID, "identifier")
			if err != nil {
				return nil, err
			}
			expr = &AccessExpr{Target: expr, Field: fieldTok.Literal}
		default:
			return expr, nil
		}
	}
}

// parsePrimary implements `primary := Number | String | Boolean |
// 'null' | Ident | '(' expression ')'`.
func (par *Parser) parsePrimary() (Expr, *ParserError) {
	tok := par.current()
	switch tok.Type {
	case lexer.INT_LIT:
		par.advance()
		n, convErr := strconv.ParseFloat(tok.Literal, 64)
		if convErr != nil {
			return nil, NewUnexpectedError(tok, "numeric literal")
		}
		return &ValueExpr{Value: &objects.Number{Value: n}}, nil
	case lexer.STRING_LIT:
		par.advance()
		return &ValueExpr{Value: &objects.String{Chars: tok.Literal}}, nil
	case lexer.TRUE_KEY:
		par.advance()
		return &ValueExpr{Value: &objects.Boolean{Value: true}}, nil
	case lexer.FALSE_KEY:
		par.advance()
		return &ValueExpr{Value: &objects.Boolean{Value: false}}, nil
	case lexer.NULL_KEY:
		par.advance()
		return &ValueExpr{Value: objects.None}, nil
	case lexer.IDENTIFIER_ID:
		par.advance()
		return &VariableExpr{Name: tok.Literal}, nil
	case lexer.LEFT_PAREN:
		par.advance()
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := par.shouldBe(lexer.RIGHT_PAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.EOF_TYPE:
		return nil, NewEOFError()
	default:
		return nil, NewUnexpectedError(tok, "expression")
	}
}

func comparisonOp(t lexer.TokenType) (BinOp, bool) {
	switch t {
	case lexer.EQ_OP:
		return OpEq, true
	case lexer.NE_OP:
		return OpNeq, true
	case lexer.LT_OP:
		return OpLt, true
	case lexer.GT_OP:
		return OpGt, true
	case lexer.LE_OP:
		return OpLe, true
	case lexer.GE_OP:
		return OpGe, true
	default:
		return "", false
	}
}

func additiveOp(t lexer.TokenType) (BinOp, bool) {
	switch t {
	case lexer.PLUS_OP:
		return OpAdd, true
	case lexer.MINUS_OP:
		return OpSub, true
	default:
		return "", false
	}
}

func multiplicativeOp(t lexer.TokenType) (BinOp, bool) {
	switch t {
	case lexer.MUL_OP:
		return OpMul, true
	case lexer.DIV_OP:
		return OpDiv, true
	default:
		return "", false
	}
}
