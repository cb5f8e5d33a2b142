/*
File    : fen/parser/ast.go
Package : parser

The AST is a flat set of node types behind two marker interfaces
(Expr, Stmt), dispatched with a type switch in eval rather than a
visitor: a fixed, small set of node shapes reads more clearly as a
type switch than as a NodeVisitor with one method per node type, so
this departs from the teacher's double-dispatch design on purpose.
*/
package parser

import "github.com/fen-lang/fen/objects"

// Expr is any expression node.
type Expr interface{ exprNode() }

// Stmt is any statement node.
type Stmt interface{ stmtNode() }

// BinOp names the operator of a binary expression.
type BinOp string

const (
	OpAdd BinOp = "+"
	OpSub BinOp = "-"
	OpMul BinOp = "*"
	OpDiv BinOp = "/"
	OpEq  BinOp = "=="
	OpNeq BinOp = "!="
	OpLt  BinOp = "<"
	OpGt  BinOp = ">"
	OpLe  BinOp = "<="
	OpGe  BinOp = ">="
)

// ValueExpr embeds a literal runtime value directly as an expression
// (numbers, strings, booleans, null).
type ValueExpr struct {
	Value objects.Value
}

// VariableExpr reads a name from the environment.
type VariableExpr struct {
	Name string
}

// MulExpr is the multiplicative precedence level (* /), right-associative.
type MulExpr struct {
	Left, Right Expr
	Op          BinOp
}

// AddExpr is the additive precedence level (+ -), right-associative.
type AddExpr struct {
	Left, Right Expr
	Op          BinOp
}

// CmpExpr is the comparison precedence level (== != < > <= >=),
// right-associative.
type CmpExpr struct {
	Left, Right Expr
	Op          BinOp
}

// CallExpr applies Callee to Args.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

// IndexExpr reads Target[Index].
type IndexExpr struct {
	Target Expr
	Index  Expr
}

// AccessExpr reads Target.Field.
type AccessExpr struct {
	Target Expr
	Field  string
}

func (*ValueExpr) exprNode()    {}
func (*VariableExpr) exprNode() {}
func (*MulExpr) exprNode()      {}
func (*AddExpr) exprNode()      {}
func (*CmpExpr) exprNode()      {}
func (*CallExpr) exprNode()     {}
func (*IndexExpr) exprNode()    {}
func (*AccessExpr) exprNode()   {}

// VarDeclStmt declares Names, sharing one Initializer expression
// (the grammar only ever produces a single name, but the AST shape
// admits more).
type VarDeclStmt struct {
	Names       []string
	Initializer Expr // nil means initialize to None
}

// AssignStmt assigns the value of Rhs to the location named by Lhs.
// Lhs must be a *VariableExpr, *AccessExpr, or *IndexExpr; any other
// shape is a NotAssignable error at evaluation time, not at parse
// time.
type AssignStmt struct {
	Lhs Expr
	Rhs Expr
}

// IfStmt executes Then when Cond evaluates to Boolean(true), else
// Else (if present).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else clause
}

// WhileStmt repeatedly executes Body while Cond evaluates to
// Boolean(true).
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// ReturnStmt yields a Return(value) statement result.
type ReturnStmt struct {
	Expr Expr
}

// BlockStmt runs Stmts inside a fresh child scope.
type BlockStmt struct {
	Stmts []Stmt
}

// ExprStmt evaluates Expr for its value and side effects.
type ExprStmt struct {
	Expr Expr
}

// FunctionDeclStmt declares a named function in the enclosing frame.
type FunctionDeclStmt struct {
	Name   string
	Params []string
	Body   Stmt
}

// InternalFn is a host-provided function backing a built-in. It
// receives the arguments already evaluated in the caller's
// environment and the runtime to call back into user functions
// (needed by map), and returns a statement result directly.
type InternalFn func(rt objects.Runtime, args []objects.Value) (objects.StmtResult, *objects.RuntimeError)

// InternalStmt is the opaque body of a built-in Function: invoking it
// calls Fn against the current call's arguments.
type InternalStmt struct {
	Fn InternalFn
}

func (*VarDeclStmt) stmtNode()       {}
func (*AssignStmt) stmtNode()        {}
func (*IfStmt) stmtNode()            {}
func (*WhileStmt) stmtNode()         {}
func (*ReturnStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()         {}
func (*ExprStmt) stmtNode()          {}
func (*FunctionDeclStmt) stmtNode()  {}
func (*InternalStmt) stmtNode()      {}
