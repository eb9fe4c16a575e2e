package ast

import "github.com/atack/script/types"

// Node is implemented by every AST variant. The set is closed: consumers
// switch over the concrete types below.
type Node interface {
	is_Node()
}

type Expression interface {
	Node
	is_Expression()
}

type Statement interface {
	Node
	is_Statement()
}

type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitTrue
	LitFalse
)

func (k LiteralKind) String() string {
	switch k {
	case LitNumber:
		return "number"
	case LitString:
		return "string"
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	}
	return "unknown"
}

type Literal interface {
	is_Literal()
}
type Integer int64

func (v Integer) is_Literal() {}

// StringLiteral keeps both delimiters exactly as written in the source.
type StringLiteral string

func (v StringLiteral) is_Literal() {}

// Unquote strips the delimiters.
func (v StringLiteral) Unquote() string {
	s := string(v)
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

type Boolean bool

func (v Boolean) is_Literal() {}

type Var struct {
	Name string
}

func (v Var) is_Node()       {}
func (v Var) is_Expression() {}

type Lit struct {
	Kind LiteralKind
	Literal
}

func (v Lit) is_Node()       {}
func (v Lit) is_Expression() {}

type MemberAccess struct {
	Object Expression
	Member string
}

func (v MemberAccess) is_Node()       {}
func (v MemberAccess) is_Expression() {}

type Call struct {
	Callee    Expression
	Arguments []Expression
}

func (v Call) is_Node()       {}
func (v Call) is_Expression() {}

type BinaryOperation struct {
	Left     Expression
	Operator types.TokenKind
	Right    Expression
}

func (v BinaryOperation) is_Node()       {}
func (v BinaryOperation) is_Expression() {}

type Empty struct{}

func (v Empty) is_Node()      {}
func (v Empty) is_Statement() {}

// Block is never empty after parsing; an empty body holds one Empty.
type Block []Statement

func (v Block) is_Node()      {}
func (v Block) is_Statement() {}

type Assignment struct {
	Target Expression
	Value  Expression
}

func (v Assignment) is_Node()      {}
func (v Assignment) is_Statement() {}

type VariableDeclaration struct {
	Name  string
	Value Expression
}

func (v VariableDeclaration) is_Node()      {}
func (v VariableDeclaration) is_Statement() {}

type GlobalDeclaration struct {
	Name  string
	Value Expression
}

func (v GlobalDeclaration) is_Node()      {}
func (v GlobalDeclaration) is_Statement() {}

type ElseIf struct {
	Condition Expression
	Body      Block
}

func (v ElseIf) is_Node() {}

type If struct {
	Condition Expression
	Body      Block
	ElseIfs   []ElseIf
	// Else is nil when there is no else branch.
	Else Block
}

func (v If) is_Node()      {}
func (v If) is_Statement() {}

type While struct {
	Condition Expression
	Body      Block
}

func (v While) is_Node()      {}
func (v While) is_Statement() {}

type Return struct {
	Value Expression
}

func (v Return) is_Node()      {}
func (v Return) is_Statement() {}

type Break struct{}

func (v Break) is_Node()      {}
func (v Break) is_Statement() {}

type Continue struct{}

func (v Continue) is_Node()      {}
func (v Continue) is_Statement() {}

// ExpressionStatement is a primary expression used on its own, such as a
// method call.
type ExpressionStatement struct {
	Expr Expression
}

func (v ExpressionStatement) is_Node()      {}
func (v ExpressionStatement) is_Statement() {}
