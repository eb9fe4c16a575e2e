package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/atack/script/types"
)

var operatorSymbols = map[types.TokenKind]string{
	types.MUL:  "*",
	types.DIV:  "/",
	types.MOD:  "%",
	types.ADD:  "+",
	types.SUB:  "-",
	types.SHL:  "<<",
	types.SHR:  ">>",
	types.GT:   ">",
	types.LT:   "<",
	types.GEQ:  ">=",
	types.LEQ:  "<=",
	types.EQ:   "==",
	types.NEQ:  "!=",
	types.BAND: "&",
	types.XOR:  "^",
	types.BOR:  "|",
	types.AND:  "&&",
	types.OR:   "||",
}

func operatorSymbol(k types.TokenKind) string {
	if sym, ok := operatorSymbols[k]; ok {
		return sym
	}
	return k.String()
}

// String renders n as an S-expression, e.g. (* (+ 1 2) 3).
func String(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func list(sb *strings.Builder, head string, parts ...func()) {
	sb.WriteString("(")
	sb.WriteString(head)
	for _, part := range parts {
		sb.WriteString(" ")
		part()
	}
	sb.WriteString(")")
}

func write(sb *strings.Builder, n Node) {
	node := func(n Node) func() {
		return func() { write(sb, n) }
	}
	text := func(s string) func() {
		return func() { sb.WriteString(s) }
	}

	switch v := n.(type) {
	case Var:
		sb.WriteString(v.Name)
	case Lit:
		switch lit := v.Literal.(type) {
		case Integer:
			sb.WriteString(strconv.FormatInt(int64(lit), 10))
		case StringLiteral:
			sb.WriteString(string(lit))
		case Boolean:
			sb.WriteString(strconv.FormatBool(bool(lit)))
		default:
			panic(fmt.Sprintf("unhandled literal %T", lit))
		}
	case MemberAccess:
		list(sb, ".", node(v.Object), text(v.Member))
	case Call:
		parts := []func(){node(v.Callee)}
		for _, arg := range v.Arguments {
			parts = append(parts, node(arg))
		}
		list(sb, "call", parts...)
	case BinaryOperation:
		list(sb, operatorSymbol(v.Operator), node(v.Left), node(v.Right))
	case Empty:
		list(sb, "empty")
	case Block:
		var parts []func()
		for _, stmt := range v {
			parts = append(parts, node(stmt))
		}
		list(sb, "block", parts...)
	case Assignment:
		list(sb, "=", node(v.Target), node(v.Value))
	case VariableDeclaration:
		list(sb, "var", text(v.Name), node(v.Value))
	case GlobalDeclaration:
		list(sb, "global", text(v.Name), node(v.Value))
	case ElseIf:
		list(sb, "elseif", node(v.Condition), node(v.Body))
	case If:
		parts := []func(){node(v.Condition), node(v.Body)}
		for _, clause := range v.ElseIfs {
			parts = append(parts, node(clause))
		}
		if v.Else != nil {
			parts = append(parts, func() { list(sb, "else", node(v.Else)) })
		}
		list(sb, "if", parts...)
	case While:
		list(sb, "while", node(v.Condition), node(v.Body))
	case Return:
		list(sb, "return", node(v.Value))
	case Break:
		list(sb, "break")
	case Continue:
		list(sb, "continue")
	case ExpressionStatement:
		write(sb, v.Expr)
	default:
		panic(fmt.Sprintf("unhandled node %T", n))
	}
}

// Dump writes a Go-syntax rendering of n, for debugging.
func Dump(w io.Writer, n Node) error {
	_, err := fmt.Fprintln(w, repr.String(n, repr.Indent("  ")))
	return err
}
