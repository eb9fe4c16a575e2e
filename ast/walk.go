package ast

import "fmt"

// Walk visits n and its children depth first, in source order. Children of
// a node are skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}

	switch v := n.(type) {
	case Var, Lit, Empty, Break, Continue:
	case MemberAccess:
		Walk(v.Object, fn)
	case Call:
		Walk(v.Callee, fn)
		for _, arg := range v.Arguments {
			Walk(arg, fn)
		}
	case BinaryOperation:
		Walk(v.Left, fn)
		Walk(v.Right, fn)
	case Block:
		for _, stmt := range v {
			Walk(stmt, fn)
		}
	case Assignment:
		Walk(v.Target, fn)
		Walk(v.Value, fn)
	case VariableDeclaration:
		Walk(v.Value, fn)
	case GlobalDeclaration:
		Walk(v.Value, fn)
	case ElseIf:
		Walk(v.Condition, fn)
		Walk(v.Body, fn)
	case If:
		Walk(v.Condition, fn)
		Walk(v.Body, fn)
		for _, clause := range v.ElseIfs {
			Walk(clause, fn)
		}
		if v.Else != nil {
			Walk(v.Else, fn)
		}
	case While:
		Walk(v.Condition, fn)
		Walk(v.Body, fn)
	case Return:
		Walk(v.Value, fn)
	case ExpressionStatement:
		Walk(v.Expr, fn)
	default:
		panic(fmt.Sprintf("unhandled node %T", n))
	}
}
