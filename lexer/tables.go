package lexer

import (
	"strings"

	"github.com/atack/script/types"
)

var operators = map[string]types.TokenKind{
	"=":  types.ASSIGN,
	"+":  types.ADD,
	"-":  types.SUB,
	"*":  types.MUL,
	"/":  types.DIV,
	"%":  types.MOD,
	"+=": types.ADD_ASSIGN,
	"-=": types.SUB_ASSIGN,
	"*=": types.MUL_ASSIGN,
	"/=": types.DIV_ASSIGN,
	"%=": types.MOD_ASSIGN,
	"++": types.INC,
	"--": types.DEC,
	"==": types.EQ,
	"!=": types.NEQ,
	">":  types.GT,
	"<":  types.LT,
	">=": types.GEQ,
	"<=": types.LEQ,
	"&&": types.AND,
	"||": types.OR,
	"!":  types.NOT,
	"&":  types.BAND,
	"|":  types.BOR,
	"^":  types.XOR,
	"~":  types.BNOT,
	"<<": types.SHL,
	">>": types.SHR,
}

var punctuation = map[rune]types.TokenKind{
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	'[': types.LBRACKET,
	']': types.RBRACKET,
	';': types.SEMICOLON,
	'.': types.DOT,
	',': types.COMMA,
}

var statements = map[string]types.TokenKind{
	"if":       types.IF,
	"elseif":   types.ELSEIF,
	"else":     types.ELSE,
	"for":      types.FOR,
	"while":    types.WHILE,
	"switch":   types.SWITCH,
	"case":     types.CASE,
	"default":  types.DEFAULT,
	"break":    types.BREAK,
	"continue": types.CONTINUE,
	"return":   types.RETURN,
}

var dataTypes = map[string]types.TokenKind{
	"var":    types.VAR,
	"const":  types.CONST,
	"global": types.GLOBAL,
	"number": types.VARTYPE,
	"string": types.VARTYPE,
	"bool":   types.VARTYPE,
}

func isTypeName(s string) bool {
	return s == "number" || s == "string" || s == "bool"
}

// OperatorKind looks up a one or two character operator.
func OperatorKind(op string) (types.TokenKind, bool) {
	kind, ok := operators[op]
	return kind, ok
}

func PunctuationKind(r rune) (types.TokenKind, bool) {
	kind, ok := punctuation[r]
	return kind, ok
}

func StatementKind(word string) (types.TokenKind, bool) {
	kind, ok := statements[word]
	return kind, ok
}

// DataTypeKind classifies declaration keywords and bare type names.
func DataTypeKind(word string) (types.TokenKind, bool) {
	kind, ok := dataTypes[word]
	return kind, ok
}

func BooleanKind(word string) (types.TokenKind, bool) {
	switch word {
	case "true":
		return types.TRUE, true
	case "false":
		return types.FALSE, true
	}
	return types.UNKNOWN, false
}

// IsNumber reports whether word is a non-empty run of ASCII digits.
func IsNumber(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}

// TypedVariableKind matches name<type> where type is number, string or bool.
func TypedVariableKind(word string) (types.TokenKind, bool) {
	open := strings.IndexByte(word, '<')
	if open < 0 || !strings.HasSuffix(word, ">") {
		return types.UNKNOWN, false
	}
	if isTypeName(word[open+1 : len(word)-1]) {
		return types.VAR, true
	}
	return types.UNKNOWN, false
}

// Classify assigns a kind to a completed word. Earlier rules win.
func Classify(word string) types.TokenKind {
	if kind, ok := TypedVariableKind(word); ok {
		return kind
	}
	if kind, ok := DataTypeKind(word); ok {
		return kind
	}
	if IsNumber(word) {
		return types.NUMBER
	}
	if kind, ok := StatementKind(word); ok {
		return kind
	}
	if kind, ok := BooleanKind(word); ok {
		return kind
	}
	return types.IDENT
}
