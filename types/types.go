package types

import (
	"fmt"
)

// Position is a character (rune) offset into the source text.
type Position int

func (p Position) String() string {
	return fmt.Sprintf("offset %d", int(p))
}

type TokenKind int

const (
	EOF TokenKind = iota
	UNKNOWN

	NUMBER
	STRING
	TRUE
	FALSE

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
	DOT
	COMMA

	IF
	ELSEIF
	ELSE
	FOR
	WHILE
	SWITCH
	CASE
	DEFAULT
	BREAK
	CONTINUE
	RETURN

	VAR
	VARTYPE
	CONST
	GLOBAL

	ASSIGN
	ADD
	SUB
	MUL
	DIV
	MOD
	ADD_ASSIGN
	SUB_ASSIGN
	MUL_ASSIGN
	DIV_ASSIGN
	MOD_ASSIGN
	INC
	DEC
	EQ
	NEQ
	GT
	LT
	GEQ
	LEQ
	AND
	OR
	NOT
	BAND
	BOR
	XOR
	BNOT
	SHL
	SHR

	IDENT
)

var kindNames = map[TokenKind]string{
	EOF:        "EOF",
	UNKNOWN:    "UNKNOWN",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	SEMICOLON:  "SEMICOLON",
	DOT:        "DOT",
	COMMA:      "COMMA",
	IF:         "IF",
	ELSEIF:     "ELSEIF",
	ELSE:       "ELSE",
	FOR:        "FOR",
	WHILE:      "WHILE",
	SWITCH:     "SWITCH",
	CASE:       "CASE",
	DEFAULT:    "DEFAULT",
	BREAK:      "BREAK",
	CONTINUE:   "CONTINUE",
	RETURN:     "RETURN",
	VAR:        "VAR",
	VARTYPE:    "VARTYPE",
	CONST:      "CONST",
	GLOBAL:     "GLOBAL",
	ASSIGN:     "ASSIGN",
	ADD:        "ADD",
	SUB:        "SUB",
	MUL:        "MUL",
	DIV:        "DIV",
	MOD:        "MOD",
	ADD_ASSIGN: "ADD_ASSIGN",
	SUB_ASSIGN: "SUB_ASSIGN",
	MUL_ASSIGN: "MUL_ASSIGN",
	DIV_ASSIGN: "DIV_ASSIGN",
	MOD_ASSIGN: "MOD_ASSIGN",
	INC:        "INC",
	DEC:        "DEC",
	EQ:         "EQ",
	NEQ:        "NEQ",
	GT:         "GT",
	LT:         "LT",
	GEQ:        "GEQ",
	LEQ:        "LEQ",
	AND:        "AND",
	OR:         "OR",
	NOT:        "NOT",
	BAND:       "BAND",
	BOR:        "BOR",
	XOR:        "XOR",
	BNOT:       "BNOT",
	SHL:        "SHL",
	SHR:        "SHR",
	IDENT:      "IDENT",
}

// String names the kind for diagnostics. The names are not a stable format.
func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

type Token struct {
	Value string
	Kind  TokenKind
	Pos   Position
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF at %s", t.Pos)
	}
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Value, t.Pos)
}

// Is reports whether the token is one of the given kinds.
func (t Token) Is(k ...TokenKind) bool {
	for _, kind := range k {
		if t.Kind == kind {
			return true
		}
	}
	return false
}
