package lexer

import (
	"testing"

	"github.com/alecthomas/repr"

	"github.com/atack/script/config"
	"github.com/atack/script/types"
)

func kinds(tokens []types.Token) []types.TokenKind {
	var ret []types.TokenKind
	for _, tok := range tokens {
		ret = append(ret, tok.Kind)
	}
	return ret
}

func sameKinds(a, b []types.TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVarDeclaration(t *testing.T) {
	tokens := Tokenize("var x = 1;")

	want := []types.Token{
		{Value: "var", Kind: types.VAR, Pos: 0},
		{Value: "x", Kind: types.IDENT, Pos: 4},
		{Value: "=", Kind: types.ASSIGN, Pos: 6},
		{Value: "1", Kind: types.NUMBER, Pos: 8},
		{Value: ";", Kind: types.SEMICOLON, Pos: 9},
		{Value: "", Kind: types.EOF, Pos: 10},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %s", len(tokens), len(want), repr.String(tokens))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tokens[i], want[i])
		}
	}
}

func TestEmitPositions(t *testing.T) {
	cfg := config.Defaults()
	cfg.Lexer.Positions = config.PositionsEmit
	tokens := NewLexer("var x = 1;", cfg).Tokenize()

	want := []types.Position{3, 5, 6, 9, 9, 10}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, pos := range want {
		if tokens[i].Pos != pos {
			t.Errorf("token %d (%s): got position %d, want %d", i, tokens[i].Value, tokens[i].Pos, pos)
		}
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []types.TokenKind
	}{
		{"", []types.TokenKind{types.EOF}},
		{"   \n\t", []types.TokenKind{types.EOF}},
		{"foo_bar1", []types.TokenKind{types.IDENT, types.EOF}},
		{"123", []types.TokenKind{types.NUMBER, types.EOF}},
		{"12ab", []types.TokenKind{types.IDENT, types.EOF}},
		{"true false", []types.TokenKind{types.TRUE, types.FALSE, types.EOF}},
		{"var const global", []types.TokenKind{types.VAR, types.CONST, types.GLOBAL, types.EOF}},
		{"number string bool", []types.TokenKind{types.VARTYPE, types.VARTYPE, types.VARTYPE, types.EOF}},
		{"if elseif else for while switch case default break continue return", []types.TokenKind{
			types.IF, types.ELSEIF, types.ELSE, types.FOR, types.WHILE, types.SWITCH,
			types.CASE, types.DEFAULT, types.BREAK, types.CONTINUE, types.RETURN, types.EOF,
		}},
		{"()[]{};.,", []types.TokenKind{
			types.LPAREN, types.RPAREN, types.LBRACKET, types.RBRACKET,
			types.LBRACE, types.RBRACE, types.SEMICOLON, types.DOT, types.COMMA, types.EOF,
		}},
		{"+ - * / %", []types.TokenKind{types.ADD, types.SUB, types.MUL, types.DIV, types.MOD, types.EOF}},
		{"+= -= *= /= %=", []types.TokenKind{types.ADD_ASSIGN, types.SUB_ASSIGN, types.MUL_ASSIGN, types.DIV_ASSIGN, types.MOD_ASSIGN, types.EOF}},
		{"== != < <= > >=", []types.TokenKind{types.EQ, types.NEQ, types.LT, types.LEQ, types.GT, types.GEQ, types.EOF}},
		{"&& || ! & | ^ ~ << >>", []types.TokenKind{
			types.AND, types.OR, types.NOT, types.BAND, types.BOR, types.XOR, types.BNOT, types.SHL, types.SHR, types.EOF,
		}},
		{"++ --", []types.TokenKind{types.INC, types.DEC, types.EOF}},
		{"a+=1", []types.TokenKind{types.IDENT, types.ADD_ASSIGN, types.NUMBER, types.EOF}},
		{"a.b(c)", []types.TokenKind{types.IDENT, types.DOT, types.IDENT, types.LPAREN, types.IDENT, types.RPAREN, types.EOF}},
		{"@", []types.TokenKind{types.UNKNOWN, types.EOF}},
		{"a @ b", []types.TokenKind{types.IDENT, types.UNKNOWN, types.IDENT, types.EOF}},
		{`"hi there"`, []types.TokenKind{types.STRING, types.EOF}},
		{`x"y"`, []types.TokenKind{types.IDENT, types.STRING, types.EOF}},
		{"+++", []types.TokenKind{types.INC, types.ADD, types.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(Tokenize(tt.input))
			if !sameKinds(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSingleTrailingEOF(t *testing.T) {
	inputs := []string{
		"",
		"var x = 1;",
		`"unterminated`,
		"while (true) { x = x + 1; break; }",
		"a.b.c(1, 2) @ # $",
		"trailing_word",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		last := tokens[len(tokens)-1]
		if last.Kind != types.EOF || last.Value != "" {
			t.Errorf("%q: last token is %s", input, last)
		}
		for i, tok := range tokens[:len(tokens)-1] {
			if tok.Kind == types.EOF {
				t.Errorf("%q: EOF at index %d", input, i)
			}
			if tok.Value == "" {
				t.Errorf("%q: empty token at index %d: %s", input, i, tok)
			}
			if tokens[i+1].Pos < tok.Pos {
				t.Errorf("%q: position decreases after %s", input, tok)
			}
		}
	}
}

func TestLexAfterEOF(t *testing.T) {
	l := NewLexer("x", nil)
	if tok := l.Lex(); tok.Kind != types.IDENT {
		t.Fatalf("got %s, want IDENT", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Lex(); tok.Kind != types.EOF {
			t.Fatalf("call %d: got %s, want EOF", i, tok)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		strict bool
		want   []types.Token
	}{
		{
			name:  "double quoted",
			input: `"a b"`,
			want:  []types.Token{{Value: `"a b"`, Kind: types.STRING, Pos: 0}},
		},
		{
			name:  "single quoted",
			input: `'x'`,
			want:  []types.Token{{Value: `'x'`, Kind: types.STRING, Pos: 0}},
		},
		{
			name:  "mixed quotes close permissively",
			input: `"it's"`,
			want: []types.Token{
				{Value: `"it'`, Kind: types.STRING, Pos: 0},
				{Value: `s`, Kind: types.IDENT, Pos: 4},
				{Value: `"`, Kind: types.UNKNOWN, Pos: 5},
			},
		},
		{
			name:   "strict quotes",
			input:  `"it's"`,
			strict: true,
			want:   []types.Token{{Value: `"it's"`, Kind: types.STRING, Pos: 0}},
		},
		{
			name:  "no escapes",
			input: `"a\"`,
			want:  []types.Token{{Value: `"a\"`, Kind: types.STRING, Pos: 0}},
		},
		{
			name:  "unterminated",
			input: `x = "abc`,
			want: []types.Token{
				{Value: "x", Kind: types.IDENT, Pos: 0},
				{Value: "=", Kind: types.ASSIGN, Pos: 2},
				{Value: `"abc`, Kind: types.UNKNOWN, Pos: 4},
			},
		},
		{
			name:  "keywords inside strings",
			input: `"if var"`,
			want:  []types.Token{{Value: `"if var"`, Kind: types.STRING, Pos: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Lexer.StrictQuotes = tt.strict
			tokens := NewLexer(tt.input, cfg).Tokenize()
			tokens = tokens[:len(tokens)-1]

			if len(tokens) != len(tt.want) {
				t.Fatalf("got %s, want %s", repr.String(tokens), repr.String(tt.want))
			}
			for i := range tt.want {
				if tokens[i] != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, tokens[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnicodePositions(t *testing.T) {
	tokens := Tokenize("ä = 1")
	if tokens[0].Kind != types.IDENT || tokens[0].Value != "ä" {
		t.Fatalf("got %s, want IDENT ä", tokens[0])
	}
	if tokens[1].Pos != 2 {
		t.Errorf("got position %d for '=', want rune offset 2", tokens[1].Pos)
	}
}
