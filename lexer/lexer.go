package lexer

import (
	"unicode"

	"github.com/tliron/commonlog"

	"github.com/atack/script/config"
	"github.com/atack/script/types"
)

// Lexer scans a whole source string. Scanning one character can produce
// more than one token, so tokens are queued in pending until Lex hands them out.
type Lexer struct {
	src []rune
	pos int

	word      []rune
	wordStart int

	inString    bool
	quote       rune
	str         []rune
	stringStart int

	pending []types.Token
	done    bool
	eof     types.Token

	emitPositions bool
	strictQuotes  bool

	log commonlog.Logger
}

func NewLexer(src string, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Lexer{
		src:           []rune(src),
		emitPositions: cfg.Lexer.Positions == config.PositionsEmit,
		strictQuotes:  cfg.Lexer.StrictQuotes,
		log:           commonlog.GetLogger("script.lexer"),
	}
}

// Tokenize scans src with the default configuration.
func Tokenize(src string) []types.Token {
	return NewLexer(src, nil).Tokenize()
}

// Tokenize returns every remaining token, ending with the EOF token.
func (l *Lexer) Tokenize() (ret []types.Token) {
	for {
		tok := l.Lex()
		ret = append(ret, tok)
		if tok.Kind == types.EOF {
			return
		}
	}
}

// Lex returns the next token. Once the input is exhausted it keeps
// returning the EOF token.
func (l *Lexer) Lex() types.Token {
	for len(l.pending) == 0 {
		if l.done {
			return l.eof
		}
		l.step()
	}

	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

// at picks the recorded position: start is where the token began, now is
// the scan step that produced it.
func (l *Lexer) at(start, now int) types.Position {
	if l.emitPositions {
		return types.Position(now)
	}
	return types.Position(start)
}

func (l *Lexer) emit(value string, kind types.TokenKind, pos types.Position) {
	if kind == types.UNKNOWN {
		l.log.Debugf("unknown token %q at %s", value, pos)
	}
	l.pending = append(l.pending, types.Token{Value: value, Kind: kind, Pos: pos})
}

func (l *Lexer) flushWord(now int) {
	if len(l.word) == 0 {
		return
	}
	word := string(l.word)
	l.emit(word, Classify(word), l.at(l.wordStart, now))
	l.word = l.word[:0]
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *Lexer) finish() {
	end := len(l.src)
	l.flushWord(end)

	if l.inString {
		l.emit(string(l.str), types.UNKNOWN, l.at(l.stringStart, end))
		l.inString = false
		l.str = nil
	}

	l.eof = types.Token{Kind: types.EOF, Pos: types.Position(end)}
	l.pending = append(l.pending, l.eof)
	l.done = true
}

func (l *Lexer) step() {
	if l.pos >= len(l.src) {
		l.finish()
		return
	}

	i := l.pos
	r := l.src[i]
	l.pos++

	switch {
	case l.inString:
		l.str = append(l.str, r)
		if isQuote(r) && (!l.strictQuotes || r == l.quote) {
			l.emit(string(l.str), types.STRING, l.at(l.stringStart, i))
			l.inString = false
			l.str = nil
		}
	case isQuote(r):
		l.flushWord(i)
		l.inString = true
		l.quote = r
		l.stringStart = i
		l.str = append(l.str[:0], r)
	case unicode.IsSpace(r):
		l.flushWord(i)
	case isWordChar(r):
		if len(l.word) == 0 {
			l.wordStart = i
		}
		l.word = append(l.word, r)
	default:
		l.flushWord(i)
		l.lexSymbol(i, r)
	}
}

func (l *Lexer) lexSymbol(i int, r rune) {
	if kind, ok := PunctuationKind(r); ok {
		l.emit(string(r), kind, types.Position(i))
		return
	}

	if i+1 < len(l.src) {
		two := string([]rune{r, l.src[i+1]})
		if kind, ok := OperatorKind(two); ok {
			l.emit(two, kind, types.Position(i))
			l.pos++
			return
		}
	}

	if kind, ok := OperatorKind(string(r)); ok {
		l.emit(string(r), kind, types.Position(i))
		return
	}

	l.emit(string(r), types.UNKNOWN, types.Position(i))
}
