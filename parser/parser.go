package parser

import (
	"github.com/tliron/commonlog"
	"github.com/ztrue/tracerr"

	"github.com/atack/script/ast"
	"github.com/atack/script/config"
	"github.com/atack/script/errors"
	"github.com/atack/script/lexer"
	"github.com/atack/script/types"
)

// Parser walks a token slice with a single forward cursor. It is not safe
// for concurrent use.
type Parser struct {
	tokens   []types.Token
	cur      int
	depth    int
	maxDepth int
	log      commonlog.Logger
}

func NewParser(tokens []types.Token, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Defaults()
	}
	maxDepth := cfg.Parser.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}
	return &Parser{
		tokens:   tokens,
		maxDepth: maxDepth,
		log:      commonlog.GetLogger("script.parser"),
	}
}

// ParseSource tokenizes and parses src.
func ParseSource(src string, cfg *config.Config) ([]ast.Statement, error) {
	tokens := lexer.NewLexer(src, cfg).Tokenize()
	return NewParser(tokens, cfg).Parse()
}

// Parse returns the program's top-level statements. Each root is an
// ast.Block; a stray closing brace at top level ends one root and starts
// the next. The first failure aborts the whole parse.
func (p *Parser) Parse() ([]ast.Statement, error) {
	var roots []ast.Statement

	for !p.peekIs(types.EOF) {
		block, err := p.parseStatements()
		if err != nil {
			return nil, err
		}
		roots = append(roots, block)

		if p.peekIs(types.RBRACE) {
			p.log.Debugf("skipping stray %s", p.peek())
			p.next()
		}
	}

	return roots, nil
}

// peek returns the current token, or a synthetic EOF once the cursor has
// run past the slice.
func (p *Parser) peek() types.Token {
	if p.cur >= len(p.tokens) {
		return types.Token{Kind: types.EOF, Pos: -1}
	}
	return p.tokens[p.cur]
}

func (p *Parser) peekIs(k ...types.TokenKind) bool {
	return p.peek().Is(k...)
}

func (p *Parser) next() types.Token {
	tok := p.peek()
	if p.cur < len(p.tokens) {
		p.cur++
	}
	return tok
}

func (p *Parser) expect(k types.TokenKind) (types.Token, error) {
	tok := p.peek()
	if tok.Kind != k {
		return tok, tracerr.Wrap(errors.ExpectedKindGotKind{
			Expected: k,
			Got:      tok,
		})
	}
	return p.next(), nil
}

func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		p.log.Debugf("nesting limit %d reached at %s", p.maxDepth, p.peek())
		return tracerr.Wrap(errors.TooDeep{
			Limit: p.maxDepth,
			Got:   p.peek(),
		})
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

var unsupported = map[types.TokenKind]string{
	types.FOR:    "for loop",
	types.SWITCH: "switch statement",
}

// parseStatements parses statements up to EOF or a closing brace, which is
// left for the caller.
func (p *Parser) parseStatements() (ast.Block, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var statements ast.Block

	for !p.peekIs(types.EOF, types.RBRACE) {
		tok := p.peek()

		var stmt ast.Statement
		var err error

		switch tok.Kind {
		case types.VAR, types.GLOBAL:
			stmt, err = p.parseDeclaration()
		case types.FOR, types.SWITCH:
			return nil, tracerr.Wrap(errors.Unsupported{
				Construct: unsupported[tok.Kind],
				Got:       tok,
			})
		case types.WHILE:
			stmt, err = p.parseWhile()
		case types.IF:
			stmt, err = p.parseIf()
		case types.RETURN:
			stmt, err = p.parseReturn()
		case types.IDENT:
			stmt, err = p.parseAssignmentOrExpression()
		case types.BREAK:
			p.next()
			stmt = ast.Break{}
			_, err = p.expect(types.SEMICOLON)
		case types.CONTINUE:
			p.next()
			stmt = ast.Continue{}
			_, err = p.expect(types.SEMICOLON)
		default:
			p.log.Debugf("skipping %s", tok)
			p.next()
			continue
		}

		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if len(statements) == 0 {
		statements = ast.Block{ast.Empty{}}
	}

	return statements, nil
}

// parseBody parses { statements }.
func (p *Parser) parseBody() (ast.Block, error) {
	if _, err := p.expect(types.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.RBRACE); err != nil {
		return nil, err
	}
	return body, nil
}

// parseCondition parses ( expression ).
func (p *Parser) parseCondition() (ast.Expression, error) {
	if _, err := p.expect(types.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseDeclaration handles var and global, which share one shape:
// keyword IDENT = expression ;
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	keyword := p.next()

	name, err := p.expect(types.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.SEMICOLON); err != nil {
		return nil, err
	}

	if keyword.Kind == types.GLOBAL {
		return ast.GlobalDeclaration{Name: name.Value, Value: value}, nil
	}
	return ast.VariableDeclaration{Name: name.Value, Value: value}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	p.next()

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return ast.While{Condition: cond, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	p.next()

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	stmt := ast.If{Condition: cond, Body: body}

	for p.peekIs(types.ELSEIF) {
		p.next()

		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}

		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIf{Condition: cond, Body: body})
	}

	if p.peekIs(types.ELSE) {
		p.next()

		stmt.Else, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	p.next()

	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.SEMICOLON); err != nil {
		return nil, err
	}

	return ast.Return{Value: value}, nil
}

// parseAssignmentOrExpression handles statements that start with an
// identifier. The terminating semicolon is not consumed here; the statement
// loop skips it.
func (p *Parser) parseAssignmentOrExpression() (ast.Statement, error) {
	target, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if !p.peekIs(types.ASSIGN) {
		return ast.ExpressionStatement{Expr: target}, nil
	}
	p.next()

	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}

	return ast.Assignment{Target: target, Value: value}, nil
}
