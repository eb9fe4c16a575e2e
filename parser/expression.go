package parser

import (
	"strconv"

	"github.com/ztrue/tracerr"

	"github.com/atack/script/ast"
	"github.com/atack/script/config"
	"github.com/atack/script/errors"
	"github.com/atack/script/lexer"
	"github.com/atack/script/types"
)

const lowest = 0

// precedences covers every operator kind. Only the kinds in binary are
// combined by parseExpression; the unary and assignment entries are kept so
// the whole table lives in one place.
var precedences = map[types.TokenKind]int{
	types.INC:  15,
	types.DEC:  15,
	types.NOT:  14,
	types.BNOT: 14,
	types.MUL:  13,
	types.DIV:  13,
	types.MOD:  13,
	types.ADD:  12,
	types.SUB:  12,
	types.SHL:  11,
	types.SHR:  11,
	types.GT:   10,
	types.LT:   10,
	types.GEQ:  10,
	types.LEQ:  10,
	types.EQ:   9,
	types.NEQ:  9,
	types.BAND: 8,
	types.XOR:  7,
	types.BOR:  6,
	types.AND:  5,
	types.OR:   4,

	types.ASSIGN:     1,
	types.ADD_ASSIGN: 1,
	types.SUB_ASSIGN: 1,
	types.MUL_ASSIGN: 1,
	types.DIV_ASSIGN: 1,
	types.MOD_ASSIGN: 1,
}

var binary = map[types.TokenKind]bool{
	types.MUL:  true,
	types.DIV:  true,
	types.MOD:  true,
	types.ADD:  true,
	types.SUB:  true,
	types.SHL:  true,
	types.SHR:  true,
	types.GT:   true,
	types.LT:   true,
	types.GEQ:  true,
	types.LEQ:  true,
	types.EQ:   true,
	types.NEQ:  true,
	types.BAND: true,
	types.XOR:  true,
	types.BOR:  true,
	types.AND:  true,
	types.OR:   true,
}

// Precedence returns the binding strength of an operator kind, 0 if it is
// not an operator.
func Precedence(k types.TokenKind) int {
	return precedences[k]
}

// ParseExpression parses one expression starting at the cursor.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseExpression(lowest)
}

// ParseExpressionSource parses src as a single expression; trailing tokens
// are an error.
func ParseExpressionSource(src string, cfg *config.Config) (ast.Expression, error) {
	p := NewParser(lexer.NewLexer(src, cfg).Tokenize(), cfg)

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.EOF); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseExpression(minPrecedence int) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek()
		prec := Precedence(op.Kind)
		if !binary[op.Kind] || prec < minPrecedence {
			return left, nil
		}
		p.next()

		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}

		left = ast.BinaryOperation{
			Left:     left,
			Operator: op.Kind,
			Right:    right,
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Kind {
	case types.IDENT:
		p.next()
		return p.parseMemberChain(ast.Var{Name: tok.Value})
	case types.NUMBER:
		p.next()
		parsed, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, tracerr.Wrap(errors.InvalidNumber{Got: tok, Err: err})
		}
		return ast.Lit{Kind: ast.LitNumber, Literal: ast.Integer(parsed)}, nil
	case types.STRING:
		p.next()
		return ast.Lit{Kind: ast.LitString, Literal: ast.StringLiteral(tok.Value)}, nil
	case types.TRUE:
		p.next()
		return ast.Lit{Kind: ast.LitTrue, Literal: ast.Boolean(true)}, nil
	case types.FALSE:
		p.next()
		return ast.Lit{Kind: ast.LitFalse, Literal: ast.Boolean(false)}, nil
	case types.LPAREN:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		p.next()
		inner, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(types.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, tracerr.Wrap(errors.UnexpectedToken{Got: tok})
}

// parseMemberChain parses any number of .member and .member(args) suffixes,
// e.g. a.b.c(x, y).
func (p *Parser) parseMemberChain(expr ast.Expression) (ast.Expression, error) {
	for p.peekIs(types.DOT) {
		p.next()

		member, err := p.expect(types.IDENT)
		if err != nil {
			return nil, err
		}
		expr = ast.MemberAccess{Object: expr, Member: member.Value}

		if p.peekIs(types.LPAREN) {
			p.next()
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = ast.Call{Callee: expr, Arguments: args}
		}
	}

	return expr, nil
}

// parseArguments should be called with the parser past the opening paren.
// Commas between arguments are optional, and so is a trailing one.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var args []ast.Expression

	for !p.peekIs(types.RPAREN) {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.peekIs(types.COMMA) {
			p.next()
		}
	}
	p.next()

	return args, nil
}
