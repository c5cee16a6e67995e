// Package parser implements MiniLang's hand-written recursive-descent
// parser: predictive, with bounded lookahead, and no backtracking.
package parser

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/lexer"
	"github.com/minilang/minilangc/internal/token"
)

// Parser holds the token cursor for one parse. It owns no other mutable
// state.
type Parser struct {
	cursor *TokenCursor
}

// New creates a Parser over an already-lexed token slice.
func New(tokens []token.Token) *Parser {
	return &Parser{cursor: NewTokenCursor(tokens)}
}

// Parse lexes and parses source in one call.
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseProgram()
}

func (p *Parser) cur() token.Token        { return p.cursor.Current() }
func (p *Parser) peek(n int) token.Token  { return p.cursor.PeekN(n) }
func (p *Parser) advance() token.Token    { return p.cursor.Advance() }
func (p *Parser) curIs(tt token.Type) bool { return p.cur().Type == tt }

// expect consumes the current token if it matches tt, else returns a
// SyntaxError naming what was expected.
func (p *Parser) expect(tt token.Type, what string) (token.Token, error) {
	if p.curIs(tt) {
		return p.advance(), nil
	}
	return token.Token{}, newSyntaxError(p.cur(), what, "unexpected token")
}

// ParseProgram parses a sequence of function declarations until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		decl, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decl)
	}
	return prog, nil
}
