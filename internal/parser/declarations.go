package parser

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/token"
)

// parseFunctionDecl parses `'fn' IDENT '(' ParamList? ')' ('->' Type)? FuncExprBlock`.
func (p *Parser) parseFunctionDecl() (*ast.FunctionDecl, error) {
	start, err := p.expect(token.FN, "'fn'")
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}

	var retType ast.TypeExpr
	if p.curIs(token.ARROW) {
		p.advance()
		retType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseFunctionExprBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Name:       name.Literal,
		Params:     params,
		ReturnType: retType,
		Body:       body,
		TPos:       start.Pos,
	}, nil
}

// parseParamList parses `(Param (',' Param)*)?`, rejecting a duplicate
// parameter name within the same list.
func (p *Parser) parseParamList() ([]*ast.Param, error) {
	var params []*ast.Param
	if p.curIs(token.RPAREN) {
		return params, nil
	}
	seen := map[string]bool{}
	for {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		if seen[param.Name] {
			return nil, newSyntaxError(p.cur(), "unique parameter name", "duplicate parameter \""+param.Name+"\"")
		}
		seen[param.Name] = true
		params = append(params, param)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return params, nil
}

// parseParam parses `'mut'? IDENT ':' Type`.
func (p *Parser) parseParam() (*ast.Param, error) {
	mut := false
	pos := p.cur().Pos
	if p.curIs(token.MUT) {
		mut = true
		p.advance()
	}
	name, err := p.expect(token.IDENT, "parameter name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON, "':'"); err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Param{Name: name.Literal, Type: t, Mut: mut, TPos: pos}, nil
}

// parseType parses `'i32' | '&' 'mut'? Type | '[' Type ';' INT ']' | '(' TupleTypeTail`.
func (p *Parser) parseType() (ast.TypeExpr, error) {
	tok := p.cur()
	switch tok.Type {
	case token.I32:
		p.advance()
		return &ast.I32Type{TPos: tok.Pos}, nil

	case token.AMP:
		p.advance()
		mut := false
		if p.curIs(token.MUT) {
			mut = true
			p.advance()
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.ReferenceType{Inner: inner, Mut: mut, TPos: tok.Pos}, nil

	case token.LBRACK:
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
			return nil, err
		}
		sizeTok, err := p.expect(token.LITERAL, "array size literal")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACK, "']'"); err != nil {
			return nil, err
		}
		return &ast.ArrayType{Inner: inner, Size: sizeTok.IntVal, TPos: tok.Pos}, nil

	case token.LPAREN:
		p.advance()
		return p.parseTupleTypeTail(tok.Pos)

	default:
		return nil, newSyntaxError(tok, "a type ('i32', '&', '[', or '(')", "unexpected token")
	}
}

// parseTupleTypeTail parses the remainder of a parenthesized type after the
// opening '(' has been consumed: `')'` (unit, written `()`), a single
// parenthesized type `Type ')'` (grouping, NOT a one-element tuple), or
// `Type (',' Type)+ ','? ')'`.
func (p *Parser) parseTupleTypeTail(pos token.Position) (ast.TypeExpr, error) {
	if p.curIs(token.RPAREN) {
		p.advance()
		return &ast.TupleType{Elements: nil, TPos: pos}, nil
	}
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.curIs(token.COMMA) {
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return first, nil
	}

	elems := []ast.TypeExpr{first}
	for p.curIs(token.COMMA) {
		p.advance()
		if p.curIs(token.RPAREN) {
			break
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.TupleType{Elements: elems, TPos: pos}, nil
}
