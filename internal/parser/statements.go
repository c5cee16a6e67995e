package parser

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/token"
)

// parseBlock parses `'{' Stmt* '}'`, used for the bodies of if/while/for/loop
// when they appear as statements (no block value).
func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	blk := &ast.Block{TPos: open.Pos}
	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			return nil, newSyntaxError(p.cur(), "'}'", "unterminated block")
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	p.advance()
	return blk, nil
}

// parseFunctionExprBlock parses `'{' element* '}'`, where the final element
// may be an un-terminated expression carrying the block's value.
//
// Simplification: `if`/`while`/`for`/`loop` appearing as a block element are
// always parsed as statements (IfStmt/WhileStmt/ForStmt/LoopStmt), even in
// tail position, so a bare `if ... else ...` can't itself be the last line of
// a value-producing block. Every other Expr position (`let` initializer,
// `return` operand, call argument) reaches parseExpr directly and gets full
// IfExpr/LoopExpr support, so the construct is never unreachable, only
// unavailable as a bare block tail.
func (p *Parser) parseFunctionExprBlock() (*ast.FunctionExprBlock, error) {
	open, err := p.expect(token.LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	blk := &ast.FunctionExprBlock{TPos: open.Pos}

	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			return nil, newSyntaxError(p.cur(), "'}'", "unterminated block")
		}
		switch p.cur().Type {
		case token.SEMICOLON:
			pos := p.advance().Pos
			blk.Elements = append(blk.Elements, &ast.EmptyStmt{TPos: pos})
			blk.ElementTerminated = append(blk.ElementTerminated, true)

		case token.LET:
			stmt, err := p.parseVarDecl()
			if err != nil {
				return nil, err
			}
			blk.Elements = append(blk.Elements, stmt)
			blk.ElementTerminated = append(blk.ElementTerminated, true)

		case token.IF, token.WHILE, token.FOR, token.LOOP, token.RETURN, token.BREAK, token.CONTINUE:
			stmt, err := p.parseStmt()
			if err != nil {
				return nil, err
			}
			blk.Elements = append(blk.Elements, stmt)
			blk.ElementTerminated = append(blk.ElementTerminated, true)

		default:
			pos := p.cur().Pos
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.curIs(token.ASSIGN) {
				p.advance()
				value, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
					return nil, err
				}
				blk.Elements = append(blk.Elements, &ast.Assignment{Target: expr, Value: value, TPos: pos})
				blk.ElementTerminated = append(blk.ElementTerminated, true)
				continue
			}
			if p.curIs(token.SEMICOLON) {
				p.advance()
				blk.Elements = append(blk.Elements, &ast.ExprStmt{Expr: expr, TPos: pos})
				blk.ElementTerminated = append(blk.ElementTerminated, true)
				continue
			}
			if p.curIs(token.RBRACE) {
				blk.Elements = append(blk.Elements, expr)
				blk.ElementTerminated = append(blk.ElementTerminated, false)
				continue
			}
			return nil, newSyntaxError(p.cur(), "';'", "unexpected token")
		}
	}
	p.advance()
	return blk, nil
}

// parseStmt parses one statement, dispatching on the leading token.
func (p *Parser) parseStmt() (ast.Statement, error) {
	switch p.cur().Type {
	case token.SEMICOLON:
		pos := p.advance().Pos
		return &ast.EmptyStmt{TPos: pos}, nil
	case token.LET:
		return p.parseVarDecl()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.LOOP:
		return p.parseLoopStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.CONTINUE:
		return p.parseContinueStmt()
	default:
		return p.parseAssignmentOrExprStmt()
	}
}

// parseAssignmentOrExprStmt parses `Assign | Expr ';'`. Both alternatives
// share a prefix (an expression), so the target/expr is parsed once and the
// `=` that follows it (if any) decides which statement it becomes; MiniLang
// expressions never themselves contain a bare `=`, so no backtracking is
// needed.
func (p *Parser) parseAssignmentOrExprStmt() (ast.Statement, error) {
	pos := p.cur().Pos
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curIs(token.ASSIGN) {
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: expr, Value: value, TPos: pos}, nil
	}
	if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr, TPos: pos}, nil
}

// parseVarDecl parses `'let' 'mut'? IDENT (':' Type)? ('=' Expr)? ';'`.
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	start, err := p.expect(token.LET, "'let'")
	if err != nil {
		return nil, err
	}
	mut := false
	if p.curIs(token.MUT) {
		mut = true
		p.advance()
	}
	name, err := p.expect(token.IDENT, "variable name")
	if err != nil {
		return nil, err
	}

	var varType ast.TypeExpr
	if p.curIs(token.COLON) {
		p.advance()
		varType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	var init ast.Expression
	if p.curIs(token.ASSIGN) {
		p.advance()
		init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name.Literal, VarType: varType, Init: init, Mut: mut, TPos: start.Pos}, nil
}

// parseIfStmt parses the statement form of `if`: else is optional and bodies
// are plain Blocks, since the construct is used only for control flow here,
// never for its value (see parseIfExpr for the value-producing form).
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	start, err := p.expect(token.IF, "'if'")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Condition: cond, Then: then, TPos: start.Pos}
	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			elseIf, err := p.parseIfStmt()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseIf
		} else {
			elseBlk, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBlk
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	start, err := p.expect(token.WHILE, "'while'")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Body: body, TPos: start.Pos}, nil
}

// parseForStmt parses `'for' 'mut'? IDENT (':' Type)? 'in' Additive '..' Additive Block`.
func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	start, err := p.expect(token.FOR, "'for'")
	if err != nil {
		return nil, err
	}
	mut := false
	if p.curIs(token.MUT) {
		mut = true
		p.advance()
	}
	name, err := p.expect(token.IDENT, "loop variable name")
	if err != nil {
		return nil, err
	}
	var varType ast.TypeExpr
	if p.curIs(token.COLON) {
		p.advance()
		varType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.IN, "'in'"); err != nil {
		return nil, err
	}
	rangeStart, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOUBLE_DOT, "'..'"); err != nil {
		return nil, err
	}
	rangeEnd, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{
		Var: name.Literal, VarType: varType, Mut: mut,
		Start: rangeStart, End: rangeEnd, Body: body, TPos: start.Pos,
	}, nil
}

func (p *Parser) parseLoopStmt() (*ast.LoopStmt, error) {
	start, err := p.expect(token.LOOP, "'loop'")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.LoopStmt{Body: body, TPos: start.Pos}, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	start, err := p.expect(token.RETURN, "'return'")
	if err != nil {
		return nil, err
	}
	var expr ast.Expression
	if !p.curIs(token.SEMICOLON) {
		expr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Expression: expr, TPos: start.Pos}, nil
}

func (p *Parser) parseBreakStmt() (*ast.BreakStmt, error) {
	start, err := p.expect(token.BREAK, "'break'")
	if err != nil {
		return nil, err
	}
	var expr ast.Expression
	if !p.curIs(token.SEMICOLON) {
		expr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{Expression: expr, TPos: start.Pos}, nil
}

func (p *Parser) parseContinueStmt() (*ast.ContinueStmt, error) {
	start, err := p.expect(token.CONTINUE, "'continue'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return &ast.ContinueStmt{TPos: start.Pos}, nil
}
