package quadgen

import "github.com/minilang/minilangc/internal/ast"

// generateExpr lowers e to zero or more quads and returns the name (a
// variable, a temp, or an encoded literal) holding its value: every
// expression either is a name already or is lowered into a fresh temp
// holding one. Literal and Identifier never emit a quad.
func (g *Generator) generateExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return intLiteral(e.Value)

	case *ast.Identifier:
		return e.Name

	case *ast.BinaryExpression:
		left := g.generateExpr(e.Left)
		right := g.generateExpr(e.Right)
		result := g.newTemp()
		g.emit(Quad{Op: string(binaryOps[e.Operator]), Arg1: left, Arg2: right, Result: result})
		return result

	case *ast.UnaryExpr:
		arg := g.generateExpr(e.Argument)
		result := g.newTemp()
		g.emit(Quad{Op: e.Operator, Arg1: arg, Result: result})
		return result

	case *ast.CallExpression:
		for _, a := range e.Arguments {
			val := g.generateExpr(a)
			g.emit(Quad{Op: string(OpParam), Arg1: val})
		}
		callee, _ := e.Callee.(*ast.Identifier)
		result := g.newTemp()
		g.emit(Quad{Op: string(OpCall), Arg1: callee.Name, Arg2: intLiteral(int64(len(e.Arguments))), Result: result})
		return result

	case *ast.IfExpr:
		return g.generateIfExpr(e)

	case *ast.LoopExpr:
		return g.generateLoopExpr(e)

	case *ast.RefExpr:
		operand := g.generateExpr(e.Operand)
		mutability := "const"
		if e.Mut {
			mutability = "mut"
		}
		result := g.newTemp()
		g.emit(Quad{Op: string(OpRef), Arg1: operand, Arg2: mutability, Result: result})
		return result

	case *ast.DerefExpr:
		operand := g.generateExpr(e.Operand)
		result := g.newTemp()
		g.emit(Quad{Op: string(OpDeref), Arg1: operand, Result: result})
		return result

	case *ast.IndexExpr:
		target := g.generateExpr(e.Target)
		index := g.generateExpr(e.Index)
		result := g.newTemp()
		g.emit(Quad{Op: string(OpIndexLoad), Arg1: target, Arg2: index, Result: result})
		return result

	case *ast.TupleAccess:
		target := g.generateExpr(e.Target)
		idx, _ := e.Index.(int)
		result := g.newTemp()
		g.emit(Quad{Op: string(OpTupleLoad), Arg1: target, Arg2: intLiteral(int64(idx)), Result: result})
		return result

	case *ast.ArrayLiteral:
		result := g.newTemp()
		g.emit(Quad{Op: string(OpNewArray), Arg1: intLiteral(int64(len(e.Elements))), Result: result})
		for i, el := range e.Elements {
			val := g.generateExpr(el)
			g.emit(Quad{Op: string(OpIndexStore), Arg1: result, Arg2: intLiteral(int64(i)), Result: val})
		}
		return result

	case *ast.TupleLiteral:
		result := g.newTemp()
		g.emit(Quad{Op: string(OpNewTuple), Arg1: intLiteral(int64(len(e.Elements))), Result: result})
		for i, el := range e.Elements {
			val := g.generateExpr(el)
			g.emit(Quad{Op: string(OpTupleStore), Arg1: result, Arg2: intLiteral(int64(i)), Result: val})
		}
		return result

	case *ast.FunctionExprBlock:
		return g.generateValueBlock(e)
	}
	return ""
}

// generateValueBlock lowers a value-position block (an IfExpr branch or a
// LoopExpr body): every element but a trailing tail expression is lowered
// as a statement, and the tail expression's value (or the empty string for
// a unit-valued block) is returned.
func (g *Generator) generateValueBlock(body *ast.FunctionExprBlock) string {
	tailExpr, hasTail := body.HasTailExpression()

	last := len(body.Elements) - 1
	for i, el := range body.Elements {
		if i == last && hasTail {
			break
		}
		if stmt, ok := el.(ast.Statement); ok {
			g.generateStmt(stmt)
		}
	}
	if hasTail {
		return g.generateExpr(tailExpr)
	}
	return ""
}

// generateIfExpr lowers the value-producing form of `if`: both branches
// write their value into a shared result temp before jumping to the join
// point.
func (g *Generator) generateIfExpr(e *ast.IfExpr) string {
	elseLabel := g.newLabel()
	endLabel := g.newLabel()
	result := g.newTemp()

	cond := g.generateExpr(e.Condition)
	g.emit(Quad{Op: string(OpIfZero), Arg1: cond, Result: elseLabel})
	thenVal := g.generateValueBlock(e.Then)
	g.emit(Quad{Op: string(OpAssign), Arg1: thenVal, Result: result})
	g.emit(Quad{Op: string(OpGoto), Result: endLabel})
	g.emitLabel(elseLabel)
	elseVal := g.generateValueBlock(e.Else)
	g.emit(Quad{Op: string(OpAssign), Arg1: elseVal, Result: result})
	g.emitLabel(endLabel)

	return result
}

// generateLoopExpr lowers the value-producing form of `loop`: its value
// comes exclusively from a `break <expr>;` inside the body, written into
// this loop's result temp before the jump to its end label (see
// generateBreakStmt). Semantic analysis rejects a LoopExpr with no
// value-carrying break before this stage ever runs, so result is always
// assigned along every path that reaches endLabel.
func (g *Generator) generateLoopExpr(e *ast.LoopExpr) string {
	startLabel := g.newLabel()
	endLabel := g.newLabel()
	result := g.newTemp()

	g.emitLabel(startLabel)
	g.pushLoop(&loopContext{startLabel: startLabel, endLabel: endLabel, resultTemp: result})
	g.generateValueBlock(e.Body)
	g.popLoop()
	g.emit(Quad{Op: string(OpGoto), Result: startLabel})
	g.emitLabel(endLabel)

	return result
}
