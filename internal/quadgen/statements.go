package quadgen

import "github.com/minilang/minilangc/internal/ast"

// generateStmts lowers a plain, value-less statement sequence (the bodies of
// if/while/for/loop are all *ast.Block, never FunctionExprBlock).
func (g *Generator) generateStmts(stmts []ast.Statement) {
	for _, s := range stmts {
		g.generateStmt(s)
	}
}

func (g *Generator) generateStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		g.generateVarDecl(s)
	case *ast.Assignment:
		g.generateAssignment(s)
	case *ast.ExprStmt:
		g.generateExpr(s.Expr)
	case *ast.IfStmt:
		g.generateIfStmt(s)
	case *ast.WhileStmt:
		g.generateWhileStmt(s)
	case *ast.ForStmt:
		g.generateForStmt(s)
	case *ast.LoopStmt:
		g.generateLoopStmt(s)
	case *ast.ReturnStmt:
		g.generateReturnStmt(s)
	case *ast.BreakStmt:
		g.generateBreakStmt(s)
	case *ast.ContinueStmt:
		g.generateContinueStmt(s)
	case *ast.EmptyStmt:
		// no quad
	case *ast.Block:
		g.generateStmts(s.Statements)
	}
}

// generateVarDecl lowers `let [mut] name [: T] [= init];` into a `declare`
// quad naming the variable and its mutability (and written type, if any)
// followed, if there is an initializer, by a copy quad assigning the lowered
// initializer value into the variable's name.
func (g *Generator) generateVarDecl(s *ast.VarDecl) {
	mutability := "const"
	if s.Mut {
		mutability = "mut"
	}
	g.emit(Quad{Op: string(OpDeclare), Arg1: s.Name, Arg2: mutability, Result: typeExprString(s.VarType)})
	if s.Init != nil {
		val := g.generateExpr(s.Init)
		g.emit(Quad{Op: string(OpAssign), Arg1: val, Result: s.Name})
	}
}

// generateAssignment lowers `target = value;` by the l-value shape of the
// target: plain copy, array store, tuple store, or store through a reference.
func (g *Generator) generateAssignment(s *ast.Assignment) {
	switch target := s.Target.(type) {
	case *ast.Identifier:
		val := g.generateExpr(s.Value)
		g.emit(Quad{Op: string(OpAssign), Arg1: val, Result: target.Name})

	case *ast.IndexExpr:
		arrVal := g.generateExpr(target.Target)
		idxVal := g.generateExpr(target.Index)
		rhsVal := g.generateExpr(s.Value)
		g.emit(Quad{Op: string(OpIndexStore), Arg1: arrVal, Arg2: idxVal, Result: rhsVal})

	case *ast.TupleAccess:
		tupVal := g.generateExpr(target.Target)
		idx, _ := target.Index.(int)
		rhsVal := g.generateExpr(s.Value)
		g.emit(Quad{Op: string(OpTupleStore), Arg1: tupVal, Arg2: intLiteral(int64(idx)), Result: rhsVal})

	case *ast.DerefExpr:
		ptrVal := g.generateExpr(target.Operand)
		rhsVal := g.generateExpr(s.Value)
		g.emit(Quad{Op: string(OpDerefStore), Arg1: ptrVal, Result: rhsVal})
	}
}

// generateIfStmt lowers the statement form of `if`, always emitting the
// else label even when there is no else-branch, so the `ifz` just above it
// always targets a label emitted exactly once.
func (g *Generator) generateIfStmt(s *ast.IfStmt) {
	elseLabel := g.newLabel()
	endLabel := g.newLabel()

	cond := g.generateExpr(s.Condition)
	g.emit(Quad{Op: string(OpIfZero), Arg1: cond, Result: elseLabel})
	g.generateStmts(s.Then.Statements)
	g.emit(Quad{Op: string(OpGoto), Result: endLabel})
	g.emitLabel(elseLabel)
	switch elseBranch := s.Else.(type) {
	case nil:
	case *ast.Block:
		g.generateStmts(elseBranch.Statements)
	case *ast.IfStmt:
		g.generateIfStmt(elseBranch)
	}
	g.emitLabel(endLabel)
}

// generateWhileStmt lowers `while cond { body }`: the condition is
// re-evaluated at the start label on every iteration.
func (g *Generator) generateWhileStmt(s *ast.WhileStmt) {
	startLabel := g.newLabel()
	endLabel := g.newLabel()

	g.emitLabel(startLabel)
	cond := g.generateExpr(s.Condition)
	g.emit(Quad{Op: string(OpIfZero), Arg1: cond, Result: endLabel})

	g.pushLoop(&loopContext{startLabel: startLabel, endLabel: endLabel})
	g.generateStmts(s.Body.Statements)
	g.popLoop()

	g.emit(Quad{Op: string(OpGoto), Result: startLabel})
	g.emitLabel(endLabel)
}

// generateForStmt lowers `for [mut] v in start..end { body }` into an
// explicit counting loop: declare the loop variable, initialize it to the
// range start, compare against the range end each iteration, and advance by
// one through a temporary rather than in place.
func (g *Generator) generateForStmt(s *ast.ForStmt) {
	startLabel := g.newLabel()
	endLabel := g.newLabel()

	mutability := "const"
	if s.Mut {
		mutability = "mut"
	}
	g.emit(Quad{Op: string(OpDeclare), Arg1: s.Var, Arg2: mutability, Result: typeExprString(s.VarType)})
	startVal := g.generateExpr(s.Start)
	g.emit(Quad{Op: string(OpAssign), Arg1: startVal, Result: s.Var})

	g.emitLabel(startLabel)
	endVal := g.generateExpr(s.End)
	cond := g.newTemp()
	g.emit(Quad{Op: string(OpLess), Arg1: s.Var, Arg2: endVal, Result: cond})
	g.emit(Quad{Op: string(OpIfZero), Arg1: cond, Result: endLabel})

	g.pushLoop(&loopContext{startLabel: startLabel, endLabel: endLabel})
	g.generateStmts(s.Body.Statements)
	g.popLoop()

	advanced := g.newTemp()
	g.emit(Quad{Op: string(OpAdd), Arg1: s.Var, Arg2: "1", Result: advanced})
	g.emit(Quad{Op: string(OpAssign), Arg1: advanced, Result: s.Var})
	g.emit(Quad{Op: string(OpGoto), Result: startLabel})
	g.emitLabel(endLabel)
}

// generateLoopStmt lowers the statement form of `loop { body }`: no value
// escapes it, so `break` inside never carries an expression to a result
// temp (only a LoopExpr's resultTemp is set).
func (g *Generator) generateLoopStmt(s *ast.LoopStmt) {
	startLabel := g.newLabel()
	endLabel := g.newLabel()

	g.emitLabel(startLabel)
	g.pushLoop(&loopContext{startLabel: startLabel, endLabel: endLabel})
	g.generateStmts(s.Body.Statements)
	g.popLoop()
	g.emit(Quad{Op: string(OpGoto), Result: startLabel})
	g.emitLabel(endLabel)
}

func (g *Generator) generateReturnStmt(s *ast.ReturnStmt) {
	if s.Expression == nil {
		g.emit(Quad{Op: string(OpReturn)})
		return
	}
	val := g.generateExpr(s.Expression)
	g.emit(Quad{Op: string(OpReturn), Arg1: val})
}

// generateBreakStmt lowers `break [expr];`: a value, if present, is copied
// into the nearest enclosing loop's result temp (only ever set for a
// LoopExpr) before jumping to that loop's end label.
func (g *Generator) generateBreakStmt(s *ast.BreakStmt) {
	loop := g.currentLoop()
	if s.Expression != nil {
		val := g.generateExpr(s.Expression)
		if loop.resultTemp != "" {
			g.emit(Quad{Op: string(OpAssign), Arg1: val, Result: loop.resultTemp})
		}
	}
	g.emit(Quad{Op: string(OpGoto), Result: loop.endLabel})
}

func (g *Generator) generateContinueStmt(*ast.ContinueStmt) {
	g.emit(Quad{Op: string(OpGoto), Result: g.currentLoop().startLabel})
}
