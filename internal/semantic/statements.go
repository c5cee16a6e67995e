package semantic

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/types"
)

func analyzeStmt(stmt ast.Statement, ctx *Context) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		analyzeVarDecl(s, ctx)
	case *ast.Assignment:
		analyzeAssignment(s, ctx)
	case *ast.ExprStmt:
		analyzeExpr(s.Expr, ctx)
	case *ast.IfStmt:
		analyzeIfStmt(s, ctx)
	case *ast.WhileStmt:
		analyzeWhileStmt(s, ctx)
	case *ast.ForStmt:
		analyzeForStmt(s, ctx)
	case *ast.LoopStmt:
		analyzeLoopStmt(s, ctx)
	case *ast.ReturnStmt:
		analyzeReturnStmt(s, ctx)
	case *ast.BreakStmt:
		analyzeBreakStmt(s, ctx)
	case *ast.ContinueStmt:
		analyzeContinueStmt(s, ctx)
	case *ast.EmptyStmt:
		// nothing to check
	case *ast.Block:
		analyzeBlockStmt(s, ctx)
	default:
		ctx.AddError(newError(GenericSemantic, stmt.Pos(), "unsupported statement"))
	}
}

func analyzeStmts(stmts []ast.Statement, ctx *Context) {
	for _, s := range stmts {
		analyzeStmt(s, ctx)
	}
}

// analyzeBlockStmt checks a plain `{ stmt* }` body in its own nested scope.
func analyzeBlockStmt(b *ast.Block, ctx *Context) {
	ctx.PushScope()
	analyzeStmts(b.Statements, ctx)
	ctx.PopScope()
}

// analyzeVarDecl resolves `let [mut] name [: T] [= init];`. A declared type
// and an initializer must agree; either alone is enough to fix the
// variable's type. Shadowing a name already visible in an outer scope is
// fine; re-declaring it within the very same scope simply replaces it,
// matching `let x = 1; let x = x + 1;`.
//
// A bare `let name;` (no type, no initializer) can't have its type inferred
// from nothing; it is permitted only as a re-declaration of a name already
// bound in the current scope, in which case it keeps that binding's type
// but goes back to uninitialized. Any other bare `let name;` is a
// GenericSemantic "cannot infer type" error.
func analyzeVarDecl(s *ast.VarDecl, ctx *Context) {
	var declared types.Type
	if s.VarType != nil {
		declared = resolveType(s.VarType)
	}

	var initType types.Type
	initialized := s.Init != nil
	if initialized {
		initType = analyzeExpr(s.Init, ctx)
		if declared != nil && !declared.Equals(initType) {
			ctx.AddError(newError(TypeMismatch, s.Pos(), "variable %q declared as %s but initialized with %s", s.Name, declared, initType))
		}
	}

	finalType := declared
	if finalType == nil && initType != nil {
		finalType = initType
	}
	if finalType == nil {
		if prior, ok := ctx.Scope.symbols[s.Name]; ok {
			finalType = prior.Type
		} else {
			ctx.AddError(newError(GenericSemantic, s.Pos(), "cannot infer type for %q: no type annotation, initializer, or prior binding in scope", s.Name))
			finalType = types.I32
		}
	}
	ctx.Scope.Define(&Symbol{Name: s.Name, Type: finalType, Mut: s.Mut, Initialized: initialized})
}

func analyzeAssignment(s *ast.Assignment, ctx *Context) {
	targetType := analyzeAssignTarget(s.Target, ctx)
	valueType := analyzeExpr(s.Value, ctx)
	if !targetType.Equals(valueType) {
		ctx.AddError(newError(TypeMismatch, s.Pos(), "cannot assign %s to a target of type %s", valueType, targetType))
	}
}

func analyzeIfStmt(s *ast.IfStmt, ctx *Context) {
	cond := analyzeExpr(s.Condition, ctx)
	if !cond.Equals(types.I32) {
		ctx.AddError(newError(TypeMismatch, s.Condition.Pos(), "if condition must be i32, got %s", cond))
	}
	analyzeBlockStmt(s.Then, ctx)
	switch elseBranch := s.Else.(type) {
	case nil:
	case *ast.Block:
		analyzeBlockStmt(elseBranch, ctx)
	case *ast.IfStmt:
		analyzeIfStmt(elseBranch, ctx)
	}
}

func analyzeWhileStmt(s *ast.WhileStmt, ctx *Context) {
	cond := analyzeExpr(s.Condition, ctx)
	if !cond.Equals(types.I32) {
		ctx.AddError(newError(TypeMismatch, s.Condition.Pos(), "while condition must be i32, got %s", cond))
	}
	ctx.PushLoop(false)
	analyzeBlockStmt(s.Body, ctx)
	ctx.PopLoop()
}

func analyzeForStmt(s *ast.ForStmt, ctx *Context) {
	start := analyzeExpr(s.Start, ctx)
	end := analyzeExpr(s.End, ctx)
	if !start.Equals(types.I32) {
		ctx.AddError(newError(TypeMismatch, s.Start.Pos(), "for range start must be i32, got %s", start))
	}
	if !end.Equals(types.I32) {
		ctx.AddError(newError(TypeMismatch, s.End.Pos(), "for range end must be i32, got %s", end))
	}
	if s.VarType != nil {
		if t := resolveType(s.VarType); !t.Equals(types.I32) {
			ctx.AddError(newError(TypeMismatch, s.Pos(), "for loop variable %q must be i32, got %s", s.Var, t))
		}
	}

	ctx.PushScope()
	ctx.Scope.Define(&Symbol{Name: s.Var, Type: types.I32, Mut: s.Mut, Initialized: true})
	ctx.PushLoop(false)
	analyzeStmts(s.Body.Statements, ctx)
	ctx.PopLoop()
	ctx.PopScope()
}

func analyzeLoopStmt(s *ast.LoopStmt, ctx *Context) {
	ctx.PushLoop(false)
	analyzeBlockStmt(s.Body, ctx)
	ctx.PopLoop()
}

func analyzeReturnStmt(s *ast.ReturnStmt, ctx *Context) {
	var exprType types.Type = types.Unit
	if s.Expression != nil {
		exprType = analyzeExpr(s.Expression, ctx)
	}
	retType := resolveType(ctx.CurrentFunction.ReturnType)
	if !exprType.Equals(retType) {
		ctx.AddError(newError(ReturnTypeError, s.Pos(), "function %q returns %s, got %s", ctx.CurrentFunction.Name, retType, exprType))
	}
}

func analyzeBreakStmt(s *ast.BreakStmt, ctx *Context) {
	if !ctx.InLoop() {
		ctx.AddError(newError(InvalidControlFlow, s.Pos(), "break outside of a loop"))
		return
	}
	if s.Expression != nil {
		t := analyzeExpr(s.Expression, ctx)
		if !ctx.CurrentLoopIsExpr() {
			ctx.AddError(newError(InvalidControlFlow, s.Pos(), "break with a value is only valid inside a loop used as an expression"))
		}
		ctx.recordBreak(t)
		return
	}
	ctx.recordBreak(nil)
}

func analyzeContinueStmt(s *ast.ContinueStmt, ctx *Context) {
	if !ctx.InLoop() {
		ctx.AddError(newError(InvalidControlFlow, s.Pos(), "continue outside of a loop"))
	}
}
