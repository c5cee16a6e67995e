package semantic

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/types"
)

// breakCollector accumulates the break statements that target one loop
// construct, so a LoopExpr can check its break expressions all agree on a
// single type once the body has been fully walked.
type breakCollector struct {
	Types        []types.Type
	HasBareBreak bool
	IsExprLoop   bool
}

// Context is the shared state threaded through both analysis passes:
// the function signature table built by the declaration pass, the current
// scope chain, and the accumulated diagnostics.
type Context struct {
	Functions       map[string]*FuncSignature
	Scope           *SymbolTable
	Errors          []*SemanticError
	CurrentFunction *ast.FunctionDecl
	loopStack       []*breakCollector
}

// NewContext creates an empty analysis context with a fresh global scope.
func NewContext() *Context {
	return &Context{
		Functions: make(map[string]*FuncSignature),
		Scope:     NewSymbolTable(),
	}
}

// AddError records a semantic diagnostic without aborting analysis.
func (ctx *Context) AddError(err *SemanticError) {
	ctx.Errors = append(ctx.Errors, err)
}

// PushScope enters a new lexical scope nested inside the current one.
func (ctx *Context) PushScope() {
	ctx.Scope = NewEnclosedSymbolTable(ctx.Scope)
}

// PopScope leaves the current scope, returning to its outer scope.
func (ctx *Context) PopScope() {
	if ctx.Scope.outer == nil {
		panic("cannot pop the global scope")
	}
	ctx.Scope = ctx.Scope.outer
}

// PushLoop enters a new loop construct, giving break and continue statements
// inside it somewhere to attach. isExprLoop marks a LoopExpr, the only
// construct where `break <expr>;` contributes to the loop's value.
func (ctx *Context) PushLoop(isExprLoop bool) {
	ctx.loopStack = append(ctx.loopStack, &breakCollector{IsExprLoop: isExprLoop})
}

// PopLoop leaves the current loop construct and returns what its break
// statements collected.
func (ctx *Context) PopLoop() *breakCollector {
	top := ctx.loopStack[len(ctx.loopStack)-1]
	ctx.loopStack = ctx.loopStack[:len(ctx.loopStack)-1]
	return top
}

// InLoop reports whether break/continue are currently valid.
func (ctx *Context) InLoop() bool { return len(ctx.loopStack) > 0 }

// CurrentLoopIsExpr reports whether the nearest enclosing loop construct is
// a LoopExpr, i.e. whether a `break <expr>;` here has somewhere to go.
func (ctx *Context) CurrentLoopIsExpr() bool {
	return len(ctx.loopStack) > 0 && ctx.loopStack[len(ctx.loopStack)-1].IsExprLoop
}

// recordBreak attaches a break's value (or lack of one) to the nearest
// enclosing loop construct.
func (ctx *Context) recordBreak(t types.Type) {
	top := ctx.loopStack[len(ctx.loopStack)-1]
	if t == nil {
		top.HasBareBreak = true
		return
	}
	top.Types = append(top.Types, t)
}
