package semantic

import (
	"github.com/minilang/minilangc/internal/ast"
)

// BodyPass type-checks, validates control flow, and borrow-checks every
// function body using the signature table DeclarationPass built. The
// borrow-flag check is folded into the same walk rather than run as its own
// pass, since both need the same scope-resolved Symbol for each variable.
type BodyPass struct{}

func (BodyPass) Name() string { return "body-validation" }

func (BodyPass) Run(program *ast.Program, ctx *Context) error {
	for _, fn := range program.Declarations {
		analyzeFunction(fn, ctx)
	}
	return nil
}

func analyzeFunction(fn *ast.FunctionDecl, ctx *Context) {
	ctx.CurrentFunction = fn
	ctx.PushScope()
	for _, p := range fn.Params {
		ctx.Scope.Define(&Symbol{Name: p.Name, Type: resolveType(p.Type), Mut: p.Mut, Initialized: true})
	}

	bodyType := analyzeFunctionExprBlock(fn.Body, ctx)
	retType := resolveType(fn.ReturnType)
	if _, hasTail := fn.Body.HasTailExpression(); hasTail && !bodyType.Equals(retType) {
		ctx.AddError(newError(ReturnTypeError, fn.Pos(), "function %q must return %s, body yields %s", fn.Name, retType, bodyType))
	}

	ctx.PopScope()
	ctx.CurrentFunction = nil
}

// Analyze runs the full two-pass semantic analysis over program and returns
// every diagnostic found. A non-nil error indicates a fatal, non-semantic
// failure in the passes themselves; semantic problems are always reported
// through the returned slice instead.
func Analyze(program *ast.Program) ([]*SemanticError, error) {
	ctx := NewContext()
	pm := NewPassManager(DeclarationPass{}, BodyPass{})
	if err := pm.RunAll(program, ctx); err != nil {
		return ctx.Errors, err
	}
	return ctx.Errors, nil
}
