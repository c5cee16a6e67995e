package semantic

import "github.com/minilang/minilangc/internal/ast"

// DeclarationPass collects every top-level function's signature before any
// body is validated, so a call to a function declared later in the file (or
// a mutually recursive pair) resolves during the body pass instead of
// failing as undeclared.
type DeclarationPass struct{}

func (DeclarationPass) Name() string { return "declaration-collection" }

func (DeclarationPass) Run(program *ast.Program, ctx *Context) error {
	for _, fn := range program.Declarations {
		if _, exists := ctx.Functions[fn.Name]; exists {
			ctx.AddError(newError(GenericSemantic, fn.Pos(), "function %q is already declared", fn.Name))
			continue
		}
		sig := &FuncSignature{ReturnType: resolveType(fn.ReturnType)}
		for _, p := range fn.Params {
			sig.Params = append(sig.Params, resolveType(p.Type))
			sig.ParamMut = append(sig.ParamMut, p.Mut)
			sig.ParamNames = append(sig.ParamNames, p.Name)
		}
		ctx.Functions[fn.Name] = sig
	}
	return nil
}
