package semantic

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/types"
)

// analyzeExpr infers expr's type, recording every semantic error it finds
// along the way. It never returns nil so callers can keep comparing types
// without a second round of nil checks; on an unrecoverable shape mismatch it
// falls back to i32, the type least likely to cascade into unrelated errors
// (a call whose callee cannot be resolved falls back to unit instead).
func analyzeExpr(expr ast.Expression, ctx *Context) types.Type {
	switch e := expr.(type) {
	case *ast.Literal:
		return types.I32

	case *ast.Identifier:
		sym, ok := ctx.Scope.Resolve(e.Name)
		if !ok {
			ctx.AddError(newError(UndeclaredVariable, e.Pos(), "undeclared variable %q", e.Name))
			return types.I32
		}
		if !sym.Initialized {
			ctx.AddError(newError(UninitializedVariable, e.Pos(), "variable %q used before it is initialized", e.Name))
		}
		return sym.Type

	case *ast.BinaryExpression:
		left := analyzeExpr(e.Left, ctx)
		right := analyzeExpr(e.Right, ctx)
		if !left.Equals(types.I32) {
			ctx.AddError(newError(TypeMismatch, e.Left.Pos(), "left operand of %q must be i32, got %s", e.Operator, left))
		}
		if !right.Equals(types.I32) {
			ctx.AddError(newError(TypeMismatch, e.Right.Pos(), "right operand of %q must be i32, got %s", e.Operator, right))
		}
		return types.I32

	case *ast.UnaryExpr:
		return analyzeExpr(e.Argument, ctx)

	case *ast.CallExpression:
		return analyzeCallExpression(e, ctx)

	case *ast.IfExpr:
		cond := analyzeExpr(e.Condition, ctx)
		if !cond.Equals(types.I32) {
			ctx.AddError(newError(TypeMismatch, e.Condition.Pos(), "if condition must be i32, got %s", cond))
		}
		thenType := analyzeFunctionExprBlock(e.Then, ctx)
		elseType := analyzeFunctionExprBlock(e.Else, ctx)
		if !thenType.Equals(elseType) {
			ctx.AddError(newError(TypeMismatch, e.Pos(), "if branches disagree in type: %s vs %s", thenType, elseType))
		}
		return thenType

	case *ast.LoopExpr:
		ctx.PushLoop(true)
		analyzeFunctionExprBlock(e.Body, ctx)
		collector := ctx.PopLoop()
		return loopResultType(e, collector, ctx)

	case *ast.RefExpr:
		return analyzeRefExpr(e, ctx)

	case *ast.DerefExpr:
		inner := analyzeExpr(e.Operand, ctx)
		ref, ok := inner.(*types.ReferenceType)
		if !ok {
			ctx.AddError(newError(TypeMismatch, e.Pos(), "cannot dereference non-reference type %s", inner))
			return types.I32
		}
		return ref.Inner

	case *ast.IndexExpr:
		target := analyzeExpr(e.Target, ctx)
		idx := analyzeExpr(e.Index, ctx)
		if !idx.Equals(types.I32) {
			ctx.AddError(newError(TypeMismatch, e.Index.Pos(), "array index must be i32, got %s", idx))
		}
		arr, ok := target.(*types.ArrayType)
		if !ok {
			ctx.AddError(newError(TypeMismatch, e.Pos(), "cannot index non-array type %s", target))
			return types.I32
		}
		checkIndexBounds(e.Index, arr, ctx)
		return arr.Inner

	case *ast.TupleAccess:
		return analyzeTupleAccess(e, ctx)

	case *ast.ArrayLiteral:
		return analyzeArrayLiteral(e, ctx)

	case *ast.TupleLiteral:
		if len(e.Elements) == 0 {
			return types.Unit
		}
		elems := make([]types.Type, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = analyzeExpr(el, ctx)
		}
		return types.NewTupleType(elems)

	case *ast.FunctionExprBlock:
		return analyzeFunctionExprBlock(e, ctx)

	default:
		ctx.AddError(newError(GenericSemantic, expr.Pos(), "unsupported expression"))
		return types.I32
	}
}

func analyzeCallExpression(e *ast.CallExpression, ctx *Context) types.Type {
	ident, ok := e.Callee.(*ast.Identifier)
	if !ok {
		ctx.AddError(newError(GenericSemantic, e.Pos(), "call target must be a function name"))
		for _, arg := range e.Arguments {
			analyzeExpr(arg, ctx)
		}
		return types.Unit
	}
	sig, ok := ctx.Functions[ident.Name]
	if !ok {
		ctx.AddError(newError(UndeclaredVariable, e.Pos(), "call to undeclared function %q", ident.Name))
		for _, arg := range e.Arguments {
			analyzeExpr(arg, ctx)
		}
		return types.Unit
	}
	if len(e.Arguments) != len(sig.Params) {
		ctx.AddError(newError(GenericSemantic, e.Pos(), "function %q expects %d argument(s), got %d", ident.Name, len(sig.Params), len(e.Arguments)))
	}
	for i, arg := range e.Arguments {
		argType := analyzeExpr(arg, ctx)
		if i < len(sig.Params) && !argType.Equals(sig.Params[i]) {
			ctx.AddError(newError(TypeMismatch, arg.Pos(), "argument %d to %q has type %s, want %s", i+1, ident.Name, argType, sig.Params[i]))
		}
	}
	return sig.ReturnType
}

func analyzeTupleAccess(e *ast.TupleAccess, ctx *Context) types.Type {
	target := analyzeExpr(e.Target, ctx)
	idx, ok := e.Index.(int)
	if !ok {
		ctx.AddError(newError(GenericSemantic, e.Pos(), "tuple access by field name is not supported; use a numeric index"))
		return types.I32
	}
	tup, ok := target.(*types.TupleType)
	if !ok {
		ctx.AddError(newError(TypeMismatch, e.Pos(), "cannot index non-tuple type %s", target))
		return types.I32
	}
	if idx < 0 || idx >= len(tup.Elements) {
		ctx.AddError(newError(GenericSemantic, e.Pos(), "tuple index %d out of range for %s", idx, tup))
		return types.I32
	}
	return tup.Elements[idx]
}

func analyzeArrayLiteral(e *ast.ArrayLiteral, ctx *Context) types.Type {
	if len(e.Elements) == 0 {
		ctx.AddError(newError(GenericSemantic, e.Pos(), "array literal must have at least one element"))
		return types.NewArrayType(types.I32, 0)
	}
	var elemType types.Type = types.I32
	for i, el := range e.Elements {
		t := analyzeExpr(el, ctx)
		if i == 0 {
			elemType = t
			continue
		}
		if !elemType.Equals(t) {
			ctx.AddError(newError(TypeMismatch, el.Pos(), "array element %d has type %s, want %s", i, t, elemType))
		}
	}
	return types.NewArrayType(elemType, len(e.Elements))
}

// checkIndexBounds rejects a literal index that falls outside the array's
// declared size; a computed index is a runtime concern and passes through.
func checkIndexBounds(index ast.Expression, arr *types.ArrayType, ctx *Context) {
	lit, ok := index.(*ast.Literal)
	if !ok {
		return
	}
	if lit.Value < 0 || lit.Value >= int64(arr.Size) {
		ctx.AddError(newError(GenericSemantic, index.Pos(), "index %d out of bounds for %s", lit.Value, arr))
	}
}

// loopResultType reconciles the break statements collected for one LoopExpr
// into the type its value carries: the common type if every value-break
// agrees, or a TypeMismatch otherwise. A LoopExpr used in value position
// must have at least one `break <expr>;`; one with none, or only bare
// `break;`, never produces a value to yield.
func loopResultType(pos ast.Node, collector *breakCollector, ctx *Context) types.Type {
	if len(collector.Types) == 0 {
		ctx.AddError(newError(GenericSemantic, pos.Pos(), "loop expression has no break with a value"))
		return types.Unit
	}
	if collector.HasBareBreak {
		ctx.AddError(newError(GenericSemantic, pos.Pos(), "loop mixes a bare `break` with a `break` carrying a value"))
	}
	result := collector.Types[0]
	for _, t := range collector.Types[1:] {
		if !t.Equals(result) {
			ctx.AddError(newError(TypeMismatch, pos.Pos(), "break expressions in loop disagree in type: %s vs %s", result, t))
		}
	}
	return result
}

// analyzeFunctionExprBlock type-checks every element of a value-position
// block in its own nested scope and returns the type of its tail expression
// (unit if the block has none).
func analyzeFunctionExprBlock(b *ast.FunctionExprBlock, ctx *Context) types.Type {
	ctx.PushScope()
	defer ctx.PopScope()

	result := types.Type(types.Unit)
	last := len(b.Elements) - 1
	for i, el := range b.Elements {
		if i == last && !b.ElementTerminated[i] {
			if expr, ok := el.(ast.Expression); ok {
				result = analyzeExpr(expr, ctx)
				continue
			}
		}
		if stmt, ok := el.(ast.Statement); ok {
			analyzeStmt(stmt, ctx)
		}
	}
	return result
}
