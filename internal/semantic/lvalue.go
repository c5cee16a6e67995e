package semantic

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/types"
)

// analyzeAssignTarget type-checks the left side of `target = value;` and
// enforces mutability: an immutable variable can never be assigned, even to
// set its initial value, and assigning through a reference requires that
// reference to be `&mut`. It marks the target's root variable initialized.
func analyzeAssignTarget(expr ast.Expression, ctx *Context) types.Type {
	switch e := expr.(type) {
	case *ast.Identifier:
		sym, ok := ctx.Scope.Resolve(e.Name)
		if !ok {
			ctx.AddError(newError(UndeclaredVariable, e.Pos(), "undeclared variable %q", e.Name))
			return types.I32
		}
		if !sym.Mut {
			ctx.AddError(newError(ImmutableAssignment, e.Pos(), "cannot assign to immutable variable %q", e.Name))
		}
		sym.Initialized = true
		return sym.Type

	case *ast.DerefExpr:
		inner := analyzeExpr(e.Operand, ctx)
		ref, ok := inner.(*types.ReferenceType)
		if !ok {
			ctx.AddError(newError(TypeMismatch, e.Pos(), "cannot dereference non-reference type %s", inner))
			return types.I32
		}
		if !ref.Mut {
			ctx.AddError(newError(ImmutableAssignment, e.Pos(), "cannot assign through an immutable reference"))
		}
		return ref.Inner

	case *ast.IndexExpr:
		target := analyzeAssignTarget(e.Target, ctx)
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
		target := analyzeAssignTarget(e.Target, ctx)
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

	default:
		ctx.AddError(newError(GenericSemantic, expr.Pos(), "invalid assignment target"))
		return types.I32
	}
}

// analyzeRefExpr type-checks `&operand` / `&mut operand`. The borrow-flag
// half of the check applies only when the operand is a plain identifier: a
// mutable borrow requires a mut variable with no live borrow, and any borrow
// of a mutably-borrowed variable is rejected. Flags are monotonic for the
// remainder of the enclosing function, matching the local, flow-insensitive
// analysis this package performs. A reference to any other operand shape (an
// indexed element, a tuple field) tracks no flags; only its type is computed.
func analyzeRefExpr(e *ast.RefExpr, ctx *Context) types.Type {
	ident, ok := e.Operand.(*ast.Identifier)
	if !ok {
		return types.NewReferenceType(analyzeExpr(e.Operand, ctx), e.Mut)
	}
	sym, found := ctx.Scope.Resolve(ident.Name)
	if !found {
		ctx.AddError(newError(UndeclaredVariable, ident.Pos(), "undeclared variable %q", ident.Name))
		return types.NewReferenceType(types.I32, e.Mut)
	}
	if !sym.Initialized {
		ctx.AddError(newError(UninitializedVariable, ident.Pos(), "variable %q used before it is initialized", ident.Name))
	}
	if e.Mut {
		if !sym.Mut {
			ctx.AddError(newError(ImmutableAssignment, e.Pos(), "cannot take a mutable reference to immutable variable %q", sym.Name))
		}
		if sym.BorrowedMut || sym.BorrowedImmut {
			ctx.AddError(newError(BorrowCheckError, e.Pos(), "variable %q is already borrowed", sym.Name))
		}
		sym.BorrowedMut = true
	} else {
		if sym.BorrowedMut {
			ctx.AddError(newError(BorrowCheckError, e.Pos(), "variable %q is already mutably borrowed", sym.Name))
		}
		sym.BorrowedImmut = true
	}
	return types.NewReferenceType(sym.Type, e.Mut)
}
