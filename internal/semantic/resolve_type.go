package semantic

import (
	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/types"
)

// resolveType maps a parsed type expression to its structural types.Type.
// A nil TypeExpr (no return type written, no let-annotation) is Unit.
func resolveType(t ast.TypeExpr) types.Type {
	switch v := t.(type) {
	case nil:
		return types.Unit
	case *ast.I32Type:
		return types.I32
	case *ast.ReferenceType:
		return types.NewReferenceType(resolveType(v.Inner), v.Mut)
	case *ast.ArrayType:
		return types.NewArrayType(resolveType(v.Inner), int(v.Size))
	case *ast.TupleType:
		if len(v.Elements) == 0 {
			return types.Unit
		}
		elems := make([]types.Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = resolveType(e)
		}
		return types.NewTupleType(elems)
	default:
		return types.Unit
	}
}
