package quadgen

import (
	"strconv"
	"strings"

	"github.com/minilang/minilangc/internal/ast"
)

// typeExprString renders a parsed type annotation the way `declare` quads
// carry it in their optional fourth field. The generator works directly off
// the AST's written type syntax rather than the semantic analyzer's resolved
// types.Type: only the validated *ast.Program crosses the stage boundary,
// so there is no typed-AST intermediate to carry resolved types through. An
// absent annotation (nil) renders as the empty string, the "absent" field
// value this package uses throughout.
func typeExprString(t ast.TypeExpr) string {
	switch v := t.(type) {
	case nil:
		return ""
	case *ast.I32Type:
		return "i32"
	case *ast.ReferenceType:
		if v.Mut {
			return "&mut " + typeExprString(v.Inner)
		}
		return "&" + typeExprString(v.Inner)
	case *ast.ArrayType:
		return "[" + typeExprString(v.Inner) + "; " + strconv.FormatInt(v.Size, 10) + "]"
	case *ast.TupleType:
		parts := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			parts[i] = typeExprString(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return ""
	}
}
