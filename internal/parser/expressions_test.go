package parser

import (
	"testing"

	"github.com/minilang/minilangc/internal/ast"
)

func tailExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	body := singleFuncBody(t, src)
	expr, ok := body.HasTailExpression()
	if !ok {
		t.Fatalf("body of %q has no tail expression", src)
	}
	return expr
}

func TestParsePrecedence(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { 1 + 2 * 3 }`)

	bin, ok := expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expr = %+v, want top-level '+'", expr)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("bin.Right = %+v, want '*' subexpression", bin.Right)
	}
}

func TestParseComparisonBindsLooserThanAdditive(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { 1 + 2 < 3 * 4 }`)

	bin, ok := expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "<" {
		t.Fatalf("expr = %+v, want top-level '<'", expr)
	}
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Errorf("bin.Left = %T, want *ast.BinaryExpression", bin.Left)
	}
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Errorf("bin.Right = %T, want *ast.BinaryExpression", bin.Right)
	}
}

func TestParseCallExpression(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { add(1, 2) }`)

	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expr = %T, want *ast.CallExpression", expr)
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok || callee.Name != "add" {
		t.Errorf("call.Callee = %+v, want Identifier(add)", call.Callee)
	}
	if len(call.Arguments) != 2 {
		t.Errorf("call.Arguments has %d entries, want 2", len(call.Arguments))
	}
}

func TestParseArrayLiteralAndIndex(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { [1, 2, 3][1] }`)

	idx, ok := expr.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expr = %T, want *ast.IndexExpr", expr)
	}
	arr, ok := idx.Target.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("idx.Target = %+v, want 3-element ArrayLiteral", idx.Target)
	}
}

func TestParseTupleLiteralAndAccess(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { (1, 2).0 }`)

	access, ok := expr.(*ast.TupleAccess)
	if !ok {
		t.Fatalf("expr = %T, want *ast.TupleAccess", expr)
	}
	if access.Index != 0 {
		t.Errorf("access.Index = %v, want 0", access.Index)
	}
	tup, ok := access.Target.(*ast.TupleLiteral)
	if !ok || len(tup.Elements) != 2 {
		t.Fatalf("access.Target = %+v, want 2-element TupleLiteral", access.Target)
	}
}

func TestParseTupleAccessByIdentAcceptedSyntactically(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { (1, 2).field }`)

	access, ok := expr.(*ast.TupleAccess)
	if !ok {
		t.Fatalf("expr = %T, want *ast.TupleAccess", expr)
	}
	if access.Index != "field" {
		t.Errorf("access.Index = %v, want %q", access.Index, "field")
	}
}

func TestParseGroupedExpressionIsNotATuple(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { (1 + 2) * 3 }`)

	bin, ok := expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "*" {
		t.Fatalf("expr = %+v, want top-level '*'", expr)
	}
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Errorf("bin.Left = %T, want *ast.BinaryExpression (from the parenthesized group)", bin.Left)
	}
}

func TestParseUnitLiteral(t *testing.T) {
	expr := tailExpr(t, `fn f() { () }`)

	tup, ok := expr.(*ast.TupleLiteral)
	if !ok {
		t.Fatalf("expr = %T, want *ast.TupleLiteral", expr)
	}
	if len(tup.Elements) != 0 {
		t.Errorf("tup.Elements has %d entries, want 0", len(tup.Elements))
	}
}

func TestParseRefAndDeref(t *testing.T) {
	expr := tailExpr(t, `fn f(x: i32) -> i32 { *&x }`)

	deref, ok := expr.(*ast.DerefExpr)
	if !ok {
		t.Fatalf("expr = %T, want *ast.DerefExpr", expr)
	}
	ref, ok := deref.Operand.(*ast.RefExpr)
	if !ok {
		t.Fatalf("deref.Operand = %T, want *ast.RefExpr", deref.Operand)
	}
	if ref.Mut {
		t.Error("ref.Mut = true, want false")
	}
}

func TestParsePostfixBindsTighterThanDeref(t *testing.T) {
	expr := tailExpr(t, `fn f(a: &[i32; 3]) -> i32 { *a[0] }`)

	deref, ok := expr.(*ast.DerefExpr)
	if !ok {
		t.Fatalf("expr = %T, want *ast.DerefExpr", expr)
	}
	if _, ok := deref.Operand.(*ast.IndexExpr); !ok {
		t.Errorf("deref.Operand = %T, want *ast.IndexExpr (postfix binds before deref)", deref.Operand)
	}
}

func TestParseIfExprBothBranchesRequired(t *testing.T) {
	body := singleFuncBody(t, `fn f(x: i32) -> i32 { let y: i32 = if x < 0 { 0 } else { x }; y }`)

	decl, ok := body.Elements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("element 0 is %T, want *ast.VarDecl", body.Elements[0])
	}
	ifExpr, ok := decl.Init.(*ast.IfExpr)
	if !ok {
		t.Fatalf("decl.Init = %T, want *ast.IfExpr", decl.Init)
	}
	if ifExpr.Then == nil || ifExpr.Else == nil {
		t.Fatal("ifExpr.Then/Else must both be present")
	}
}

func TestParseIfExprMissingElseIsError(t *testing.T) {
	_, err := Parse(`fn f(x: i32) -> i32 { let y: i32 = if x < 0 { 0 }; y }`)
	if err == nil {
		t.Fatal("expected a syntax error for an if-expression with no else, got nil")
	}
}

func TestParseLoopExprAsInitializer(t *testing.T) {
	body := singleFuncBody(t, `
		fn f() -> i32 {
			let x: i32 = loop {
				break 1;
			};
			x
		}
	`)

	decl := body.Elements[0].(*ast.VarDecl)
	loopExpr, ok := decl.Init.(*ast.LoopExpr)
	if !ok {
		t.Fatalf("decl.Init = %T, want *ast.LoopExpr", decl.Init)
	}
	if len(loopExpr.Body.Elements) != 1 {
		t.Errorf("loopExpr.Body has %d elements, want 1", len(loopExpr.Body.Elements))
	}
}

func TestParseBlockExpressionLiteral(t *testing.T) {
	expr := tailExpr(t, `fn f() -> i32 { { let a: i32 = 1; a + 1 } }`)

	inner, ok := expr.(*ast.FunctionExprBlock)
	if !ok {
		t.Fatalf("expr = %T, want *ast.FunctionExprBlock", expr)
	}
	if _, ok := inner.HasTailExpression(); !ok {
		t.Error("inner block has no tail expression, want one")
	}
}
