package semantic

import (
	"strings"
	"testing"

	"github.com/minilang/minilangc/internal/parser"
)

func mustAnalyze(t *testing.T, src string) []*SemanticError {
	t.Helper()
	program, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	errs, err := Analyze(program)
	if err != nil {
		t.Fatalf("Analyze(%q) returned fatal error: %v", src, err)
	}
	return errs
}

func requireNoErrors(t *testing.T, src string) {
	t.Helper()
	if errs := mustAnalyze(t, src); len(errs) != 0 {
		t.Fatalf("expected no errors for %q, got: %v", src, errs)
	}
}

func requireError(t *testing.T, src string, kind ErrorKind, contains string) {
	t.Helper()
	errs := mustAnalyze(t, src)
	for _, e := range errs {
		if e.Kind == kind && strings.Contains(e.Message, contains) {
			return
		}
	}
	t.Fatalf("expected a %s error containing %q for %q, got: %v", kind, contains, src, errs)
}

func TestAnalyzeValidFunction(t *testing.T) {
	requireNoErrors(t, `fn add(a: i32, b: i32) -> i32 { a + b }`)
}

func TestAnalyzeMutualRecursionResolvesForwardReference(t *testing.T) {
	requireNoErrors(t, `
		fn is_even(n: i32) -> i32 { let r = if n == 0 { 1 } else { is_odd(n - 1) }; r }
		fn is_odd(n: i32) -> i32 { let r = if n == 0 { 0 } else { is_even(n - 1) }; r }
	`)
}

func TestAnalyzeDuplicateFunctionIsError(t *testing.T) {
	requireError(t, `
		fn f() -> i32 { 1 }
		fn f() -> i32 { 2 }
	`, GenericSemantic, "already declared")
}

func TestAnalyzeUndeclaredVariable(t *testing.T) {
	requireError(t, `fn f() -> i32 { x }`, UndeclaredVariable, "undeclared variable")
}

func TestAnalyzeUndeclaredFunctionCall(t *testing.T) {
	requireError(t, `fn f() -> i32 { missing() }`, UndeclaredVariable, "undeclared function")
}

func TestAnalyzeCallArgumentCountMismatch(t *testing.T) {
	requireError(t, `
		fn add(a: i32, b: i32) -> i32 { a + b }
		fn f() -> i32 { add(1) }
	`, GenericSemantic, "expects 2 argument")
}

func TestAnalyzeCallArgumentTypeMismatch(t *testing.T) {
	requireError(t, `
		fn takes_ref(a: &i32) -> i32 { *a }
		fn f() -> i32 { takes_ref(1) }
	`, TypeMismatch, "argument 1")
}

func TestAnalyzeVarDeclTypeMismatch(t *testing.T) {
	requireError(t, `fn f() { let x: &i32 = 1; }`, TypeMismatch, "declared as")
}

func TestAnalyzeVarDeclInfersFromInitializer(t *testing.T) {
	requireNoErrors(t, `fn f() -> i32 { let x = 5; x }`)
}

func TestAnalyzeImmutableReassignmentIsError(t *testing.T) {
	requireError(t, `fn f() { let x = 1; x = 2; }`, ImmutableAssignment, "immutable variable")
}

func TestAnalyzeMutReassignmentIsAllowed(t *testing.T) {
	requireNoErrors(t, `fn f() { let mut x = 1; x = 2; }`)
}

func TestAnalyzeAssignmentTypeMismatch(t *testing.T) {
	requireError(t, `fn f() { let mut x = 1; x = (1, 2); }`, TypeMismatch, "cannot assign")
}

func TestAnalyzeUninitializedVariableUse(t *testing.T) {
	requireError(t, `fn f() -> i32 { let x: i32; x }`, UninitializedVariable, "before it is initialized")
}

func TestAnalyzeDelayedInitializationThenAssignmentIsFine(t *testing.T) {
	requireNoErrors(t, `fn f() -> i32 { let mut x: i32; x = 3; x }`)
}

func TestAnalyzeAssignmentToImmutableUninitializedVariableIsError(t *testing.T) {
	requireError(t, `fn f() -> i32 { let x: i32; x = 3; x }`, ImmutableAssignment, "immutable variable")
}

func TestAnalyzeShadowingWithinSameScopeIsAllowed(t *testing.T) {
	requireNoErrors(t, `fn f() -> i32 { let x = 1; let x = x + 1; x }`)
}

func TestAnalyzeIfExprBranchMismatch(t *testing.T) {
	requireError(t, `fn f() -> i32 { let x = if 1 { 1 } else { (1, 2) }; x.0 }`, TypeMismatch, "if branches")
}

func TestAnalyzeIfExprConditionMustBeI32(t *testing.T) {
	requireError(t, `fn f() -> i32 { let x = if (1, 2) { 1 } else { 0 }; x }`, TypeMismatch, "if condition")
}

func TestAnalyzeLoopExprBreakValuesMustAgree(t *testing.T) {
	requireError(t, `
		fn f() -> i32 {
			let x = loop {
				if 1 { break 1; } else { break (1, 2); }
			};
			x.0
		}
	`, TypeMismatch, "break expressions")
}

func TestAnalyzeLoopExprWithNoValueBreakIsError(t *testing.T) {
	requireError(t, `
		fn f() -> i32 {
			let x = loop {
				break;
			};
			x
		}
	`, GenericSemantic, "no break with a value")
}

func TestAnalyzeLoopExprWithConsistentBreaksYieldsThatType(t *testing.T) {
	requireNoErrors(t, `
		fn f() -> i32 {
			let x = loop {
				break 5;
			};
			x
		}
	`)
}

func TestAnalyzeBreakWithValueOutsideLoopExprIsError(t *testing.T) {
	requireError(t, `
		fn f() {
			while 1 {
				break 5;
			}
		}
	`, InvalidControlFlow, "break with a value")
}

func TestAnalyzeBreakOutsideLoopIsError(t *testing.T) {
	requireError(t, `fn f() { break; }`, InvalidControlFlow, "break outside of a loop")
}

func TestAnalyzeContinueOutsideLoopIsError(t *testing.T) {
	requireError(t, `fn f() { continue; }`, InvalidControlFlow, "continue outside of a loop")
}

func TestAnalyzeBreakContinueInsideForLoopIsFine(t *testing.T) {
	requireNoErrors(t, `
		fn f() {
			for i in 0..10 {
				if i == 5 { break; }
				if i == 2 { continue; }
			}
		}
	`)
}

func TestAnalyzeReturnTypeMismatch(t *testing.T) {
	requireError(t, `fn f() -> i32 { return (1, 2); }`, ReturnTypeError, "returns i32")
}

func TestAnalyzeArrayIndexRequiresI32(t *testing.T) {
	requireError(t, `fn f(arr: [i32; 3]) -> i32 { arr[(1, 2)] }`, TypeMismatch, "array index")
}

func TestAnalyzeLiteralIndexOutOfBoundsIsError(t *testing.T) {
	requireError(t, `fn f(arr: [i32; 3]) -> i32 { arr[3] }`, GenericSemantic, "out of bounds")
}

func TestAnalyzeLiteralIndexOutOfBoundsInAssignmentIsError(t *testing.T) {
	requireError(t, `fn f() { let mut arr = [1, 2, 3]; arr[7] = 0; }`, GenericSemantic, "out of bounds")
}

func TestAnalyzeLiteralIndexWithinBoundsIsFine(t *testing.T) {
	requireNoErrors(t, `fn f(arr: [i32; 3]) -> i32 { arr[2] }`)
}

func TestAnalyzeIndexIntoNonArrayIsError(t *testing.T) {
	requireError(t, `fn f() -> i32 { let x = 1; x[0] }`, TypeMismatch, "non-array")
}

func TestAnalyzeTupleAccessByFieldNameIsRejected(t *testing.T) {
	requireError(t, `fn f() -> i32 { let x = (1, 2); x.field }`, GenericSemantic, "field name is not supported")
}

func TestAnalyzeTupleAccessOutOfRange(t *testing.T) {
	requireError(t, `fn f() -> i32 { let x = (1, 2); x.5 }`, GenericSemantic, "out of range")
}

func TestAnalyzeMutableBorrowOfImmutableVariableIsError(t *testing.T) {
	requireError(t, `
		fn takes_mut_ref(a: &mut i32) { *a = 1; }
		fn f() { let x = 1; takes_mut_ref(&mut x); }
	`, ImmutableAssignment, "mutable reference to immutable variable")
}

func TestAnalyzeDoubleMutableBorrowIsBorrowCheckError(t *testing.T) {
	requireError(t, `
		fn f() {
			let mut x = 1;
			let a = &mut x;
			let b = &mut x;
		}
	`, BorrowCheckError, "already borrowed")
}

func TestAnalyzeMutableBorrowAfterImmutableBorrowIsBorrowCheckError(t *testing.T) {
	requireError(t, `
		fn f() {
			let mut x = 1;
			let a = &x;
			let b = &mut x;
		}
	`, BorrowCheckError, "already borrowed")
}

func TestAnalyzeBorrowFlagsNotTrackedForIndexedOperands(t *testing.T) {
	requireNoErrors(t, `
		fn f(mut a: [i32; 3]) -> i32 {
			let x = &mut a[0];
			let y = &mut a[1];
			*x + *y
		}
	`)
}

func TestAnalyzeMutableReferenceToElementOfImmutableArrayIsFine(t *testing.T) {
	requireNoErrors(t, `
		fn f(a: [i32; 3]) -> i32 {
			let r = &mut a[0];
			*r
		}
	`)
}

func TestAnalyzeReferenceToIndexedElementHasElementType(t *testing.T) {
	requireError(t, `
		fn f(mut a: [i32; 3]) {
			let r: &mut (i32, i32) = &mut a[0];
		}
	`, TypeMismatch, "declared as")
}

func TestAnalyzeTwoImmutableBorrowsAreFine(t *testing.T) {
	requireNoErrors(t, `
		fn f() -> i32 {
			let x = 1;
			let a = &x;
			let b = &x;
			*a + *b
		}
	`)
}

func TestAnalyzeDerefAssignmentThroughImmutableReferenceIsError(t *testing.T) {
	requireError(t, `
		fn f(a: &i32) {
			*a = 1;
		}
	`, ImmutableAssignment, "immutable reference")
}

func TestAnalyzeDerefAssignmentThroughMutableReferenceIsFine(t *testing.T) {
	requireNoErrors(t, `
		fn f(a: &mut i32) {
			*a = 1;
		}
	`)
}

func TestAnalyzeForLoopVariableIsI32(t *testing.T) {
	requireNoErrors(t, `
		fn f() -> i32 {
			let mut total = 0;
			for i in 0..10 {
				total = total + i;
			}
			total
		}
	`)
}

func TestAnalyzeBareLetReDeclarationInSameScopeIsAllowed(t *testing.T) {
	requireNoErrors(t, `
		fn f() -> i32 {
			let mut x = 1;
			let mut x;
			x = 2;
			x
		}
	`)
}

func TestAnalyzeBareLetWithoutPriorBindingCannotInferType(t *testing.T) {
	requireError(t, `fn f() { let x; }`, GenericSemantic, "cannot infer type")
}

func TestAnalyzeEmptyArrayLiteralIsError(t *testing.T) {
	requireError(t, `fn f() { let a = []; }`, GenericSemantic, "at least one element")
}
