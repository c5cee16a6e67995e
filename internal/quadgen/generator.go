package quadgen

import (
	"fmt"
	"strconv"

	"github.com/minilang/minilangc/internal/ast"
)

// loopContext tracks one active loop construct's jump targets. Labels are
// resolved once, at emission time, never patched afterwards. resultTemp is
// only set for a LoopExpr, the one loop construct a valued `break` can
// target.
type loopContext struct {
	startLabel string
	endLabel   string
	resultTemp string
}

// Generator owns all state for lowering one Program: the running quad list,
// the monotonic temp/label counters, the loop-context stack break/continue
// resolve against, and the name of the function currently being lowered.
// One Generator is used for exactly one Generate call.
type Generator struct {
	quads     []Quad
	tempSeq   int
	labelSeq  int
	loopStack []*loopContext
	fnName    string
	sawReturn bool
}

// Generate lowers a validated Program into its full quad list. Functions are
// lowered in declaration order; each contains at least one return quad, with a
// bare return appended at the end only when the body emitted none.
func Generate(program *ast.Program) []Quad {
	g := &Generator{}
	for _, fn := range program.Declarations {
		g.generateFunction(fn)
	}
	return g.quads
}

func (g *Generator) emit(q Quad) {
	if q.Op == string(OpReturn) {
		g.sawReturn = true
	}
	g.quads = append(g.quads, q)
}

func (g *Generator) newTemp() string {
	t := fmt.Sprintf("t%d", g.tempSeq)
	g.tempSeq++
	return t
}

func (g *Generator) newLabel() string {
	l := fmt.Sprintf("L%d", g.labelSeq)
	g.labelSeq++
	return l
}

func (g *Generator) emitLabel(name string) {
	g.emit(Quad{Op: name + ":"})
}

func (g *Generator) pushLoop(ctx *loopContext) {
	g.loopStack = append(g.loopStack, ctx)
}

func (g *Generator) popLoop() {
	g.loopStack = g.loopStack[:len(g.loopStack)-1]
}

func (g *Generator) currentLoop() *loopContext {
	return g.loopStack[len(g.loopStack)-1]
}

// generateFunction lowers one FunctionDecl: its entry label, its parameters
// (declared via `param` quads, the same op a call site uses to pass an
// argument), its body, and the function-exit return insertion.
func (g *Generator) generateFunction(fn *ast.FunctionDecl) {
	g.fnName = fn.Name
	g.loopStack = nil
	g.sawReturn = false

	g.emitLabel(fn.Name)
	for _, p := range fn.Params {
		g.emit(Quad{Op: string(OpParam), Arg1: p.Name})
	}

	g.generateFunctionBodyWithImplicitReturn(fn.Body)
}

// generateFunctionBodyWithImplicitReturn lowers a function's top-level body
// block and appends a final bare `return` only if no return quad was emitted
// anywhere in the function — a body whose every branch returns explicitly
// needs nothing appended, and a tail expression becomes an implicit return
// of its value.
func (g *Generator) generateFunctionBodyWithImplicitReturn(body *ast.FunctionExprBlock) {
	tailExpr, hasTail := body.HasTailExpression()

	last := len(body.Elements) - 1
	for i, el := range body.Elements {
		if i == last && hasTail {
			break
		}
		if stmt, ok := el.(ast.Statement); ok {
			g.generateStmt(stmt)
		}
	}

	if hasTail {
		val := g.generateExpr(tailExpr)
		g.emit(Quad{Op: string(OpReturn), Arg1: val})
		return
	}
	if !g.sawReturn {
		g.emit(Quad{Op: string(OpReturn)})
	}
}

// intLiteral renders an integer as the decimal string quads use for literal
// operands; every quad field is encoded uniformly as a string.
func intLiteral(v int64) string {
	return strconv.FormatInt(v, 10)
}
