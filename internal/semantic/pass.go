package semantic

import "github.com/minilang/minilangc/internal/ast"

// Pass represents a single semantic analysis pass. MiniLang runs exactly
// two: a declaration-collection pass that registers every function's
// signature up front (enabling forward references and mutual recursion),
// and a body-validation pass that type-checks and borrow-checks each
// function using the now-complete signature table.
type Pass interface {
	Name() string
	Run(program *ast.Program, ctx *Context) error
}

// PassManager runs passes in order, stopping early only on a fatal
// (non-semantic) error; semantic errors accumulate in the Context and never
// abort a later pass.
type PassManager struct {
	passes []Pass
}

// NewPassManager creates a manager that runs passes in the given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// RunAll executes every registered pass against program.
func (pm *PassManager) RunAll(program *ast.Program, ctx *Context) error {
	for _, pass := range pm.passes {
		if err := pass.Run(program, ctx); err != nil {
			return err
		}
	}
	return nil
}
