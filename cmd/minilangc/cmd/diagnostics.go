package cmd

import (
	"fmt"
	"os"

	cerrors "github.com/minilang/minilangc/internal/errors"
)

// compilerError is implemented by every stage's error type (LexError,
// SyntaxError, SemanticError), letting the CLI render the failures of all
// three error-producing stages through the same source-context-plus-caret
// formatting.
type compilerError interface {
	ToCompilerError(source, file string) *cerrors.CompilerError
}

func printStageError(err error, source, file string) {
	if ce, ok := err.(compilerError); ok {
		fmt.Fprintln(os.Stderr, ce.ToCompilerError(source, file).Format(false))
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
