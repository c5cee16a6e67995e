package semantic

import (
	"fmt"

	cerrors "github.com/minilang/minilangc/internal/errors"
	"github.com/minilang/minilangc/internal/token"
)

// ErrorKind is the closed taxonomy of semantic error categories.
type ErrorKind string

const (
	UndeclaredVariable    ErrorKind = "UndeclaredVariable"
	ImmutableAssignment   ErrorKind = "ImmutableAssignment"
	TypeMismatch          ErrorKind = "TypeMismatch"
	ReturnTypeError       ErrorKind = "ReturnType"
	InvalidControlFlow    ErrorKind = "InvalidControlFlow"
	UninitializedVariable ErrorKind = "UninitializedVariable"
	BorrowCheckError      ErrorKind = "BorrowCheck"
	GenericSemantic       ErrorKind = "GenericSemantic"
)

// SemanticError is one finding from the analyzer. Analysis does not stop at
// the first one: both passes keep going and report everything they find.
type SemanticError struct {
	Kind    ErrorKind
	Message string
	Pos     token.Position
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Pos)
}

func newError(kind ErrorKind, pos token.Position, format string, args ...any) *SemanticError {
	return &SemanticError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// ToCompilerError converts a SemanticError into the shared diagnostic type
// used for source-context rendering on the CLI.
func (e *SemanticError) ToCompilerError(source, file string) *cerrors.CompilerError {
	return cerrors.NewCompilerError(e.Pos, fmt.Sprintf("[%s] %s", e.Kind, e.Message), source, file)
}
