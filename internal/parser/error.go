package parser

import (
	"fmt"

	cerrors "github.com/minilang/minilangc/internal/errors"
	"github.com/minilang/minilangc/internal/token"
)

// SyntaxError is raised by the first grammar mismatch the parser meets.
// Parsing has no error recovery: the first mismatch aborts the stage.
type SyntaxError struct {
	Message  string
	Expected string
	Actual   string
	Pos      token.Position
}

func (e *SyntaxError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: expected %s, got %s at %s", e.Message, e.Expected, e.Actual, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// ToCompilerError converts a SyntaxError into the shared diagnostic type
// used for source-context rendering on the CLI.
func (e *SyntaxError) ToCompilerError(source, file string) *cerrors.CompilerError {
	return cerrors.NewCompilerError(e.Pos, e.Error(), source, file)
}

func newSyntaxError(tok token.Token, expected, message string) *SyntaxError {
	actual := tok.Type.String()
	if tok.Literal != "" {
		actual = fmt.Sprintf("%s(%q)", actual, tok.Literal)
	}
	return &SyntaxError{
		Message:  message,
		Expected: expected,
		Actual:   actual,
		Pos:      tok.Pos,
	}
}
