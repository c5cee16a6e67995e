// Package errors formats compiler errors with source context, line/column
// information, and a caret pointing at the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/minilang/minilangc/internal/token"
)

// CompilerError represents a single compilation error with position and context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

const (
	ansiBoldRed = "\033[1;31m"
	ansiBold    = "\033[1m"
	ansiReset   = "\033[0m"
)

// colorize wraps s in code when color is requested, and is a no-op otherwise.
func colorize(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}

// Format formats the error message with source context. If color is true,
// ANSI color codes are used for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if sourceLine := e.getSourceLine(e.Pos.Line); sourceLine != "" {
		gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
		fmt.Fprintf(&sb, "%s%s\n", gutter, sourceLine)
		caret := strings.Repeat(" ", len(gutter)+e.Pos.Column-1) + "^"
		sb.WriteString(colorize(color, ansiBoldRed, caret))
		sb.WriteString("\n")
	}

	sb.WriteString(colorize(color, ansiBold, e.Message))
	return sb.String()
}

// getSourceLine extracts a specific line from the source code (1-indexed).
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors formats multiple compiler errors, each with source context.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
