package cmd

import (
	"fmt"
	"io"
	"os"
)

// readSource resolves a subcommand's input the same way across lex/parse/
// analyze/quads: an inline -e/--eval string, a file argument, or stdin when
// neither is given.
func readSource(evalExpr string, args []string) (source, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}
