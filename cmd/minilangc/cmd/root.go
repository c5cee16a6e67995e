// Package cmd wires MiniLang's four pipeline stages into a cobra CLI, one
// subcommand per stage.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "minilangc",
	Short: "MiniLang compiler front end",
	Long: `minilangc is a Go implementation of the MiniLang compiler front end.

MiniLang is a small statically-typed, ALGOL-like systems language. minilangc
runs its four stages individually for inspection:

  lex      source -> tokens
  parse    tokens -> AST
  analyze  AST -> validated AST (or semantic errors)
  quads    validated AST -> three-address quad list

There is no backend here: minilangc never executes a program, only compiles
its front end.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
