package cmd

import (
	"fmt"

	"github.com/minilang/minilangc/internal/parser"
	"github.com/minilang/minilangc/internal/quadgen"
	"github.com/minilang/minilangc/internal/semantic"
	"github.com/spf13/cobra"
)

var quadsEval string

var quadsCmd = &cobra.Command{
	Use:   "quads [file]",
	Short: "Compile MiniLang source down to its quad list",
	Long: `Run the full pipeline (lex -> parse -> analyze -> generate) and print the
resulting three-address quad list, one line per quad.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuads,
}

func init() {
	rootCmd.AddCommand(quadsCmd)

	quadsCmd.Flags().StringVarP(&quadsEval, "eval", "e", "", "compile inline source instead of reading from file")
}

func runQuads(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(quadsEval, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source)
	if err != nil {
		printStageError(err, source, filename)
		return fmt.Errorf("parsing failed")
	}

	errs, fatal := semantic.Analyze(program)
	if fatal != nil {
		return fatal
	}
	if len(errs) > 0 {
		for _, e := range errs {
			printStageError(e, source, filename)
		}
		return fmt.Errorf("semantic analysis found %d error(s)", len(errs))
	}

	for _, q := range quadgen.Generate(program) {
		printQuad(q)
	}
	return nil
}

func printQuad(q quadgen.Quad) {
	if q.IsLabel() {
		fmt.Println(q.Op)
		return
	}
	fmt.Printf("(%s, %s, %s, %s)\n", q.Op, blank(q.Arg1), blank(q.Arg2), blank(q.Result))
}

func blank(s string) string {
	if s == "" {
		return "_"
	}
	return s
}
