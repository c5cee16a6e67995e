package cmd

import (
	"fmt"

	"github.com/minilang/minilangc/internal/parser"
	"github.com/minilang/minilangc/internal/semantic"
	"github.com/spf13/cobra"
)

var analyzeEval string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Parse and semantically validate MiniLang source",
	Long: `Parse MiniLang source and run the semantic analyzer over it, reporting
every UndeclaredVariable/TypeMismatch/BorrowCheck/etc. finding rather than
stopping at the first one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeEval, "eval", "e", "", "analyze inline source instead of reading from file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(analyzeEval, args)
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

	fmt.Println("OK: no semantic errors")
	return nil
}
