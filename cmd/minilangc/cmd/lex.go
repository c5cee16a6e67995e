package cmd

import (
	"fmt"

	"github.com/minilang/minilangc/internal/lexer"
	"github.com/minilang/minilangc/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	showPos    bool
	showType   bool
	traceLex   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a MiniLang file or expression",
	Long: `Tokenize (lex) MiniLang source and print the resulting token stream.

Examples:
  minilangc lex program.ml
  minilangc lex -e "let x = 1;"
  minilangc lex --show-type --show-pos program.ml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&traceLex, "trace", false, "enable the lexer's debug tracing option")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "exit non-zero without printing tokens on the first lex error")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(source))
		fmt.Println("---")
	}

	l := lexer.New(source, lexer.WithTracing(traceLex))
	count := 0
	for {
		tok, lexErr := l.NextToken()
		if lexErr != nil {
			if onlyErrors {
				return lexErr
			}
			printStageError(lexErr, source, filename)
			return fmt.Errorf("lexing failed")
		}
		if tok.Type == token.EOF {
			break
		}
		count++
		if !onlyErrors {
			printToken(tok)
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", count)
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Type)
	}
	if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(output)
}
