package cmd

import (
	"fmt"

	"github.com/minilang/minilangc/internal/ast"
	"github.com/minilang/minilangc/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseEval    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse MiniLang source and display its AST",
	Long: `Parse MiniLang source code into an AST.

If no file is provided, reads from stdin. Use -e to parse an inline
source string (a sequence of function declarations) instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump each function's parameters and top-level body elements instead of a per-function summary")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source)
	if err != nil {
		printStageError(err, source, filename)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		for _, fn := range program.Declarations {
			dumpFunctionDecl(fn, 0)
		}
		return nil
	}
	fmt.Printf("Program (%d function declarations)\n", len(program.Declarations))
	for _, fn := range program.Declarations {
		fmt.Printf("  fn %s/%d\n", fn.Name, len(fn.Params))
	}
	return nil
}

func dumpFunctionDecl(fn *ast.FunctionDecl, indent int) {
	pad := indentStr(indent)
	fmt.Printf("%sFunctionDecl %s (%d params)\n", pad, fn.Name, len(fn.Params))
	for _, p := range fn.Params {
		fmt.Printf("%s  Param %s\n", pad, p.Name)
	}
	for _, el := range fn.Body.Elements {
		dumpNode(el, indent+1)
	}
}

func dumpNode(node ast.Node, indent int) {
	pad := indentStr(indent)
	switch n := node.(type) {
	case *ast.VarDecl:
		fmt.Printf("%sVarDecl %s\n", pad, n.Name)
	case *ast.Assignment:
		fmt.Printf("%sAssignment\n", pad)
	case *ast.ExprStmt:
		fmt.Printf("%sExprStmt\n", pad)
		dumpNode(n.Expr, indent+1)
	case *ast.IfStmt:
		fmt.Printf("%sIfStmt\n", pad)
	case *ast.WhileStmt:
		fmt.Printf("%sWhileStmt\n", pad)
	case *ast.ForStmt:
		fmt.Printf("%sForStmt %s\n", pad, n.Var)
	case *ast.LoopStmt:
		fmt.Printf("%sLoopStmt\n", pad)
	case *ast.ReturnStmt:
		fmt.Printf("%sReturnStmt\n", pad)
	case *ast.BreakStmt:
		fmt.Printf("%sBreakStmt\n", pad)
	case *ast.ContinueStmt:
		fmt.Printf("%sContinueStmt\n", pad)
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", pad, n.Operator)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier %s\n", pad, n.Name)
	case *ast.Literal:
		fmt.Printf("%sLiteral %d\n", pad, n.Value)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}

func indentStr(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "  "
	}
	return s
}
