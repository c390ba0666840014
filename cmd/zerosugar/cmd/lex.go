package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

var (
	lexEvalExpr  string
	lexShowPos   bool
	lexShowType  bool
	lexOnlyError bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file|-]",
	Short: "Tokenize a JavaScript file or expression",
	Long: `Tokenize (lex) JavaScript source and print the resulting tokens.

Examples:
  zerosugar lex script.js
  zerosugar lex -e "for (let i = 0; i < 10; i++) {}"
  zerosugar lex --show-type --show-pos script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyError, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n---\n", filename)
	}

	l := lexer.New(input)
	tokenCount, errorCount := 0, 0
	for {
		tok := l.NextToken()
		isIllegal := tok.Type == lexer.ILLEGAL
		if lexOnlyError && !isIllegal {
			if tok.Type == lexer.EOF {
				break
			}
			continue
		}
		tokenCount++
		if isIllegal {
			errorCount++
		}
		printLexToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}
	if lexOnlyError && errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printLexToken(tok lexer.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-14s]", tok.Type)
	}
	switch {
	case tok.Type == lexer.EOF:
		out += " EOF"
	case tok.Type == lexer.ILLEGAL:
		out += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Type)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
