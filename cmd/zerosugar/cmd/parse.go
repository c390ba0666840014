package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/zerosugarjs/zerosugar/internal/diagnostics"
	"github.com/zerosugarjs/zerosugar/internal/engine"
)

var (
	parseEvalExpr string
	parseDebug    bool
	parseQuery    string
	parseTable    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse JavaScript source and report diagnostics",
	Long: `Parse JavaScript source code and report any syntax diagnostics found.

With --debug, also dumps the parsed AST structure (via kr/pretty) to help
diagnose parser issues. With --query, instead projects a single path out of
the AST (via gjson) rather than dumping the whole tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDebug, "debug", false, "dump the parsed AST structure")
	parseCmd.Flags().StringVar(&parseQuery, "query", "", "gjson path to project out of the parsed AST, e.g. Statements.0.Kind")
	parseCmd.Flags().BoolVar(&parseTable, "table", false, "report multiple diagnostics as an aligned table instead of one block per error")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	e, err := engine.New()
	if err != nil {
		return err
	}

	prog, parseErr := e.Parse(input)
	if prog != nil {
		switch {
		case parseQuery != "":
			raw, err := json.Marshal(prog)
			if err != nil {
				return fmt.Errorf("marshaling AST for --query: %w", err)
			}
			result := gjson.GetBytes(raw, parseQuery)
			if !result.Exists() {
				return fmt.Errorf("--query %q matched nothing in the parsed AST", parseQuery)
			}
			fmt.Println(result.String())
		case parseDebug:
			pretty.Println(prog)
		}
	}
	if parseErr != nil {
		if te, ok := parseErr.(*engine.TransformError); ok && parseTable && len(te.Errors) > 1 {
			fmt.Print(diagnostics.FormatTable(te.Errors))
			return fmt.Errorf("parsing failed with %d error(s)", len(te.Errors))
		}
		return parseErr
	}
	fmt.Println("parsed without diagnostics")
	return nil
}
