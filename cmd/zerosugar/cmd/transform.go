package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zerosugarjs/zerosugar/internal/engine"
)

var transformEvalExpr string

var transformCmd = &cobra.Command{
	Use:   "transform [file|-]",
	Short: "Desugar JavaScript source and print the lowered result",
	Long: `Run the full parse/lower/print pipeline over JavaScript source and
print the resulting, desugared JavaScript to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVarP(&transformEvalExpr, "eval", "e", "", "transform inline code instead of reading from file")
}

func runTransform(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(transformEvalExpr, args)
	if err != nil {
		return err
	}

	result, err := engine.Transform(input)
	if err != nil {
		return err
	}
	fmt.Print(result.TransformedCode)
	return nil
}
