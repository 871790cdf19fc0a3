package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/monkey/foundation/core/error"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and print the syntax tree",
	Long: `Parses Monkey source, prints the statements that were recognized and
lists every diagnostic. The exit status is 1 when diagnostics were reported.

Examples:
  monkey parse program.mk
  monkey parse -e 'let x = 5; return x;'
  monkey parse -o yaml program.mk
  cat program.mk | monkey parse -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "expr", "e", "", "source text to parse instead of a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, parseExpr)
	if err != nil {
		return err
	}

	result, err := newFrontend().Parse(source)
	if err != nil {
		return err
	}

	if err := newRenderer(cmd.OutOrStdout()).Result(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return mdwerror.Newf("%d syntax error(s)", len(result.Diagnostics)).
			WithCode(mdwerror.CodeSyntax).
			WithOperation("parse").
			WithCorrelationID(result.CorrelationID)
	}
	return nil
}
