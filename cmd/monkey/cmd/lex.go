package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/monkey/foundation/core/error"
	"github.com/msto63/monkey/foundation/monkey/token"
)

var lexExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the token stream of a source file",
	Long: `Tokenizes Monkey source and prints one token per line.

Examples:
  monkey lex program.mk
  monkey lex -e 'let x = 5;'
  monkey lex -o json program.mk
  cat program.mk | monkey lex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "expr", "e", "", "source text to tokenize instead of a file")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, lexExpr)
	if err != nil {
		return err
	}

	tokens, err := newFrontend().Tokenize(source)
	if err != nil {
		return err
	}

	if err := newRenderer(cmd.OutOrStdout()).Tokens(tokens); err != nil {
		return err
	}

	illegal := 0
	for _, tok := range tokens {
		if tok.Is(token.ILLEGAL) {
			illegal++
		}
	}
	if illegal > 0 {
		return mdwerror.Newf("%d illegal token(s)", illegal).
			WithCode(mdwerror.CodeSyntax).
			WithOperation("lex")
	}
	return nil
}
