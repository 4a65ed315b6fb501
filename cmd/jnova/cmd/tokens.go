package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/jnova/pkg/lexer"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the tokens of a Java source file",
	Long: `Print one token per line as offset, kind and text. The text is the
name of an identifier, the decoded value of a literal, or the spelling
of a keyword or operator. FILE may be "-" for standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokens(cmd, args[0])
	},
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "print the tokens as a JSON array")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, path string) error {
	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}
	report, sink := newReport(cmd.ErrOrStderr(), src)

	lex := lexer.New(lexer.Config{Table: cfg.NewTable(), Sink: sink, Level: cfg.Level()})
	lex.SetSourceFrom(src)

	out := cmd.OutOrStdout()
	if tokensJSON {
		data, err := lex.TokenizeJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
	} else {
		items := lex.Tokenize()
		for _, it := range items {
			text := it.Text
			if text == "" {
				text = it.Token.Spelling()
			}
			fmt.Fprintf(out, "%d\t%s\t%s\n", it.Pos, it.Token, text)
		}
		log.Infof("%s: %d tokens", src.Name(), len(items))
	}
	return reportResult(report)
}
