package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chazu/jnova/pkg/dump"
	"github.com/chazu/jnova/pkg/parser"
)

var (
	parseFormat string
	parseDocs   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a Java source file",
	Long: `Parse a compilation unit and print its tree. Diagnostics go to
standard error; the tree is printed even when there are errors, with
the broken parts as ERRONEOUS nodes. FILE may be "-" for standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args[0])
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", string(dump.JSON), "output format: json, yaml or cbor")
	parseCmd.Flags().BoolVar(&parseDocs, "docs", false, "include doc comments (also doc-comments in the config file)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, path string) error {
	format, err := dump.ParseFormat(parseFormat)
	if err != nil {
		return err
	}
	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}
	report, sink := newReport(cmd.ErrOrStderr(), src)

	pc := cfg.ParserConfig()
	pc.Sink = sink
	pc.KeepDocComments = pc.KeepDocComments || parseDocs
	p := parser.New(pc, src)

	tree := dump.BuildWithDocs(p.ParseCompilationUnit(), p.DocComments())
	log.Infof("%s: %d nodes", src.Name(), dump.Count(tree))
	if err := dump.Encode(cmd.OutOrStdout(), tree, format); err != nil {
		return err
	}
	return reportResult(report)
}
