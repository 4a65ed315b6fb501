package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/jnova/pkg/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Report syntax errors in Java source files",
	Long: `Parse each file and report its diagnostics. Every file is checked
even after errors; the command fails if any file had an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	errs, warnings := 0, 0
	for _, path := range args {
		src, err := readSource(cmd, path)
		if err != nil {
			printError("cannot check "+path, err)
			errs++
			continue
		}
		report, sink := newReport(cmd.ErrOrStderr(), src)
		pc := cfg.ParserConfig()
		pc.Sink = sink
		parser.New(pc, src).ParseCompilationUnit()
		if err := report.Err(); err != nil {
			return err
		}

		log.Infof("%s: %s, %s", src.Name(), plural(report.Errors(), "error"), plural(report.Warnings(), "warning"))
		errs += report.Errors()
		warnings += report.Warnings()
	}

	w := cmd.ErrOrStderr()
	if errs > 0 {
		fmt.Fprintln(w, plural(errs, "error"))
	}
	if warnings > 0 {
		fmt.Fprintln(w, plural(warnings, "warning"))
	}
	return errorsOf(errs)
}
