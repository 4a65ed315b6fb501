package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/chazu/jnova/pkg/config"
	"github.com/chazu/jnova/pkg/diag"
	"github.com/chazu/jnova/pkg/source"
)

var (
	cfgFile     string
	verbose     int
	sourceLevel string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var log = commonlog.GetLogger("jnova")

var rootCmd = &cobra.Command{
	Use:   "jnova",
	Short: "jnova - Java source front end",
	Long: `jnova scans and parses Java source files (language levels 1.2 to 1.6).

Commands:
  tokens   - print the token stream of a file
  parse    - print the syntax tree of a file as JSON, YAML or CBOR
  check    - report syntax errors in files
  serve    - answer parse requests as line-delimited JSON on stdin/stdout`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "more log output (repeatable)")
	rootCmd.PersistentFlags().StringVar(&sourceLevel, "source", "", "source level: 1.2 to 1.6 (overrides the config file)")
}

func setup(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if cfgFile != "" {
		var err error
		if c, err = config.Load(cfgFile); err != nil {
			return err
		}
	}
	if sourceLevel != "" {
		if err := c.SetLevel(sourceLevel); err != nil {
			return err
		}
	}

	var path *string
	if c.Log.File != "" {
		path = &c.Log.File
	}
	commonlog.Configure(min(c.Log.Verbosity+verbose, 2), path)

	cfg = c
	log.Debugf("source level %s", cfg.Level())
	return nil
}

// readSource reads the named file, or standard input for "-".
func readSource(cmd *cobra.Command, path string) (*source.Buffer, error) {
	if path == "-" {
		return source.FromReader("<stdin>", cmd.InOrStdin())
	}
	return source.ReadFile(path)
}

// newReport creates the text log for diagnostics about src and the sink
// the front end should report to. With a log file configured,
// diagnostics are also recorded there.
func newReport(w io.Writer, src source.Source) (*diag.Log, diag.Sink) {
	report := diag.NewLog(w)
	report.SetSource(src)
	if cfg.Log.File != "" {
		return report, diag.Tee(report, diag.NewLoggerSink(log, src))
	}
	return report, report
}

// plural renders a count the way javac summarizes diagnostics.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// errorsOf turns a non-zero error count into a command failure.
// reportResult is the command result for a finished report.
func reportResult(report *diag.Log) error {
	if err := report.Err(); err != nil {
		return err
	}
	return errorsOf(report.Errors())
}

func errorsOf(n int) error {
	if n > 0 {
		return errors.New(plural(n, "error"))
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "jnova: %s: %v\n", msg, err)
}
