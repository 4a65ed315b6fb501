package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chazu/jnova/pkg/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer parse requests on standard input",
	Long: `Read one JSON request per line from standard input and write one JSON
response per line to standard output:

  {"name": "A.java", "text": "class A {}", "source": "1.5"}

The response carries the tree, the diagnostics and the error count.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info("serving parse requests")
		return service.New(cfg).Run(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
