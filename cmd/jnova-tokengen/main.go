// jnova-tokengen writes the lexer's token table from its TOML description.
//
//	jnova-tokengen --in tokens.toml --out token_gen.go
//	jnova-tokengen < tokens.toml > token_gen.go
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chazu/jnova/pkg/codegen"
)

const versionStr = "0.1.0"

type options struct {
	in      string
	out     string
	pkg     string
	typ     string
	strict  bool
	dryRun  bool
	version bool
}

func newCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "jnova-tokengen",
		Short: "Generate the lexer token table from tokens.toml",
		Long: `jnova-tokengen reads a list of token kinds with their spellings and
writes the Go constants and lookup tables the lexer uses. It is run by
go generate in pkg/lexer.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.in, "in", "", "token description (default: standard input)")
	f.StringVar(&o.out, "out", "", "generated Go file (default: standard output)")
	f.StringVar(&o.pkg, "package", "lexer", "package of the generated file")
	f.StringVar(&o.typ, "type", "Token", "name of the token kind type")
	f.BoolVar(&o.strict, "strict", false, "fail on warnings instead of reporting them")
	f.BoolVar(&o.dryRun, "dry-run", false, "show what would be generated without writing it")
	f.BoolVar(&o.version, "version", false, "print version and exit")
	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, o options) error {
	if o.version {
		fmt.Fprintf(cmd.OutOrStdout(), "jnova-tokengen version %s\n", versionStr)
		return nil
	}

	var set *codegen.TokenSet
	name := "tokens.toml"
	if o.in == "" {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if len(input) == 0 {
			return fmt.Errorf("no input provided")
		}
		if set, err = codegen.ParseTokens(input); err != nil {
			return err
		}
	} else {
		var err error
		if set, err = codegen.LoadTokens(o.in); err != nil {
			return err
		}
		name = filepath.Base(o.in)
	}

	result, err := codegen.GenerateTokens(set, codegen.Options{Package: o.pkg, Type: o.typ, Source: name})
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "Warning: %s\n", w)
	}
	if o.strict && len(result.Warnings) > 0 {
		return fmt.Errorf("--strict mode enabled, refusing to generate with %d warnings", len(result.Warnings))
	}

	if o.dryRun {
		fmt.Fprintf(stderr, "Dry run - would generate %d tokens, %d bytes of Go code\n", len(set.Tokens), len(result.Code))
		return nil
	}
	if o.out == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), result.Code)
		return err
	}
	if err := os.WriteFile(o.out, []byte(result.Code), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", o.out, err)
	}
	return nil
}
