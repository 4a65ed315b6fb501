// jnova - Java source front end: tokens, syntax trees and diagnostics.
package main

import (
	"os"

	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/jnova/cmd/jnova/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
