// Command lp is the Lambda Photon compiler: lex, parse, fold constants,
// lower to LLVM IR, and hand the result to the system linker.
package main

import (
	"os"

	"github.com/lambdaphoton/lp/cmd/lp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
