// Command wcmp compares sequences of whitespace-separated tokens.
//
//	wcmp <input-file> <output-file> <answer-file>
package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/checker/pkg/compare"
	"github.com/vertti/checker/pkg/testlib"
)

func newRootCmd(opts ...testlib.Option) *cobra.Command {
	return testlib.Command("wcmp", "Compare sequences of tokens", compare.Tokens, opts...)
}

func main() {
	testlib.Main(newRootCmd())
}
