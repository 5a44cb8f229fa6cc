// Command rcmp compares sequences of reals with 1e-6 absolute or relative error.
//
//	rcmp <input-file> <output-file> <answer-file>
package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/checker/pkg/compare"
	"github.com/vertti/checker/pkg/testlib"
)

func newRootCmd(opts ...testlib.Option) *cobra.Command {
	return testlib.Command("rcmp", "Compare sequences of reals with 1e-6 absolute or relative error", compare.Floats(compare.DefaultEpsilon), opts...)
}

func main() {
	testlib.Main(newRootCmd())
}
