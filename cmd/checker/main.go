// Command checker judges the sum-of-two-integers problem.
//
//	checker <input-file> <output-file> <answer-file>
package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/checker/pkg/compare"
	"github.com/vertti/checker/pkg/testlib"
)

// Version is set at build time via ldflags
var Version = "dev"

func newRootCmd(opts ...testlib.Option) *cobra.Command {
	cmd := testlib.Command("checker", "Check that the output holds the sum of the two input integers", compare.SumOfTwo, opts...)
	cmd.Long = "checker reads a and b from the input file and accepts the output when it\nholds exactly a+b, matching the answer file. Version " + Version + "."
	return cmd
}

func main() {
	testlib.Main(newRootCmd())
}
