// Command lcmp compares files line by line, ignoring spacing inside lines.
//
//	lcmp <input-file> <output-file> <answer-file>
package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/checker/pkg/compare"
	"github.com/vertti/checker/pkg/testlib"
)

func newRootCmd(opts ...testlib.Option) *cobra.Command {
	return testlib.Command("lcmp", "Compare files line by line", compare.Lines, opts...)
}

func main() {
	testlib.Main(newRootCmd())
}
