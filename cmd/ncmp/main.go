// Command ncmp compares sequences of signed integers.
//
//	ncmp <input-file> <output-file> <answer-file>
package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/checker/pkg/compare"
	"github.com/vertti/checker/pkg/testlib"
)

func newRootCmd(opts ...testlib.Option) *cobra.Command {
	return testlib.Command("ncmp", "Compare sequences of signed integers", compare.Integers, opts...)
}

func main() {
	testlib.Main(newRootCmd())
}
