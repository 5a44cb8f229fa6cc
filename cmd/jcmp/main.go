// Command jcmp compares JSON documents structurally.
//
//	jcmp <input-file> <output-file> <answer-file>
package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/checker/pkg/compare"
	"github.com/vertti/checker/pkg/testlib"
)

func newRootCmd(opts ...testlib.Option) *cobra.Command {
	return testlib.Command("jcmp", "Compare JSON documents", compare.JSON, opts...)
}

func main() {
	testlib.Main(newRootCmd())
}
