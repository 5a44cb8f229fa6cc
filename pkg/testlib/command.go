package testlib

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/checker/pkg/verdict"
)

// CheckFunc is problem-specific comparison logic. It must end the run with a
// verdict; returning normally is reported as FAIL.
type CheckFunc func(*Context)

// Command returns a root command running check. Flag parsing is disabled so
// every argument is taken as a path, as the judge passes them.
func Command(use, short string, check CheckFunc, opts ...Option) *cobra.Command {
	return &cobra.Command{
		Use:                use + " <input-file> <output-file> <answer-file>",
		Short:              short,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			base := []Option{
				WithReporter(&verdict.Reporter{Out: cmd.OutOrStdout(), Exit: os.Exit}),
				WithDiagnostics(cmd.ErrOrStderr()),
			}
			ctx := Register(args, append(base, opts...)...)
			check(ctx)
			ctx.Quitf(verdict.Fail, "checker returned without a verdict")
		},
	}
}

// Main executes cmd and converts a cobra error into a FAIL verdict.
func Main(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		verdict.New().Quitf(verdict.Fail, "%v", err)
	}
}
