package testutil

import (
	"bytes"
	"strings"

	"github.com/vertti/checker/pkg/stream"
	"github.com/vertti/checker/pkg/testlib"
	"github.com/vertti/checker/pkg/verdict"
)

// Context builds a checker context over in-memory files. The returned buffer
// receives the verdict line.
func Context(in, out, ans string) (*testlib.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	rep := verdict.Capture(&buf)
	return &testlib.Context{
		Inf:      stream.New(stream.Input, "input.txt", strings.NewReader(in), rep),
		Ouf:      stream.New(stream.Output, "output.txt", strings.NewReader(out), rep),
		Ans:      stream.New(stream.Answer, "answer.txt", strings.NewReader(ans), rep),
		Reporter: rep,
	}, &buf
}

// Run executes check over in-memory files. ok is false when check returned
// without reporting a verdict.
func Run(check testlib.CheckFunc, in, out, ans string) (term verdict.Termination, line string, ok bool) {
	ctx, buf := Context(in, out, ans)
	term, ok = verdict.Catch(func() { check(ctx) })
	return term, strings.TrimSuffix(buf.String(), "\n"), ok
}
