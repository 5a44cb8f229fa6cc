// Package testlib binds the three checker files to streams and hands them to
// problem-specific comparison logic.
//
// A checker is invoked as
//
//	checker <input-file> <output-file> <answer-file>
//
// and ends with exactly one verdict. Register validates the invocation and
// opens the files; any failure there is reported as FAIL (exit 3).
package testlib

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vertti/checker/pkg/output"
	"github.com/vertti/checker/pkg/stream"
	"github.com/vertti/checker/pkg/verdict"
)

// Usage is printed on stderr when the argument count is wrong.
const Usage = "Usage: checker <input-file> <output-file> <answer-file>"

// Context holds the streams of one checker run.
type Context struct {
	Inf      *stream.Stream // test input
	Ouf      *stream.Stream // contestant output
	Ans      *stream.Stream // reference answer
	Reporter *verdict.Reporter
}

// Quitf reports a verdict and terminates the run.
func (c *Context) Quitf(kind verdict.Kind, format string, args ...any) {
	c.Reporter.Quitf(kind, format, args...)
}

// Close closes all three streams.
func (c *Context) Close() error {
	var firstErr error
	for _, s := range []*stream.Stream{c.Inf, c.Ouf, c.Ans} {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type config struct {
	reporter *verdict.Reporter
	opener   Opener
	log      *logrus.Logger
}

// Option customizes Register.
type Option func(*config)

// WithReporter replaces the process reporter.
func WithReporter(r *verdict.Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithOpener replaces the filesystem opener.
func WithOpener(o Opener) Option {
	return func(c *config) { c.opener = o }
}

// WithDiagnostics sends bootstrap diagnostics to w instead of stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) { c.log = output.NewLogger(w) }
}

// Register validates args (program name excluded) and opens the input,
// output and answer files in that order. It returns only when all three are
// open; otherwise it reports FAIL.
func Register(args []string, opts ...Option) *Context {
	cfg := &config{
		reporter: verdict.New(),
		opener:   RealOpener{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.log == nil {
		cfg.log = output.NewLogger(os.Stderr)
	}

	if len(args) != 3 {
		cfg.log.WithField("got", len(args)).Error("Invalid number of arguments for checker")
		cfg.log.Error(Usage)
		cfg.reporter.Quitf(verdict.Fail, "invalid number of arguments: expected 3, got %d", len(args))
	}

	roles := []stream.Role{stream.Input, stream.Output, stream.Answer}
	streams := make([]*stream.Stream, 0, len(roles))
	for i, role := range roles {
		path := args[i]
		f, err := cfg.opener.Open(path)
		if err != nil {
			cfg.log.WithError(err).Errorf("Failed to open %s file: %s", role.File(), path)
			for _, s := range streams {
				_ = s.Close()
			}
			cfg.reporter.Quitf(verdict.Fail, "failed to open %s file %s: %s", role.File(), path, describeOpenError(err))
		}
		streams = append(streams, stream.New(role, path, f, cfg.reporter))
	}

	return &Context{
		Inf:      streams[0],
		Ouf:      streams[1],
		Ans:      streams[2],
		Reporter: cfg.reporter,
	}
}
