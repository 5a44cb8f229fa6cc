package verdict

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// Reporter is the single point of termination for a checker run.
type Reporter struct {
	Out  io.Writer      // verdict line destination, os.Stdout in production
	Exit func(code int) // os.Exit in production
}

// New returns a Reporter bound to the process stdout and os.Exit.
func New() *Reporter {
	return &Reporter{Out: os.Stdout, Exit: os.Exit}
}

// Capture returns a Reporter that writes to w and does not exit the process.
// Verdicts surface as a Termination panic, see Catch.
func Capture(w io.Writer) *Reporter {
	return &Reporter{Out: w, Exit: func(int) {}}
}

// Quitf writes "<label><message>" as a single line and terminates with the
// exit code of kind. It never returns.
func (r *Reporter) Quitf(kind Kind, format string, args ...any) {
	t := Termination{Kind: kind, Message: fmt.Sprintf(format, args...)}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	_, _ = io.WriteString(out, t.Line()+"\n")

	exit := r.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(kind.ExitCode())

	panic(t)
}

// Pointsf reports a partial score. The score is printed in front of the message.
func (r *Reporter) Pointsf(score decimal.Decimal, format string, args ...any) {
	msg := score.String()
	if format != "" {
		msg += " " + fmt.Sprintf(format, args...)
	}
	r.Quitf(Points, "%s", msg)
}

// Termination describes a reported verdict.
type Termination struct {
	Kind    Kind
	Message string
}

// Line returns the stdout line without its terminator.
func (t Termination) Line() string {
	return t.Kind.Label() + t.Message
}

// ExitCode returns the exit code of the verdict.
func (t Termination) ExitCode() int {
	return t.Kind.ExitCode()
}

func (t Termination) Error() string {
	return fmt.Sprintf("verdict %s (exit %d): %s", t.Kind, t.ExitCode(), t.Message)
}

// Catch runs fn and recovers the Termination raised by a Reporter whose Exit
// hook returned. Other panics are propagated.
func Catch(fn func()) (t Termination, ok bool) {
	defer func() {
		if v := recover(); v != nil {
			term, isTerm := v.(Termination)
			if !isTerm {
				panic(v)
			}
			t, ok = term, true
		}
	}()
	fn()
	return Termination{}, false
}
