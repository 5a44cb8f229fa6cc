// Package output renders bootstrap diagnostics on stderr. The verdict line on
// stdout is owned by the verdict package and never passes through here.
package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jwalton/go-supportscolor"
	"github.com/sirupsen/logrus"
)

var (
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

var stderrColor = supportscolor.Stderr().SupportsColor

// Formatter prints entries the way check results are printed: a bracketed
// tag, the message, then one indented "key: value" line per field.
type Formatter struct {
	Color bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	tag, color := levelTag(e.Level)
	if !f.Color {
		color = ""
	}

	var b bytes.Buffer
	if color != "" {
		fmt.Fprintf(&b, "%s[%s]%s %s\n", color, tag, reset, e.Message)
	} else {
		fmt.Fprintf(&b, "[%s] %s\n", tag, e.Message)
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	indent := strings.Repeat(" ", len(tag)+3)
	for _, k := range keys {
		b.WriteString(indent)
		b.WriteString(f.formatLabel(k + ": " + fmt.Sprint(e.Data[k])))
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

// formatLabel dims the "key:" part of a "key: value" line.
func (f *Formatter) formatLabel(s string) string {
	if !f.Color {
		return s
	}
	if idx := strings.Index(s, ": "); idx != -1 {
		return dim + s[:idx+1] + reset + s[idx+1:]
	}
	return s
}

func levelTag(l logrus.Level) (string, string) {
	switch {
	case l <= logrus.ErrorLevel:
		return "FAIL", red
	case l == logrus.WarnLevel:
		return "WARN", yellow
	default:
		return "INFO", ""
	}
}

// NewLogger returns a logger writing diagnostics to w. Colors are used only
// when w is the process stderr and the terminal supports them.
func NewLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&Formatter{Color: w == os.Stderr && stderrColor})
	return l
}
