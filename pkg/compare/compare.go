// Package compare holds the standard checkers: whole-file comparisons that
// need no problem-specific logic.
package compare

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vertti/checker/pkg/stream"
	"github.com/vertti/checker/pkg/testlib"
	"github.com/vertti/checker/pkg/verdict"
)

// DefaultEpsilon is the absolute or relative error accepted by Floats.
const DefaultEpsilon = 1e-6

// sequence compares the answer and the output value by value until the
// answer is exhausted. Leftover output content is Dirt.
func sequence[T any](ctx *testlib.Context, noun string, read func(*stream.Stream) T, equal func(want, got T) bool, show func(T) string) {
	n := 0
	var last T
	for !ctx.Ans.SeekEOF() {
		want := read(ctx.Ans)
		if ctx.Ouf.SeekEOF() {
			ctx.Quitf(verdict.WrongAnswer, "answer contains more than %d %s, output is exhausted", n, plural(n, noun))
		}
		got := read(ctx.Ouf)
		n++
		if !equal(want, got) {
			ctx.Quitf(verdict.WrongAnswer, "%s %s differs - expected: %s, found: %s", Ordinal(n), noun, show(want), show(got))
		}
		last = got
	}
	ctx.Ouf.ExpectEOF()

	if n == 1 {
		ctx.Quitf(verdict.OK, "single %s: %s", noun, show(last))
	}
	ctx.Quitf(verdict.OK, "%d %s", n, plural(n, noun))
}

// Integers compares sequences of integers.
func Integers(ctx *testlib.Context) {
	sequence(ctx, "number",
		(*stream.Stream).ReadInt,
		func(want, got int64) bool { return want == got },
		func(v int64) string { return strconv.FormatInt(v, 10) },
	)
}

// Tokens compares sequences of whitespace-separated words.
func Tokens(ctx *testlib.Context) {
	sequence(ctx, "word",
		(*stream.Stream).ReadToken,
		func(want, got string) bool { return want == got },
		func(v string) string { return strconv.Quote(v) },
	)
}

// Floats returns a checker comparing sequences of reals with the given
// absolute or relative error.
func Floats(eps float64) testlib.CheckFunc {
	return func(ctx *testlib.Context) {
		sequence(ctx, "number",
			(*stream.Stream).ReadFloat,
			func(want, got float64) bool { return FloatsEqual(want, got, eps) },
			func(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) },
		)
	}
}

// FloatsEqual reports whether got is within eps of want, absolutely or
// relatively. NaN equals only NaN and infinities must match exactly.
func FloatsEqual(want, got, eps float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		return want == got
	}
	diff := math.Abs(want - got)
	return diff <= eps || diff <= eps*math.Abs(want)
}

// Lines compares files line by line. Lines are equal when they hold the same
// words; blank lines are skipped on both sides.
func Lines(ctx *testlib.Context) {
	n := 0
	for !ctx.Ans.SeekEOF() {
		want := ctx.Ans.ReadLine()
		if ctx.Ouf.SeekEOF() {
			ctx.Quitf(verdict.WrongAnswer, "answer contains more than %d %s, output is exhausted", n, plural(n, "line"))
		}
		got := ctx.Ouf.ReadLine()
		n++
		if !slices.Equal(strings.Fields(want), strings.Fields(got)) {
			ctx.Quitf(verdict.WrongAnswer, "%s line differs - expected: %s, found: %s", Ordinal(n), compress(want), compress(got))
		}
	}
	ctx.Ouf.ExpectEOF()
	ctx.Quitf(verdict.OK, "%d %s", n, plural(n, "line"))
}

// SumOfTwo checks the sample problem: the input holds a and b, the output
// and the answer hold a+b.
func SumOfTwo(ctx *testlib.Context) {
	a := ctx.Inf.ReadInt()
	b := ctx.Inf.ReadInt()
	want := ctx.Ans.ReadInt()
	if want != a+b {
		ctx.Quitf(verdict.Fail, "answer file holds %d, but %d + %d = %d", want, a, b, a+b)
	}

	got := ctx.Ouf.ReadInt()
	if got != want {
		ctx.Quitf(verdict.WrongAnswer, "expected %d, found %d", want, got)
	}
	if !ctx.Ouf.SeekEOF() {
		ctx.Quitf(verdict.Dirt, "extra output after the answer")
	}
	ctx.Quitf(verdict.OK, "answer is correct")
}

// Ordinal renders n as "1st", "2nd", "3rd", "4th", ...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n%100 >= 11 && n%100 <= 13 {
		suffix = "th"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

// compress quotes s, cutting the middle of long values.
func compress(s string) string {
	const limit = 64
	if len(s) <= limit {
		return strconv.Quote(s)
	}
	head := limit / 2
	for head > 0 && !utf8.RuneStart(s[head]) {
		head--
	}
	tail := len(s) - limit/2
	for tail < len(s) && !utf8.RuneStart(s[tail]) {
		tail++
	}
	return strconv.Quote(s[:head]) + "..." + strconv.Quote(s[tail:])
}
