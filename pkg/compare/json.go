package compare

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/vertti/checker/pkg/testlib"
	"github.com/vertti/checker/pkg/verdict"
)

// JSON compares the output with the answer as JSON documents. Formatting and
// object key order do not matter; invalid output is a Presentation Error.
func JSON(ctx *testlib.Context) {
	want := ctx.Ans.ReadAll()
	got := ctx.Ouf.ReadAll()

	if !gjson.Valid(want) {
		ctx.Quitf(verdict.Fail, "answer is not valid JSON")
	}
	if !gjson.Valid(got) {
		ctx.Quitf(verdict.PresentationError, "output is not valid JSON")
	}

	if path, ok := jsonDiff("$", gjson.Parse(want), gjson.Parse(got)); !ok {
		ctx.Quitf(verdict.WrongAnswer, "JSON differs at %s", path)
	}
	ctx.Quitf(verdict.OK, "JSON documents are equal")
}

// jsonDiff returns the path of the first difference between a and b.
func jsonDiff(path string, a, b gjson.Result) (string, bool) {
	if a.Type != b.Type || a.IsArray() != b.IsArray() || a.IsObject() != b.IsObject() {
		return path, false
	}

	switch {
	case a.IsObject():
		am, bm := a.Map(), b.Map()
		if len(am) != len(bm) {
			return path, false
		}
		keys := make([]string, 0, len(am))
		for k := range am {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			bv, ok := bm[k]
			if !ok {
				return fmt.Sprintf("%s.%s", path, k), false
			}
			if p, ok := jsonDiff(fmt.Sprintf("%s.%s", path, k), am[k], bv); !ok {
				return p, false
			}
		}
	case a.IsArray():
		aa, ba := a.Array(), b.Array()
		if len(aa) != len(ba) {
			return path, false
		}
		for i := range aa {
			if p, ok := jsonDiff(fmt.Sprintf("%s[%d]", path, i), aa[i], ba[i]); !ok {
				return p, false
			}
		}
	case a.Type == gjson.Number:
		if !numbersEqual(a, b) {
			return path, false
		}
	case a.Type == gjson.String:
		if a.Str != b.Str {
			return path, false
		}
	}
	return path, true
}

// numbersEqual compares JSON numbers exactly. Values that do not parse as
// decimals fall back to float64 comparison.
func numbersEqual(a, b gjson.Result) bool {
	ad, aErr := decimal.NewFromString(a.Raw)
	bd, bErr := decimal.NewFromString(b.Raw)
	if aErr != nil || bErr != nil {
		return a.Num == b.Num
	}
	return ad.Equal(bd)
}
