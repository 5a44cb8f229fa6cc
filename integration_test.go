package checker_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/checker/pkg/compare"
	"github.com/vertti/checker/pkg/testlib"
	"github.com/vertti/checker/pkg/verdict"
)

// Integration tests run the checker as a real process so the exit code and
// the stdout line are observed exactly as the judge sees them.

const helperEnv = "CHECKER_INTEGRATION_HELPER"

func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) == "1" {
		cmd := testlib.Command("checker", "integration helper", compare.SumOfTwo)
		cmd.SetArgs(os.Args[1:])
		testlib.Main(cmd)
		os.Exit(100) // unreachable: Main always ends with a verdict
	}
	os.Exit(m.Run())
}

func runChecker(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], args...) //nolint:gosec // re-executes the test binary
	cmd.Env = append(os.Environ(), helperEnv+"=1")
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		code = 0
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run checker: %v", err)
	}
	return out.String(), errOut.String(), code
}

func writeFiles(t *testing.T, input, output, answer string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 3)
	for i, content := range []string{input, output, answer} {
		paths[i] = filepath.Join(dir, []string{"input.txt", "output.txt", "answer.txt"}[i])
		require.NoError(t, os.WriteFile(paths[i], []byte(content), 0o600))
	}
	return paths[0], paths[1], paths[2]
}

func TestIntegration_Verdicts(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantStdout string
		wantCode   int
	}{
		{"accepted", "8\n", "OK answer is correct\n", 0},
		{"wrong answer", "7\n", "Wrong Answer expected 8, found 7\n", 1},
		{"empty output", "", "Presentation Error unexpected end of file when reading integer from ouf\n", 2},
		{"dirt", "8 extra\n", "DIRT extra output after the answer\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, ans := writeFiles(t, "3 5\n", tt.output, "8\n")

			stdout, stderr, code := runChecker(t, in, out, ans)

			assert.Equal(t, tt.wantStdout, stdout)
			assert.Empty(t, stderr)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestIntegration_BadArgumentCount(t *testing.T) {
	for _, args := range [][]string{{}, {"a"}, {"a", "b"}, {"a", "b", "c", "d"}} {
		stdout, stderr, code := runChecker(t, args...)

		assert.Equal(t, verdict.Fail.ExitCode(), code)
		assert.Contains(t, stdout, "FAIL ")
		assert.Contains(t, stderr, testlib.Usage)
	}
}

func TestIntegration_MissingFile(t *testing.T) {
	in, _, ans := writeFiles(t, "3 5\n", "8\n", "8\n")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	stdout, stderr, code := runChecker(t, in, ans, missing)

	assert.Equal(t, 3, code)
	assert.Equal(t, "FAIL failed to open answer file "+missing+": not found\n", stdout)
	assert.Contains(t, stderr, "Failed to open answer file: "+missing)
}

func TestIntegration_RealOpener(t *testing.T) {
	in, out, ans := writeFiles(t, "", "1 2 3\n", "1 2 3")

	var stdout bytes.Buffer
	ctx := testlib.Register([]string{in, out, ans}, testlib.WithReporter(verdict.Capture(&stdout)))
	defer func() { _ = ctx.Close() }()

	term, ok := verdict.Catch(func() { compare.Integers(ctx) })

	require.True(t, ok)
	assert.Equal(t, verdict.OK, term.Kind)
	assert.Equal(t, "OK 3 numbers\n", stdout.String())
}
