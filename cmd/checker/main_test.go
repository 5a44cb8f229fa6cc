package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/checker/pkg/testlib"
	"github.com/vertti/checker/pkg/verdict"
)

// executeCommand runs the checker in-process and returns its stdout, stderr
// and the exit code it would have terminated with.
func executeCommand(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(testlib.WithReporter(verdict.Capture(&stdout)))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))

	term, ok := verdict.Catch(func() { _ = cmd.Execute() })
	require.True(t, ok, "checker ended without a verdict")
	return stdout.String(), stderr.String(), term.ExitCode()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestChecker(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		output     string
		answer     string
		wantStdout string
		wantCode   int
	}{
		{"accepted", "3 5\n", "8\n", "8\n", "OK answer is correct\n", 0},
		{"wrong answer", "3 5\n", "9\n", "8\n", "Wrong Answer expected 8, found 9\n", 1},
		{"empty output", "3 5\n", "", "8\n", "Presentation Error unexpected end of file when reading integer from ouf\n", 2},
		{"extra output", "3 5\n", "8 extra\n", "8\n", "DIRT extra output after the answer\n", 4},
		{"trailing whitespace is fine", "3 5\n", "8\n\n\t\n", "8\n", "OK answer is correct\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeTempFile(t, "input.txt", tt.input)
			out := writeTempFile(t, "output.txt", tt.output)
			ans := writeTempFile(t, "answer.txt", tt.answer)

			stdout, stderr, code := executeCommand(t, in, out, ans)

			assert.Equal(t, tt.wantStdout, stdout)
			assert.Empty(t, stderr)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestCheckerBootstrapFailures(t *testing.T) {
	in := writeTempFile(t, "input.txt", "3 5\n")
	ans := writeTempFile(t, "answer.txt", "8\n")
	missing := filepath.Join(t.TempDir(), "output.txt")

	t.Run("wrong argument count", func(t *testing.T) {
		stdout, stderr, code := executeCommand(t, in, ans)
		assert.Equal(t, 3, code)
		assert.Equal(t, "FAIL invalid number of arguments: expected 3, got 2\n", stdout)
		assert.Contains(t, stderr, "Invalid number of arguments for checker")
		assert.Contains(t, stderr, "Usage: checker <input-file> <output-file> <answer-file>")
	})

	t.Run("missing output file", func(t *testing.T) {
		stdout, stderr, code := executeCommand(t, in, missing, ans)
		assert.Equal(t, 3, code)
		assert.Equal(t, "FAIL failed to open output file "+missing+": not found\n", stdout)
		assert.Contains(t, stderr, "Failed to open output file: "+missing)
	})
}
