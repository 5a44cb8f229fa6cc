// Package stream implements typed, fail-fast token extraction from the files
// a checker reads. Any read that cannot produce a value ends the run with a
// Presentation Error verdict instead of returning an error.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/vertti/checker/pkg/verdict"
)

var decimalFloat = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Stream is a sequential reader over one checker file.
type Stream struct {
	role     Role
	path     string
	r        *bufio.Reader
	src      io.Reader
	reads    int
	reporter *verdict.Reporter
}

// New wraps src. Failed reads are reported through reporter.
func New(role Role, path string, src io.Reader, reporter *verdict.Reporter) *Stream {
	return &Stream{
		role:     role,
		path:     path,
		r:        bufio.NewReader(src),
		src:      src,
		reporter: reporter,
	}
}

// Name returns "inf", "ouf" or "ans".
func (s *Stream) Name() string { return s.role.Name() }

// Role returns the role the stream was registered with.
func (s *Stream) Role() Role { return s.role }

// Path returns the file path the stream was opened from.
func (s *Stream) Path() string { return s.path }

// Reads returns the number of read operations attempted so far.
func (s *Stream) Reads() int { return s.reads }

// Close closes the underlying source if it is closable.
func (s *Stream) Close() error {
	if c, ok := s.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadInt reads a base-10 signed integer token. Values are 64-bit, so a
// token such as 3000000000 is accepted where a 32-bit int reader would fail.
func (s *Stream) ReadInt() int64 {
	s.reads++
	tok, err := s.token()
	if err != nil {
		s.fail("integer", err)
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		s.fail("integer", numError(tok, err))
	}
	return v
}

// ReadIntRange reads an integer and checks min <= v <= max. A value out of
// range is a Wrong Answer in the contestant output and a Fail elsewhere.
func (s *Stream) ReadIntRange(lo, hi int64, what string) int64 {
	v := s.ReadInt()
	if v < lo || v > hi {
		kind := verdict.Fail
		if s.role == Output {
			kind = verdict.WrongAnswer
		}
		s.reporter.Quitf(kind, "%s %d violates the range [%d, %d] in %s", what, v, lo, hi, s.Name())
	}
	return v
}

// ReadFloat reads a decimal floating-point token. NaN, infinities and hex
// floats are malformed.
func (s *Stream) ReadFloat() float64 {
	s.reads++
	tok, err := s.token()
	if err != nil {
		s.fail("double", err)
	}
	if !decimalFloat.MatchString(tok) {
		s.fail("double", fmt.Errorf("%q: %w", tok, strconv.ErrSyntax))
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		s.fail("double", numError(tok, err))
	}
	return v
}

// ReadToken reads a maximal run of non-whitespace characters.
func (s *Stream) ReadToken() string {
	s.reads++
	tok, err := s.token()
	if err != nil {
		s.fail("string", err)
	}
	return tok
}

// ReadLine reads up to and including the next line terminator, or to the end
// of the file when none remains. The terminator (and a preceding '\r') is not
// part of the result.
func (s *Stream) ReadLine() string {
	s.reads++
	line, err := s.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		s.fail("line", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ReadAll returns everything left in the stream.
func (s *Stream) ReadAll() string {
	s.reads++
	b, err := io.ReadAll(s.r)
	if err != nil {
		s.fail("content", err)
	}
	return string(b)
}

// SeekEOF consumes whitespace and reports whether the stream is exhausted.
// Whitespace stays consumed when the answer is false.
func (s *Stream) SeekEOF() bool {
	return errors.Is(s.skipBlanks(), io.EOF)
}

// ExpectEOF reports Dirt when anything but whitespace remains.
func (s *Stream) ExpectEOF() {
	if !s.SeekEOF() {
		s.reporter.Quitf(verdict.Dirt, "extra tokens in %s", s.Name())
	}
}

func (s *Stream) fail(what string, err error) {
	if errors.Is(err, io.EOF) {
		s.reporter.Quitf(verdict.PresentationError, "unexpected end of file when reading %s from %s", what, s.Name())
	}
	s.reporter.Quitf(verdict.PresentationError, "failed to read %s from %s: %v", what, s.Name(), err)
}

// token skips whitespace and returns the next run of non-whitespace bytes.
// The delimiter that ends the token is left unread.
func (s *Stream) token() (string, error) {
	if err := s.skipBlanks(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return "", err
		}
		if isSpace(b) {
			_ = s.r.UnreadByte()
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

func (s *Stream) skipBlanks() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(b) {
			return s.r.UnreadByte()
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func numError(tok string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Errorf("%q: %w", tok, numErr.Err)
	}
	return fmt.Errorf("%q: %w", tok, err)
}
