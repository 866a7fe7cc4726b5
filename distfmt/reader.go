// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distfmt reads and writes observation files.
//
// An observation file is line-oriented text. Each line holds a single
// decimal number, optionally surrounded by spaces or tabs. There are
// no comments and no blank lines.
package distfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// A Reader reads observation files.
//
// Its API is modeled on bufio.Scanner.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error // current I/O error

	value    float64
	valueErr error
}

// SyntaxError represents a malformed line in an observation file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noValue = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse observations from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.value = 0
	r.valueErr = noValue
}

// Scan advances the reader to the next line and returns true if a
// line was read. The caller should use the Value method to get the
// observation. If an I/O error occurs, or this reaches the end of the
// file, it returns false and the caller should use the Err method to
// check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	if r.s.Scan() {
		r.lineNum++
		r.value, r.valueErr = r.parseLine(r.s.Bytes())
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
		return false
	}
	r.err = nil
	return false
}

func (r *Reader) parseLine(line []byte) (float64, error) {
	f := trimSpace(line)
	if len(f) == 0 {
		return 0, &SyntaxError{r.fileName, r.lineNum, "missing observation"}
	}
	val, err := atof(f)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, &SyntaxError{r.fileName, r.lineNum, "parsing observation: " + numErr.Err.Error()}
		}
		return 0, &SyntaxError{r.fileName, r.lineNum, err.Error()}
	}
	return val, nil
}

// Value returns the last observation read, or an error if the line
// was malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
func (r *Reader) Value() (float64, error) {
	if r.valueErr != nil {
		return 0, r.valueErr
	}
	return r.value, nil
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every observation from r. It stops at the first
// malformed line or I/O error.
func ReadAll(r io.Reader, fileName string) ([]float64, error) {
	reader := NewReader(r, fileName)
	vals := []float64{}
	for reader.Scan() {
		v, err := reader.Value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return vals, nil
}

// atof is a wrapper for strconv.ParseFloat that optimizes for
// observations that are usually small integers, such as 0/1
// outcomes.
func atof(x []byte) (float64, error) {
	// The largest int exactly representable in a float64.
	const largestInt = 1<<53 - 1

	// Try parsing as an integer.
	var val int64
	for _, ch := range x {
		digit := ch - '0'
		if digit >= 10 {
			goto fail
		}
		val = (val * 10) + int64(digit)
		if val > largestInt {
			goto fail
		}
	}
	return float64(val), nil

fail:
	// The fast path failed. Parse it as a float.
	return strconv.ParseFloat(string(x), 64)
}

// trimSpace strips ASCII spaces, tabs and carriage returns from both
// ends of x.
func trimSpace(x []byte) []byte {
	isSpace := func(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }
	for len(x) > 0 && isSpace(x[0]) {
		x = x[1:]
	}
	for len(x) > 0 && isSpace(x[len(x)-1]) {
		x = x[:len(x)-1]
	}
	return x
}
