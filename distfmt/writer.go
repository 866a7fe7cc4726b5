// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfmt

import (
	"io"
	"strconv"
)

// A Writer writes observation files.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a writer that writes observations to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes observation v on its own line, using the shortest
// representation that reads back as exactly v.
func (w *Writer) Write(v float64) error {
	w.buf = strconv.AppendFloat(w.buf[:0], v, 'g', -1, 64)
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	return err
}

// WriteAll writes each of vs in order.
func (w *Writer) WriteAll(vs []float64) error {
	for _, v := range vs {
		if err := w.Write(v); err != nil {
			return err
		}
	}
	return nil
}
