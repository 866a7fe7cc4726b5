// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGonum(t *testing.T) {
	var buf bytes.Buffer
	g := NewGonum(&buf, "svg")
	if err := g.Show(); !errors.Is(err, ErrNoChart) {
		t.Fatalf("Show before Bars: got %v, want %v", err, ErrNoChart)
	}

	chart := NewXYChart([]int{0, 1, 2}, []float64{.25, .5, .25})
	chart.Title = "Distribution of Outcomes"
	if err := g.Bars(chart); err != nil {
		t.Fatal(err)
	}
	if err := g.Show(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG: %.100q", buf.String())
	}
}

func TestGonumBadFormat(t *testing.T) {
	g := NewGonum(new(bytes.Buffer), "no-such-format")
	if err := g.Bars(NewXYChart([]int{0}, []float64{1})); err != nil {
		t.Fatal(err)
	}
	if err := g.Show(); err == nil {
		t.Error("Show with unknown format succeeded")
	}
}
