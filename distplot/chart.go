// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distplot draws bar charts of distributions.
//
// The distribution types only describe what to draw as a Chart. A
// Renderer turns a Chart into pixels or vectors, and a Shower
// additionally emits the drawn chart on demand.
package distplot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/distlab/distributions/distunit"
)

// ErrNoChart is returned by Show when nothing has been drawn.
var ErrNoChart = errors.New("no chart has been drawn")

// A Chart is a bar chart with one bar per category.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	// Labels and Heights are parallel: bar i is named Labels[i]
	// and is Heights[i] tall.
	Labels  []string
	Heights []float64

	// Class selects how bar heights are formatted in annotations.
	Class distunit.Class
}

// NewXYChart returns a chart with one bar per outcome in x, named by
// its decimal value and y[i] tall.
func NewXYChart(x []int, y []float64) *Chart {
	labels := make([]string, len(x))
	for i, v := range x {
		labels[i] = strconv.Itoa(v)
	}
	return &Chart{Labels: labels, Heights: y, Class: distunit.ClassPlain}
}

// Check reports whether c can be drawn.
func (c *Chart) Check() error {
	if len(c.Labels) != len(c.Heights) {
		return fmt.Errorf("chart %q has %d labels but %d heights", c.Title, len(c.Labels), len(c.Heights))
	}
	if len(c.Heights) == 0 {
		return fmt.Errorf("chart %q has no bars", c.Title)
	}
	return nil
}

// A Renderer draws charts.
type Renderer interface {
	// Bars draws chart, replacing anything drawn before.
	Bars(chart *Chart) error
}

// A Shower is a Renderer that can emit the chart it last drew.
type Shower interface {
	Renderer
	// Show synchronously emits the current chart.
	Show() error
}
