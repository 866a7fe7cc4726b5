// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/distlab/distributions/distunit"
)

const labelFontSize = 8
const labelFontHeight = labelFontSize * 5 / 4

// SVG renders charts as standalone SVG documents.
type SVG struct {
	w     io.Writer
	chart *Chart

	// BarWidth and Height are the width of one bar and the height
	// of the plotting area, in pixels.
	BarWidth, Height float64
}

// NewSVG returns a renderer that writes to w each time Show is
// called.
func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w, BarWidth: 30, Height: 300}
}

// Bars implements Renderer.
func (s *SVG) Bars(chart *Chart) error {
	if err := chart.Check(); err != nil {
		return err
	}
	s.chart = chart
	return nil
}

// Show writes the current chart to the underlying writer.
func (s *SVG) Show() error {
	if s.chart == nil {
		return ErrNoChart
	}
	c := s.chart

	const titleFontSize = 12
	const titleFontHeight = titleFontSize * 5 / 4
	const gap = 4

	// Layout, from the top: title, plot area, category labels,
	// x label. The y label is rotated on the left.
	left := float64(titleFontHeight + gap)
	top := float64(titleFontHeight + gap)
	bot := top + s.Height
	right := left + s.BarWidth*float64(len(c.Heights))
	width := right + gap
	height := bot + 2*labelFontHeight + gap

	var ext scale.Linear
	for _, h := range c.Heights {
		if !math.IsNaN(h) && !math.IsInf(h, 0) {
			expandScale(&ext, math.Min(0, h), math.Max(0, h))
		}
	}
	if ext.Min == ext.Max {
		ext.Max = ext.Min + 1
	}
	yOut := scale.Linear{Min: bot, Max: top}
	y := scale.QQ{Src: &ext, Dest: &yOut}
	scaler := distunit.CommonScale(c.Heights, c.Class)

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, `  <text x="%f" y="%d" font-size="%d" text-anchor="middle">%s</text>`+"\n", (left+right)/2, titleFontSize, titleFontSize, html.EscapeString(c.Title))
	fmt.Fprintf(buf, `  <text font-size="%d" text-anchor="middle" transform="translate(%d %f) rotate(-90)">%s</text>`+"\n", labelFontSize, labelFontSize, (top+bot)/2, html.EscapeString(c.YLabel))

	fill := svgColor(barColor)
	for i, h := range c.Heights {
		x1 := left + s.BarWidth*float64(i)
		x2 := x1 + s.BarWidth
		label := html.EscapeString(c.Labels[i])
		if !math.IsNaN(h) && !math.IsInf(h, 0) {
			path := svgPathRect(x1+1, y.Map(0), x2-1, y.Map(h))
			fmt.Fprintf(buf, `  <path d="%s" fill="%s"><title>%s (%s)</title></path>`+"\n", path, fill, label, scaler.Format(h))
		}
		fmt.Fprintf(buf, `  <text x="%f" y="%f" font-size="%d" text-anchor="middle">%s</text>`+"\n", mid(x1, x2), bot+labelFontHeight, labelFontSize, label)
	}

	// Axes.
	fmt.Fprintf(buf, `  <path d="M%f %fV%fH%f" fill="none" stroke="black" stroke-width="1px" />`+"\n", left, top, y.Map(0), right)
	fmt.Fprintf(buf, `  <text x="%f" y="%f" font-size="%d" text-anchor="middle">%s</text>`+"\n", (left+right)/2, bot+2*labelFontHeight, labelFontSize, html.EscapeString(c.XLabel))

	_, err := fmt.Fprintf(s.w,
		`<svg version="1.1" width="%f" height="%f" xmlns="http://www.w3.org/2000/svg">
%s</svg>
`,
		width,
		height,
		buf.Bytes(),
	)
	return err
}

func expandScale(s *scale.Linear, min, max float64) {
	if s.Min == 0 && s.Max == 0 {
		s.Min, s.Max = min, max
	} else {
		s.Min = math.Min(s.Min, min)
		s.Max = math.Max(s.Max, max)
	}
}

func mid(a, b float64) float64 {
	return (a + b) / 2
}

func svgPathRect(x1, y1, x2, y2 float64) string {
	return fmt.Sprintf("M%f %fH%fV%fH%fz", x1, y1, x2, y2, x1)
}
