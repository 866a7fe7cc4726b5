// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Gonum renders charts with gonum.org/v1/plot.
type Gonum struct {
	w    io.Writer
	plot *plot.Plot

	// Width and Height are the size of the emitted image.
	Width, Height vg.Length

	// Format is any format supported by plot.WriterTo, such as
	// "png", "svg" or "pdf".
	Format string
}

// NewGonum returns a renderer that writes images in the given format
// to w each time Show is called.
func NewGonum(w io.Writer, format string) *Gonum {
	return &Gonum{w: w, Width: 6 * vg.Inch, Height: 4 * vg.Inch, Format: format}
}

// Bars implements Renderer.
func (g *Gonum) Bars(chart *Chart) error {
	if err := chart.Check(); err != nil {
		return err
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel

	// Share the plot width between the bars, leaving room for
	// the axes.
	width := g.Width * 3 / 4 / vg.Length(len(chart.Heights))
	if width < 1 {
		width = 1
	}
	bars, err := plotter.NewBarChart(plotter.Values(chart.Heights), width)
	if err != nil {
		return err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(chart.Labels...)

	g.plot = p
	return nil
}

// Show writes the current chart to the underlying writer.
func (g *Gonum) Show() error {
	if g.plot == nil {
		return ErrNoChart
	}
	wt, err := g.plot.WriterTo(g.Width, g.Height, g.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(g.w)
	return err
}
