// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command binom describes a binomial distribution.
//
// The distribution is given by -p and -n, or estimated from files of
// 0/1 trial outcomes, one per line. binom prints its mean, standard
// deviation and parameters, and optionally the probability of each
// outcome and charts of the distribution.
//
// For example,
//
// 	binom -p 0.4 -n 20 -k 5 -pdf pdf.svg
//
// prints the probability of exactly and at most 5 successes in 20
// trials and draws every outcome's probability to pdf.svg.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/distlab/distributions/dist"
	"github.com/distlab/distributions/distfmt"
	"github.com/distlab/distributions/distplot"
	"github.com/distlab/distributions/distunit"
	"github.com/goccy/go-json"
	"gonum.org/v1/plot/vg"
)

type options struct {
	Config

	k    int  // outcome to report, if >= 0
	pmf  bool // print every outcome
	addN int  // trials to add, if >= 0
	addP float64

	barPath, pdfPath, genPath string

	json, csv bool
}

func main() {
	log.SetPrefix("binom: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] [inputs...]

binom describes the binomial distribution with parameters -p and -n.
If inputs are given, it instead estimates p and n from them. Each input
holds one trial outcome, 0 or 1, per line. The input "-" is stdin.

`, os.Args[0])
		flag.PrintDefaults()
	}
	var opts options
	def := defaultConfig()
	configPath := flag.String("config", "", "read defaults from YAML `file`")
	flagP := flag.Float64("p", def.P, "success probability of each trial")
	flagN := flag.Int("n", def.N, "number of trials")
	flagSeed := flag.Int64("seed", def.Seed, "random seed for -gen")
	flagRenderer := flag.String("renderer", def.Chart.Renderer, "chart renderer: svg or gonum")
	flagFormat := flag.String("format", def.Chart.Format, "gonum image `format`: png, svg, pdf, ...")
	flag.IntVar(&opts.k, "k", -1, "print the probability of `k` successes")
	flag.BoolVar(&opts.pmf, "pmf", false, "print the probability of every outcome")
	flag.IntVar(&opts.addN, "add", -1, "add an independent distribution of `n` trials")
	flagAddP := flag.Float64("add-p", -1, "success probability of -add (default -p)")
	flag.StringVar(&opts.barPath, "bar", "", "draw expected outcome counts to `file`")
	flag.StringVar(&opts.pdfPath, "pdf", "", "draw outcome probabilities to `file`")
	flag.StringVar(&opts.genPath, "gen", "", "write n random trial outcomes to `file`")
	flag.BoolVar(&opts.json, "json", false, "print JSON")
	flag.BoolVar(&opts.csv, "csv", false, "print -pmf without rounding, comma-separated")
	flag.Parse()

	opts.Config = def
	if *configPath != "" {
		if err := LoadConfig(*configPath, &opts.Config); err != nil {
			log.Fatal(err)
		}
	}
	// Flags given explicitly override the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			opts.P = *flagP
		case "n":
			opts.N = *flagN
		case "seed":
			opts.Seed = *flagSeed
		case "renderer":
			opts.Chart.Renderer = *flagRenderer
		case "format":
			opts.Chart.Format = *flagFormat
		}
	})
	opts.addP = *flagAddP
	if opts.addP < 0 {
		opts.addP = opts.P
	}
	if err := opts.Config.check(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}

	if err := run(&opts, flag.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts *options, inputs []string, w io.Writer) error {
	b := dist.NewBinomial(opts.P, opts.N)
	if len(inputs) > 0 {
		if err := b.LoadFiles(inputs...); err != nil {
			return err
		}
		if _, _, err := b.ReplaceStatsWithData(); err != nil {
			return err
		}
	}
	if err := b.Validate(); err != nil {
		return err
	}

	if opts.addN >= 0 {
		other := dist.NewBinomial(opts.addP, opts.addN)
		if err := other.Validate(); err != nil {
			return err
		}
		sum, err := b.Add(other)
		if err != nil {
			return err
		}
		b = sum
	}

	if opts.barPath != "" {
		if err := drawChart(opts, opts.barPath, true, func(r distplot.Renderer) error {
			return b.PlotBar(r)
		}); err != nil {
			return err
		}
	}
	if opts.pdfPath != "" {
		// PlotPDF shows the chart itself.
		if err := drawChart(opts, opts.pdfPath, false, func(r distplot.Renderer) error {
			_, _, err := b.PlotPDF(r)
			return err
		}); err != nil {
			return err
		}
	}
	if opts.genPath != "" {
		if err := writeTrials(b, opts.genPath, opts.Seed); err != nil {
			return err
		}
	}

	if opts.json {
		return printJSON(opts, b, w)
	}
	fmt.Fprintln(w, b)
	if opts.k >= 0 {
		fmt.Fprintf(w, "P(X = %d) = %v\nP(X <= %d) = %v\n", opts.k, b.PMF(opts.k), opts.k, b.CDF(opts.k))
	}
	if opts.pmf {
		printPMF(opts, b, w)
	}
	return nil
}

func newRenderer(opts *options, w io.Writer) distplot.Shower {
	if opts.Chart.Renderer == "gonum" {
		g := distplot.NewGonum(w, opts.Chart.Format)
		g.Width = vg.Length(opts.Chart.Width) * vg.Inch
		g.Height = vg.Length(opts.Chart.Height) * vg.Inch
		return g
	}
	return distplot.NewSVG(w)
}

// drawChart creates path and draws to it with plot. If show is set,
// it then shows the result.
func drawChart(opts *options, path string, show bool, plot func(distplot.Renderer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	r := newRenderer(opts, f)
	err = plot(r)
	if err == nil && show {
		err = r.Show()
	}
	if err1 := f.Close(); err == nil {
		err = err1
	}
	if err != nil {
		return fmt.Errorf("drawing %s: %w", path, err)
	}
	return nil
}

func writeTrials(b *dist.Binomial, path string, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = distfmt.NewWriter(f).WriteAll(b.Trials(rand.New(rand.NewSource(seed))))
	if err1 := f.Close(); err == nil {
		err = err1
	}
	return err
}

type summary struct {
	Mean  float64   `json:"mean"`
	Stdev float64   `json:"stdev"`
	P     float64   `json:"p"`
	N     int       `json:"n"`
	PMF   []float64 `json:"pmf,omitempty"`
}

func printJSON(opts *options, b *dist.Binomial, w io.Writer) error {
	s := summary{Mean: b.Mean, Stdev: b.Stdev, P: b.P, N: b.N}
	if opts.pmf {
		s.PMF = make([]float64, b.N+1)
		for k := range s.PMF {
			s.PMF[k] = b.PMF(k)
		}
	}
	data, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func printPMF(opts *options, b *dist.Binomial, w io.Writer) {
	probs := make([]float64, b.N+1)
	for k := range probs {
		probs[k] = b.PMF(k)
	}
	if opts.csv {
		fmt.Fprintln(w, "k,pmf,cdf")
		var cdf float64
		for k, p := range probs {
			cdf += p
			fmt.Fprintf(w, "%d,%s,%s\n", k, distunit.NoOpScaler.Format(p), distunit.NoOpScaler.Format(cdf))
		}
		return
	}
	scaler := distunit.CommonScale(probs, distunit.ClassPlain)
	kWidth := len(fmt.Sprint(b.N))
	for k, p := range probs {
		fmt.Fprintf(w, "%*d  %s\n", kWidth, k, scaler.Format(p))
	}
}
