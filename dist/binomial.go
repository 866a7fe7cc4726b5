// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
	"github.com/distlab/distributions/distplot"
	"github.com/distlab/distributions/distunit"
)

// Default parameters of NewDefaultBinomial: 25 flips of a fair coin.
const (
	DefaultP = 0.5
	DefaultN = 25
)

// Binomial is the distribution of the number of successes in N
// independent trials that each succeed with probability P.
//
// The embedded Distribution's Mean and Stdev are N*P and
// sqrt(N*P*(1-P)) as of the last call to CalculateMean and
// CalculateStdev. Its Data, if any, is a sample of 0/1 trial outcomes
// from which ReplaceStatsWithData re-estimates P and N.
type Binomial struct {
	Distribution

	P float64 // Probability of success in each trial
	N int     // Number of trials
}

// NewBinomial returns the Binomial distribution of n trials with
// success probability p. The caller must ensure 0 <= p <= 1 and
// n >= 0; see Validate.
func NewBinomial(p float64, n int) *Binomial {
	b := &Binomial{P: p, N: n}
	b.Distribution = *NewDistribution(b.CalculateMean(), b.CalculateStdev())
	return b
}

// NewDefaultBinomial returns NewBinomial(DefaultP, DefaultN).
func NewDefaultBinomial() *Binomial {
	return NewBinomial(DefaultP, DefaultN)
}

// Validate returns an error wrapping ErrBadParams if P is not a
// probability or N is negative.
func (b *Binomial) Validate() error {
	if !(b.P >= 0 && b.P <= 1) {
		return fmt.Errorf("%w: p %v is not in [0, 1]", ErrBadParams, b.P)
	}
	if b.N < 0 {
		return fmt.Errorf("%w: n %d is negative", ErrBadParams, b.N)
	}
	return nil
}

// CalculateMean sets b.Mean to N*P and returns it.
func (b *Binomial) CalculateMean() float64 {
	b.Mean = b.P * float64(b.N)
	return b.Mean
}

// CalculateStdev sets b.Stdev to sqrt(N*P*(1-P)) and returns it.
func (b *Binomial) CalculateStdev() float64 {
	b.Stdev = math.Sqrt(float64(b.N) * b.P * (1 - b.P))
	return b.Stdev
}

// ReplaceStatsWithData re-estimates the distribution from b.Data: N
// becomes the number of observations and P the fraction of successes
// (the sample mean). It then recomputes Mean and Stdev and returns the
// new P and N.
//
// Observations are expected to be 0 or 1 but are not checked. If
// b.Data is empty, ReplaceStatsWithData returns ErrNoData and leaves b
// unchanged.
func (b *Binomial) ReplaceStatsWithData() (p float64, n int, err error) {
	if len(b.Data) == 0 {
		return 0, 0, ErrNoData
	}
	sample := stats.Sample{Xs: b.Data}
	b.N = len(b.Data)
	b.P = sample.Sum() / float64(b.N)
	b.CalculateMean()
	b.CalculateStdev()
	return b.P, b.N, nil
}

// directLimit is the largest N for which PMF multiplies the binomial
// coefficient by the probability powers directly. Beyond it, the
// coefficient and powers can overflow or underflow, so PMF works in
// log space.
const directLimit = 60

// PMF returns the probability of exactly k successes,
// C(N, k) * P^k * (1-P)^(N-k).
//
// PMF returns 0 if k is not in [0, N].
func (b *Binomial) PMF(k int) float64 {
	n, p := b.N, b.P
	if k < 0 || k > n {
		return 0
	}
	// Degenerate distributions. These would otherwise compute
	// 0^0 or log(0).
	switch p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == n {
			return 1
		}
		return 0
	}
	if n <= directLimit {
		return mathx.Choose(n, k) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	return math.Exp(mathx.Lchoose(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p))
}

// CDF returns the probability of at most k successes.
func (b *Binomial) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= b.N {
		return 1
	}
	var sum float64
	for i := 0; i <= k; i++ {
		sum += b.PMF(i)
	}
	return math.Min(sum, 1)
}

// PlotBar draws a two-bar chart of the expected number of failures
// ("0") and successes ("1") under the current parameters.
func (b *Binomial) PlotBar(r distplot.Renderer) error {
	n := float64(b.N)
	return r.Bars(&distplot.Chart{
		Title:   "Bar Chart of Data",
		XLabel:  "outcome",
		YLabel:  "count",
		Labels:  []string{"0", "1"},
		Heights: []float64{(1 - b.P) * n, b.P * n},
		Class:   distunit.ClassSI,
	})
}

// PlotPDF computes the probability of every outcome 0 through N,
// draws them as a bar chart and, if r is a distplot.Shower, shows the
// chart before returning. x[i] is i and y[i] is PMF(i).
//
// The outcomes are returned even if drawing fails.
func (b *Binomial) PlotPDF(r distplot.Renderer) (x []int, y []float64, err error) {
	x = make([]int, b.N+1)
	y = make([]float64, b.N+1)
	for i := range x {
		x[i] = i
		y[i] = b.PMF(i)
	}

	chart := distplot.NewXYChart(x, y)
	chart.Title = "Distribution of Outcomes"
	chart.XLabel = "Outcome"
	chart.YLabel = "Probability"
	if err := r.Bars(chart); err != nil {
		return x, y, err
	}
	if s, ok := r.(distplot.Shower); ok {
		if err := s.Show(); err != nil {
			return x, y, err
		}
	}
	return x, y, nil
}

// Add returns the distribution of the sum of independent variables
// drawn from b and other, which is Binomial(b.N+other.N, b.P).
//
// b and other must have exactly equal P. Otherwise Add returns an
// error wrapping ErrUnequalP. The result has no Data.
func (b *Binomial) Add(other *Binomial) (*Binomial, error) {
	if b.P != other.P {
		return nil, fmt.Errorf("%w: %v != %v", ErrUnequalP, b.P, other.P)
	}
	result := NewDefaultBinomial()
	result.P = b.P
	result.N = b.N + other.N
	result.CalculateMean()
	result.CalculateStdev()
	return result, nil
}

// Trials draws b.N independent trial outcomes from rng, each 1 with
// probability b.P and 0 otherwise. Loading the result into a Binomial
// and calling ReplaceStatsWithData estimates b.
func (b *Binomial) Trials(rng *rand.Rand) []float64 {
	out := make([]float64, b.N)
	for i := range out {
		if rng.Float64() < b.P {
			out[i] = 1
		}
	}
	return out
}

// String returns the mean, standard deviation, p and n of b.
func (b *Binomial) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("mean %s, standard deviation %s, p %s, n %d", f(b.Mean), f(b.Stdev), f(b.P), b.N)
}
