// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist models probability distributions that can be
// estimated from observed data.
//
// A Distribution holds the summary statistics shared by every family
// along with an optional sample of raw observations. Families such as
// Binomial embed a Distribution and keep its statistics consistent
// with their own parameters.
package dist

import (
	"io"

	"github.com/distlab/distributions/distfmt"
)

// A Distribution is the state common to all distribution families.
//
// Mean and Stdev reflect whatever last computed them. Loading new
// Data does not update them; a family's estimation method does.
type Distribution struct {
	Mean  float64
	Stdev float64

	// Data is the raw sample, in the order it was read.
	Data []float64
}

// NewDistribution returns a Distribution with the given mean and
// standard deviation and no data. Neither value is checked.
func NewDistribution(mean, stdev float64) *Distribution {
	return &Distribution{Mean: mean, Stdev: stdev, Data: []float64{}}
}

// Load replaces d.Data with the observations read from r, one per
// line. name is used in error messages.
//
// A malformed line results in a *distfmt.SyntaxError. On error, d.Data
// is unchanged.
func (d *Distribution) Load(r io.Reader, name string) error {
	data, err := distfmt.ReadAll(r, name)
	if err != nil {
		return err
	}
	d.Data = data
	return nil
}

// LoadFiles replaces d.Data with the observations read from each of
// paths in order. The path "-", or an empty list of paths, reads
// standard input.
//
// A path that cannot be opened results in a *fs.PathError, and a
// malformed line in a *distfmt.SyntaxError. On error, d.Data is
// unchanged.
func (d *Distribution) LoadFiles(paths ...string) error {
	files := distfmt.Files{Paths: paths, AllowStdin: true}
	defer files.Close()
	data := []float64{}
	for files.Scan() {
		v, err := files.Value()
		if err != nil {
			return err
		}
		data = append(data, v)
	}
	if err := files.Err(); err != nil {
		return err
	}
	d.Data = data
	return nil
}
