// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/distlab/distributions/dist"
	"github.com/distlab/distributions/distfmt"
	"github.com/goccy/go-json"
)

func testOptions(p float64, n int) *options {
	return &options{Config: Config{P: p, N: n, Seed: 1, Chart: defaultConfig().Chart}, k: -1, addN: -1, addP: p}
}

func runString(t *testing.T, opts *options, inputs ...string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := run(opts, inputs, &buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestRun(t *testing.T) {
	opts := testOptions(0.5, 2)
	opts.k = 1
	opts.pmf = true
	got := runString(t, opts)
	want := `mean 1, standard deviation 0.7071067811865476, p 0.5, n 2
P(X = 1) = 0.5
P(X <= 1) = 0.75
0  0.250
1  0.500
2  0.250
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunCSV(t *testing.T) {
	opts := testOptions(0.5, 2)
	opts.pmf = true
	opts.csv = true
	got := runString(t, opts)
	if !strings.HasSuffix(got, "k,pmf,cdf\n0,0.25,0.25\n1,0.5,0.75\n2,0.25,1\n") {
		t.Errorf("got:\n%s", got)
	}
}

func TestRunInputs(t *testing.T) {
	path := writeFile(t, "flips.txt", "0\n0\n1\n1\n")
	got := runString(t, testOptions(0.1, 100), path)
	if want := "mean 2, standard deviation 1, p 0.5, n 4\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	empty := writeFile(t, "empty.txt", "")
	if err := run(testOptions(0.5, 2), []string{empty}, new(bytes.Buffer)); !errors.Is(err, dist.ErrNoData) {
		t.Errorf("for empty input, got %v, want %v", err, dist.ErrNoData)
	}

	bad := writeFile(t, "bad.txt", "1\nheads\n")
	var se *distfmt.SyntaxError
	if err := run(testOptions(0.5, 2), []string{bad}, new(bytes.Buffer)); !errors.As(err, &se) {
		t.Errorf("for malformed input, got %v, want *distfmt.SyntaxError", err)
	}
}

func TestRunAdd(t *testing.T) {
	opts := testOptions(0.4, 10)
	opts.addN = 20
	if got := runString(t, opts); !strings.HasPrefix(got, "mean 12, ") || !strings.HasSuffix(got, "p 0.4, n 30\n") {
		t.Errorf("got %q", got)
	}

	opts.addP = 0.5
	if err := run(opts, nil, new(bytes.Buffer)); !errors.Is(err, dist.ErrUnequalP) {
		t.Errorf("got %v, want %v", err, dist.ErrUnequalP)
	}
}

func TestRunBadParams(t *testing.T) {
	for _, opts := range []*options{testOptions(1.5, 2), testOptions(0.5, -2)} {
		if err := run(opts, nil, new(bytes.Buffer)); !errors.Is(err, dist.ErrBadParams) {
			t.Errorf("p %v n %d: got %v, want %v", opts.P, opts.N, err, dist.ErrBadParams)
		}
	}
}

func TestRunJSON(t *testing.T) {
	opts := testOptions(0.5, 2)
	opts.json = true
	opts.pmf = true
	var got summary
	if err := json.Unmarshal([]byte(runString(t, opts)), &got); err != nil {
		t.Fatal(err)
	}
	if got.Mean != 1 || got.P != 0.5 || got.N != 2 || len(got.PMF) != 3 || got.PMF[1] != 0.5 {
		t.Errorf("got %+v", got)
	}
}

func TestRunCharts(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(0.4, 20)
	opts.barPath = filepath.Join(dir, "bar.svg")
	opts.pdfPath = filepath.Join(dir, "pdf.svg")
	runString(t, opts)
	for _, path := range []string{opts.barPath, opts.pdfPath} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		// Exactly one document per chart.
		if n := bytes.Count(data, []byte("<svg ")); n != 1 {
			t.Errorf("%s has %d SVG documents, want 1", path, n)
		}
	}

	opts = testOptions(0.4, 20)
	opts.Chart.Renderer = "gonum"
	opts.Chart.Format = "png"
	opts.pdfPath = filepath.Join(dir, "pdf.png")
	runString(t, opts)
	data, err := os.ReadFile(opts.pdfPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("%s is not a PNG", opts.pdfPath)
	}
}

func TestRunGen(t *testing.T) {
	opts := testOptions(0.3, 50)
	opts.genPath = filepath.Join(t.TempDir(), "trials.txt")
	runString(t, opts)

	f, err := os.Open(opts.genPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	vals, err := distfmt.ReadAll(f, opts.genPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 50 {
		t.Errorf("got %d trials, want 50", len(vals))
	}

	// The same seed reproduces the trials.
	opts2 := testOptions(0.3, 50)
	opts2.genPath = filepath.Join(t.TempDir(), "trials.txt")
	runString(t, opts2)
	a, _ := os.ReadFile(opts.genPath)
	b, _ := os.ReadFile(opts2.genPath)
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different trials")
	}
}
