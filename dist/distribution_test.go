// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/distlab/distributions/distfmt"
)

func TestNewDistribution(t *testing.T) {
	d := NewDistribution(3, -1)
	if d.Mean != 3 || d.Stdev != -1 {
		t.Errorf("got mean %v stdev %v, want 3 -1", d.Mean, d.Stdev)
	}
	if d.Data == nil || len(d.Data) != 0 {
		t.Errorf("got data %#v, want empty slice", d.Data)
	}
}

func TestLoad(t *testing.T) {
	d := NewDistribution(1, 2)
	if err := d.Load(strings.NewReader("1\n0\n1\n1\n"), "obs"); err != nil {
		t.Fatal(err)
	}
	if want := []float64{1, 0, 1, 1}; !reflect.DeepEqual(d.Data, want) {
		t.Errorf("got %v, want %v", d.Data, want)
	}
	// Loading never touches the statistics.
	if d.Mean != 1 || d.Stdev != 2 {
		t.Errorf("Load changed statistics to mean %v stdev %v", d.Mean, d.Stdev)
	}

	err := d.Load(strings.NewReader("1\nx\n"), "bad")
	var se *distfmt.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *distfmt.SyntaxError", err)
	}
	if se.Line != 2 {
		t.Errorf("got error on line %d, want 2", se.Line)
	}
	if want := []float64{1, 0, 1, 1}; !reflect.DeepEqual(d.Data, want) {
		t.Errorf("failed Load changed data to %v", d.Data)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numbers.txt")
	if err := os.WriteFile(path, []byte("1\n2\n3\n"), 0666); err != nil {
		t.Fatal(err)
	}

	d := NewDistribution(0, 0)
	if err := d.LoadFiles(path, path); err != nil {
		t.Fatal(err)
	}
	if want := []float64{1, 2, 3, 1, 2, 3}; !reflect.DeepEqual(d.Data, want) {
		t.Errorf("got %v, want %v", d.Data, want)
	}

	err := d.LoadFiles(filepath.Join(dir, "missing.txt"))
	var pe *fs.PathError
	if !errors.As(err, &pe) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want not-exist *fs.PathError", err)
	}
	if len(d.Data) != 6 {
		t.Errorf("failed LoadFiles changed data to %v", d.Data)
	}
}
