// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfmt

import "os"

// Files reads observations from a sequence of input files.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// pos is the position of the next file to read from in Paths
	// when the current file is exhausted.
	pos int

	reader  Reader
	path    string
	file    *os.File
	isStdin bool
	err     error
}

// Scan advances the reader to the next observation in the sequence
// of files and returns true if a line was read. The caller should use
// the Value method to get the observation. If an I/O error occurs, or
// this reaches the end of the file sequence, it returns false and the
// caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	for {
		if f.file == nil {
			// Open the next file.
			var path string
			if f.AllowStdin && len(f.Paths) == 0 && f.pos == 0 {
				path = "-"
			} else if f.pos < len(f.Paths) {
				path = f.Paths[f.pos]
			} else {
				// We're out of files.
				return false
			}
			f.pos++
			f.path = path
			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
			}
			f.reader.Reset(f.file, path)
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		if err != nil {
			f.err = err
			f.close()
			break
		}
		// Just an EOF. Close this file and open the next.
		f.close()
	}
	return false
}

func (f *Files) close() {
	if !f.isStdin {
		f.file.Close()
	}
	f.file = nil
}

// Value returns the last observation read, or an error if the line
// was malformed.
func (f *Files) Value() (float64, error) {
	return f.reader.Value()
}

// Path returns the path of the file the last observation came from.
func (f *Files) Path() string {
	return f.path
}

// Close releases the file currently being read, if any. It is only
// necessary when abandoning a Files before Scan returns false.
func (f *Files) Close() {
	if f.file != nil {
		f.close()
	}
}

// Err returns the first non-EOF I/O error that was encountered by the
// Files.
func (f *Files) Err() error {
	return f.err
}
