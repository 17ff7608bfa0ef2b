// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"os"
	"strings"
)

// A Files reads benchmark records from a sequence of input documents.
//
// This reader adds a ".file" configuration key to the output Results
// naming the input each came from. By default, this is the path from
// Paths, with repeated paths disambiguated by appending "#N". If
// AllowLabels is true, entries in Paths may be of the form label=path,
// and the label is used for .file as given.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// AllowLabels indicates that entries in Paths may be of the
	// form label=path.
	AllowLabels bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []input

	reader  Reader
	file    *os.File
	isStdin bool
	err     error
}

type input struct {
	path      string
	label     string
	isStdin   bool
	isLabeled bool
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.inputs = []input{}

	paths := f.Paths
	if f.AllowStdin && len(paths) == 0 {
		paths = []string{"-"}
	}
	seen := make(map[string]int)
	for _, path := range paths {
		in := input{path: path, label: path}
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			in.label, in.path, in.isLabeled = path[:i], path[i+1:], true
		} else {
			seen[path]++
		}
		in.isStdin = f.AllowStdin && in.path == "-"
		f.inputs = append(f.inputs, in)
	}

	// Reading the same path twice would otherwise produce records
	// with identical configuration. Explicit labels are used as
	// given.
	next := make(map[string]int)
	for i := range f.inputs {
		in := &f.inputs[i]
		if in.isLabeled || seen[in.path] < 2 {
			continue
		}
		in.label = fmt.Sprintf("%s#%d", in.path, next[in.path])
		next[in.path]++
	}
}

// Scan advances the reader to the next record in the sequence of
// files and reports whether a record was read. The caller should use
// the Result method to get the record. If Scan reaches the end of the
// file sequence, or if an I/O or document-level error occurs, it
// returns false. In this case, the caller should use the Err method to
// check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}

	for {
		if f.file == nil {
			if len(f.inputs) == 0 {
				return false
			}
			in := f.inputs[0]
			f.inputs = f.inputs[1:]

			if in.isStdin {
				f.isStdin, f.file = true, os.Stdin
			} else {
				file, err := os.Open(in.path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
			}
			// ".file" cannot be a Google Benchmark field
			// name, so it never collides with the document.
			f.reader.Reset(f.file, in.path, ".file", in.label)
		}

		if f.reader.Scan() {
			return true
		}
		if !f.isStdin {
			f.file.Close()
		}
		f.file = nil
		if err := f.reader.Err(); err != nil {
			f.err = err
			return false
		}
	}
}

// Result returns the record that was just read by Scan.
// See Reader.Result.
func (f *Files) Result() Record {
	return f.reader.Result()
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
