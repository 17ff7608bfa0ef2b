// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"errors"
	"fmt"

	"github.com/frxml/benchplot/benchfmt"
)

// An ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// MalformedName indicates a benchmark name without a library
	// and a size segment.
	MalformedName ErrorKind = iota + 1
	// InvalidSize indicates a size token that is not a non-negative
	// finite number.
	InvalidSize
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedName:
		return "MalformedName"
	case InvalidSize:
		return "InvalidSize"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors for use with errors.Is.
var (
	ErrMalformedName = errors.New("malformed benchmark name")
	ErrInvalidSize   = errors.New("invalid size")
)

// A ParseError reports a result that could not be parsed into a
// Record.
type ParseError struct {
	Kind ErrorKind

	// FileName and Index give the position of the result, if it
	// was read from a file.
	FileName string
	Index    int

	// Name is the full benchmark name.
	Name string

	// Token is the size token, for InvalidSize errors.
	Token string
}

func newParseError(res *benchfmt.Result, kind ErrorKind, tok string) *ParseError {
	fileName, index := res.Pos()
	return &ParseError{kind, fileName, index, res.Name, tok}
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case InvalidSize:
		msg = fmt.Sprintf("%s: %s %q", e.Name, ErrInvalidSize, e.Token)
	default:
		msg = fmt.Sprintf("%s: %s", e.Name, ErrMalformedName)
	}
	if e.FileName == "" {
		return msg
	}
	return fmt.Sprintf("%s:#%d: %s", e.FileName, e.Index, msg)
}

// Unwrap returns the sentinel error for e.Kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case MalformedName:
		return ErrMalformedName
	case InvalidSize:
		return ErrInvalidSize
	}
	return nil
}
