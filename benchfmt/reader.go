// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/frxml/benchplot/benchunit"
)

// A Reader reads one Google Benchmark JSON document.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, use Result after each successful Scan, and check Err at the
// end.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	dec      *json.Decoder
	fileName string
	err      error // document-level error; stops the Reader
	state    readerState

	// initConfig is the internal configuration installed by Reset.
	// context is the document's "context" object.
	initConfig []Config
	context    []Config

	index int
	rec   Record
}

type readerState int

const (
	stateStart readerState = iota
	stateBenchmarks
	stateDone
)

// A SyntaxError reports a benchmark element that could not be turned
// into a Result. SyntaxErrors are non-fatal: the Reader continues with
// the next element.
type SyntaxError struct {
	FileName string
	Index    int // 1-based element index within "benchmarks"
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, index int) {
	return e.FileName, e.Index
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:#%d: %s", e.FileName, e.Index, e.Msg)
}

var noResult = &SyntaxError{"", 0, "Reader.Scan has not been called"}

// errNotObject reports a JSON value that should have been an object.
var errNotObject = errors.New("expected JSON object")

// NewReader constructs a reader to parse a Google Benchmark JSON
// document from r. fileName is used in error messages; it is purely
// diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
//
// initConfig is an alternating sequence of keys and values. Reset
// will install these as internal configuration of every Result read
// from the new input.
func (r *Reader) Reset(ior io.Reader, fileName string, initConfig ...string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	if len(initConfig)%2 != 0 {
		panic("len(initConfig) must be a multiple of 2")
	}
	r.dec = json.NewDecoder(ior)
	r.dec.UseNumber()
	r.fileName = fileName
	r.err = nil
	r.state = stateStart
	r.initConfig = r.initConfig[:0]
	r.context = nil
	r.index = 0
	r.rec = nil
	for i := 0; i < len(initConfig); i += 2 {
		r.initConfig = append(r.initConfig, Config{Key: initConfig[i], Value: initConfig[i+1]})
	}
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Result method to get the
// record. If Scan reaches the end of the document or a document-level
// error occurs, it returns false, in which case the caller should use
// the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.state == stateStart {
		if err := r.readPreamble(); err != nil {
			r.fail(err)
			return false
		}
	}
	if r.state != stateBenchmarks {
		return false
	}

	if !r.dec.More() {
		if err := r.readTrailer(); err != nil {
			r.fail(err)
		}
		r.state = stateDone
		return false
	}

	var raw json.RawMessage
	if err := r.dec.Decode(&raw); err != nil {
		// The decoder cannot resynchronize after a JSON syntax
		// error, so this ends the document.
		r.fail(err)
		return false
	}
	r.index++
	r.rec = r.parseBenchmark(raw)
	return true
}

func (r *Reader) fail(err error) {
	r.err = fmt.Errorf("%s: %w", r.fileName, err)
	r.state = stateDone
}

// readPreamble consumes the document up to and including the opening
// bracket of the "benchmarks" array. An empty input is a document
// with no records.
func (r *Reader) readPreamble() error {
	tok, err := r.dec.Token()
	if err == io.EOF {
		r.state = stateDone
		return nil
	} else if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return errNotObject
	}
	for r.dec.More() {
		key, err := r.key()
		if err != nil {
			return err
		}
		switch key {
		case "context":
			var raw json.RawMessage
			if err := r.dec.Decode(&raw); err != nil {
				return err
			}
			ctx, err := parseContext(raw)
			if err != nil {
				return fmt.Errorf("context: %w", err)
			}
			r.context = ctx
		case "benchmarks":
			tok, err := r.dec.Token()
			if err != nil {
				return err
			}
			if tok != json.Delim('[') {
				return errors.New(`"benchmarks" is not an array`)
			}
			r.state = stateBenchmarks
			return nil
		default:
			if err := r.skip(); err != nil {
				return err
			}
		}
	}
	return errors.New(`missing "benchmarks" array`)
}

// readTrailer consumes the end of the "benchmarks" array and the rest
// of the document. Fields after the array are ignored.
func (r *Reader) readTrailer() error {
	if _, err := r.dec.Token(); err != nil { // ']'
		return err
	}
	for r.dec.More() {
		if _, err := r.key(); err != nil {
			return err
		}
		if err := r.skip(); err != nil {
			return err
		}
	}
	_, err := r.dec.Token() // '}'
	return err
}

func (r *Reader) key() (string, error) {
	tok, err := r.dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected %v", tok)
	}
	return key, nil
}

func (r *Reader) skip() error {
	var raw json.RawMessage
	return r.dec.Decode(&raw)
}

// Numeric fields Google Benchmark uses to identify a run rather than
// to measure it. These become configuration, not Values.
var structuralFields = map[string]bool{
	"family_index":              true,
	"per_family_instance_index": true,
	"repetitions":               true,
	"repetition_index":          true,
	"threads":                   true,
}

// parseBenchmark turns one element of the "benchmarks" array into a
// *Result or a *SyntaxError.
func (r *Reader) parseBenchmark(raw json.RawMessage) Record {
	res := &Result{fileName: r.fileName, index: r.index}
	for _, cfg := range r.initConfig {
		res.setConfig(cfg)
	}
	for _, cfg := range r.context {
		res.setConfig(cfg)
	}

	var (
		haveName    bool
		failed      bool
		failMessage string
	)
	err := eachField(raw, func(key string, val interface{}) error {
		switch key {
		case "name":
			s, ok := val.(string)
			if !ok {
				return errors.New("name is not a string")
			}
			res.Name, haveName = s, true
			return nil
		case "label":
			res.Label = stringOf(val)
			return nil
		case "run_type":
			res.RunType = stringOf(val)
			return nil
		case "aggregate_name":
			res.AggregateName = stringOf(val)
			return nil
		case "error_occurred":
			failed, _ = val.(bool)
			return nil
		case "error_message":
			failMessage = stringOf(val)
			return nil
		}

		num, ok := val.(json.Number)
		if !ok || structuralFields[key] {
			// Non-measurement field.
			if cfg, ok := configOf(key, val); ok {
				res.setConfig(cfg)
			}
			return nil
		}
		v, err := strconv.ParseFloat(string(num), 64)
		if err != nil || math.IsInf(v, 0) {
			return fmt.Errorf("%s: value %s out of range", key, num)
		}
		res.Values = append(res.Values, Value{Name: key, Value: v})
		return nil
	})
	switch {
	case err == errNotObject:
		return r.syntaxError("benchmark entry is not an object")
	case err != nil:
		return r.syntaxError(err.Error())
	case !haveName || res.Name == "":
		return r.syntaxError("missing benchmark name")
	case failed:
		if failMessage == "" {
			failMessage = "unknown error"
		}
		return r.syntaxError(fmt.Sprintf("%s: benchmark reported error: %s", res.Name, failMessage))
	}

	// "time_unit" follows the timings in Google Benchmark output,
	// so units are assigned once the whole element is read.
	timeUnit := res.GetConfig("time_unit")
	for i := range res.Values {
		res.Values[i].Unit = benchunit.UnitOf(res.Values[i].Name, timeUnit)
	}
	return res
}

func (r *Reader) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.index, msg}
}

// parseContext turns the fields of a "context" object into
// configuration, in document order.
func parseContext(raw json.RawMessage) ([]Config, error) {
	var cfgs []Config
	err := eachField(raw, func(key string, val interface{}) error {
		if cfg, ok := configOf(key, val); ok {
			cfg.Context = true
			cfgs = append(cfgs, cfg)
		}
		return nil
	})
	return cfgs, err
}

// configOf returns the configuration form of a document field. Strings
// are kept as they are and other values as JSON text. Nulls and empty
// strings have no configuration form.
func configOf(key string, val interface{}) (Config, bool) {
	switch val := val.(type) {
	case nil:
		return Config{}, false
	case string:
		return Config{Key: key, Value: val, File: true}, val != ""
	}
	text, err := json.Marshal(val)
	if err != nil {
		return Config{}, false
	}
	return Config{Key: key, Value: string(text), File: true, JSON: true}, true
}

// eachField calls fn for each field of the JSON object raw, in
// document order. Numbers are passed as json.Number.
func eachField(raw json.RawMessage, fn func(key string, val interface{}) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return errNotObject
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected %v", tok)
		}
		var val interface{}
		if err := dec.Decode(&val); err != nil {
			return err
		}
		if err := fn(key, val); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// stringOf returns the string form of a scalar JSON value, or
// "" for null, objects, and arrays.
func stringOf(val interface{}) string {
	switch val := val.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

// A Record is a single record read from a benchmark document. It may
// be a *Result or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based element index within that file. If this record was
	// not read from a file, it returns "", 0.
	Pos() (fileName string, index int)
}

var _ Record = (*Result)(nil)
var _ Record = (*SyntaxError)(nil)

// Result returns the record that was just read by Scan. This is either
// a *Result or a *SyntaxError indicating a malformed element.
//
// Syntax errors are non-fatal, so the caller can continue to call
// Scan.
func (r *Reader) Result() Record {
	if r.rec == nil {
		// This should only happen if Scan has never been called.
		return noResult
	}
	return r.rec
}

// Err returns the first document-level error that was encountered by
// the Reader, such as malformed JSON or a missing "benchmarks" array.
func (r *Reader) Err() error {
	return r.err
}
