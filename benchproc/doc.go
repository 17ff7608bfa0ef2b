// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc turns raw benchmark results into structured
// records keyed by library and input size.
//
// The typical steps for processing a stream of benchmark results are:
//
// 1. Read benchfmt.Results from one or more input sources. Command-line
// tools will often do this using benchfmt.Files.
//
// 2. Construct a Parser from ParserOptions describing how the
// producer names its benchmarks. With Google Benchmark, a name such as
// "BM_frxml/1024" identifies library "frxml" at size 1024.
//
// 3. Build a Table from the results. Results that cannot be parsed are
// returned as *ParseErrors alongside the Table rather than stopping
// the build; the caller decides whether to warn or abort.
//
// 4. Narrow the Table with Filter and the predicates in this package,
// such as ExcludeLibraries, and hand it to benchseries to pivot into
// size × library matrices.
//
// A Table is never modified after construction. Filter returns a new
// Table.
package benchproc
