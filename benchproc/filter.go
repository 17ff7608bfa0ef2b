// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

// ExcludeLibraries returns a predicate for Table.Filter that drops
// records of the named libraries.
func ExcludeLibraries(names ...string) func(Record) bool {
	set := setOf(names)
	return func(rec Record) bool {
		return !set[rec.Library]
	}
}

// OnlyLibraries returns a predicate for Table.Filter that keeps only
// records of the named libraries. With no names, it keeps everything.
func OnlyLibraries(names ...string) func(Record) bool {
	if len(names) == 0 {
		return func(Record) bool { return true }
	}
	set := setOf(names)
	return func(rec Record) bool {
		return set[rec.Library]
	}
}

// Aggregate returns a predicate for Table.Filter that keeps aggregate
// records of the named statistic, such as "mean". If name is "", it
// keeps measured runs instead.
func Aggregate(name string) func(Record) bool {
	return func(rec Record) bool {
		return rec.Aggregate == name
	}
}

func setOf(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
