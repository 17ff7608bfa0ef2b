// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestTidy(t *testing.T) {
	test := func(unit, tidied string, factor float64) {
		t.Helper()
		gotFactor, got := Tidy(1, unit)
		if got != tidied || gotFactor != factor {
			t.Errorf("for %s, want *%g %s, got *%g %s", unit, factor, tidied, gotFactor, got)
		}
	}

	test("ns", "sec", 1e-9)
	test("us", "sec", 1e-6)
	test("ms", "sec", 1e-3)
	test("s", "sec", 1)
	test("sec", "sec", 1)
	test("", "", 1)
	test("ns/op", "sec/op", 1e-9)
	test("x-ms/op", "x-sec/op", 1e-3)
	test("MB/s", "B/s", 1e6)
	test("KiB", "B", 1024)
	test("B/s", "B/s", 1)
	test("B/ns", "B/s", 1e9)
	test("items/s", "items/s", 1)
	test("MB/MB", "B/MB", 1e6)
}

func TestUnitOf(t *testing.T) {
	test := func(metric, timeUnit, want string) {
		t.Helper()
		if got := UnitOf(metric, timeUnit); got != want {
			t.Errorf("UnitOf(%q, %q) = %q, want %q", metric, timeUnit, got, want)
		}
	}

	test("real_time", "", "ns")
	test("cpu_time", "ms", "ms")
	test("bytes_per_second", "ms", "B/s")
	test("throughput", "", "B/s")
	test("items_per_second", "", "items/s")
	test("max_bytes_used", "", "B")
	test("peak_heap_bytes", "", "B")
	test("frames_per_second", "", "/s")
	test("iterations", "", "")
	test("custom_counter", "us", "")
}
