// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "strings"

// DefaultTimeUnit is the time unit Google Benchmark uses when a record
// does not carry a "time_unit" field.
const DefaultTimeUnit = "ns"

// IsTimeMetric reports whether metric is one of the timing fields
// whose unit is given by the record's "time_unit".
func IsTimeMetric(metric string) bool {
	return metric == "real_time" || metric == "cpu_time"
}

// UnitOf infers the unit of a Google Benchmark field from its name.
// Timing fields take timeUnit (or DefaultTimeUnit if timeUnit is
// empty). Fields with no recognizable unit return "".
func UnitOf(metric, timeUnit string) string {
	if IsTimeMetric(metric) {
		if timeUnit == "" {
			return DefaultTimeUnit
		}
		return timeUnit
	}
	switch metric {
	case "bytes_per_second", "throughput":
		return "B/s"
	case "items_per_second":
		return "items/s"
	case "max_bytes_used", "total_allocated_bytes", "net_heap_growth":
		return "B"
	case "allocs_per_iter":
		return "allocs"
	}
	switch {
	case strings.HasSuffix(metric, "_bytes"):
		return "B"
	case strings.HasSuffix(metric, "_per_second"):
		return "/s"
	}
	return ""
}
