// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model defines the core data structures for the application.
// This file, `fields.go`, contains the permissive field-parsing helpers and
// the temporal bucketing functions shared by every aggregation component.
// Centralizing the parse-or-default rules here means no downstream component
// ever re-implements its own fallback logic.
//
// Functions:
//   - IntOrZero: integer parse with 0 fallback, the uniform rule for all
//     numeric source fields and numeric query parameters.
//   - IntOrDefault: integer parse with a caller-supplied fallback.
//   - SplitTags: pipe-delimited tag list normalization.
//   - ParseTimestamp: ISO-8601 timestamp parsing with a date-only fallback.
//   - YearOf, MonthKeyOf: derived time-bucket keys.
//   - DurationSeconds: "HH:MM:SS" to total seconds.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IntOrZero parses in as a base-10 integer, substituting 0 when the value
// is empty or non-numeric. It never fails.
func IntOrZero(in string) int {
	return IntOrDefault(in, 0)
}

// IntOrDefault parses in as a base-10 integer, substituting def when the
// value is empty or non-numeric.
func IntOrDefault(in string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil {
		return def
	}
	return v
}

// SplitTags splits a raw pipe-delimited tag field into an ordered tag list.
// Each entry is trimmed and empty entries are dropped; source order is
// preserved and duplicates are kept.
func SplitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseTimestamp parses an ISO-8601 timestamp string. It tries RFC 3339
// first and falls back to a bare "YYYY-MM-DD" date. An unparsable value
// yields the zero time, which buckets into year 0 rather than dropping the
// record.
func ParseTimestamp(in string) time.Time {
	in = strings.TrimSpace(in)
	if t, err := time.Parse(time.RFC3339, in); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", in); err == nil {
		return t
	}
	return time.Time{}
}

// YearOf extracts the calendar year in the timestamp's encoded offset. No
// timezone normalization is attempted beyond what the parser encodes.
func YearOf(t time.Time) int {
	return t.Year()
}

// MonthKeyOf derives the "YYYY-MM" month bucket key. The month component is
// 1-indexed and zero-padded, so lexicographic order equals chronological
// order.
func MonthKeyOf(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// DurationSeconds converts a colon-delimited "HH:MM:SS" duration string to
// total seconds. Each part is parsed with the same permissive rule as the
// numeric record fields. Any value that does not have exactly three parts
// yields 0 — two-part "MM:SS" durations are deliberately treated as
// zero-length, matching the source system.
func DurationSeconds(raw string) int {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return 0
	}
	return IntOrZero(parts[0])*3600 + IntOrZero(parts[1])*60 + IntOrZero(parts[2])
}
