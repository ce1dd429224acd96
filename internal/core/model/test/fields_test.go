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

// Package model_test contains unit tests for the data models defined in the
// model package. This file tests the permissive field-parsing helpers and
// the temporal bucketing functions.
package model_test

import (
	"testing"
	"time"

	"github.com/jaycherian/go-media-insights/internal/core/model"
	"github.com/stretchr/testify/assert"
)

// TestIntOrZero verifies the parse-or-default rule shared by every numeric
// source field: valid integers pass through, everything else becomes 0.
func TestIntOrZero(t *testing.T) {
	assert.Equal(t, 42, model.IntOrZero("42"))
	assert.Equal(t, 42, model.IntOrZero(" 42 "))
	assert.Equal(t, 0, model.IntOrZero(""))
	assert.Equal(t, 0, model.IntOrZero("oops"))
	assert.Equal(t, 0, model.IntOrZero("12.5"))
	assert.Equal(t, -7, model.IntOrZero("-7"))
}

// TestIntOrDefault verifies the caller-supplied fallback used by the query
// parameter decoding.
func TestIntOrDefault(t *testing.T) {
	assert.Equal(t, 1, model.IntOrDefault("", 1))
	assert.Equal(t, 50, model.IntOrDefault("nope", 50))
	assert.Equal(t, 3, model.IntOrDefault("3", 50))
}

// TestSplitTags verifies the pipe-delimited tag normalization: entries are
// trimmed, empties are dropped, and source order is preserved without
// deduplication.
func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"ukraine", "poutine", "guerre"}, model.SplitTags("ukraine| poutine |guerre"))
	assert.Equal(t, []string{"climat", "météo"}, model.SplitTags("climat||météo"))
	assert.Equal(t, []string{}, model.SplitTags(""))
	assert.Equal(t, []string{}, model.SplitTags(" | | "))
	assert.Equal(t, []string{"a", "a"}, model.SplitTags("a|a"))
}

// TestParseTimestamp verifies RFC 3339 parsing, the date-only fallback, and
// the zero-time result for garbage input.
func TestParseTimestamp(t *testing.T) {
	ts := model.ParseTimestamp("2023-03-14T18:00:00Z")
	assert.Equal(t, 2023, ts.Year())
	assert.Equal(t, time.March, ts.Month())

	dateOnly := model.ParseTimestamp("2024-01-21")
	assert.Equal(t, 2024, dateOnly.Year())

	assert.True(t, model.ParseTimestamp("not a date").IsZero())
}

// TestMonthKeyOf verifies the zero-padded "YYYY-MM" bucket key, which must
// sort lexicographically in chronological order.
func TestMonthKeyOf(t *testing.T) {
	assert.Equal(t, "2023-03", model.MonthKeyOf(model.ParseTimestamp("2023-03-14T18:00:00Z")))
	assert.Equal(t, "2024-01", model.MonthKeyOf(model.ParseTimestamp("2024-01-02T00:00:00Z")))
}

// TestDurationSeconds verifies the three-part duration rule: "HH:MM:SS"
// converts to seconds, any other part count yields 0, and non-numeric parts
// contribute 0 via the permissive parse.
func TestDurationSeconds(t *testing.T) {
	assert.Equal(t, 3723, model.DurationSeconds("01:02:03"))
	assert.Equal(t, 3600, model.DurationSeconds("01:00:00"))
	// Two-part durations are deliberately treated as zero-length.
	assert.Equal(t, 0, model.DurationSeconds("12:34"))
	assert.Equal(t, 0, model.DurationSeconds(""))
	assert.Equal(t, 0, model.DurationSeconds("not-a-duration"))
	assert.Equal(t, 120, model.DurationSeconds("00:oops:120"))
}

// TestNewVideoFromRow verifies the row normalization: permissive numeric
// parsing, tag splitting, timestamp derivation, and the generated fallback
// ID for rows missing one.
func TestNewVideoFromRow(t *testing.T) {
	v := model.NewVideoFromRow(map[string]string{
		"video_id":      "vid-001",
		"title":         "Ukraine : la contre-offensive",
		"published_at":  "2023-03-14T18:00:00Z",
		"duration":      "01:04:30",
		"view_count":    "120000",
		"like_count":    "bad",
		"comment_count": "",
		"tags":          "ukraine|poutine",
		"category_id":   "25",
	})
	assert.Equal(t, "vid-001", v.ID)
	assert.Equal(t, 120000, v.ViewCount)
	assert.Equal(t, 0, v.LikeCount)
	assert.Equal(t, 0, v.CommentCount)
	assert.Equal(t, 2023, v.Year())
	assert.Equal(t, "2023-03", v.MonthKey())
	assert.Equal(t, 3870, v.DurationSeconds())
	assert.Equal(t, []string{"ukraine", "poutine"}, v.Tags)

	anonymous := model.NewVideoFromRow(map[string]string{"title": "no id"})
	assert.NotEmpty(t, anonymous.ID)
}
