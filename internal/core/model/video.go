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
// This file, `video.go`, contains the Video record — the atomic unit of
// aggregation — and its normalization constructor. A Video is created once
// from a raw tabular row at catalog-load time and is never mutated
// afterwards; every analytics component reads the same shared instances.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Video is one episode's metadata entry. Numeric counters default to zero
// when the source field is missing or unparsable, and the tag list preserves
// the source order of the pipe-delimited raw field. PublishedAt keeps the
// raw source string for display while Published carries the parsed timestamp
// used for all year/month derivation.
type Video struct {
	ID           string    `json:"video_id"`
	Title        string    `json:"title"`
	PublishedAt  string    `json:"published_at"`
	Published    time.Time `json:"-"`
	Duration     string    `json:"duration"`
	ViewCount    int       `json:"view_count"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	Tags         []string  `json:"tags"`
	CategoryID   int       `json:"category_id"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
}

// NewVideoFromRow normalizes one raw CSV row (column name -> string value)
// into a typed Video. The transform is total: malformed numeric fields
// become 0, a missing tag field becomes an empty list, and a missing
// video_id is replaced by a generated UUID so downstream match sets always
// have a usable key. Row-level problems never surface as errors — the
// source data is uncontrolled external input and availability is
// prioritized over strictness.
func NewVideoFromRow(row map[string]string) *Video {
	id := row["video_id"]
	if id == "" {
		id = uuid.NewString()
	}
	published := row["published_at"]
	return &Video{
		ID:           id,
		Title:        row["title"],
		PublishedAt:  published,
		Published:    ParseTimestamp(published),
		Duration:     row["duration"],
		ViewCount:    IntOrZero(row["view_count"]),
		LikeCount:    IntOrZero(row["like_count"]),
		CommentCount: IntOrZero(row["comment_count"]),
		Tags:         SplitTags(row["tags"]),
		CategoryID:   IntOrZero(row["category_id"]),
		Description:  row["description"],
		URL:          row["url"],
		ThumbnailURL: row["thumbnail_url"],
	}
}

// Year returns the record's calendar year in the timestamp's encoded offset.
func (v *Video) Year() int {
	return YearOf(v.Published)
}

// MonthKey returns the record's zero-padded "YYYY-MM" bucket key.
func (v *Video) MonthKey() string {
	return MonthKeyOf(v.Published)
}

// DurationSeconds returns the episode length in seconds, derived from the
// raw "HH:MM:SS" duration field.
func (v *Video) DurationSeconds() int {
	return DurationSeconds(v.Duration)
}
