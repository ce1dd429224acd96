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
// This file, `results.go`, contains the output shapes produced by the
// analytics services. These are transient response objects: they are built
// fresh on every request from the shared catalog and handed to the transport
// layer as plain data, keeping the engine decoupled from any particular
// rendering technology.
package model

import "time"

// OverallStats is the channel-wide aggregate block.
type OverallStats struct {
	TotalVideos    int    `json:"total_videos"`
	TotalViews     int    `json:"total_views"`
	TotalLikes     int    `json:"total_likes"`
	TotalComments  int    `json:"total_comments"`
	AvgViews       int    `json:"avg_views"`
	TotalHours     int    `json:"total_hours"`
	FirstPublished string `json:"first_published"`
	LastPublished  string `json:"last_published"`
}

// MonthlyRollup is one "YYYY-MM" bucket of the monthly time series.
type MonthlyRollup struct {
	Month string `json:"month"`
	Count int    `json:"count"`
	Views int    `json:"views"`
}

// YearlyRollup is one calendar-year bucket with its derived metrics.
// Engagement is (likes+comments)/views as a percentage rounded to two
// decimals, defined as 0 when the year has no views.
type YearlyRollup struct {
	Year       int     `json:"year"`
	Count      int     `json:"count"`
	Views      int     `json:"views"`
	Likes      int     `json:"likes"`
	Comments   int     `json:"comments"`
	AvgViews   int     `json:"avg_views"`
	Engagement float64 `json:"engagement"`
	Hours      int     `json:"hours"`
}

// DurationBucket is one bar of the fixed five-bucket runtime histogram.
type DurationBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// TopVideo is one row of the ranked-by-views listing.
type TopVideo struct {
	Title        string `json:"title"`
	Views        int    `json:"views"`
	Likes        int    `json:"likes"`
	PublishedAt  string `json:"published_at"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// YearEngagement pairs a year with its engagement percentage for the
// engagement-over-time series.
type YearEngagement struct {
	Year       int     `json:"year"`
	Engagement float64 `json:"engagement"`
}

// Dashboard is the composite payload combining every channel-level view.
type Dashboard struct {
	Stats                OverallStats     `json:"stats"`
	Monthly              []MonthlyRollup  `json:"monthly"`
	Yearly               []YearlyRollup   `json:"yearly"`
	DurationDistribution []DurationBucket `json:"duration_distribution"`
	TopVideos            []TopVideo       `json:"top_videos"`
	YearlyEngagement     []YearEngagement `json:"yearly_engagement"`
}

// TagCount is one ranked tag with its occurrence count and view sum.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
	Views int    `json:"views"`
}

// YearCount pairs a year with an occurrence count.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// TagYearRow is one year's row of the tag evolution matrix. Counts carries
// an entry for every tracked tag, zero-filled, so every tag has a value for
// every dataset year.
type TagYearRow struct {
	Year   int            `json:"year"`
	Counts map[string]int `json:"counts"`
}

// HeatmapRow is the evolution matrix reshaped per tag: one tag with its
// year-by-year cell sequence. Counts are identical to the evolution matrix.
type HeatmapRow struct {
	Tag   string      `json:"tag"`
	Cells []YearCount `json:"cells"`
}

// TagTrend is one rising or falling tag between the two reference years.
// Change is a whole-number percentage.
type TagTrend struct {
	Tag      string `json:"tag"`
	Previous int    `json:"previous"`
	Last     int    `json:"last"`
	Change   int    `json:"change"`
}

// TopicsResult is the tag-ranking operation's full payload.
type TopicsResult struct {
	Years         []int        `json:"years"`
	SelectedYears []int        `json:"selected_years"`
	TotalVideos   int          `json:"total_videos"`
	TopTags       []TagCount   `json:"top_tags"`
	EvolutionTags []string     `json:"evolution_tags"`
	Evolution     []TagYearRow `json:"evolution"`
	Heatmap       []HeatmapRow `json:"heatmap"`
	Rising        []TagTrend   `json:"rising"`
	Falling       []TagTrend   `json:"falling"`
}

// KeywordSummary is the per-keyword aggregate block. Percentage is the
// share of the filtered record set that matched, formatted to one decimal
// place. Trend compares the last two years present in the filtered set and
// is 0 when the previous year had no matches.
type KeywordSummary struct {
	Keyword      string `json:"keyword"`
	TotalMatches int    `json:"total_matches"`
	Percentage   string `json:"percentage"`
	Trend        int    `json:"trend"`
}

// MonthCounts is one month's row of the unified keyword timeline, with a
// zero-filled count per keyword.
type MonthCounts struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}

// YearKeywordStat is one keyword's count and view sum within a year bucket.
type YearKeywordStat struct {
	Count int `json:"count"`
	Views int `json:"views"`
}

// YearCounts is one year's row of the unified keyword series.
type YearCounts struct {
	Year     int                        `json:"year"`
	Keywords map[string]YearKeywordStat `json:"keywords"`
}

// KeywordMatch is one record of the union match list, annotated with the
// keywords that matched it. The parsed publish time is kept unexported for
// date sorting and never serialized.
type KeywordMatch struct {
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	PublishedAt     string    `json:"published_at"`
	Views           int       `json:"views"`
	Likes           int       `json:"likes"`
	URL             string    `json:"url"`
	MatchedKeywords []string  `json:"matched_keywords"`
	Published       time.Time `json:"-"`
}

// Pagination is the shared page metadata block. TotalPages is at least 1
// even when Total is 0.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// KeywordSearchResult is the keyword tracker's full payload.
type KeywordSearchResult struct {
	Keywords        []string         `json:"keywords"`
	Summaries       []KeywordSummary `json:"summaries"`
	TotalVideos     int              `json:"total_videos"`
	MonthlyTimeline []MonthCounts    `json:"monthly_timeline"`
	YearlyData      []YearCounts     `json:"yearly_data"`
	MatchingVideos  []KeywordMatch   `json:"matching_videos"`
	Pagination      Pagination       `json:"pagination"`
	AvailableYears  []int            `json:"available_years"`
	SelectedYears   []int            `json:"selected_years"`
}

// GeoRegionCount is one matched region of the geographic coverage ranking.
// Percentage is count over total records, formatted to one decimal place.
// Regions with zero matches are never emitted.
type GeoRegionCount struct {
	Region     string `json:"region"`
	ISO        string `json:"iso"`
	SearchTerm string `json:"search_term"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// VideoListItem is one row of the paged video listing. Tags is truncated to
// the first five source tags.
type VideoListItem struct {
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	PublishedAt  string   `json:"published_at"`
	Duration     string   `json:"duration"`
	ViewCount    int      `json:"view_count"`
	LikeCount    int      `json:"like_count"`
	CommentCount int      `json:"comment_count"`
	URL          string   `json:"url"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Tags         []string `json:"tags"`
}

// VideoListResult is the paged video listing payload.
type VideoListResult struct {
	Videos     []VideoListItem `json:"videos"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
