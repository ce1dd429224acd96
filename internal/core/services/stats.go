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

// Package services contains the aggregation engine. This file defines the
// StatsService, which produces the channel-level views: overall totals, the
// monthly and yearly rollups with derived metrics, the fixed runtime
// histogram, and the ranked top-video listing. Every method performs a full
// linear pass over the shared catalog and returns fresh result values.
package services

import (
	"math"
	"sort"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// Histogram bucket boundaries in minutes. Each boundary value falls into the
// higher bucket (a 45:00 episode counts as "45-60 min").
var durationBucketRanges = []struct {
	Label string
	Below float64
}{
	{"30-45 min", 45},
	{"45-60 min", 60},
	{"60-75 min", 75},
	{"75-90 min", 90},
	{"90+ min", math.Inf(1)},
}

// StatsService computes the channel-wide aggregate views over the catalog.
type StatsService struct {
	Catalog *Catalog
}

// Overall computes the dataset-wide totals, the rounded view average, the
// total published hours, and the publication date range. All divisions are
// guarded so an empty catalog yields zeros rather than NaN.
func (s *StatsService) Overall() model.OverallStats {
	records := s.Catalog.Records()

	out := model.OverallStats{TotalVideos: len(records)}
	seconds := 0
	var first, last *model.Video
	for _, v := range records {
		out.TotalViews += v.ViewCount
		out.TotalLikes += v.LikeCount
		out.TotalComments += v.CommentCount
		seconds += v.DurationSeconds()
		if first == nil || v.Published.Before(first.Published) {
			first = v
		}
		if last == nil || v.Published.After(last.Published) {
			last = v
		}
	}
	out.AvgViews = avgOrZero(out.TotalViews, out.TotalVideos)
	out.TotalHours = int(math.Round(float64(seconds) / 3600))
	if first != nil {
		out.FirstPublished = first.PublishedAt
		out.LastPublished = last.PublishedAt
	}
	return out
}

// MonthlySeries rolls the records up by "YYYY-MM" bucket, optionally
// restricted to the selected years, ordered chronologically.
func (s *StatsService) MonthlySeries(years []int) []model.MonthlyRollup {
	agg := rollupBy(s.Catalog.FilterYears(years), func(v *model.Video) string { return v.MonthKey() })

	out := make([]model.MonthlyRollup, 0, len(agg))
	for _, month := range sortedKeys(agg) {
		a := agg[month]
		out = append(out, model.MonthlyRollup{Month: month, Count: a.Count, Views: a.Views})
	}
	return out
}

// YearlySeries rolls the records up by calendar year, optionally restricted
// to the selected years, ordered ascending, with the derived per-year
// metrics (view average, engagement percentage, published hours).
func (s *StatsService) YearlySeries(years []int) []model.YearlyRollup {
	agg := rollupBy(s.Catalog.FilterYears(years), func(v *model.Video) int { return v.Year() })

	out := make([]model.YearlyRollup, 0, len(agg))
	for _, year := range sortedKeys(agg) {
		a := agg[year]
		out = append(out, model.YearlyRollup{
			Year:       year,
			Count:      a.Count,
			Views:      a.Views,
			Likes:      a.Likes,
			Comments:   a.Comments,
			AvgViews:   avgOrZero(a.Views, a.Count),
			Engagement: engagementPercent(a.Likes, a.Comments, a.Views),
			Hours:      int(math.Round(float64(a.Seconds) / 3600)),
		})
	}
	return out
}

// YearlyEngagement projects the yearly rollup down to its engagement series.
func (s *StatsService) YearlyEngagement() []model.YearEngagement {
	yearly := s.YearlySeries(nil)
	out := make([]model.YearEngagement, 0, len(yearly))
	for _, y := range yearly {
		out = append(out, model.YearEngagement{Year: y.Year, Engagement: y.Engagement})
	}
	return out
}

// DurationHistogram buckets every record's runtime into the five fixed
// ranges. Bucket counts always sum to the total record count; an episode
// sitting exactly on a boundary lands in the higher bucket.
func (s *StatsService) DurationHistogram() []model.DurationBucket {
	counts := make([]int, len(durationBucketRanges))
	for _, v := range s.Catalog.Records() {
		mins := float64(v.DurationSeconds()) / 60
		for i, bucket := range durationBucketRanges {
			if mins < bucket.Below {
				counts[i]++
				break
			}
		}
	}
	out := make([]model.DurationBucket, 0, len(counts))
	for i, bucket := range durationBucketRanges {
		out = append(out, model.DurationBucket{Range: bucket.Label, Count: counts[i]})
	}
	return out
}

// TopVideos returns the limit most-viewed records as display rows. The sort
// is stable, so equally-viewed records keep their source order.
func (s *StatsService) TopVideos(limit int) []model.TopVideo {
	records := s.Catalog.Records()
	ranked := make([]*model.Video, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount > ranked[j].ViewCount
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]model.TopVideo, 0, limit)
	for _, v := range ranked[:limit] {
		out = append(out, model.TopVideo{
			Title:        v.Title,
			Views:        v.ViewCount,
			Likes:        v.LikeCount,
			PublishedAt:  v.PublishedAt,
			URL:          v.URL,
			ThumbnailURL: v.ThumbnailURL,
		})
	}
	return out
}

// Dashboard assembles the composite payload: overall stats plus every
// channel-level series in one response.
func (s *StatsService) Dashboard() model.Dashboard {
	return model.Dashboard{
		Stats:                s.Overall(),
		Monthly:              s.MonthlySeries(nil),
		Yearly:               s.YearlySeries(nil),
		DurationDistribution: s.DurationHistogram(),
		TopVideos:            s.TopVideos(10),
		YearlyEngagement:     s.YearlyEngagement(),
	}
}
