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

// Package services_test contains the test suite for the services package.
// This file tests the StatsService: the overall totals, rollup series,
// runtime histogram, and ranked top-video listing.
package services_test

import (
	"testing"

	"github.com/jaycherian/go-media-insights/internal/core/model"
	"github.com/jaycherian/go-media-insights/internal/core/services"
	test "github.com/jaycherian/go-media-insights/internal/testutil"
	"github.com/zeebo/assert"
)

// newStatsFixture builds a five-record catalog spanning three years, with
// one runtime in each histogram bucket.
func newStatsFixture() *services.Catalog {
	return test.NewTestCatalog(
		test.NewTestVideo("v1", "Budget 2022", "2022-02-10T18:00:00Z", "00:45:00", 100, 10, 5, []string{"budget"}, ""),
		test.NewTestVideo("v2", "Retraites", "2022-06-01T18:00:00Z", "00:44:59", 200, 0, 0, []string{"retraites"}, ""),
		test.NewTestVideo("v3", "Canicule", "2023-05-05T18:00:00Z", "01:00:00", 300, 0, 0, []string{"climat"}, ""),
		test.NewTestVideo("v4", "Élections", "2023-05-20T18:00:00Z", "01:30:00", 400, 0, 0, []string{"élections"}, ""),
		test.NewTestVideo("v5", "IA partout", "2024-01-15T18:00:00Z", "01:15:00", 500, 0, 0, []string{"ia"}, ""),
	)
}

// TestOverallStats verifies the dataset-wide totals, the rounded averages,
// and the publication date range.
func TestOverallStats(t *testing.T) {
	svc := &services.StatsService{Catalog: newStatsFixture()}

	stats := svc.Overall()
	assert.Equal(t, 5, stats.TotalVideos)
	assert.Equal(t, 1500, stats.TotalViews)
	assert.Equal(t, 10, stats.TotalLikes)
	assert.Equal(t, 5, stats.TotalComments)
	assert.Equal(t, 300, stats.AvgViews)
	// 18899 total seconds rounds to 5 hours.
	assert.Equal(t, 5, stats.TotalHours)
	assert.Equal(t, "2022-02-10T18:00:00Z", stats.FirstPublished)
	assert.Equal(t, "2024-01-15T18:00:00Z", stats.LastPublished)
}

// TestOverallStatsEmptyCatalog verifies the division-by-zero guards: an
// empty catalog yields zeros, never NaN or a panic.
func TestOverallStatsEmptyCatalog(t *testing.T) {
	svc := &services.StatsService{Catalog: test.NewTestCatalog()}

	stats := svc.Overall()
	assert.Equal(t, 0, stats.TotalVideos)
	assert.Equal(t, 0, stats.AvgViews)
	assert.Equal(t, "", stats.FirstPublished)
}

// TestMonthlySeries verifies the chronological month buckets and the
// optional year filter.
func TestMonthlySeries(t *testing.T) {
	svc := &services.StatsService{Catalog: newStatsFixture()}

	monthly := svc.MonthlySeries(nil)
	assert.Equal(t, 4, len(monthly))
	assert.DeepEqual(t, model.MonthlyRollup{Month: "2022-02", Count: 1, Views: 100}, monthly[0])
	assert.DeepEqual(t, model.MonthlyRollup{Month: "2023-05", Count: 2, Views: 700}, monthly[2])

	filtered := svc.MonthlySeries([]int{2023})
	assert.Equal(t, 1, len(filtered))
	assert.Equal(t, "2023-05", filtered[0].Month)
}

// TestYearlySeries verifies the ascending year order and the derived
// per-year metrics, including the engagement percentage.
func TestYearlySeries(t *testing.T) {
	svc := &services.StatsService{Catalog: newStatsFixture()}

	yearly := svc.YearlySeries(nil)
	assert.Equal(t, 3, len(yearly))
	assert.Equal(t, 2022, yearly[0].Year)
	assert.Equal(t, 2, yearly[0].Count)
	assert.Equal(t, 300, yearly[0].Views)
	assert.Equal(t, 150, yearly[0].AvgViews)
	// (10+5)/300*100 = 5.00
	assert.Equal(t, 5.0, yearly[0].Engagement)
	assert.Equal(t, 2024, yearly[2].Year)
	assert.Equal(t, 0.0, yearly[2].Engagement)
}

// TestDurationHistogram verifies the five fixed buckets, that boundary
// runtimes land in the higher bucket, and that the counts sum to the record
// total.
func TestDurationHistogram(t *testing.T) {
	svc := &services.StatsService{Catalog: newStatsFixture()}

	buckets := svc.DurationHistogram()
	assert.Equal(t, 5, len(buckets))

	byRange := make(map[string]int)
	sum := 0
	for _, b := range buckets {
		byRange[b.Range] = b.Count
		sum += b.Count
	}
	assert.Equal(t, svc.Catalog.Size(), sum)
	// 44:59 stays below the boundary; 45:00 crosses into the higher bucket.
	assert.Equal(t, 1, byRange["30-45 min"])
	assert.Equal(t, 1, byRange["45-60 min"])
	// 60:00 and 90:00 likewise land in their higher buckets.
	assert.Equal(t, 1, byRange["60-75 min"])
	assert.Equal(t, 1, byRange["75-90 min"])
	assert.Equal(t, 1, byRange["90+ min"])
}

// TestTopVideos verifies the descending view ranking, the limit clamp, and
// that ties keep source order.
func TestTopVideos(t *testing.T) {
	svc := &services.StatsService{Catalog: newStatsFixture()}

	top := svc.TopVideos(2)
	assert.Equal(t, 2, len(top))
	assert.Equal(t, "IA partout", top[0].Title)
	assert.Equal(t, 500, top[0].Views)
	assert.Equal(t, "Élections", top[1].Title)

	all := svc.TopVideos(100)
	assert.Equal(t, 5, len(all))
}

// TestTopVideosStableTies verifies that records with equal view counts keep
// their source order in the ranking.
func TestTopVideosStableTies(t *testing.T) {
	catalog := test.NewTestCatalog(
		test.NewTestVideo("a", "first", "2023-01-01T00:00:00Z", "01:00:00", 100, 0, 0, nil, ""),
		test.NewTestVideo("b", "second", "2023-01-02T00:00:00Z", "01:00:00", 100, 0, 0, nil, ""),
		test.NewTestVideo("c", "third", "2023-01-03T00:00:00Z", "01:00:00", 100, 0, 0, nil, ""),
	)
	svc := &services.StatsService{Catalog: catalog}

	top := svc.TopVideos(3)
	assert.Equal(t, "first", top[0].Title)
	assert.Equal(t, "second", top[1].Title)
	assert.Equal(t, "third", top[2].Title)
}

// TestDashboard verifies the composite payload carries every series.
func TestDashboard(t *testing.T) {
	svc := &services.StatsService{Catalog: newStatsFixture()}

	dash := svc.Dashboard()
	assert.Equal(t, 5, dash.Stats.TotalVideos)
	assert.Equal(t, 4, len(dash.Monthly))
	assert.Equal(t, 3, len(dash.Yearly))
	assert.Equal(t, 5, len(dash.DurationDistribution))
	assert.Equal(t, 5, len(dash.TopVideos))
	assert.Equal(t, 3, len(dash.YearlyEngagement))
}
