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

// This file tests the KeywordService: keyword cleaning, the substring match
// predicate, per-keyword summaries and trend math, the unified timelines,
// and the paged union match list.
package services_test

import (
	"errors"
	"testing"

	"github.com/jaycherian/go-media-insights/internal/core/services"
	test "github.com/jaycherian/go-media-insights/internal/testutil"
	"github.com/zeebo/assert"
)

// newKeywordFixture builds a four-record catalog across 2022 and 2023.
// "inflation" appears in a title, a second title, and a description;
// "climat" appears once, in 2023 only.
func newKeywordFixture() *services.Catalog {
	return test.NewTestCatalog(
		test.NewTestVideo("k1", "Inflation record en France", "2022-03-10T18:00:00Z", "01:00:00", 100, 0, 0, []string{"economie"}, ""),
		test.NewTestVideo("k2", "Le retour de l'inflation", "2023-04-12T18:00:00Z", "01:00:00", 200, 0, 0, nil, ""),
		test.NewTestVideo("k3", "Sécheresse historique", "2023-06-20T18:00:00Z", "01:00:00", 300, 0, 0, []string{"climat"}, "Quand l'inflation verte s'installe."),
		test.NewTestVideo("k4", "Ukraine", "2023-07-01T18:00:00Z", "01:00:00", 50, 0, 0, []string{"guerre en ukraine"}, ""),
	)
}

// TestCleanKeywords verifies trimming, case folding, and empty-entry
// removal with order preserved.
func TestCleanKeywords(t *testing.T) {
	cleaned := services.CleanKeywords([]string{" Inflation ", "", "CLIMAT", "  "})
	assert.DeepEqual(t, []string{"inflation", "climat"}, cleaned)
}

// TestKeywordSearchRequiresKeywords verifies the empty-query input error.
func TestKeywordSearchRequiresKeywords(t *testing.T) {
	svc := &services.KeywordService{Catalog: newKeywordFixture()}

	_, err := svc.Search(nil, nil, "date", services.OrderDesc, 1, 50)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoKeywords))
}

// TestKeywordSummaries verifies the match counts, the one-decimal
// percentage, and the two trend rules: +100% for inflation (1 -> 2 across
// the last two years) and the 0-on-zero guard for climat (0 -> 1).
func TestKeywordSummaries(t *testing.T) {
	svc := &services.KeywordService{Catalog: newKeywordFixture()}

	result, err := svc.Search([]string{"inflation", "climat"}, nil, "date", services.OrderDesc, 1, 50)
	assert.NoError(t, err)

	assert.Equal(t, 2, len(result.Summaries))
	inflation := result.Summaries[0]
	assert.Equal(t, "inflation", inflation.Keyword)
	assert.Equal(t, 3, inflation.TotalMatches)
	assert.Equal(t, "75.0", inflation.Percentage)
	assert.Equal(t, 100, inflation.Trend)

	climat := result.Summaries[1]
	assert.Equal(t, 1, climat.TotalMatches)
	assert.Equal(t, "25.0", climat.Percentage)
	// Previous-year count is 0, so the trend is pinned at 0, not infinity.
	assert.Equal(t, 0, climat.Trend)
}

// TestKeywordTimelines verifies the unified axes: every month and year
// present in the filtered set appears, zero-filled per keyword.
func TestKeywordTimelines(t *testing.T) {
	svc := &services.KeywordService{Catalog: newKeywordFixture()}

	result, err := svc.Search([]string{"climat"}, nil, "date", services.OrderDesc, 1, 50)
	assert.NoError(t, err)

	// Four records in four distinct months; climat matched only one.
	assert.Equal(t, 4, len(result.MonthlyTimeline))
	assert.Equal(t, "2022-03", result.MonthlyTimeline[0].Month)
	assert.Equal(t, 0, result.MonthlyTimeline[0].Counts["climat"])
	assert.Equal(t, 1, result.MonthlyTimeline[2].Counts["climat"])

	assert.Equal(t, 2, len(result.YearlyData))
	assert.Equal(t, 2022, result.YearlyData[0].Year)
	assert.Equal(t, 0, result.YearlyData[0].Keywords["climat"].Count)
	assert.Equal(t, 1, result.YearlyData[1].Keywords["climat"].Count)
	assert.Equal(t, 300, result.YearlyData[1].Keywords["climat"].Views)
}

// TestKeywordUnionAnnotations verifies the union match list: every record
// any keyword matched appears once, annotated with exactly the keywords that
// matched it.
func TestKeywordUnionAnnotations(t *testing.T) {
	svc := &services.KeywordService{Catalog: newKeywordFixture()}

	result, err := svc.Search([]string{"inflation", "climat"}, nil, "date", services.OrderAsc, 1, 50)
	assert.NoError(t, err)

	assert.Equal(t, 3, len(result.MatchingVideos))
	byID := make(map[string][]string)
	for _, m := range result.MatchingVideos {
		byID[m.VideoID] = m.MatchedKeywords
	}
	assert.DeepEqual(t, []string{"inflation"}, byID["k1"])
	assert.DeepEqual(t, []string{"inflation"}, byID["k2"])
	// k3 matches inflation in its description and climat in its tags.
	assert.DeepEqual(t, []string{"inflation", "climat"}, byID["k3"])
}

// TestKeywordSortAndPage verifies date and view ordering of the match list
// plus the pagination metadata.
func TestKeywordSortAndPage(t *testing.T) {
	svc := &services.KeywordService{Catalog: newKeywordFixture()}

	byDate, err := svc.Search([]string{"inflation"}, nil, "date", services.OrderDesc, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(byDate.MatchingVideos))
	assert.Equal(t, "k3", byDate.MatchingVideos[0].VideoID)
	assert.Equal(t, "k2", byDate.MatchingVideos[1].VideoID)
	assert.Equal(t, 3, byDate.Pagination.Total)
	assert.Equal(t, 2, byDate.Pagination.TotalPages)

	byViews, err := svc.Search([]string{"inflation"}, nil, "views", services.OrderAsc, 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, "k1", byViews.MatchingVideos[0].VideoID)
	assert.Equal(t, "k3", byViews.MatchingVideos[2].VideoID)
}

// TestKeywordYearFilter verifies that the year selection narrows both the
// match sets and the percentage denominator.
func TestKeywordYearFilter(t *testing.T) {
	svc := &services.KeywordService{Catalog: newKeywordFixture()}

	result, err := svc.Search([]string{"inflation"}, []int{2023}, "date", services.OrderDesc, 1, 50)
	assert.NoError(t, err)

	assert.Equal(t, 3, result.TotalVideos)
	assert.Equal(t, 2, result.Summaries[0].TotalMatches)
	assert.Equal(t, "66.7", result.Summaries[0].Percentage)
	assert.DeepEqual(t, []int{2022, 2023}, result.AvailableYears)
	assert.DeepEqual(t, []int{2023}, result.SelectedYears)
}
