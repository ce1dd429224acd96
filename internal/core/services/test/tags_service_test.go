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

// This file tests the TagService: stoplist filtering, frequency ranking,
// the evolution matrix and heatmap, and rising/falling trend detection.
package services_test

import (
	"testing"

	"github.com/jaycherian/go-media-insights/internal/core/services"
	test "github.com/jaycherian/go-media-insights/internal/testutil"
	"github.com/zeebo/assert"
)

// newTagsFixture builds a catalog over four years. 2024 is the partial
// current year; trend detection compares 2023 against 2022.
//
// Tag counts per year (after normalization):
//
//	2021: inflation 1
//	2022: climat 4, ukraine 1
//	2023: ukraine 3, climat 1, ia 3
//	2024: ukraine 1
func newTagsFixture() *services.Catalog {
	return test.NewTestCatalog(
		test.NewTestVideo("t0", "Inflation", "2021-09-01T18:00:00Z", "01:00:00", 50, 0, 0, []string{"inflation"}, ""),
		test.NewTestVideo("t1", "Climat 1", "2022-01-01T18:00:00Z", "01:00:00", 10, 0, 0, []string{"climat", "ukraine", " Politique "}, ""),
		test.NewTestVideo("t2", "Climat 2", "2022-02-01T18:00:00Z", "01:00:00", 20, 0, 0, []string{"Climat"}, ""),
		test.NewTestVideo("t3", "Climat 3", "2022-03-01T18:00:00Z", "01:00:00", 30, 0, 0, []string{"climat"}, ""),
		test.NewTestVideo("t4", "Climat 4", "2022-04-01T18:00:00Z", "01:00:00", 40, 0, 0, []string{"climat", "c dans l'air"}, ""),
		test.NewTestVideo("t5", "Ukraine 1", "2023-01-10T18:00:00Z", "01:00:00", 100, 0, 0, []string{"ukraine", "ia"}, ""),
		test.NewTestVideo("t6", "Ukraine 2", "2023-02-10T18:00:00Z", "01:00:00", 100, 0, 0, []string{"ukraine", "ia"}, ""),
		test.NewTestVideo("t7", "Ukraine 3", "2023-03-10T18:00:00Z", "01:00:00", 100, 0, 0, []string{"ukraine", "ia", "climat"}, ""),
		test.NewTestVideo("t8", "Ukraine 4", "2024-01-05T18:00:00Z", "01:00:00", 100, 0, 0, []string{"ukraine"}, ""),
	)
}

// TestTagRankingStoplist verifies normalization and stoplist filtering:
// " Politique " collapses to the stoplisted "politique" and never appears,
// and the show-name tag is excluded too.
func TestTagRankingStoplist(t *testing.T) {
	svc := services.NewTagService(newTagsFixture(), nil)

	ranked := svc.Ranking(nil, 0)
	for _, tc := range ranked {
		assert.True(t, tc.Tag != "politique")
		assert.True(t, tc.Tag != "c dans l'air")
	}
}

// TestTagRankingCounts verifies the descending count order, the view sums,
// and the case-insensitive tag collapse.
func TestTagRankingCounts(t *testing.T) {
	svc := services.NewTagService(newTagsFixture(), nil)

	ranked := svc.Ranking(nil, 0)
	byTag := make(map[string]int)
	for _, tc := range ranked {
		byTag[tc.Tag] = tc.Count
	}
	// "Climat" and "climat" collapse to one entry.
	assert.Equal(t, 5, byTag["climat"])
	assert.Equal(t, 5, byTag["ukraine"])
	assert.Equal(t, 3, byTag["ia"])
	assert.Equal(t, 1, byTag["inflation"])

	// Descending by count.
	assert.Equal(t, 5, ranked[0].Count)
	assert.Equal(t, "inflation", ranked[len(ranked)-1].Tag)

	// topN truncation.
	assert.Equal(t, 2, len(svc.Ranking(nil, 2)))
}

// TestTagRankingYearFilter verifies that the year selection narrows the
// counting subset.
func TestTagRankingYearFilter(t *testing.T) {
	svc := services.NewTagService(newTagsFixture(), nil)

	ranked := svc.Ranking([]int{2022}, 0)
	byTag := make(map[string]int)
	for _, tc := range ranked {
		byTag[tc.Tag] = tc.Count
	}
	assert.Equal(t, 4, byTag["climat"])
	assert.Equal(t, 1, byTag["ukraine"])
	assert.Equal(t, 0, byTag["ia"])
}

// TestTagEvolution verifies the matrix covers every dataset year zero-filled
// even when the ranking was computed over a filtered subset.
func TestTagEvolution(t *testing.T) {
	svc := services.NewTagService(newTagsFixture(), nil)

	rows := svc.Evolution([]string{"climat", "ukraine"})
	assert.Equal(t, 4, len(rows))
	assert.Equal(t, 2021, rows[0].Year)
	assert.Equal(t, 0, rows[0].Counts["climat"])
	assert.Equal(t, 4, rows[1].Counts["climat"])
	assert.Equal(t, 1, rows[2].Counts["climat"])
	assert.Equal(t, 3, rows[2].Counts["ukraine"])
	assert.Equal(t, 1, rows[3].Counts["ukraine"])
}

// TestTagHeatmapMatchesEvolution verifies the heatmap is a pure reshaping of
// the evolution matrix with identical counts.
func TestTagHeatmapMatchesEvolution(t *testing.T) {
	svc := services.NewTagService(newTagsFixture(), nil)
	tracked := []string{"climat", "ukraine", "ia"}

	evolution := svc.Evolution(tracked)
	heatmap := svc.Heatmap(tracked)
	assert.Equal(t, len(tracked), len(heatmap))

	for _, row := range heatmap {
		assert.Equal(t, len(evolution), len(row.Cells))
		for i, cell := range row.Cells {
			assert.Equal(t, evolution[i].Year, cell.Year)
			assert.Equal(t, evolution[i].Counts[row.Tag], cell.Count)
		}
	}
}

// TestTagTrending verifies trend detection between the last two complete
// years: ukraine rises (1 -> 3, +200%), climat falls (4 -> 1, -75%), and ia
// appears from nothing (+100% via the zero-guard).
func TestTagTrending(t *testing.T) {
	svc := services.NewTagService(newTagsFixture(), nil)

	rising, falling := svc.Trending()

	byTag := make(map[string]int)
	for _, tr := range rising {
		byTag[tr.Tag] = tr.Change
	}
	assert.Equal(t, 200, byTag["ukraine"])
	assert.Equal(t, 100, byTag["ia"])

	assert.Equal(t, 1, len(falling))
	assert.Equal(t, "climat", falling[0].Tag)
	assert.Equal(t, -75, falling[0].Change)
	assert.Equal(t, 4, falling[0].Previous)
	assert.Equal(t, 1, falling[0].Last)
}

// TestTagTrendingNeedsThreeYears verifies that fewer than three dataset
// years disables trend detection entirely.
func TestTagTrendingNeedsThreeYears(t *testing.T) {
	catalog := test.NewTestCatalog(
		test.NewTestVideo("a", "one", "2022-01-01T00:00:00Z", "01:00:00", 1, 0, 0, []string{"climat"}, ""),
		test.NewTestVideo("b", "two", "2023-01-01T00:00:00Z", "01:00:00", 1, 0, 0, []string{"climat"}, ""),
	)
	svc := services.NewTagService(catalog, nil)

	rising, falling := svc.Trending()
	assert.Equal(t, 0, len(rising))
	assert.Equal(t, 0, len(falling))
}

// TestAnalyze verifies the assembled topics payload: the year axis, the
// filtered total, and the tracked-tag subset feeding the matrix views.
func TestAnalyze(t *testing.T) {
	svc := services.NewTagService(newTagsFixture(), nil)

	result := svc.Analyze([]int{2022}, 0)
	assert.DeepEqual(t, []int{2021, 2022, 2023, 2024}, result.Years)
	assert.DeepEqual(t, []int{2022}, result.SelectedYears)
	assert.Equal(t, 4, result.TotalVideos)
	assert.Equal(t, len(result.EvolutionTags), len(result.Heatmap))
	// The matrix still spans every dataset year despite the 2022 filter.
	assert.Equal(t, 4, len(result.Evolution))
}
