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

// Multi-keyword tracking: case-insensitive substring matching over title,
// tags, and description, with per-keyword time series, trend math, and the
// paged union match listing. Matching here is deliberately looser than the
// geographic classifier's word-boundary rule.
package services

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// ErrNoKeywords signals that the cleaned keyword set came up empty. The
// transport layer maps it to a client error.
var ErrNoKeywords = errors.New("at least one non-empty keyword is required")

// KeywordService runs multi-keyword searches over the catalog.
type KeywordService struct {
	Catalog *Catalog
}

// CleanKeywords trims and case-folds the raw keyword list and drops empty
// entries. Order is preserved; duplicates are kept as supplied.
func CleanKeywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// matches reports whether the keyword appears as a substring of the record's
// title, any tag, or description, case-insensitively. The predicate is pure,
// so re-testing a record always reproduces the per-keyword pass.
func matches(v *model.Video, keyword string) bool {
	if strings.Contains(strings.ToLower(v.Title), keyword) {
		return true
	}
	for _, t := range v.Tags {
		if strings.Contains(strings.ToLower(t), keyword) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(v.Description), keyword)
}

// keywordAgg collects one keyword's match set and time buckets.
type keywordAgg struct {
	matchedIDs map[string]struct{}
	monthly    map[string]int
	yearly     map[int]model.YearKeywordStat
}

// Search runs the full keyword analysis: per-keyword summaries with trend,
// the unified monthly and yearly timelines, and the sorted, paged union
// match list. Keywords must already be cleaned; an empty set is an input
// error. An empty year selection searches all years.
func (s *KeywordService) Search(keywords []string, years []int, sortField string, order SortOrder, page, pageSize int) (*model.KeywordSearchResult, error) {
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	records := s.Catalog.FilterYears(years)

	// The timeline axes cover every bucket present in the filtered set, not
	// just buckets with matches, so multi-keyword series stay aligned.
	monthSet := make(map[string]struct{})
	yearSet := make(map[int]struct{})
	for _, v := range records {
		monthSet[v.MonthKey()] = struct{}{}
		yearSet[v.Year()] = struct{}{}
	}
	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	slices.Sort(months)
	sortedYears := make([]int, 0, len(yearSet))
	for y := range yearSet {
		sortedYears = append(sortedYears, y)
	}
	slices.Sort(sortedYears)

	aggs := make(map[string]*keywordAgg, len(keywords))
	for _, kw := range keywords {
		agg := &keywordAgg{
			matchedIDs: make(map[string]struct{}),
			monthly:    make(map[string]int),
			yearly:     make(map[int]model.YearKeywordStat),
		}
		for _, v := range records {
			if !matches(v, kw) {
				continue
			}
			agg.matchedIDs[v.ID] = struct{}{}
			agg.monthly[v.MonthKey()]++
			stat := agg.yearly[v.Year()]
			stat.Count++
			stat.Views += v.ViewCount
			agg.yearly[v.Year()] = stat
		}
		aggs[kw] = agg
	}

	monthlyTimeline := make([]model.MonthCounts, 0, len(months))
	for _, m := range months {
		row := model.MonthCounts{Month: m, Counts: make(map[string]int, len(keywords))}
		for _, kw := range keywords {
			row.Counts[kw] = aggs[kw].monthly[m]
		}
		monthlyTimeline = append(monthlyTimeline, row)
	}

	yearlyData := make([]model.YearCounts, 0, len(sortedYears))
	for _, y := range sortedYears {
		row := model.YearCounts{Year: y, Keywords: make(map[string]model.YearKeywordStat, len(keywords))}
		for _, kw := range keywords {
			row.Keywords[kw] = aggs[kw].yearly[y]
		}
		yearlyData = append(yearlyData, row)
	}

	summaries := make([]model.KeywordSummary, 0, len(keywords))
	for _, kw := range keywords {
		agg := aggs[kw]

		// Trend compares the last two years present in the filtered set; a
		// previous year with no matches pins the trend at 0 rather than
		// producing an infinite growth figure.
		trend := 0
		if len(sortedYears) >= 2 {
			lastCount := agg.yearly[sortedYears[len(sortedYears)-1]].Count
			prevCount := agg.yearly[sortedYears[len(sortedYears)-2]].Count
			if prevCount > 0 {
				trend = int(math.Round(float64(lastCount-prevCount) / float64(prevCount) * 100))
			}
		}

		percentage := "0.0"
		if len(records) > 0 {
			percentage = fmt.Sprintf("%.1f", float64(len(agg.matchedIDs))/float64(len(records))*100)
		}
		summaries = append(summaries, model.KeywordSummary{
			Keyword:      kw,
			TotalMatches: len(agg.matchedIDs),
			Percentage:   percentage,
			Trend:        trend,
		})
	}

	// Union match list: every record any keyword matched, annotated by
	// re-testing each keyword so the labels agree with the per-keyword pass.
	unionIDs := make(map[string]struct{})
	for _, kw := range keywords {
		for id := range aggs[kw].matchedIDs {
			unionIDs[id] = struct{}{}
		}
	}
	allMatches := make([]model.KeywordMatch, 0, len(unionIDs))
	for _, v := range records {
		if _, ok := unionIDs[v.ID]; !ok {
			continue
		}
		matched := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			if matches(v, kw) {
				matched = append(matched, kw)
			}
		}
		allMatches = append(allMatches, model.KeywordMatch{
			VideoID:         v.ID,
			Title:           v.Title,
			PublishedAt:     v.PublishedAt,
			Views:           v.ViewCount,
			Likes:           v.LikeCount,
			URL:             v.URL,
			MatchedKeywords: matched,
			Published:       v.Published,
		})
	}

	var less func(a, b model.KeywordMatch) bool
	if sortField == "views" {
		less = func(a, b model.KeywordMatch) bool { return a.Views < b.Views }
	} else {
		less = func(a, b model.KeywordMatch) bool { return a.Published.Before(b.Published) }
	}
	paged, pagination := SortAndPage(allMatches, less, order, page, pageSize)

	return &model.KeywordSearchResult{
		Keywords:        keywords,
		Summaries:       summaries,
		TotalVideos:     len(records),
		MonthlyTimeline: monthlyTimeline,
		YearlyData:      yearlyData,
		MatchingVideos:  paged,
		Pagination:      pagination,
		AvailableYears:  s.Catalog.Years(),
		SelectedYears:   years,
	}, nil
}
