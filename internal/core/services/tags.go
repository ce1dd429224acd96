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

// Tag/topic analysis: stoplist-filtered frequency ranking, the per-year
// evolution matrix and its heatmap reshaping, and rising/falling trend
// detection between the two most recent complete years.
package services

import (
	"math"
	"sort"
	"strings"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

const (
	// DefaultTopTags is the ranking size when the caller does not ask for one.
	DefaultTopTags = 30
	// EvolutionTagCount is how many of the top tags the evolution matrix and
	// heatmap track.
	EvolutionTagCount = 15

	// Trend detection constants: a tag is rising when its count grew more
	// than trendThresholdPct between the reference years and the last year
	// saw at least trendMinCount occurrences (falling is the mirror image).
	trendThresholdPct = 20
	trendMinCount     = 3
	trendListSize     = 10
)

// TagService computes the stoplist-filtered tag views over the catalog.
type TagService struct {
	Catalog  *Catalog
	stopTags map[string]struct{}
}

// NewTagService constructs the service with the given stoplist. A nil or
// empty stoplist falls back to the shipped defaults.
func NewTagService(catalog *Catalog, stopTags []string) *TagService {
	if len(stopTags) == 0 {
		stopTags = DefaultStopTags
	}
	stop := make(map[string]struct{}, len(stopTags))
	for _, t := range stopTags {
		stop[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return &TagService{Catalog: catalog, stopTags: stop}
}

// normalize lowercases and trims a raw tag. The empty string is returned for
// tags that should be skipped entirely.
func (s *TagService) normalize(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return ""
	}
	if _, skip := s.stopTags[tag]; skip {
		return ""
	}
	return tag
}

// Ranking counts occurrences and view sums per normalized tag across the
// records of the selected years (empty selection = all years) and returns
// the topN tags descending by count. Ties keep first-seen order.
func (s *TagService) Ranking(years []int, topN int) []model.TagCount {
	if topN <= 0 {
		topN = DefaultTopTags
	}

	counts := make(map[string]*model.TagCount)
	order := make([]string, 0)
	for _, v := range s.Catalog.FilterYears(years) {
		for _, raw := range v.Tags {
			tag := s.normalize(raw)
			if tag == "" {
				continue
			}
			tc, ok := counts[tag]
			if !ok {
				tc = &model.TagCount{Tag: tag}
				counts[tag] = tc
				order = append(order, tag)
			}
			tc.Count++
			tc.Views += v.ViewCount
		}
	}

	ranked := make([]model.TagCount, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, *counts[tag])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if topN > len(ranked) {
		topN = len(ranked)
	}
	return ranked[:topN]
}

// yearCounts builds the per-tag, per-year occurrence table for the given
// tracked tags over the FULL dataset, zero-filled across every dataset year.
func (s *TagService) yearCounts(tracked []string) map[string]map[int]int {
	table := make(map[string]map[int]int, len(tracked))
	for _, tag := range tracked {
		cells := make(map[int]int, len(s.Catalog.Years()))
		for _, y := range s.Catalog.Years() {
			cells[y] = 0
		}
		table[tag] = cells
	}
	for _, v := range s.Catalog.Records() {
		year := v.Year()
		for _, raw := range v.Tags {
			tag := strings.ToLower(strings.TrimSpace(raw))
			if cells, ok := table[tag]; ok {
				cells[year]++
			}
		}
	}
	return table
}

// Evolution builds the year × tag count matrix for the tracked tags,
// covering every year of the unfiltered dataset so downstream charts get a
// continuous series per tag.
func (s *TagService) Evolution(tracked []string) []model.TagYearRow {
	table := s.yearCounts(tracked)

	out := make([]model.TagYearRow, 0, len(s.Catalog.Years()))
	for _, year := range s.Catalog.Years() {
		row := model.TagYearRow{Year: year, Counts: make(map[string]int, len(tracked))}
		for _, tag := range tracked {
			row.Counts[tag] = table[tag][year]
		}
		out = append(out, row)
	}
	return out
}

// Heatmap reshapes the evolution matrix per tag: one row per tracked tag
// with its chronological cell sequence. Counts are identical to Evolution.
func (s *TagService) Heatmap(tracked []string) []model.HeatmapRow {
	table := s.yearCounts(tracked)

	out := make([]model.HeatmapRow, 0, len(tracked))
	for _, tag := range tracked {
		cells := make([]model.YearCount, 0, len(s.Catalog.Years()))
		for _, year := range s.Catalog.Years() {
			cells = append(cells, model.YearCount{Year: year, Count: table[tag][year]})
		}
		out = append(out, model.HeatmapRow{Tag: tag, Cells: cells})
	}
	return out
}

// trendChange is the whole-number percent change between two yearly counts.
// A tag appearing from nothing counts as +100%, not infinity.
func trendChange(prev, last int) int {
	if prev == 0 {
		if last > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(last-prev) / float64(prev) * 100))
}

// Trending detects rising and falling tags by comparing the last two
// COMPLETE years: the most recent dataset year is assumed partial and
// excluded, so the comparison runs between the second-to-last and
// third-to-last years. Fewer than three dataset years yields empty lists.
func (s *TagService) Trending() (rising, falling []model.TagTrend) {
	years := s.Catalog.Years()
	if len(years) < 3 {
		return nil, nil
	}
	lastYear := years[len(years)-2]
	prevYear := years[len(years)-3]

	// Count every non-stoplisted tag in just the two reference years.
	type pair struct{ prev, last int }
	counts := make(map[string]*pair)
	order := make([]string, 0)
	for _, v := range s.Catalog.Records() {
		year := v.Year()
		if year != lastYear && year != prevYear {
			continue
		}
		for _, raw := range v.Tags {
			tag := s.normalize(raw)
			if tag == "" {
				continue
			}
			p, ok := counts[tag]
			if !ok {
				p = &pair{}
				counts[tag] = p
				order = append(order, tag)
			}
			if year == lastYear {
				p.last++
			} else {
				p.prev++
			}
		}
	}

	for _, tag := range order {
		p := counts[tag]
		change := trendChange(p.prev, p.last)
		t := model.TagTrend{Tag: tag, Previous: p.prev, Last: p.last, Change: change}
		if change > trendThresholdPct && p.last >= trendMinCount {
			rising = append(rising, t)
		}
		if change < -trendThresholdPct && p.prev >= trendMinCount {
			falling = append(falling, t)
		}
	}

	sort.SliceStable(rising, func(i, j int) bool { return rising[i].Change > rising[j].Change })
	sort.SliceStable(falling, func(i, j int) bool { return falling[i].Change < falling[j].Change })
	if len(rising) > trendListSize {
		rising = rising[:trendListSize]
	}
	if len(falling) > trendListSize {
		falling = falling[:trendListSize]
	}
	return rising, falling
}

// Analyze runs the full topic analysis for the selected years: the ranked
// tag list plus the evolution matrix, heatmap, and trend lists derived from
// the top of that ranking.
func (s *TagService) Analyze(years []int, topN int) model.TopicsResult {
	topTags := s.Ranking(years, topN)

	trackCount := EvolutionTagCount
	if trackCount > len(topTags) {
		trackCount = len(topTags)
	}
	tracked := make([]string, 0, trackCount)
	for _, tc := range topTags[:trackCount] {
		tracked = append(tracked, tc.Tag)
	}

	rising, falling := s.Trending()

	return model.TopicsResult{
		Years:         s.Catalog.Years(),
		SelectedYears: years,
		TotalVideos:   len(s.Catalog.FilterYears(years)),
		TopTags:       topTags,
		EvolutionTags: tracked,
		Evolution:     s.Evolution(tracked),
		Heatmap:       s.Heatmap(tracked),
		Rising:        rising,
		Falling:       falling,
	}
}
