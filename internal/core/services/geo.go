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

// Geographic classification: word-boundary-safe keyword matching of records
// against the static region table. Word boundaries are the difference
// between this component and the keyword tracker: "mali" must match the
// country mention in " Mali " but never the substring inside "anomalie".
package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// compiledRegion is one region with its keyword patterns precompiled.
type compiledRegion struct {
	region   GeoRegion
	patterns []*regexp.Regexp
}

// GeoService classifies records against the region table. Patterns are
// compiled once at construction and shared across requests.
type GeoService struct {
	Catalog *Catalog
	regions []compiledRegion
}

// NewGeoService constructs the classifier for the given region table. A nil
// or empty table falls back to the shipped defaults. Keywords are escaped
// before compilation, so regex metacharacters in a keyword are matched
// literally. Both keywords and record text are accent-folded first: the \b
// anchors only recognize ASCII word characters, so a keyword like
// "états-unis" would otherwise never sit on a boundary.
func NewGeoService(catalog *Catalog, regions []GeoRegion) *GeoService {
	if len(regions) == 0 {
		regions = DefaultRegions
	}
	out := &GeoService{Catalog: catalog, regions: make([]compiledRegion, 0, len(regions))}
	for _, r := range regions {
		cr := compiledRegion{region: r, patterns: make([]*regexp.Regexp, 0, len(r.Keywords))}
		for _, kw := range r.Keywords {
			cr.patterns = append(cr.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(foldAccents(kw))+`\b`))
		}
		out.regions = append(out.regions, cr)
	}
	return out
}

// searchText concatenates the fields a region mention can appear in,
// lowercased and accent-folded once per record.
func searchText(v *model.Video) string {
	return foldAccents(v.Title + " " + strings.Join(v.Tags, " ") + " " + v.Description)
}

// Coverage counts, for each region, the records mentioning any of its
// keywords. A record may count toward several regions. Output is sorted
// descending by count with prevalence formatted to one decimal place;
// regions with no matches are omitted.
func (s *GeoService) Coverage() []model.GeoRegionCount {
	total := s.Catalog.Size()
	counts := make([]int, len(s.regions))
	for _, v := range s.Catalog.Records() {
		text := searchText(v)
		for i, cr := range s.regions {
			for _, p := range cr.patterns {
				if p.MatchString(text) {
					counts[i]++
					break
				}
			}
		}
	}

	out := make([]model.GeoRegionCount, 0, len(s.regions))
	for i, cr := range s.regions {
		if counts[i] == 0 {
			continue
		}
		percentage := "0.0"
		if total > 0 {
			percentage = fmt.Sprintf("%.1f", float64(counts[i])/float64(total)*100)
		}
		out = append(out, model.GeoRegionCount{
			Region:     cr.region.Name,
			ISO:        cr.region.ISO,
			SearchTerm: cr.region.SearchTerm,
			Count:      counts[i],
			Percentage: percentage,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
