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

// The paged video listing: accent-agnostic text filtering over title and
// tags, configurable stable sorting, and offset pagination.
package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// foldTransformer strips combining marks after NFD decomposition, so
// "économie" and "economie" compare equal in the listing filter. The dataset
// is French-language, so accent-agnostic search is the expected behavior.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAccents lowercases the string and removes its diacritics. On a
// transform error the lowercased input is used as-is.
func foldAccents(s string) string {
	s = strings.ToLower(s)
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return folded
}

// VideoListService serves the browsable video listing.
type VideoListService struct {
	Catalog *Catalog
}

// listTagLimit caps the tags carried per listing row; the full tag list is
// only needed by the analysis endpoints.
const listTagLimit = 5

// List filters the catalog by the accent-folded search string (substring of
// title or any tag; empty string matches everything), sorts by the requested
// field and order, and returns the 1-based page.
func (s *VideoListService) List(search, sortField string, order SortOrder, page, pageSize int) *model.VideoListResult {
	query := foldAccents(strings.TrimSpace(search))

	filtered := make([]*model.Video, 0, s.Catalog.Size())
	for _, v := range s.Catalog.Records() {
		if query != "" && !matchesFolded(v, query) {
			continue
		}
		filtered = append(filtered, v)
	}

	var less func(a, b *model.Video) bool
	switch sortField {
	case "views":
		less = func(a, b *model.Video) bool { return a.ViewCount < b.ViewCount }
	case "likes":
		less = func(a, b *model.Video) bool { return a.LikeCount < b.LikeCount }
	case "comments":
		less = func(a, b *model.Video) bool { return a.CommentCount < b.CommentCount }
	default:
		less = func(a, b *model.Video) bool { return a.Published.Before(b.Published) }
	}
	paged, pagination := SortAndPage(filtered, less, order, page, pageSize)

	rows := make([]model.VideoListItem, 0, len(paged))
	for _, v := range paged {
		tags := v.Tags
		if len(tags) > listTagLimit {
			tags = tags[:listTagLimit]
		}
		rows = append(rows, model.VideoListItem{
			VideoID:      v.ID,
			Title:        v.Title,
			PublishedAt:  v.PublishedAt,
			Duration:     v.Duration,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
			URL:          v.URL,
			ThumbnailURL: v.ThumbnailURL,
			Tags:         tags,
		})
	}

	return &model.VideoListResult{
		Videos:     rows,
		Total:      pagination.Total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: pagination.TotalPages,
	}
}

// matchesFolded reports whether the accent-folded query appears in the
// record's title or any of its tags.
func matchesFolded(v *model.Video, query string) bool {
	if strings.Contains(foldAccents(v.Title), query) {
		return true
	}
	for _, t := range v.Tags {
		if strings.Contains(foldAccents(t), query) {
			return true
		}
	}
	return false
}
