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

// Shared ranking and pagination contract used by the video listing and the
// keyword match listing: a stable configurable sort followed by 1-based
// offset slicing.
package services

import (
	"sort"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// SortOrder selects the sort direction of a listing.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortAndPage sorts items in place with the given ascending comparator
// (negated for descending order) and returns the requested 1-based page plus
// its metadata. The sort is stable, so equal keys keep their relative input
// order and pagination stays deterministic across requests. An out-of-range
// page yields an empty slice, never an error, and TotalPages is at least 1
// even for an empty input.
func SortAndPage[T any](items []T, less func(a, b T) bool, order SortOrder, page, pageSize int) ([]T, model.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	sort.SliceStable(items, func(i, j int) bool {
		if order == OrderDesc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], model.Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
