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

// Package services contains the aggregation engine: the pure computations
// that transform the flat record collection into grouped, ranked, and
// time-bucketed views. This file defines the Catalog, the immutable
// in-memory record collection every service reads.
//
// The catalog is built once at load time and never mutated afterwards, so it
// is safely shared across concurrent requests without locking; every
// aggregation builds fresh accumulator structures per call.
package services

import (
	"slices"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// Catalog is the read-only record collection plus its precomputed year axis.
type Catalog struct {
	records []*model.Video
	years   []int
}

// NewCatalog freezes the given record list (in source order) and derives the
// sorted list of distinct publication years.
func NewCatalog(records []*model.Video) *Catalog {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, v := range records {
		y := v.Year()
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	slices.Sort(years)
	return &Catalog{records: records, years: years}
}

// Records returns the full record list in source order. Callers must treat
// the slice as read-only.
func (c *Catalog) Records() []*model.Video {
	return c.records
}

// Size returns the total record count.
func (c *Catalog) Size() int {
	return len(c.records)
}

// Years returns the sorted distinct publication years of the full dataset.
func (c *Catalog) Years() []int {
	return c.years
}

// FilterYears returns the records whose publication year is in the given
// selection, preserving source order. An empty selection means all years.
func (c *Catalog) FilterYears(years []int) []*model.Video {
	if len(years) == 0 {
		return c.records
	}
	selected := make(map[int]struct{}, len(years))
	for _, y := range years {
		selected[y] = struct{}{}
	}
	out := make([]*model.Video, 0, len(c.records))
	for _, v := range c.records {
		if _, ok := selected[v.Year()]; ok {
			out = append(out, v)
		}
	}
	return out
}
