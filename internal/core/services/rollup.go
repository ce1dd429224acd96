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
// generic grouping/rollup accumulator shared by the time-series, tag, and
// keyword computations: one linear pass building a keyed tuple of running
// sums, then an ordered emit sorted by key.
package services

import (
	"cmp"
	"math"
	"slices"

	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// rollupAgg is the mutable tuple of running sums accumulated per derived
// key. It exists only for the duration of one aggregation call.
type rollupAgg struct {
	Count    int
	Views    int
	Likes    int
	Comments int
	Seconds  int
}

// add folds one record's counters into the tuple.
func (a *rollupAgg) add(v *model.Video) {
	a.Count++
	a.Views += v.ViewCount
	a.Likes += v.LikeCount
	a.Comments += v.CommentCount
	a.Seconds += v.DurationSeconds()
}

// rollupBy accumulates every record into a tuple keyed by keyFn, in a
// single pass over the input.
func rollupBy[K comparable](records []*model.Video, keyFn func(*model.Video) K) map[K]*rollupAgg {
	out := make(map[K]*rollupAgg)
	for _, v := range records {
		key := keyFn(v)
		agg, ok := out[key]
		if !ok {
			agg = &rollupAgg{}
			out[key] = agg
		}
		agg.add(v)
	}
	return out
}

// sortedKeys returns the accumulator's keys in ascending key order. Numeric
// keys sort numerically; month keys are zero-padded, so their lexicographic
// order is already chronological.
func sortedKeys[K cmp.Ordered](m map[K]*rollupAgg) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// engagementPercent computes (likes+comments)/views as a percentage rounded
// to two decimals, defined as 0 when there are no views.
func engagementPercent(likes, comments, views int) float64 {
	if views <= 0 {
		return 0
	}
	return math.Round(float64(likes+comments)/float64(views)*100*100) / 100
}

// avgOrZero is integer division rounded to nearest, guarded against an
// empty denominator.
func avgOrZero(sum, count int) int {
	if count <= 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
