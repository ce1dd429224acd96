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

// This file tests the Catalog: the derived year axis and the year filter.
package services_test

import (
	"testing"

	test "github.com/jaycherian/go-media-insights/internal/testutil"
	"github.com/zeebo/assert"
)

// TestCatalogYears verifies the sorted distinct year axis.
func TestCatalogYears(t *testing.T) {
	catalog := test.NewTestCatalog(
		test.NewTestVideo("c1", "a", "2024-01-01T00:00:00Z", "01:00:00", 1, 0, 0, nil, ""),
		test.NewTestVideo("c2", "b", "2022-01-01T00:00:00Z", "01:00:00", 1, 0, 0, nil, ""),
		test.NewTestVideo("c3", "c", "2022-06-01T00:00:00Z", "01:00:00", 1, 0, 0, nil, ""),
	)
	assert.Equal(t, 3, catalog.Size())
	assert.DeepEqual(t, []int{2022, 2024}, catalog.Years())
}

// TestCatalogFilterYears verifies that the selection keeps source order and
// that an empty selection means all years.
func TestCatalogFilterYears(t *testing.T) {
	catalog := test.NewTestCatalog(
		test.NewTestVideo("c1", "a", "2024-01-01T00:00:00Z", "01:00:00", 1, 0, 0, nil, ""),
		test.NewTestVideo("c2", "b", "2022-01-01T00:00:00Z", "01:00:00", 1, 0, 0, nil, ""),
		test.NewTestVideo("c3", "c", "2023-01-01T00:00:00Z", "01:00:00", 1, 0, 0, nil, ""),
	)

	all := catalog.FilterYears(nil)
	assert.Equal(t, 3, len(all))

	subset := catalog.FilterYears([]int{2022, 2024})
	assert.Equal(t, 2, len(subset))
	assert.Equal(t, "c1", subset[0].ID)
	assert.Equal(t, "c2", subset[1].ID)
}
