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

// Package api exposes the analytics engine's operations as REST endpoints.
// It is a thin decoding layer: each handler parses query parameters
// permissively (unparsable numbers fall back to documented defaults),
// invokes the corresponding service, and serializes the result. The only
// client error the API produces is a missing keyword query.
//
// Endpoints (all under the caller's route group, conventionally /api/v1):
//   - GET /stats: composite dashboard payload.
//   - GET /stats/timeseries: monthly or yearly rollup rows.
//   - GET /stats/duration-histogram: fixed five-bucket runtime histogram.
//   - GET /stats/top-videos: ranked-by-views listing.
//   - GET /topics: tag ranking, evolution matrix, heatmap, trends.
//   - GET /keywords: multi-keyword search with time series and paged matches.
//   - GET /geo: region mention ranking.
//   - GET /videos: paged, filterable video listing.
package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jaycherian/go-media-insights/internal/config"
	"github.com/jaycherian/go-media-insights/internal/core/model"
	"github.com/jaycherian/go-media-insights/internal/core/services"
)

// Handler bundles the engine services behind the REST surface.
type Handler struct {
	Config   *config.Config
	Stats    *services.StatsService
	Tags     *services.TagService
	Keywords *services.KeywordService
	Geo      *services.GeoService
	Videos   *services.VideoListService
}

// Register attaches every endpoint to the given route group.
func (h *Handler) Register(r *gin.RouterGroup) {
	h.StatsRouter(r)
	h.TopicsRouter(r)
	h.KeywordsRouter(r)
	h.GeoRouter(r)
	h.VideosRouter(r)
}

// intQuery reads a numeric query parameter with the permissive parse rule:
// missing or unparsable values fall back to the default.
func intQuery(c *gin.Context, name string, def int) int {
	return model.IntOrDefault(c.Query(name), def)
}

// yearsQuery decodes an optional comma-separated year list. Unparsable
// entries are dropped; an empty result means "all years".
func yearsQuery(c *gin.Context, name string) []int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	out := make([]int, 0)
	for _, part := range strings.Split(raw, ",") {
		if y := model.IntOrZero(part); y != 0 {
			out = append(out, y)
		}
	}
	return out
}

// orderQuery decodes the sort direction, defaulting to descending.
func orderQuery(c *gin.Context) services.SortOrder {
	if c.Query("order") == "asc" {
		return services.OrderAsc
	}
	return services.OrderDesc
}
