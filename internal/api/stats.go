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

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultTopVideos caps the top-video listing when neither the request nor
// the configuration specifies a limit.
const defaultTopVideos = 10

// StatsRouter sets up the channel-level statistics endpoints.
//
// Endpoints:
//   - GET /stats: the composite dashboard payload.
//   - GET /stats/timeseries?granularity=month|year&years=<csv>: rollup rows.
//   - GET /stats/duration-histogram: the fixed runtime histogram.
//   - GET /stats/top-videos?limit=<n>: ranked-by-views rows.
func (h *Handler) StatsRouter(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, h.Stats.Dashboard())
		})

		stats.GET("/timeseries", func(c *gin.Context) {
			years := yearsQuery(c, "years")
			if c.DefaultQuery("granularity", "month") == "year" {
				c.JSON(http.StatusOK, gin.H{"granularity": "year", "series": h.Stats.YearlySeries(years)})
				return
			}
			c.JSON(http.StatusOK, gin.H{"granularity": "month", "series": h.Stats.MonthlySeries(years)})
		})

		stats.GET("/duration-histogram", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"buckets": h.Stats.DurationHistogram()})
		})

		stats.GET("/top-videos", func(c *gin.Context) {
			def := h.Config.Analysis.TopVideos
			if def <= 0 {
				def = defaultTopVideos
			}
			limit := intQuery(c, "limit", def)
			c.JSON(http.StatusOK, gin.H{"videos": h.Stats.TopVideos(limit)})
		})
	}
}
