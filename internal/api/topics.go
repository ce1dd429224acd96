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

	"github.com/jaycherian/go-media-insights/internal/core/services"
)

// TopicsRouter sets up the tag/topic analysis endpoint.
//
// Endpoint: GET /topics?top=<n>&years=<csv>. The single-year form
// ?year=<y> is also accepted for compatibility with older clients.
func (h *Handler) TopicsRouter(r *gin.RouterGroup) {
	r.GET("/topics", func(c *gin.Context) {
		def := h.Config.Analysis.TopTags
		if def <= 0 {
			def = services.DefaultTopTags
		}
		topN := intQuery(c, "top", def)

		years := yearsQuery(c, "years")
		if len(years) == 0 {
			years = yearsQuery(c, "year")
		}

		c.JSON(http.StatusOK, h.Tags.Analyze(years, topN))
	})
}
