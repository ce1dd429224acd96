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

// defaultVideoPageSize is the listing page size when neither the request
// nor the configuration specifies one.
const defaultVideoPageSize = 20

// VideosRouter sets up the browsable video listing endpoint.
//
// Endpoint: GET /videos?q=<text>&sort=date|views|likes|comments&
// order=asc|desc&page=<n>&pageSize=<n>. The text filter is accent-agnostic
// and matches titles and tags.
func (h *Handler) VideosRouter(r *gin.RouterGroup) {
	r.GET("/videos", func(c *gin.Context) {
		def := h.Config.Analysis.VideoPageSize
		if def <= 0 {
			def = defaultVideoPageSize
		}
		page := intQuery(c, "page", 1)
		pageSize := intQuery(c, "pageSize", def)
		sortField := c.DefaultQuery("sort", "date")
		search := c.Query("q")

		c.JSON(http.StatusOK, h.Videos.List(search, sortField, orderQuery(c), page, pageSize))
	})
}
