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
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jaycherian/go-media-insights/internal/core/services"
)

// defaultKeywordPageSize is the match-list page size when neither the
// request nor the configuration specifies one.
const defaultKeywordPageSize = 50

// KeywordsRouter sets up the multi-keyword tracking endpoint.
//
// Endpoint: GET /keywords?q=<kw1,kw2,...>&years=<csv>&sort=date|views&
// order=asc|desc&page=<n>&pageSize=<n>. The keyword query is the only
// required parameter; an empty one is a client error.
func (h *Handler) KeywordsRouter(r *gin.RouterGroup) {
	r.GET("/keywords", func(c *gin.Context) {
		keywords := services.CleanKeywords(strings.Split(c.Query("q"), ","))

		def := h.Config.Analysis.KeywordPageSize
		if def <= 0 {
			def = defaultKeywordPageSize
		}
		page := intQuery(c, "page", 1)
		pageSize := intQuery(c, "pageSize", def)
		sortField := c.DefaultQuery("sort", "date")
		years := yearsQuery(c, "years")

		result, err := h.Keywords.Search(keywords, years, sortField, orderQuery(c), page, pageSize)
		if err != nil {
			if errors.Is(err, services.ErrNoKeywords) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
				return
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, result)
	})
}
