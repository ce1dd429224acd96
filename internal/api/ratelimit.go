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

// Request rate limiting middleware. Every aggregation endpoint performs a
// full scan of the catalog, so an unthrottled client can pin a CPU with a
// tight request loop; the limiter sheds that load with 429s instead of
// queueing it.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit returns a gin middleware enforcing a process-wide request rate.
// The limiter allows a burst of `burst` requests and refills at
// `requestsPerSecond`. A non-positive rate disables limiting entirely.
func RateLimit(requestsPerSecond, burst int) gin.HandlerFunc {
	if requestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = requestsPerSecond
	}
	limiter := rate.NewLimiter(rate.Every(time.Second/time.Duration(requestsPerSecond)), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
