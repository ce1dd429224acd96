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

// Package config defines the data structures for application configuration,
// loaded from TOML files. It provides a structured way to manage settings
// for the server, the dataset source, the analysis defaults, and the static
// classification tables.
//
// Structs:
//   - Server: HTTP listener settings and the per-client rate limit.
//   - Dataset: Location of the CSV metadata export.
//   - Analysis: Tunable defaults for the aggregation endpoints and optional
//     overrides of the shipped stoplist/region tables.
//   - Config: The top-level struct that aggregates all other configuration
//     structs.
//
// Functions:
//   - NewConfig: A constructor that initializes a new Config object.
package config

import "github.com/jaycherian/go-media-insights/internal/core/services"

// Server holds the HTTP listener settings.
type Server struct {
	Port              int `toml:"port"`                // The TCP port the server listens on.
	ReadTimeoutSecs   int `toml:"read_timeout_secs"`   // Read timeout for incoming requests, in seconds.
	WriteTimeoutSecs  int `toml:"write_timeout_secs"`  // Write timeout for responses, in seconds.
	RequestsPerSecond int `toml:"requests_per_second"` // Per-process request rate limit; 0 disables limiting.
	RequestBurst      int `toml:"request_burst"`       // Burst allowance of the rate limiter.
}

// Dataset holds the location of the record source.
type Dataset struct {
	CSVPath string `toml:"csv_path"` // Path to the CSV metadata export loaded at startup.
}

// Analysis holds the tunable defaults of the aggregation endpoints. Zero
// values fall back to the engine's built-in defaults.
type Analysis struct {
	TopTags         int                  `toml:"top_tags"`          // Default ranking size for the topics endpoint.
	TopVideos       int                  `toml:"top_videos"`        // Default size of the top-video listing.
	KeywordPageSize int                  `toml:"keyword_page_size"` // Default page size of the keyword match listing.
	VideoPageSize   int                  `toml:"video_page_size"`   // Default page size of the video listing.
	StopTags        []string             `toml:"stop_tags"`         // Optional stoplist override; empty keeps the shipped list.
	Regions         []services.GeoRegion `toml:"regions"`           // Optional region table override; empty keeps the shipped table.
}

// Config represents the overall configuration for the application, loaded
// from TOML files. It acts as the root container for all other configuration
// structs.
type Config struct {
	// Application holds general application settings.
	Application struct {
		Name string `toml:"name"` // The name of the application, used as the tracer/meter identity.
	} `toml:"application"`
	Server   Server   `toml:"server"`   // HTTP listener configuration.
	Dataset  Dataset  `toml:"dataset"`  // Record source configuration.
	Analysis Analysis `toml:"analysis"` // Aggregation endpoint defaults.
}

// NewConfig is a constructor function that creates a new, initialized Config
// instance with the built-in defaults a missing file would otherwise zero.
func NewConfig() *Config {
	out := &Config{}
	out.Server.Port = 8080
	out.Server.ReadTimeoutSecs = 20
	out.Server.WriteTimeoutSecs = 20
	return out
}
