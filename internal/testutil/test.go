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

// Package test provides utility functions and fixture data to support the
// application's test suite. It helps in setting up a consistent test
// environment, loading test-specific configuration, and building sample
// catalogs for the analytics services.
package test

import (
	"log"
	"os"
	"testing"

	"github.com/jaycherian/go-media-insights/internal/config"
	"github.com/jaycherian/go-media-insights/internal/core/model"
	"github.com/jaycherian/go-media-insights/internal/core/services"
)

// StateManager acts as a simple in-memory cache for the application
// configuration during test runs, so the TOML files are loaded only once per
// test binary.
type StateManager struct {
	config *config.Config
}

// state holds the singleton StateManager for the test run.
var state = &StateManager{}

// HandleErr fails the test when err is not nil. A convenience to reduce
// boilerplate error checking in tests.
//
// Inputs:
//   - err: The error to check.
//   - t: The *testing.T object from the current test.
func HandleErr(err error, t *testing.T) {
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// SetupOS configures the environment variables the configuration loader
// depends on, directing it to the test configuration files.
//
// Returns:
//   - An error if setting any environment variable fails.
func SetupOS() (err error) {
	err = os.Setenv(config.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	// The loader will look for ".env.test.toml" for overrides.
	err = os.Setenv(config.EnvConfigRuntime, "test")
	return err
}

// GetConfig is a singleton accessor for the test configuration. The TOML
// files are loaded on first use and cached for subsequent calls.
//
// Returns:
//   - A pointer to the loaded and cached config.Config struct.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		cfg := config.NewConfig()
		config.LoadConfig(cfg)
		state.config = cfg
	}
	return state.config
}

// GetTestCSVText returns a small CSV export in the source system's format.
// It spans three records across two years, includes a pipe-delimited tag
// list, and one row with malformed numeric fields to exercise the permissive
// parse rules.
func GetTestCSVText() string {
	return `video_id,title,published_at,duration,view_count,like_count,comment_count,tags,category_id,description,url,thumbnail_url
vid-001,Ukraine : la contre-offensive,2023-03-14T18:00:00Z,01:04:30,120000,2400,310,ukraine|poutine|guerre,25,Analyse de la situation en Ukraine.,https://example.com/v/vid-001,https://example.com/t/vid-001.jpg
vid-002,Inflation : le retour,2023-09-02T18:00:00Z,00:58:12,85000,1300,150,inflation|pouvoir d'achat,25,Le point sur les prix.,https://example.com/v/vid-002,https://example.com/t/vid-002.jpg
vid-003,Climat : l'année de tous les records,2024-01-21T18:00:00Z,not-a-duration,oops,,12,climat||météo,25,Retour sur une année record.,https://example.com/v/vid-003,https://example.com/t/vid-003.jpg
`
}

// WriteTestCSV writes the fixture CSV into the test's temp directory and
// returns its path.
func WriteTestCSV(t *testing.T) string {
	t.Helper()
	path := t.TempDir() + "/videos.csv"
	if err := os.WriteFile(path, []byte(GetTestCSVText()), 0o644); err != nil {
		t.Fatalf("failed to write fixture csv: %v", err)
	}
	return path
}

// NewTestVideo builds a record with sensible defaults for service tests.
// Only the fields the aggregations read need to be supplied.
func NewTestVideo(id, title, publishedAt, duration string, views, likes, comments int, tags []string, description string) *model.Video {
	return &model.Video{
		ID:           id,
		Title:        title,
		PublishedAt:  publishedAt,
		Published:    model.ParseTimestamp(publishedAt),
		Duration:     duration,
		ViewCount:    views,
		LikeCount:    likes,
		CommentCount: comments,
		Tags:         tags,
		Description:  description,
		URL:          "https://example.com/v/" + id,
		ThumbnailURL: "https://example.com/t/" + id + ".jpg",
	}
}

// NewTestCatalog freezes the given records into a catalog.
func NewTestCatalog(records ...*model.Video) *services.Catalog {
	return services.NewCatalog(records)
}
