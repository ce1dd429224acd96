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

// Package main contains the setup and initialization logic for the
// application's state. This file is responsible for creating and managing a
// centralized state manager that holds all shared dependencies: the
// configuration, the loaded catalog, and the analytics services.
//
// Functions:
//   - SetupOS: Configures the environment variables the configuration loader
//     uses to find the correct TOML files, unless the caller already set them.
//   - GetConfig: A singleton function that loads the application's
//     configuration from TOML files, ensuring it is loaded only once.
//   - InitState: The core initialization function that runs the catalog
//     loader workflow and wires every analytics service to the result.
package main

import (
	"context"
	"log"
	"os"

	"github.com/jaycherian/go-media-insights/internal/api"
	"github.com/jaycherian/go-media-insights/internal/config"
	"github.com/jaycherian/go-media-insights/internal/core/services"
	"github.com/jaycherian/go-media-insights/internal/core/workflow"
)

// StateManager holds all the shared dependencies for the application, acting
// as a centralized container for the configuration, the loaded catalog, and
// the analytics services. This avoids global variables scattered across the
// handler code and keeps dependency wiring in one place.
type StateManager struct {
	config  *config.Config
	catalog *services.Catalog
	handler *api.Handler
}

// state is a package-level variable that holds the single StateManager.
var state = &StateManager{}

// SetupOS sets the environment variables the configuration loader uses to
// find the TOML files, keeping any values already present so deployments can
// point the server at their own configuration directory and runtime name.
//
// Outputs:
//   - error: An error if setting any of the environment variables fails.
func SetupOS() (err error) {
	if os.Getenv(config.EnvConfigFilePrefix) == "" {
		if err = os.Setenv(config.EnvConfigFilePrefix, "configs"); err != nil {
			return err
		}
	}
	if os.Getenv(config.EnvConfigRuntime) == "" {
		err = os.Setenv(config.EnvConfigRuntime, "local")
	}
	return err
}

// GetConfig provides a singleton instance of the application configuration.
// On the first call it sets up the OS environment and loads the TOML files;
// subsequent calls return the cached configuration.
//
// Outputs:
//   - *config.Config: A pointer to the loaded application configuration.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to set up configuration environment: %v\n", err)
		}
		cfg := config.NewConfig()
		config.LoadConfig(cfg)
		state.config = cfg
	}
	return state.config
}

// InitState initializes the entire application state.
//
// Inputs:
//   - ctx: The root context.Context for the application.
//
// This function performs the following steps:
//  1. Loads the application configuration.
//  2. Runs the catalog loader workflow against the configured CSV export.
//  3. Instantiates the analytics services over the loaded catalog and
//     bundles them behind the REST handler.
func InitState(ctx context.Context) {
	cfg := GetConfig()

	loader := workflow.NewCatalogLoaderWorkflow(cfg.Dataset.CSVPath)
	catalog, err := loader.Load(ctx)
	if err != nil {
		panic(err)
	}
	state.catalog = catalog

	state.handler = &api.Handler{
		Config:   cfg,
		Stats:    &services.StatsService{Catalog: catalog},
		Tags:     services.NewTagService(catalog, cfg.Analysis.StopTags),
		Keywords: &services.KeywordService{Catalog: catalog},
		Geo:      services.NewGeoService(catalog, cfg.Analysis.Regions),
		Videos:   &services.VideoListService{Catalog: catalog},
	}
}
