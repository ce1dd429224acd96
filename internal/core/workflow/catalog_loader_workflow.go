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

// Package workflow defines the high-level orchestrations that combine
// commands into coherent pipelines. This file implements the catalog loader
// workflow, which runs once at process start (and in tests against fixture
// files) to turn the raw CSV export into the immutable in-memory catalog.
package workflow

import (
	"context"
	"fmt"

	"github.com/jaycherian/go-media-insights/internal/core/commands"
	"github.com/jaycherian/go-media-insights/internal/core/cor"
	"github.com/jaycherian/go-media-insights/internal/core/services"
)

// CatalogOutputParamName is the context key under which the loader stores
// the finished catalog.
const CatalogOutputParamName = "__catalog_output__"

// CatalogLoaderWorkflow orchestrates the dataset load as a chain of three
// commands: CSV parsing, record normalization, and catalog assembly. The
// chain carries per-step tracing and success/error counters, so a slow or
// failing load is visible in the telemetry backend.
type CatalogLoaderWorkflow struct {
	cor.BaseCommand
	csvPath string
	chain   cor.Chain
}

// NewCatalogLoaderWorkflow constructs the loader for the given CSV path and
// initializes its command chain.
func NewCatalogLoaderWorkflow(csvPath string) *CatalogLoaderWorkflow {
	w := &CatalogLoaderWorkflow{
		BaseCommand: *cor.NewBaseCommand("catalog-loader-pipeline"),
		csvPath:     csvPath,
	}
	w.initializeChain()
	return w
}

// initializeChain builds the sequence of commands that make up the loader.
func (w *CatalogLoaderWorkflow) initializeChain() {
	out := cor.NewBaseChain(w.GetName())

	// Step 1: Parse the CSV export into raw header-keyed rows.
	out.AddCommand(commands.NewCSVReader("csv-reader"))

	// Step 2: Normalize each row into a typed record. All per-row parse
	// problems are absorbed here by the permissive field rules.
	out.AddCommand(commands.NewRecordNormalizer("record-normalizer"))

	// Step 3: Freeze the record list into the shared, read-only catalog.
	out.AddCommand(commands.NewCatalogBuilder("catalog-builder", CatalogOutputParamName))

	w.chain = out
}

// Execute runs the loader chain against the provided workflow context.
func (w *CatalogLoaderWorkflow) Execute(context cor.Context) {
	context.Add(cor.CtxIn, w.csvPath)
	w.chain.Execute(context)
}

// Load is the convenience entry point used by the server and tests: it runs
// the pipeline with a fresh workflow context and returns the catalog or the
// first error the chain recorded.
func (w *CatalogLoaderWorkflow) Load(ctx context.Context) (*services.Catalog, error) {
	chCtx := cor.NewBaseContext()
	chCtx.SetContext(ctx)

	w.Execute(chCtx)

	if chCtx.HasErrors() {
		for name, err := range chCtx.GetErrors() {
			return nil, fmt.Errorf("catalog load failed at %s: %w", name, err)
		}
	}
	catalog, ok := chCtx.Get(CatalogOutputParamName).(*services.Catalog)
	if !ok {
		return nil, fmt.Errorf("catalog load produced no output")
	}
	return catalog, nil
}
