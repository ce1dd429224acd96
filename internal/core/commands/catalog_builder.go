// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commands provides the concrete implementations of the Chain of
// Responsibility (COR) pattern's Command interface. This file defines the
// final step of the catalog ingestion pipeline: freezing the normalized
// record list into the immutable Catalog that every analytics service reads.
package commands

import (
	"github.com/jaycherian/go-media-insights/internal/core/cor"
	"github.com/jaycherian/go-media-insights/internal/core/model"
	"github.com/jaycherian/go-media-insights/internal/core/services"
)

// CatalogBuilder is a command that assembles the shared services.Catalog
// from the normalized records.
type CatalogBuilder struct {
	cor.BaseCommand
}

// NewCatalogBuilder is the constructor for the CatalogBuilder command.
//
// Inputs:
//   - name: A string name for this command instance.
//   - outputParamName: The context key where the catalog will be stored.
func NewCatalogBuilder(name string, outputParamName string) *CatalogBuilder {
	out := CatalogBuilder{BaseCommand: *cor.NewBaseCommand(name)}
	out.OutputParamName = outputParamName
	return &out
}

// Execute builds the catalog and stores it under the command's output
// parameter as well as the chain's general output slot.
func (b *CatalogBuilder) Execute(context cor.Context) {
	records := context.Get(b.GetInputParam()).([]*model.Video)

	catalog := services.NewCatalog(records)

	b.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(b.GetOutputParam(), catalog)
	context.Add(cor.CtxOut, catalog)
}
